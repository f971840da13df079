package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/cartlab/internal/infra/configwatch"
	"github.com/aalvaropc/cartlab/internal/ports"
)

func cmdReloadConfig(loader ports.ConfigLoader, path string) tea.Cmd {
	return func() tea.Msg {
		if loader == nil {
			return configReloadedMsg{err: errors.New("ConfigLoader is nil")}
		}
		cfg, err := loader.LoadConfig(path)
		return configReloadedMsg{cfg: cfg, err: err}
	}
}

// startWatch forwards cartlab.yaml edits to the program until ctx is done.
func startWatch(ctx context.Context, p *tea.Program, deps Deps) (func(), error) {
	w, err := configwatch.New(
		deps.ConfigPath,
		func() { p.Send(configChangedMsg{}) },
		configwatch.WithLogger(deps.Logger),
	)
	if err != nil {
		return nil, err
	}

	go w.Start(ctx)

	return func() { _ = w.Close() }, nil
}
