package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// safeModel logs a panic raised by the inner model and returns to the home
// screen instead of leaving the terminal in alt-screen mode.
type safeModel struct {
	inner model
	log   *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{inner: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.inner.Init()
}

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.update", r)
			s.inner = s.inner.recovered()
			next, cmd = s, nil
		}
	}()

	inner, c := s.inner.Update(msg)
	if mm, ok := inner.(model); ok {
		s.inner = mm
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r)
			out = "Unexpected error (see logs)"
		}
	}()
	return s.inner.View()
}

func (s safeModel) logPanic(where string, r any) {
	s.log.Error("panic.recovered",
		"where", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = safeModel{}
