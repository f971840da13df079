package tui

import (
	"log/slog"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/ports"
)

type Deps struct {
	Config     domain.Config
	ConfigPath string // empty outside a workspace
	Bounds     *domain.Bounds
	Loader     ports.ConfigLoader
	Watch      bool

	Logger *slog.Logger
	Debug  bool
}
