package tui

import "github.com/aalvaropc/cartlab/internal/domain"

type configChangedMsg struct{}

type configReloadedMsg struct {
	cfg domain.Config
	err error
}
