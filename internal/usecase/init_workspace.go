package usecase

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/ports"
)

// InitWorkspace creates a cartlab workspace through a WorkspaceInitializer.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	log         *slog.Logger
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, opts ...Option) *InitWorkspace {
	o := applyOptions(opts)
	return &InitWorkspace{initializer: initializer, log: o.log}
}

func (uc *InitWorkspace) Execute(root string, force bool) error {
	root = strings.TrimSpace(root)
	if root == "" {
		return &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		uc.log.Error("workspace.init.failed", "root", root, "err", err)
		return err
	}

	uc.log.Info("workspace.init", "root", root, "force", force)
	return nil
}
