package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/infra/workspacefinder"
	"github.com/aalvaropc/cartlab/internal/ports"
)

var locator ports.WorkspaceLocator = workspacefinder.NewFinder()

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config
}

// configPath is empty when running without a workspace.
func (ws *workspaceCtx) configPath() string {
	if !ws.found {
		return ""
	}
	return workspacefinder.ConfigPath(ws.root)
}

// loadWorkspace resolves the workspace and its config. An explicit workspace
// must contain cartlab.yaml; an autodetected one is optional and defaults
// apply when none is found.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}
	if !found {
		return &workspaceCtx{cfg: domain.DefaultConfig()}, nil
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{root: root, found: true, cfg: cfg}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, true, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return root, true, nil
}
