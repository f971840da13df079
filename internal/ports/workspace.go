package ports

import "github.com/aalvaropc/cartlab/internal/domain"

// WorkspaceLocator finds the directory holding cartlab.yaml, searching
// upward from startDir.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}

// WorkspaceInitializer writes a fresh workspace (config template, log
// directory, .gitignore entries) under spec.Root.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
