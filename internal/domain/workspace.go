package domain

// WorkspaceSpec describes where a cartlab workspace is created.
type WorkspaceSpec struct {
	Root string
}
