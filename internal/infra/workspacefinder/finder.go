package workspacefinder

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/ports"
)

// ConfigFile is the file that marks a cartlab workspace root.
const ConfigFile = "cartlab.yaml"

// Finder walks up from a directory to the first one holding ConfigFile.
type Finder struct {
	name string
}

func NewFinder() *Finder {
	return &Finder{name: ConfigFile}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot accepts a directory or a file inside the workspace. A directory
// named cartlab.yaml does not mark a workspace.
func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.find_root",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start directory is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: "workspacefinder.find_root", Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for dir := range parents(abs) {
		if isRegular(filepath.Join(dir, f.name)) {
			return dir, nil
		}
	}

	return "", &domain.OpError{
		Op:   "workspacefinder.find_root",
		Kind: domain.KindNotFound,
		Path: abs,
		Err:  fmt.Errorf("no %s in %s or its parents: %w", f.name, abs, domain.ErrNotFound),
	}
}

// parents yields dir and each of its ancestors up to the filesystem root.
func parents(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		cur := filepath.Clean(dir)
		for {
			if !yield(cur) {
				return
			}
			next := filepath.Dir(cur)
			if next == cur {
				return
			}
			cur = next
		}
	}
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
