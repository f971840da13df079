package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/ports"
)

const (
	configName   = "cartlab.yaml"
	ignoreHeader = "# cartlab"
)

var ignoreEntries = []string{".cartlab/"}

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init creates cartlab.yaml, the log directory and the .gitignore entries
// under spec.Root. An existing cartlab.yaml is kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	if err := os.MkdirAll(filepath.Join(root, ".cartlab", "logs"), 0o755); err != nil {
		return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindExecution, Path: root, Err: err}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{Op: "fsworkspace.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	dst := filepath.Join(root, configName)
	if !force {
		if _, err := os.Stat(dst); err == nil {
			return nil
		}
	}

	b, err := templatesFS.ReadFile("templates/" + configName)
	if err != nil {
		return &domain.OpError{Op: "fsworkspace.template", Kind: domain.KindExecution, Err: err}
	}

	if err := writeFile(dst, b); err != nil {
		return &domain.OpError{Op: "fsworkspace.write", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return nil
}

// writeFile replaces dst through a temporary file in the same directory.
func writeFile(dst string, b []byte) error {
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func ensureGitignore(root string) error {
	path := filepath.Join(root, ".gitignore")

	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	merged, changed := mergeIgnore(string(b), ignoreEntries)
	if !changed {
		return nil
	}
	return os.WriteFile(path, []byte(merged), 0o644)
}

// mergeIgnore appends the entries missing from existing under the cartlab
// header. It reports false when nothing had to be added.
func mergeIgnore(existing string, entries []string) (string, bool) {
	present := make(map[string]struct{})
	for _, line := range strings.Split(existing, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			present[s] = struct{}{}
		}
	}

	var block []string
	if _, ok := present[ignoreHeader]; !ok {
		block = append(block, ignoreHeader)
	}
	added := 0
	for _, e := range entries {
		if _, ok := present[e]; !ok {
			block = append(block, e)
			added++
		}
	}
	if added == 0 {
		return existing, false
	}

	var out strings.Builder
	if existing != "" {
		out.WriteString(existing)
		if !strings.HasSuffix(existing, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	out.WriteString(strings.Join(block, "\n"))
	out.WriteByte('\n')
	return out.String(), true
}
