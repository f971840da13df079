package workspacefinder

import (
	"path/filepath"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/infra/config"
)

// ConfigPath returns the cartlab.yaml path for a workspace root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFile)
}

// LoadConfig loads cartlab.yaml from the workspace root and applies defaults.
// On error the defaults are still returned so callers may continue.
func LoadConfig(root string) (domain.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(ConfigPath(root))
	if err != nil {
		return domain.DefaultConfig(), err
	}
	return cfg, nil
}
