package ports

import "github.com/aalvaropc/cartlab/internal/domain"

// ConfigLoader loads the cartlab configuration from a source (e.g., filesystem).
type ConfigLoader interface {
	LoadConfig(path string) (domain.Config, error)
}
