package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/cartlab/internal/domain"
)

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Partial config (only the point limit)
	content := []byte("cartlab:\n  point:\n    limit: 50\n")
	if err := os.WriteFile(filepath.Join(root, "cartlab.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Point.Limit != 50 {
		t.Fatalf("expected limit=50, got=%d", cfg.Point.Limit)
	}
	if cfg.Reader.Min != -99.9 || cfg.Reader.Max != 99.9 {
		t.Fatalf("expected default reader range, got=%+v", cfg.Reader)
	}
	if cfg.Table.Column != 12 {
		t.Fatalf("expected column=12, got=%d", cfg.Table.Column)
	}
	if len(cfg.Cases) != 2 {
		t.Fatalf("expected default cases, got=%d", len(cfg.Cases))
	}
}

func TestLoadConfig_MissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if cfg.Table.Precision != 6 {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}
