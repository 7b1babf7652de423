package adapter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields zero config", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		if err != nil {
			t.Fatalf("LoadConfig error: %v", err)
		}

		if cfg.Output != "" || cfg.Parallel != 0 || cfg.Quiet {
			t.Errorf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("loads declared defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := "output: merged.xml\nparallel: 4\nquiet: true\n"

		if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := LoadConfig(dir)
		if err != nil {
			t.Fatalf("LoadConfig error: %v", err)
		}

		if cfg.Output != "merged.xml" {
			t.Errorf("output = %q, want \"merged.xml\"", cfg.Output)
		}

		if cfg.Parallel != 4 {
			t.Errorf("parallel = %d, want 4", cfg.Parallel)
		}

		if !cfg.Quiet {
			t.Error("quiet = false, want true")
		}
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		dir := t.TempDir()

		if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("output: [\n"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		if _, err := LoadConfig(dir); err == nil {
			t.Fatal("expected error for invalid yaml")
		}
	})
}
