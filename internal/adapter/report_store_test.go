package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mergecov/mergecov/internal/model"
)

func TestReportStore_Load(t *testing.T) {
	t.Run("loads a report from disk", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "coverage.xml")

		if err := os.WriteFile(path, []byte(sampleReport), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		store := NewReportStore()

		report, err := store.Load(context.Background(), m.Path(path))
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}

		if len(report.Packages.Package) != 1 {
			t.Errorf("expected 1 package, got %d", len(report.Packages.Package))
		}
	})

	t.Run("propagates missing files", func(t *testing.T) {
		store := NewReportStore()

		if _, err := store.Load(context.Background(), m.Path(filepath.Join(t.TempDir(), "nope.xml"))); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("propagates malformed documents", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.xml")

		if err := os.WriteFile(path, []byte("<coverage><packages>"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		store := NewReportStore()

		if _, err := store.Load(context.Background(), m.Path(path)); err == nil {
			t.Fatal("expected error for malformed document")
		}
	})
}

func TestReportStore_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "merged.xml")
	store := NewReportStore()

	if err := store.Save(context.Background(), m.Path(path), []byte(sampleReport)); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if string(data) != sampleReport {
		t.Error("saved content does not match")
	}
}
