package adapter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"

	m "github.com/mergecov/mergecov/internal/model"
)

// ReportStore loads and persists Cobertura report documents.
type ReportStore interface {
	Load(ctx context.Context, path m.Path) (*m.CoverageReport, error)
	Save(ctx context.Context, path m.Path, data []byte) error
}

type reportStore struct {
	fs afs.Service
}

// NewReportStore constructs a ReportStore backed by the abstract file
// storage service, so report references can be plain paths or URLs.
func NewReportStore() ReportStore {
	return &reportStore{fs: afs.New()}
}

func (rs *reportStore) Load(ctx context.Context, path m.Path) (*m.CoverageReport, error) {
	data, err := rs.fs.DownloadWithURL(ctx, string(path))
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	report, err := DecodeReport(data)
	if err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}

func (rs *reportStore) Save(ctx context.Context, path m.Path, data []byte) error {
	if err := rs.fs.Upload(ctx, string(path), 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}
