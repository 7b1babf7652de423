package cmd

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mergecov/mergecov/internal/domain"
)

// mockWorkflow is a testify mock of domain.Workflow for command tests.
type mockWorkflow struct {
	mock.Mock
}

func (mw *mockWorkflow) Merge(ctx context.Context, args domain.MergeArgs) error {
	return mw.Called(ctx, args).Error(0)
}

func (mw *mockWorkflow) Inspect(ctx context.Context, args domain.InspectArgs) error {
	return mw.Called(ctx, args).Error(0)
}
