package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pdfshare/internal/model"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Append(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListFor(ctx context.Context, fileID string) ([]model.Comment, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteFor(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}
