package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pdfshare/internal/model"
)

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Add(ctx context.Context, principal, fileID, text string) (*model.Comment, error) {
	args := m.Called(ctx, principal, fileID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) List(ctx context.Context, principal, fileID string) ([]model.Comment, error) {
	args := m.Called(ctx, principal, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}
