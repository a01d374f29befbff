package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"pdfshare/internal/model"
	"pdfshare/internal/service"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, principal string, r io.Reader, filename string, size int64) (*model.Document, error) {
	args := m.Called(ctx, principal, r, filename, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, principal string) ([]model.DocumentSummary, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentSummary), args.Error(1)
}

func (m *MockDocumentService) View(ctx context.Context, principal, id string) (*service.Content, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Content), args.Error(1)
}

func (m *MockDocumentService) ViewShared(ctx context.Context, principal, id string) (*service.Content, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Content), args.Error(1)
}

func (m *MockDocumentService) Share(ctx context.Context, principal, id, grantee string) error {
	args := m.Called(ctx, principal, id, grantee)
	return args.Error(0)
}

func (m *MockDocumentService) ShareLink(ctx context.Context, principal, id string) (*service.ShareLink, error) {
	args := m.Called(ctx, principal, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ShareLink), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, principal, id string) error {
	args := m.Called(ctx, principal, id)
	return args.Error(0)
}
