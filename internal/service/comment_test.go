package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pdfshare/internal/apperr"
	"pdfshare/internal/model"
	"pdfshare/internal/repository"
	repoMocks "pdfshare/internal/repository/mocks"
)

func TestCommentService_Add(t *testing.T) {
	tests := []struct {
		name       string
		principal  string
		text       string
		setupMocks func(mDocs *repoMocks.MockDocumentRepository, mComments *repoMocks.MockCommentRepository)
		wantErr    error
	}{
		{
			name:      "grantee comments",
			principal: "bob@x.com",
			text:      "  nice report ",
			setupMocks: func(mDocs *repoMocks.MockDocumentRepository, mComments *repoMocks.MockCommentRepository) {
				mDocs.On("FindByID", mock.Anything, "F1").Return(aliceDoc(), nil)
				mComments.On("Append", mock.Anything, &model.Comment{FileID: "F1", Author: "bob@x.com", Text: "nice report"}).
					Return(&model.Comment{ID: "C1", FileID: "F1", Author: "bob@x.com", Text: "nice report", Timestamp: time.Now()}, nil)
			},
		},
		{
			name:      "stranger is forbidden",
			principal: "carol@x.com",
			text:      "hi",
			setupMocks: func(mDocs *repoMocks.MockDocumentRepository, _ *repoMocks.MockCommentRepository) {
				mDocs.On("FindByID", mock.Anything, "F1").Return(aliceDoc(), nil)
			},
			wantErr: apperr.ErrForbidden,
		},
		{
			name:      "unknown document",
			principal: "alice@x.com",
			text:      "hi",
			setupMocks: func(mDocs *repoMocks.MockDocumentRepository, _ *repoMocks.MockCommentRepository) {
				mDocs.On("FindByID", mock.Anything, "F1").Return(nil, repository.ErrNotFound)
			},
			wantErr: apperr.ErrNotFound,
		},
		{
			name:       "blank text",
			principal:  "alice@x.com",
			text:       "   ",
			setupMocks: func(*repoMocks.MockDocumentRepository, *repoMocks.MockCommentRepository) {},
			wantErr:    apperr.ErrInvalidInput,
		},
		{
			name:       "unauthenticated",
			text:       "hi",
			setupMocks: func(*repoMocks.MockDocumentRepository, *repoMocks.MockCommentRepository) {},
			wantErr:    apperr.ErrUnauthorized,
		},
		{
			name:      "log failure",
			principal: "alice@x.com",
			text:      "hi",
			setupMocks: func(mDocs *repoMocks.MockDocumentRepository, mComments *repoMocks.MockCommentRepository) {
				mDocs.On("FindByID", mock.Anything, "F1").Return(aliceDoc(), nil)
				mComments.On("Append", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			wantErr: apperr.ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mDocs := new(repoMocks.MockDocumentRepository)
			mComments := new(repoMocks.MockCommentRepository)
			tt.setupMocks(mDocs, mComments)

			svc := NewCommentService(mDocs, mComments)
			c, err := svc.Add(context.Background(), tt.principal, "F1", tt.text)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "C1", c.ID)
			}
			mDocs.AssertExpectations(t)
			mComments.AssertExpectations(t)
		})
	}
}

func TestCommentService_List(t *testing.T) {
	mDocs := new(repoMocks.MockDocumentRepository)
	mComments := new(repoMocks.MockCommentRepository)
	want := []model.Comment{{ID: "C1", FileID: "F1", Author: "bob@x.com", Text: "nice"}}
	mDocs.On("FindByID", mock.Anything, "F1").Return(aliceDoc(), nil)
	mDocs.On("FindByID", mock.Anything, "gone").Return(nil, repository.ErrNotFound)
	mComments.On("ListFor", mock.Anything, "F1").Return(want, nil)

	svc := NewCommentService(mDocs, mComments)

	got, err := svc.List(context.Background(), "alice@x.com", "F1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.List(context.Background(), "carol@x.com", "F1")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.List(context.Background(), "alice@x.com", "gone")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.List(context.Background(), "", "F1")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
