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
	"pdfshare/internal/auth"
	"pdfshare/internal/model"
	"pdfshare/internal/repository"
	repoMocks "pdfshare/internal/repository/mocks"
)

type stubIssuer struct {
	err error
}

func (s stubIssuer) Issue(email string) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return "token-for-" + email, time.Unix(1700000000, 0), nil
}

func TestAuthService_Register(t *testing.T) {
	t.Run("stores a bcrypt hash under the normalized email", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "alice@x.com" && u.Name == "Alice" && auth.CheckPassword(u.PasswordHash, "pw")
		})).Return(&model.User{ID: "U1", Name: "Alice", Email: "alice@x.com"}, nil)

		svc := NewAuthService(mUsers, stubIssuer{})
		u, err := svc.Register(context.Background(), " Alice ", " Alice@X.com ", "pw")
		require.NoError(t, err)
		assert.Equal(t, "U1", u.ID)
		mUsers.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("Create", mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicate)

		svc := NewAuthService(mUsers, stubIssuer{})
		_, err := svc.Register(context.Background(), "Alice", "alice@x.com", "pw")
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Equal(t, "email already registered", apperr.DetailOf(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewAuthService(new(repoMocks.MockUserRepository), stubIssuer{})
		for _, in := range [][3]string{{"", "a@x.com", "pw"}, {"A", "", "pw"}, {"A", "not-an-email", "pw"}, {"A", "a@x.com", ""}} {
			_, err := svc.Register(context.Background(), in[0], in[1], in[2])
			assert.ErrorIs(t, err, apperr.ErrInvalidInput, "%v", in)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		svc := NewAuthService(mUsers, stubIssuer{})
		_, err := svc.Register(context.Background(), "Alice", "alice@x.com", "pw")
		assert.ErrorIs(t, err, apperr.ErrStorageFailure)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)
	alice := &model.User{ID: "U1", Name: "Alice", Email: "alice@x.com", PasswordHash: hash}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(mUsers *repoMocks.MockUserRepository)
		issuer   TokenIssuer
		wantErr  error
	}{
		{
			name:     "valid credentials",
			email:    "ALICE@x.com",
			password: "pw",
			setup: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", mock.Anything, "alice@x.com").Return(alice, nil)
			},
			issuer: stubIssuer{},
		},
		{
			name:     "wrong password",
			email:    "alice@x.com",
			password: "nope",
			setup: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", mock.Anything, "alice@x.com").Return(alice, nil)
			},
			issuer:  stubIssuer{},
			wantErr: apperr.ErrUnauthorized,
		},
		{
			name:     "unknown user",
			email:    "bob@x.com",
			password: "pw",
			setup: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", mock.Anything, "bob@x.com").Return(nil, repository.ErrNotFound)
			},
			issuer:  stubIssuer{},
			wantErr: apperr.ErrUnauthorized,
		},
		{
			name:     "store failure",
			email:    "alice@x.com",
			password: "pw",
			setup: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", mock.Anything, "alice@x.com").Return(nil, errors.New("db down"))
			},
			issuer:  stubIssuer{},
			wantErr: apperr.ErrStorageFailure,
		},
		{
			name:     "issuer failure",
			email:    "alice@x.com",
			password: "pw",
			setup: func(mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByEmail", mock.Anything, "alice@x.com").Return(alice, nil)
			},
			issuer:  stubIssuer{err: errors.New("no key")},
			wantErr: apperr.ErrStorageFailure,
		},
		{
			name:    "empty credentials",
			setup:   func(*repoMocks.MockUserRepository) {},
			issuer:  stubIssuer{},
			wantErr: apperr.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mUsers := new(repoMocks.MockUserRepository)
			tt.setup(mUsers)

			svc := NewAuthService(mUsers, tt.issuer)
			tok, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tok)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "token-for-alice@x.com", tok.AccessToken)
				assert.Equal(t, "bearer", tok.TokenType)
			}
			mUsers.AssertExpectations(t)
		})
	}
}
