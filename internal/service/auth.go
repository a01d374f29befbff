package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"pdfshare/internal/apperr"
	"pdfshare/internal/auth"
	"pdfshare/internal/model"
	"pdfshare/internal/repository"
)

// TokenIssuer issues bearer tokens for a principal.
type TokenIssuer interface {
	Issue(email string) (string, time.Time, error)
}

// Token is the result of a successful login.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthService registers accounts and exchanges credentials for tokens.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*Token, error)
}

type authService struct {
	users  repository.UserRepository
	tokens TokenIssuer
	opts   options
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repository.UserRepository, tokens TokenIssuer, opts ...Option) AuthService {
	return &authService{users: users, tokens: tokens, opts: newOptions(opts)}
}

var errBadCredentials = apperr.New(apperr.KindUnauthorized, "invalid email or password")

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, name, email, password string) (u *model.User, err error) {
	ctx, span := tracer.Start(ctx, "AuthService.Register")
	defer func() { endSpan(span, err) }()

	name, email = strings.TrimSpace(name), normalizeEmail(email)
	switch {
	case name == "":
		return nil, apperr.New(apperr.KindInvalidInput, "name is required")
	case email == "" || !strings.Contains(email, "@"):
		return nil, apperr.New(apperr.KindInvalidInput, "a valid email is required")
	case password == "":
		return nil, apperr.New(apperr.KindInvalidInput, "password is required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidInput, "password cannot be used", err)
	}

	u, err = s.users.Create(ctx, &model.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.New(apperr.KindInvalidInput, "email already registered")
		}
		return nil, classify(err, "failed to register user")
	}

	log := s.opts.logger(ctx)
	log.Info().Str("email", email).Msg("user registered")
	return u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (t *Token, err error) {
	ctx, span := tracer.Start(ctx, "AuthService.Login")
	defer func() { endSpan(span, err) }()

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, errBadCredentials
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, apperr.Wrap(apperr.KindStorageFailure, "failed to load user", err)
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, errBadCredentials
	}

	token, exp, err := s.tokens.Issue(u.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageFailure, "failed to issue token", err)
	}
	return &Token{AccessToken: token, TokenType: "bearer", ExpiresAt: exp}, nil
}
