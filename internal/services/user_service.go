package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"task-manager.com/task-manager/internal/auth"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

type UserService struct {
	repo       *repository.UserRepository
	hasher     *auth.PasswordHasher
	tokens     auth.TokenIssuer
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewUserService(
	repo *repository.UserRepository,
	hasher *auth.PasswordHasher,
	tokens auth.TokenIssuer,
	accessTTL,
	refreshTTL time.Duration,
) *UserService {
	return &UserService{
		repo:       repo,
		hasher:     hasher,
		tokens:     tokens,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidUserData
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Username: username, PasswordHash: hash}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	subject := SubjectFor(user.ID)

	access, err := s.tokens.Issue(subject, auth.AccessToken, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.Issue(subject, auth.RefreshToken, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshAccessToken issues a new access token for userID, whose refresh
// token was already verified. The refresh token itself stays valid.
func (s *UserService) RefreshAccessToken(userID uint) (string, error) {
	return s.tokens.Issue(SubjectFor(userID), auth.AccessToken, s.accessTTL)
}

// Authenticate resolves a token of the given kind to a user id.
func (s *UserService) Authenticate(token string, kind auth.TokenKind) (uint, error) {
	subject, err := s.tokens.Verify(token, kind)
	if err != nil {
		return 0, apperrors.ErrInvalidToken
	}
	return ParseSubject(subject)
}

func SubjectFor(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}

func ParseSubject(subject string) (uint, error) {
	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidToken
	}
	return uint(id), nil
}
