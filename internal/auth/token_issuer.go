package auth

import (
	"errors"
	"time"
)

type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// TokenIssuer issues and verifies bearer tokens bound to a subject.
type TokenIssuer interface {
	Issue(subject string, kind TokenKind, ttl time.Duration) (string, error)

	Verify(token string, kind TokenKind) (string, error)
}

var ErrInvalidToken = errors.New("invalid token")
