package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/auth"
	apperrors "task-manager.com/task-manager/internal/errors"
)

const userIDKey = "user_id"

type Authenticator interface {
	Authenticate(token string, kind auth.TokenKind) (uint, error)
}

// RequireToken only lets requests through that carry a valid bearer token
// of the given kind. The resolved user id is stored on the context.
func RequireToken(a Authenticator, kind auth.TokenKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return apperrors.ErrMissingToken
			}

			userID, err := a.Authenticate(token, kind)
			if err != nil {
				return apperrors.ErrInvalidToken
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the id stored by RequireToken.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(userIDKey).(uint)
	return id, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
