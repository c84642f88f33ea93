package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"exception", ErrTaskNotFound, http.StatusNotFound},
		{"wrapped", fmt.Errorf("update task 4: %w", ErrForbidden), http.StatusForbidden},
		{"plain", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusCode(tc.err); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestMessageHidesInternalErrors(t *testing.T) {
	if got := Message(errors.New("sql: connection refused")); got != "Internal Server Error" {
		t.Errorf("internal error leaked: %q", got)
	}
	if got := Message(fmt.Errorf("login: %w", ErrInvalidCredentials)); got != ErrInvalidCredentials.Message {
		t.Errorf("expected %q, got %q", ErrInvalidCredentials.Message, got)
	}
}
