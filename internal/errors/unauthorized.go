package errors

import "net/http"

// ErrInvalidCredentials is answered with 403 to keep the login contract.
var ErrInvalidCredentials = &Exception{
	Message:    "username or password is incorrect",
	StatusCode: http.StatusForbidden,
}

var ErrMissingToken = &Exception{
	Message:    "missing bearer token",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidToken = &Exception{
	Message:    "invalid or expired token",
	StatusCode: http.StatusUnauthorized,
}
