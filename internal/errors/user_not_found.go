package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Message:    "no such user with the given username",
	StatusCode: http.StatusNotFound,
}
