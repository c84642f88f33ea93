package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "you are not the owner of this task",
	StatusCode: http.StatusForbidden,
}
