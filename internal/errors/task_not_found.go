package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "didn't find any tasks with given id",
	StatusCode: http.StatusNotFound,
}
