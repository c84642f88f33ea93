package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidUserData = &Exception{
	Message:    "incorrect user data",
	StatusCode: http.StatusBadRequest,
}

var ErrUsernameTaken = &Exception{
	Message:    "username is already taken",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidTaskData = &Exception{
	Message:    "invalid task data was received",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidPatch = &Exception{
	Message:    "there was an error in the sent data",
	StatusCode: http.StatusBadRequest,
}

var ErrUnknownCaller = &Exception{
	Message:    "wrong user id",
	StatusCode: http.StatusBadRequest,
}

var ErrTaskIDInvalid = &Exception{
	Message:    "task id must be a positive integer",
	StatusCode: http.StatusBadRequest,
}
