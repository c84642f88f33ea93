package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
)

// ErrorHandler renders every error as a failure envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, msg := resolveError(err)
	if code >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, dto.Fail(msg))
	}
	if writeErr != nil {
		log.Printf("failed to write error response: %v", writeErr)
	}
}

func resolveError(err error) (int, string) {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode, appErr.Message
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = fmt.Sprint(httpErr.Message)
		}
		return httpErr.Code, msg
	}

	return apperrors.StatusCode(err), apperrors.Message(err)
}
