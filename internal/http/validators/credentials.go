package validators

import (
	"strings"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
)

func ValidateCredentialsRequest(r *dto.CredentialsRequest) error {
	if strings.TrimSpace(r.Username) == "" || r.Password == "" {
		return apperrors.ErrInvalidUserData
	}
	return nil
}
