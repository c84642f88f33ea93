package validators

import (
	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == nil || r.Description == nil || r.Status == nil {
		return apperrors.ErrInvalidTaskData
	}
	if *r.Status == "" {
		return apperrors.ErrInvalidTaskData
	}
	return nil
}
