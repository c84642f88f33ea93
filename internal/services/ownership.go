package services

import (
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
)

// AuthorizeMutation decides whether callerID may update or delete task.
// A nil task means the lookup found nothing.
func AuthorizeMutation(task *model.Task, callerID uint) error {
	if task == nil {
		return apperrors.ErrTaskNotFound
	}
	if !task.IsOwnedBy(callerID) {
		return apperrors.ErrForbidden
	}
	return nil
}

var patchableFields = map[string]struct{}{
	model.FieldTitle:       {},
	model.FieldDescription: {},
	model.FieldStatus:      {},
}

// ApplyPartialUpdate copies patch onto task. The whole patch is validated
// before any field is written, so a rejected patch leaves task untouched.
func ApplyPartialUpdate(task *model.Task, patch map[string]any) error {
	values := make(map[string]string, len(patch))
	for key, raw := range patch {
		if _, ok := patchableFields[key]; !ok {
			return apperrors.ErrInvalidPatch
		}
		val, ok := raw.(string)
		if !ok {
			return apperrors.ErrInvalidPatch
		}
		if key == model.FieldStatus && val == "" {
			return apperrors.ErrInvalidPatch
		}
		values[key] = val
	}

	for key, val := range values {
		switch key {
		case model.FieldTitle:
			task.Title = val
		case model.FieldDescription:
			task.Description = val
		case model.FieldStatus:
			task.Status = val
		}
	}

	return nil
}
