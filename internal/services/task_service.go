package services

import (
	"context"
	"errors"

	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

type TaskService struct {
	repo  *repository.TaskRepository
	users *repository.UserRepository
}

func NewTaskService(repo *repository.TaskRepository, users *repository.UserRepository) *TaskService {
	return &TaskService{
		repo:  repo,
		users: users,
	}
}

type NewTask struct {
	Title       string
	Description string
	Status      string
}

func (s *TaskService) CreateTask(ctx context.Context, callerID uint, in NewTask) (*model.Task, error) {
	if in.Status == "" {
		return nil, apperrors.ErrInvalidTaskData
	}

	exists, err := s.users.Exists(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrUnknownCaller
	}

	owner := callerID
	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		UserID:      &owner,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

// UpdateTask applies patch to the task with the given id on behalf of
// callerID. Lookup, authorization and write share one transaction.
func (s *TaskService) UpdateTask(ctx context.Context, callerID, id uint, patch map[string]any) (*model.Task, error) {
	var updated *model.Task

	err := s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		task, err := s.lookupForMutation(ctx, tx, callerID, id)
		if err != nil {
			return err
		}

		if err := ApplyPartialUpdate(task, patch); err != nil {
			return err
		}

		if len(patch) > 0 {
			if err := tx.Update(ctx, task); err != nil {
				return err
			}
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, callerID, id uint) error {
	return s.repo.Transaction(ctx, func(tx *repository.TaskRepository) error {
		if _, err := s.lookupForMutation(ctx, tx, callerID, id); err != nil {
			return err
		}
		return tx.Delete(ctx, id)
	})
}

func (s *TaskService) lookupForMutation(
	ctx context.Context,
	tx *repository.TaskRepository,
	callerID,
	id uint,
) (*model.Task, error) {
	task, err := tx.FindByID(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrTaskNotFound) {
		return nil, err
	}

	if err := AuthorizeMutation(task, callerID); err != nil {
		return nil, err
	}

	return task, nil
}
