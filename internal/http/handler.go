package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
	"task-manager.com/task-manager/internal/http/validators"
	"task-manager.com/task-manager/internal/services"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	taskService *services.TaskService
	userService *services.UserService
	health      Pinger
}

func NewHandler(taskService *services.TaskService, userService *services.UserService, health Pinger) *Handler {
	return &Handler{
		taskService: taskService,
		userService: userService,
		health:      health,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("", dto.NewTaskResponses(tasks)))
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	callerID, err := currentUser(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), callerID, services.NewTask{
		Title:       *req.Title,
		Description: *req.Description,
		Status:      *req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.Success("task created successfully", dto.NewTaskResponse(task)))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var patch map[string]any
	if err := c.Echo().JSONSerializer.Deserialize(c, &patch); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.ErrInvalidJSON
	}

	callerID, err := currentUser(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), callerID, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("updated task successfully", dto.NewTaskResponse(task)))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	callerID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), callerID, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("deleted task successfully", nil))
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.health.Ping(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable").SetInternal(err)
	}
	return c.JSON(http.StatusOK, dto.Success("ok", nil))
}

func taskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrTaskIDInvalid
	}
	return uint(id), nil
}

func currentUser(c echo.Context) (uint, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return 0, apperrors.ErrMissingToken
	}
	return id, nil
}
