package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/internal/http/validators"
)

func (h *Handler) Register(c echo.Context) error {
	var req dto.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidUserData
	}
	if err := validators.ValidateCredentialsRequest(&req); err != nil {
		return err
	}

	user, err := h.userService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.Success("user created successfully", dto.NewUserResponse(user)))
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateCredentialsRequest(&req); err != nil {
		return err
	}

	pair, err := h.userService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("", dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}))
}

func (h *Handler) Refresh(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	access, err := h.userService.RefreshAccessToken(userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.Success("", dto.AccessTokenResponse{AccessToken: access}))
}
