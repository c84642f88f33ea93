package dto

import model "task-manager.com/task-manager/internal/models"

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username}
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}
