package cmd

import (
	"gorm.io/gorm"

	"task-manager.com/task-manager/internal/auth"
	config "task-manager.com/task-manager/internal/configs"
	repository "task-manager.com/task-manager/internal/repositories"
	"task-manager.com/task-manager/internal/services"
)

type app struct {
	db          *gorm.DB
	userRepo    *repository.UserRepository
	taskRepo    *repository.TaskRepository
	userService *services.UserService
	taskService *services.TaskService
}

func newApp(cfg config.Config) *app {
	db := config.NewDatabaseClient(cfg.DatabaseDSN)
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	issuer := auth.NewJWTIssuer(cfg.JWTSecretKey, cfg.JWTIssuer)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	return &app{
		db:          db,
		userRepo:    userRepo,
		taskRepo:    taskRepo,
		userService: services.NewUserService(userRepo, hasher, issuer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		taskService: services.NewTaskService(taskRepo, userRepo),
	}
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
