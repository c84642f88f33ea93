package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"task-manager.com/task-manager/internal/auth"
	config "task-manager.com/task-manager/internal/configs"
	repository "task-manager.com/task-manager/internal/repositories"
)

func TestTaskService_ConcurrentUpdatesOnFileDatabase(t *testing.T) {
	db := config.NewDatabaseClient(filepath.Join(t.TempDir(), "tasks.db"))
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	userRepo := repository.NewUserRepository(db)
	users := NewUserService(userRepo, auth.NewPasswordHasher(bcrypt.MinCost), auth.NewJWTIssuer("s", "tests"), time.Hour, time.Hour)
	tasks := NewTaskService(repository.NewTaskRepository(db), userRepo)
	ctx := context.Background()

	alice, err := users.Register(ctx, "alice", "pw")
	if err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	task, err := tasks.CreateTask(ctx, alice.ID, NewTask{Title: "t", Description: "d", Status: "open"})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	const concurrentCount = 40
	var wg sync.WaitGroup
	wg.Add(concurrentCount)

	errs := make(chan error, concurrentCount)

	for i := 0; i < concurrentCount; i++ {
		go func(idx int) {
			defer wg.Done()
			status := fmt.Sprintf("s%d", idx)
			if _, err := tasks.UpdateTask(ctx, alice.ID, task.ID, map[string]any{"status": status}); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent update failed: %v", err)
	}

	listed, _ := tasks.ListTasks(ctx)
	if len(listed) != 1 || listed[0].Title != "t" {
		t.Errorf("unexpected tasks after concurrent updates: %+v", listed)
	}
}
