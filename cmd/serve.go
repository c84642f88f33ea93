package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "task-manager.com/task-manager/internal/configs"
	httpapi "task-manager.com/task-manager/internal/http"
	"task-manager.com/task-manager/internal/ratelimit"
	repository "task-manager.com/task-manager/internal/repositories"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		a := newApp(cfg)
		defer a.close()

		limiter, closeLimiter := newLimiter(cfg)
		defer closeLimiter()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		handler := httpapi.NewHandler(a.taskService, a.userService, repository.NewHealthRepository(a.db))
		httpapi.Register(e, handler, a.userService, limiter)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("server stopped: %v", err)
				stop()
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(echoCtx); err != nil {
			return err
		}

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func newLimiter(cfg config.Config) (ratelimit.Limiter, func()) {
	if cfg.RateLimitBackend == config.RateLimitRedis {
		client := config.NewRedisClient(cfg.RedisAddr)
		log.Printf("rate limiting through redis at %s", cfg.RedisAddr)
		return ratelimit.NewRedisLimiter(client, cfg.RedisKeyPrefix, cfg.RateLimit, time.Minute), client.Close
	}
	return ratelimit.NewMemoryLimiter(cfg.RateLimit, time.Minute), func() {}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
