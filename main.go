package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/task-tracker/modules/api"
	"github.com/example/task-tracker/modules/notification"
	"github.com/example/task-tracker/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

type config struct {
	HTTP            api.Config
	Store           task.Config
	ShutdownTimeout time.Duration
}

func loadConfig() config {
	return config{
		HTTP: api.Config{
			Addr:         getEnv("HTTP_ADDR", ":8000"),
			ReadTimeout:  getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		},
		Store: task.Config{
			Driver: getEnv("DB_DRIVER", task.DriverSQLite),
			DSN:    getEnv("DB_DSN", "tasks.db"),
			Debug:  getEnvBool("DB_DEBUG", false),
		},
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func main() {
	log.Println("=== Task Tracker ===")

	cfg := loadConfig()

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	logger := app.Logger()

	// Independent modules first, then modules with dependencies.
	app.Register(notification.NewModule(logger.WithModule("notification")))
	app.Register(task.NewModule(cfg.Store, logger.WithModule("task")))
	app.Register(api.NewModule(cfg.HTTP, logger.WithModule("api")))

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(cfg config) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Printf("Store: %s", cfg.Store.Driver)
	log.Println("")
	log.Printf("REST API Endpoints (%s):", cfg.HTTP.Addr)
	log.Println("  GET    /tasks/             - List tasks (?status=&priority=&ordering=created_at|-created_at)")
	log.Println("  POST   /tasks/             - Create a task")
	log.Println("  GET    /tasks/:id/         - Get a task")
	log.Println("  PUT    /tasks/:id/         - Replace a task (title required)")
	log.Println("  PATCH  /tasks/:id/         - Partially update a task")
	log.Println("  DELETE /tasks/:id/         - Delete a task")
	log.Println("  GET    /tasks/summary/     - Task counts per status")
	log.Println("  GET    /health             - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool parses a boolean environment variable or returns default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("Warning: invalid bool value for %s: %s, using default: %t", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration parses a duration environment variable or returns default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}
