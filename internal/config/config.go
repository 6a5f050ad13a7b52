package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP     HTTP
		Global   Global
		Database Database
		Import   Import
		Log      Log
		Tasks    Tasks
	}

	HTTP struct {
		Port int32 `validate:"min=1,max=65535"`
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int `validate:"min=0"`
	}
	Database struct {
		Path string `validate:"required"`
	}
	Import struct {
		Dir string `validate:"required"`
		// Atomic wraps each aggregate (parent and children) in one transaction.
		// When false, child failures are logged and the parent is kept.
		Atomic   bool
		Schedule string // Cron format, empty disables scheduled imports
	}
	Log struct {
		Env   string `validate:"oneof=development production"`
		Level string `validate:"oneof=debug info warn error"`
	}
	Tasks struct {
		TaskTimeout     time.Duration `validate:"gt=0"`
		ReleaseAfter    time.Duration `validate:"gt=0"`
		CleanupInterval time.Duration `validate:"gt=0"`
	}
)

func NewConfig() *Config {
	// A missing .env file is fine, the environment may already be populated.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("import_dir", DefaultImportDir)
	v.SetDefault("import_atomic", true)
	v.SetDefault("import_schedule", "")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")

	// Task queue defaults
	v.SetDefault("task_timeout", "30m")
	v.SetDefault("task_release_after", "1h")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Import: Import{
			Dir:      v.GetString("IMPORT_DIR"),
			Atomic:   v.GetBool("IMPORT_ATOMIC"),
			Schedule: v.GetString("IMPORT_SCHEDULE"),
		},
		Log: Log{
			Env:   v.GetString("APP_ENV"),
			Level: v.GetString("LOG_LEVEL"),
		},
		Tasks: Tasks{
			TaskTimeout:     v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}

// Validate checks the loaded configuration before anything touches the store.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
