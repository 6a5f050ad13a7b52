package tasks

import "time"

// Config holds configuration for the task queue system.
type Config struct {
	// Workers is the number of concurrent task workers. Default: 1, so
	// directory imports never overlap.
	Workers int

	// TaskTimeout bounds a single import run. Default: 30m
	TaskTimeout time.Duration

	// ReleaseAfter is when stuck tasks are released back to queue. Default: 1h
	ReleaseAfter time.Duration

	// CleanupInterval is how often to clean up completed tasks. Default: 1h
	CleanupInterval time.Duration

	// RetentionDuration is how long to keep completed tasks. Default: 24h
	RetentionDuration time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers:           1,
		TaskTimeout:       30 * time.Minute,
		ReleaseAfter:      time.Hour,
		CleanupInterval:   time.Hour,
		RetentionDuration: 24 * time.Hour,
	}
}
