package config

import (
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultSQLiteDSN   = "file:exam_system.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	defaultPostgresDSN = "postgres://localhost:5432/exams?sslmode=disable"
	defaultExamTitle   = "Java Programming Exam"
)

type Config struct {
	// Database
	DBDriver       string // "sqlite" or "postgres"
	DBDSN          string
	ConnectTimeout time.Duration // bounds the startup ping only

	ExamTitle string
	LogLevel  slog.Level
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	driver := strings.ToLower(getenvDefault("DB_DRIVER", "sqlite"))
	var dsn string
	switch driver {
	case "sqlite":
		dsn = getenvDefault("DB_DSN", defaultSQLiteDSN)
	case "postgres":
		dsn = getenvDefault("DB_DSN", defaultPostgresDSN)
	default:
		log.Fatalf("config: DB_DRIVER=%q is not supported (want sqlite or postgres)", driver)
	}

	return &Config{
		DBDriver:       driver,
		DBDSN:          dsn,
		ConnectTimeout: getDurationDefault("DB_CONNECT_TIMEOUT", 5*time.Second),
		ExamTitle:      getenvDefault("EXAM_TITLE", defaultExamTitle),
		LogLevel:       getLevel("LOG_LEVEL"),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getLevel(k string) slog.Level {
	var level slog.Level
	v := os.Getenv(k)
	if v == "" {
		return slog.LevelInfo
	}
	if err := level.UnmarshalText([]byte(v)); err != nil {
		log.Fatalf("config: %s=%q is not a valid log level: %v", k, v, err)
	}
	return level
}
