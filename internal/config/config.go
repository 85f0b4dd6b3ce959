package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr         string
	DataDir          string
	PersonsLog       string
	DemeritsLog      string
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:         envOrDefault("HTTP_ADDR", ":8080"),
		DataDir:          envOrDefault("DATA_DIR", "."),
		PersonsLog:       envOrDefault("PERSONS_LOG", "persons.txt"),
		DemeritsLog:      envOrDefault("DEMERITS_LOG", "demeritPoints.txt"),
		ShutdownTimeout:  envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS"),
	}
}

// PersonsPath is the person log location inside DataDir.
func (c Config) PersonsPath() string {
	return filepath.Join(c.DataDir, c.PersonsLog)
}

// DemeritsPath is the demerit log location inside DataDir.
func (c Config) DemeritsPath() string {
	return filepath.Join(c.DataDir, c.DemeritsLog)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
