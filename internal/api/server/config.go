package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/linked-calc/pkg/config/env"
	"github.com/DjordjeVuckovic/linked-calc/pkg/utils"
)

const defaultEnvPath = "cmd/calc_api/.env"

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	LogLevel    string
	LogFormat   string
}

// LoadConfig reads the HTTP server configuration from the environment,
// loading the .env file first when present.
func LoadConfig(envName string) (*Config, error) {
	if err := env.LoadDotEnv(envName, defaultEnvPath); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	return configFromEnv()
}

func configFromEnv() (*Config, error) {
	useHttp2 := os.Getenv("USE_HTTP2") == "true"
	port := envOr("PORT", "8080")

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitList(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        port,
		UseHttp2:    useHttp2,
		CorsOrigins: origins,
		LogLevel:    envOr("LOG_LEVEL", "info"),
		LogFormat:   envOr("LOG_FORMAT", "text"),
	}, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
