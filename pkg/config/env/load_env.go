package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file.
// ENV_PATH overrides defaultPath. A missing file is an error only when env
// is "local" or empty; deployed environments configure the process directly.
// Variables already set in the environment are never overwritten.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err != nil {
		if env == "local" || env == "" {
			return err
		}
		slog.Debug("Skipping .env ...", "env", env)
	}

	return nil
}
