package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/jmorganca/raylib/envconfig"
)

// LoadDotEnv loads environment variables from ~/.raylib/.env and reloads
// envconfig. Variables already set in the environment win. A missing file
// is not an error.
func LoadDotEnv() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %w", err)
	}

	envPath := filepath.Join(home, ".raylib", ".env")
	if err := godotenv.Load(envPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("could not load %s: %w", envPath, err)
	}

	envconfig.LoadConfig()
	return nil
}
