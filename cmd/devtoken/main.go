// Command devtoken issues a bearer token for an existing user id.
// Development use only; the role claim is informational and the server
// resolves the actual role from the users table.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"event-reservation/internal/domain/user"
	"event-reservation/internal/pkg/config"
	"event-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	userID := flag.String("user", "", "user id (uuid)")
	role := flag.String("role", user.RoleUser.String(), "role claim")
	flag.Parse()

	if err := run(*userID, *role); err != nil {
		slog.Error("トークンの発行に失敗しました", "error", err)
		os.Exit(1)
	}
}

func run(rawID, rawRole string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("failed to process env config: %w", err)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid -user: %w", err)
	}
	role, err := user.NewRole(rawRole)
	if err != nil {
		return err
	}
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return fmt.Errorf("invalid JWT_DURATION: %w", err)
	}

	token, err := jwt.NewService(cfg.Secret, duration).GenerateToken(id, role)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
