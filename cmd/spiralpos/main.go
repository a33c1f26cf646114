// Command spiralpos prints spiral score positions for frequencies.
//
// Usage:
//
//	spiralpos [flags] [frequency ...]
//
// Without frequencies it places 200 Hz against a 100 Hz rational spiral.
//
// Examples:
//
//	spiralpos
//	spiralpos --f0 32.70 65.41 130.81 261.63
//	spiralpos --distance linear --end 4186 --format json 440 880,1760
//	spiralpos --distance blend --end 4186 --lin 0.25 --strict 523.25
//
// Flags can also be set through SPIRAL_* environment variables or a .env
// file in the working directory.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/cwbudde/algo-spiral/internal/logging"
)

func main() {
	logger := logging.NewCLILogger(os.Stderr, "info", true)
	slog.SetDefault(logger)

	if err := loadEnv(); err != nil {
		slog.Warn("ignoring .env file", "error", err)
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// loadEnv sets SPIRAL_* defaults from the given dotenv files, or from .env in
// the working directory when none are given. Variables already present in
// the environment win. Missing files are not an error.
func loadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
