package infra

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global zerolog logger: pretty console output
// on stderr in development, JSON in production. Unknown levels fall back
// to info.
func SetupLogger(env, level string) {
	var out io.Writer = os.Stderr
	if env != "production" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// StartupBackup copies the database before it is opened. A missing file is
// the first run and is not an error.
func StartupBackup(dbPath, dir string) {
	path, err := Backup(dbPath, dir, time.Now())
	switch {
	case err == nil:
		log.Debug().Str("path", path).Msg("startup backup done")
	case errors.Is(err, ErrNoDatabase):
		log.Debug().Str("db", dbPath).Msg("no database yet, skipping startup backup")
	default:
		log.Warn().Err(err).Msg("startup backup failed")
	}
}
