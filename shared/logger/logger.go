package logger

import (
	"io"
	"os"
	"time"

	"pgms/config"
	"pgms/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the global logger and applies SERVER_LOG_LEVEL.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	log.Logger = New(os.Stdout, cfg)

	SetLogLevel(cfg)
	log.Trace().Str("env", cfg.Server.Env).Msg("Zerolog initialized.")
}

// New writes human readable lines in development and JSON elsewhere, so
// fields such as tenant_id stay queryable once shipped.
func New(out io.Writer, cfg *config.Config) zerolog.Logger {
	if cfg.Server.Env == constant.ServerEnvDevelopment {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if cfg.App.Name != "" {
		ctx = ctx.Str("service", cfg.App.Name)
	}

	return ctx.Logger()
}

// ErrorWithStack logs err with the stack of the caller attached.
func ErrorWithStack(err error) {
	if err == nil {
		return
	}

	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel falls back to info when the level is missing or unknown.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
		log.Warn().Str("configured", cfg.Server.LogLevel).Msg("Log level not set or unknown, using info.")
	}

	zerolog.SetGlobalLevel(level)
}
