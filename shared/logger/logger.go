// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"beautyhub/config"
	"beautyhub/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// InitLogger installs a console logger at trace level. It runs before the
// configuration is read; Configure then narrows it down.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

// Configure applies LOG_LEVEL and, outside development, switches to JSON
// lines tagged with the app name and environment.
func Configure(cfg *config.Config) {
	configure(cfg, os.Stdout)
}

func configure(cfg *config.Config, out io.Writer) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Server.Env != constant.ServerEnvDevelopment {
		log.Logger = zerolog.New(out).With().
			Timestamp().
			Str("app", cfg.App.Name).
			Str("env", cfg.Server.Env).
			Logger()
	}

	log.Debug().Str("loglevel", level.String()).Msg("Logger configured.")
}

// ErrorWithStack logs err at error level with the stack of the caller.
func ErrorWithStack(err error) {
	log.Error().Stack().Err(errors.WithStack(err)).Send()
}
