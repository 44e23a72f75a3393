package logutil

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogger sets up the global zerolog logger for the telemetry
// library. Outside production the output is human-readable; in production it
// stays line-delimited JSON with a severity field.
func ConfigureLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.With().Caller().Stack().Logger()
	if level, err := zerolog.ParseLevel(os.Getenv("TRACKS_LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		log.Logger = log.Sample(LevelSampler{Level: level})
	}
	if os.Getenv("TRACKS_ENV") == "production" {
		log.Logger = log.Hook(SeverityHook{})
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

type SeverityHook struct{}

func (h SeverityHook) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	e.Str("severity", level.String())
}
