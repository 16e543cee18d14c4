package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Environment variables read at startup. An optional .env file in the working
// directory is loaded first.
const (
	envLogLevel  = "SAFEMAZE_LOG_LEVEL"
	envLogFormat = "SAFEMAZE_LOG_FORMAT"
)

// config holds the settings the environment can change. None of them affect
// the classification or the rendered grid.
type config struct {
	LogLevel  logrus.Level // defaults to warn
	LogFormat string       // "text" (default) or "json"
}

// loadConfig reads config through lookup, which has the shape of os.LookupEnv.
func loadConfig(lookup func(string) (string, bool)) (config, error) {
	cfg := config{LogLevel: logrus.WarnLevel, LogFormat: "text"}

	if v, ok := lookup(envLogLevel); ok && v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if v, ok := lookup(envLogFormat); ok && v != "" {
		switch f := strings.ToLower(v); f {
		case "text", "json":
			cfg.LogFormat = f
		default:
			return cfg, fmt.Errorf("%s: unknown format %q, want text or json", envLogFormat, v)
		}
	}
	return cfg, nil
}

// newLogger builds the process logger. It never writes to stdout, which
// carries the rendered grid.
func newLogger(cfg config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log
}
