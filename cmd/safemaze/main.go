// Command safemaze reads a maze on stdin, marks its safe cells and writes it
// to stdout. "safemaze view FILE" shows the result in the terminal.
package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional
	envErr := godotenv.Load()

	cfg, err := loadConfig(os.LookupEnv)
	log := newLogger(cfg, os.Stderr)
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		os.Exit(1)
	}
	if envErr != nil {
		log.WithError(envErr).Debug(".env not loaded")
	}

	if err := newRootCmd(log, tcell.NewScreen).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
