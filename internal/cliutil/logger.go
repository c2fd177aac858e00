// Package cliutil holds the flag, logging and exit-code plumbing shared by the
// commands.
package cliutil

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

const (
	LogLevelFlag  = "loglevel"
	LogFormatFlag = "log-format"

	LogFormatDefault = "default"
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// LogFlags returns the logging flags. envPrefix names the environment
// variables that may set them, e.g. SHAKE128 gives SHAKE128_LOGLEVEL.
func LogFlags(envPrefix string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    LogLevelFlag,
			Value:   "info",
			Usage:   "Application logging level {debug, info, warn, error, fatal}",
			EnvVars: []string{envPrefix + "_LOGLEVEL"},
		},
		&cli.StringFlag{
			Name:    LogFormatFlag,
			Value:   LogFormatDefault,
			Usage:   "Log output format {default, json, console}. default uses console output on a terminal and json otherwise",
			EnvVars: []string{envPrefix + "_LOG_FORMAT"},
		},
	}
}

// CreateLogger builds a logger that writes to the app's error writer so
// normal output on stdout stays clean.
func CreateLogger(c *cli.Context) *zerolog.Logger {
	level, levelErr := zerolog.ParseLevel(c.String(LogLevelFlag))
	if levelErr != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := c.App.ErrWriter
	if out == nil {
		out = os.Stderr
	}

	var writer io.Writer
	switch c.String(LogFormatFlag) {
	case LogFormatJSON:
		writer = out
	case LogFormatConsole:
		writer = consoleWriter(out)
	default:
		if isTerminal(out) {
			writer = consoleWriter(out)
		} else {
			writer = out
		}
	}
	log := zerolog.New(writer).With().Timestamp().Logger().Level(level)
	if levelErr != nil {
		log.Warn().Str(LogLevelFlag, c.String(LogLevelFlag)).Msg("unknown log level, using info")
	}
	return &log
}

func consoleWriter(out io.Writer) io.Writer {
	noColor := !isTerminal(out)
	if f, ok := out.(*os.File); ok {
		out = colorable.NewColorable(f)
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
