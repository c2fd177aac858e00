package cliutil

import (
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// ActionFunc is a command action that receives the command's logger.
type ActionFunc func(c *cli.Context, log *zerolog.Logger) error

// ErrorHandler builds the logger for an action and ensures exit with error
// code 1 if the action fails. The error is logged, not printed twice.
func ErrorHandler(action ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		log := CreateLogger(c)
		if err := action(c, log); err != nil {
			log.Error().Err(err).Str("app", c.App.Name).Msg("failed")
			return cli.Exit("", 1)
		}
		return nil
	}
}
