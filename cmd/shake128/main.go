// Command shake128 reads standard input and prints the requested number of
// SHAKE128 output bytes as lowercase hex.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/Giulio2002/shake128"
	"github.com/Giulio2002/shake128/internal/cliutil"
)

var Version = "DEV"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "shake128",
		Usage:     "SHAKE128 extendable-output hash of standard input",
		UsageText: "shake128 [options] <nb_bytes> < input",
		Version:   Version,
		Flags:     cliutil.LogFlags("SHAKE128"),
		Action:    cliutil.ErrorHandler(hash),
	}
}

func hash(c *cli.Context, log *zerolog.Logger) error {
	if c.NArg() != 1 {
		return errors.Errorf("expected exactly one argument <nb_bytes>, got %d", c.NArg())
	}
	n, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return errors.Wrap(err, "number of bytes must be an integer")
	}

	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return errors.Wrap(err, "reading standard input")
	}

	digest, err := shake128.Sum(data, n)
	if err != nil {
		return err
	}
	log.Debug().
		Int("inputBytes", len(data)).
		Int("outputBytes", n).
		Int("blocks", len(data)/shake128.Rate+1).
		Msg("digest computed")

	_, err = fmt.Fprintln(c.App.Writer, hex.EncodeToString(digest))
	return errors.Wrap(err, "writing digest")
}
