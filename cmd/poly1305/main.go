// Command poly1305 generates and checks Poly1305 tags for files.
//
//	poly1305 gen <64-char-hex-key> <file>
//	poly1305 check <64-char-hex-key> <file> <tag>
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/Giulio2002/shake128/internal/cliutil"
	"github.com/Giulio2002/shake128/poly1305"
)

var Version = "DEV"

const (
	accept = "ACCEPT"
	reject = "REJECT"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "poly1305",
		Usage:   "Poly1305 one-time authenticator for files",
		Version: Version,
		Flags:   cliutil.LogFlags("POLY1305"),
		Commands: []*cli.Command{
			{
				Name:      "gen",
				Usage:     "Print the tag of a file",
				ArgsUsage: "<key> <file>",
				Action:    cliutil.ErrorHandler(gen),
			},
			{
				Name:      "check",
				Usage:     "Print ACCEPT if tag authenticates the file, REJECT otherwise",
				ArgsUsage: "<key> <file> <tag>",
				Action:    cliutil.ErrorHandler(check),
			},
		},
	}
}

// load parses the key and reads the file named by the first two arguments.
func load(c *cli.Context, wantArgs int) (key [poly1305.KeySize]byte, msg []byte, err error) {
	if c.NArg() != wantArgs {
		return key, nil, errors.Errorf("incorrect number of arguments: want %d, got %d", wantArgs, c.NArg())
	}
	key, err = poly1305.ParseKey(c.Args().Get(0))
	if err != nil {
		return key, nil, err
	}
	name := c.Args().Get(1)
	msg, err = os.ReadFile(name)
	if err != nil {
		return key, nil, errors.Wrapf(err, "reading %s", name)
	}
	return key, msg, nil
}

func gen(c *cli.Context, log *zerolog.Logger) error {
	key, msg, err := load(c, 2)
	if err != nil {
		return err
	}
	tag, err := poly1305.Sum(key[:], msg)
	if err != nil {
		return err
	}
	log.Debug().Int("messageBytes", len(msg)).Msg("tag computed")
	_, err = fmt.Fprintln(c.App.Writer, hex.EncodeToString(tag[:]))
	return errors.Wrap(err, "writing tag")
}

func check(c *cli.Context, log *zerolog.Logger) error {
	key, msg, err := load(c, 3)
	if err != nil {
		return err
	}

	verdict := reject
	// A malformed tag cannot match any computed tag.
	tag, decodeErr := hex.DecodeString(strings.ToLower(c.Args().Get(2)))
	if decodeErr != nil {
		log.Debug().Err(decodeErr).Msg("expected tag is not valid hex")
	} else {
		ok, err := poly1305.Verify(key[:], msg, tag)
		if err != nil {
			return err
		}
		if ok {
			verdict = accept
		}
	}
	log.Debug().Int("messageBytes", len(msg)).Str("verdict", verdict).Msg("tag checked")

	_, err = fmt.Fprintln(c.App.Writer, verdict)
	return errors.Wrap(err, "writing verdict")
}
