// SPDX-License-Identifier: MIT

// Package cli implements the tally command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/tally"
	"gitlab.com/fisherprime/tally/internal/config"
)

const (
	name        = "tally"
	description = "Evaluate the price of free-text accounting entries."
)

// ErrFailed is returned when at least one input could not be parsed; the reasons have already
// been written to the error stream.
var ErrFailed = errors.New("some inputs failed")

type (
	// CLI is the top-level command-line interface for tally.
	CLI struct {
		Config string   `default:"${config_path}" help:"Configuration file."                  short:"c" type:"path"`
		Log    logFlags `embed:""                 prefix:"log-"`
		Locale string   `help:"Language of error messages: ru or en."`

		Eval  Eval  `cmd:"" help:"Evaluate price expressions."`
		Entry Entry `cmd:"" help:"Parse accounting lines into entries."`
		Batch Batch `cmd:"" help:"Parse every line of a file concurrently."`
	}

	// Streams holds the I/O of a Run.
	Streams struct {
		In       io.Reader
		Out, Err io.Writer
	}

	// session is bound to every command's Run method.
	session struct {
		cfg     *config.Config
		log     logrus.FieldLogger
		streams Streams
	}
)

// StdStreams returns the process' standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Run executes the tally CLI with the given arguments.
//
// The exit function is called by kong on --help & usage errors.
func Run(ctx context.Context, streams Streams, exit func(code int), args ...string) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name(name),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(streams.Out, streams.Err),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Vars{"config_path": config.DefaultPath},
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := cli.config()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, streams.Err)
	if err != nil {
		return err
	}
	tally.SetLogger(logger)

	logger.WithFields(logrus.Fields{
		"command": ktx.Command(),
		"config":  cli.Config,
		"locale":  cfg.Locale,
	}).Debug("configuration loaded")

	return ktx.Run(&session{cfg: cfg, log: logger, streams: streams})
}

// config loads the configuration file, letting command-line flags take precedence.
func (c *CLI) config() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	if c.Log.Level != "" {
		cfg.Log.Level = c.Log.Level
	}
	if c.Log.Format != "" {
		cfg.Log.Format = c.Log.Format
	}
	if c.Locale != "" {
		cfg.Locale = c.Locale
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// fail reports a failed input on the error stream.
func (s *session) fail(prefix string, err error) {
	s.log.WithError(err).WithField("input", prefix).Debug("parse failed")
	fmt.Fprintf(s.streams.Err, "%s: %s\n", prefix, Message(err, s.cfg.Locale))
}

func result(failed int) error {
	if failed > 0 {
		return fmt.Errorf("%w: %d", ErrFailed, failed)
	}

	return nil
}
