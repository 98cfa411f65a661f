// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/tally/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.Run(ctx, cli.StdStreams(), os.Exit, os.Args[1:]...)
	if err != nil {
		// Per-input failures have already been reported.
		if !errors.Is(err, cli.ErrFailed) {
			logrus.WithError(err).Error("run failed")
		}
		stop()
		os.Exit(1)
	}
}
