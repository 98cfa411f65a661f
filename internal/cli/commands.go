// SPDX-License-Identifier: MIT
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"gitlab.com/fisherprime/tally"
)

type (
	// Eval evaluates bare price expressions.
	Eval struct {
		Exprs []string `arg:"" help:"Price expressions, e.g. \"(10+10)*3\"." name:"expr"`
	}

	// Entry parses free-text accounting lines into timestamped entries.
	Entry struct {
		Lines []string `arg:"" help:"Accounting lines, e.g. \"tea 75+25\"." name:"line"`
		JSON  bool     `help:"Print entries as JSON."`
	}

	// Batch parses every line of a file.
	Batch struct {
		Source string `default:"-" help:"Source input file or '-' for stdin." short:"f"`
		JSON   bool   `help:"Print entries as JSON."`
	}
)

// Run executes the eval command.
func (e *Eval) Run(s *session) error {
	failed := 0
	for _, expr := range e.Exprs {
		value, err := tally.Evaluate(expr)
		if err != nil {
			s.fail(expr, err)
			failed++
			continue
		}

		fmt.Fprintln(s.streams.Out, value)
	}

	return result(failed)
}

// Run executes the entry command.
func (e *Entry) Run(s *session) error {
	failed := 0
	for _, line := range e.Lines {
		p, err := tally.ParseProduct(line)
		if err != nil {
			s.fail(line, err)
			failed++
			continue
		}

		if err = printEntry(s.streams.Out, tally.NewEntry(p), e.JSON); err != nil {
			return err
		}
	}

	return result(failed)
}

// Run executes the batch command.
func (b *Batch) Run(ctx context.Context, s *session) error {
	var in io.Reader
	if b.Source == "-" {
		in = s.streams.In
	} else {
		file, err := os.Open(b.Source)
		if err != nil {
			return err
		}
		defer file.Close()

		in = file
	}

	lines, err := readLines(in)
	if err != nil {
		return err
	}

	results, err := tally.ParseBatch(ctx, lines, tally.WithWorkers(s.cfg.Batch.Workers))
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			s.fail(strconv.Itoa(r.Line), r.Err)
			failed++
			continue
		}

		if err = printEntry(s.streams.Out, tally.NewEntry(r.Product), b.JSON); err != nil {
			return err
		}
	}
	s.log.Infof("parsed %d of %d entries", len(results)-failed, len(results))

	return result(failed)
}

func readLines(r io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

func printEntry(w io.Writer, e tally.Entry, asJSON bool) (err error) {
	if asJSON {
		return json.NewEncoder(w).Encode(e)
	}

	_, err = fmt.Fprintln(w, e)

	return
}
