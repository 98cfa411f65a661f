// SPDX-License-Identifier: MIT

// Package tally turns free-text accounting lines such as "tea 75+25" or "(10+10)*3 rent" into a
// product name & an exact int32 price.
//
// A line passes through four stages, each failing fast with one of the package's sentinel
// errors:
//
//	Segment -> lexer.Tokenize -> Convert -> Run
//
// Evaluation holds no state between calls, all functions are safe for concurrent use.
package tally

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/tally/lexer"
	"gitlab.com/fisherprime/tally/types"
)

// Evaluation errors.
var (
	ErrInvalidEntryFormat    = errors.New("a product and a price must be specified")
	ErrInvalidCharacter      = lexer.ErrInvalidCharacter
	ErrArithmeticOverflow    = types.ErrOverflow
	ErrDivisionByZero        = fmt.Errorf("%w: division by zero", ErrArithmeticOverflow)
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	ErrMalformedExpression   = errors.New("malformed expression")

	ErrPanicked = errors.New("recovery from panic")
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// Evaluate computes the value of a price expression.
//
// Only non-negative integer literals, `+ - * /` & brackets are accepted; `*` & `/` bind tighter
// than `+` & `-`, equal precedence groups left to right.
func Evaluate(expr string) (result int32, err error) {
	tokens, err := lexer.Tokenize(expr, lexer.WithLogger(fLogger))
	if err != nil {
		return
	}

	instructions, err := Convert(tokens)
	if err != nil {
		fLogger.Debugf("convert %q: %s", expr, spew.Sdump(tokens))
		return
	}

	if result, err = Run(instructions); err != nil {
		fLogger.Debugf("run %q: %s", expr, spew.Sdump(instructions))
	}

	return
}
