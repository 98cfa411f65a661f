// SPDX-License-Identifier: MIT
package lexer

// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/tally/types"
)

type (
	// NextOperation type for the next function to be executed
	NextOperation func() NextOperation

	// Lexer converts a price expression into Tokens.
	//
	// Digits are folded into a single pending number as they are read, every other lexeme
	// finalizes the pending Token before replacing it. A Lexer scans its source once & is not
	// safe for concurrent use.
	Lexer struct {
		Debug  bool
		logger logrus.FieldLogger

		// source is the input source.
		source io.RuneReader
		// pos is the byte offset of the next rune in source.
		pos int

		// pending holds the Token under construction, nil when none is.
		pending *Token
		tokens  []Token

		err error
	}

	// CharacterError reports a rune outside the price expression alphabet.
	CharacterError struct {
		Char rune
		Pos  int // Byte offset of Char in the source.
	}
)

const defBufferSize = 10

// Lexing errors.
var (
	ErrInvalidCharacter = errors.New("invalid character")
)

// Improves on performance compared to ORs.
var operators = [256]Operator{
	'+': OpAdd,
	'-': OpSub,
	'*': OpMul,
	'/': OpDiv,
}

// New creates a new Lexer; the source defaults to an empty input.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		source: strings.NewReader(""),
		tokens: make([]Token, 0, defBufferSize),
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = logrus.New()
	}

	return l
}

// Tokenize lexes a price expression string.
func Tokenize(expr string, opts ...Option) ([]Token, error) {
	l := New(opts...)
	l.source = strings.NewReader(expr)

	return l.Lex()
}

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Lex lexes the input by executing state functions.
//
// The Token slice is empty, not nil, for an empty source.
func (l *Lexer) Lex() (tokens []Token, err error) {
	for stateFunction := l.LexRune; stateFunction != nil; {
		stateFunction = stateFunction()
	}

	if l.err != nil {
		return nil, l.err
	}

	return l.tokens, nil
}

// LexRune dispatches on the next rune of the source.
func (l *Lexer) LexRune() NextOperation {
	r, size, err := l.source.ReadRune()
	if err != nil {
		if err != io.EOF {
			l.err = err
			return nil
		}

		// End of input.
		l.finalize()

		return nil
	}

	pos := l.pos
	l.pos += size

	switch {
	case isDigit(r):
		return l.LexDigit(r, pos)
	case isOperator(r):
		l.replace(OperatorToken(operators[r]))
	case r == '(':
		l.replace(OpenBracket())
	case r == ')':
		l.replace(CloseBracket())
	case r == ' ':
		// Token separator, discard instead of emit.
		l.finalize()
	default:
		l.err = &CharacterError{Char: r, Pos: pos}
		return nil
	}

	return l.LexRune
}

// LexDigit folds a digit into the pending number or starts a new one.
func (l *Lexer) LexDigit(r rune, pos int) NextOperation {
	digit := r - '0'

	if l.pending == nil || l.pending.ID != TokenNumber {
		l.replace(NumberToken(digit))
		return l.LexRune
	}

	value, err := types.CheckedMul(l.pending.Val, 10)
	if err == nil {
		value, err = types.CheckedAdd(value, digit)
	}
	if err != nil {
		l.err = fmt.Errorf("%w: number ending at position %d", err, pos)
		return nil
	}
	l.pending.Val = value

	return l.LexRune
}

// replace finalizes the pending Token & starts the next.
func (l *Lexer) replace(next Token) {
	l.finalize()
	l.pending = &next
}

// finalize emits the pending Token, if any.
func (l *Lexer) finalize() {
	if l.pending == nil {
		return
	}

	if l.Debug {
		l.logger.Debug("lexer emit: ", l.pending.String())
	}
	l.tokens = append(l.tokens, *l.pending)
	l.pending = nil
}

// Error is the error interface implementation for CharacterError.
func (e *CharacterError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrInvalidCharacter, e.Char, e.Pos)
}

// Unwrap allows errors.Is(err, ErrInvalidCharacter).
func (e *CharacterError) Unwrap() error { return ErrInvalidCharacter }

// isDigit return true for an ASCII digit.
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isOperator return true for an arithmetic operator.
func isOperator(r rune) bool { return r < 256 && operators[r] != 0 }
