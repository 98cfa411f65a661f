// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strconv"
)

type (
	// TokenID int holding an identifier for the Token kinds.
	TokenID int

	// Operator identifies a binary arithmetic operation.
	Operator int

	// Token holds a lexed unit of a price expression.
	//
	// Val is only meaningful for TokenNumber & Op for TokenOperator.
	Token struct {
		ID  TokenID  // The type of this Token
		Op  Operator // The operation of a TokenOperator
		Val int32    // The value of a TokenNumber
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_                 TokenID = iota // Consume 0 to start actual numbering at 1.
	TokenNumber                      // Unsigned integer literal.
	TokenOperator                    // One of `+`, `-`, `*`, `/`.
	TokenOpenBracket                 // '('.
	TokenCloseBracket                // ')'.
)

// Operators, all left-associative.
const (
	_     Operator = iota
	OpAdd          // '+'
	OpSub          // '-'
	OpMul          // '*'
	OpDiv          // '/'
)

// Operator precedence levels.
const (
	PrecedenceAdditive       = 0
	PrecedenceMultiplicative = 1
)

// NumberToken creates a TokenNumber.
func NumberToken(v int32) Token { return Token{ID: TokenNumber, Val: v} }

// OperatorToken creates a TokenOperator.
func OperatorToken(op Operator) Token { return Token{ID: TokenOperator, Op: op} }

// OpenBracket creates a TokenOpenBracket.
func OpenBracket() Token { return Token{ID: TokenOpenBracket} }

// CloseBracket creates a TokenCloseBracket.
func CloseBracket() Token { return Token{ID: TokenCloseBracket} }

// String is the fmt.Stringer interface implementation for Token.
func (t Token) String() string {
	switch t.ID {
	case TokenNumber:
		return strconv.FormatInt(int64(t.Val), 10)
	case TokenOperator:
		return t.Op.String()
	case TokenOpenBracket:
		return "("
	case TokenCloseBracket:
		return ")"
	default:
		return fmt.Sprintf("Token(%d)", t.ID)
	}
}

// Precedence ranks how tightly the Operator binds; multiplicative over additive.
func (o Operator) Precedence() int {
	if o == OpMul || o == OpDiv {
		return PrecedenceMultiplicative
	}

	return PrecedenceAdditive
}

// String is the fmt.Stringer interface implementation for Operator.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}
