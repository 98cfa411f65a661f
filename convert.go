// SPDX-License-Identifier: MIT
package tally

// REF: https://en.wikipedia.org/wiki/Shunting_yard_algorithm

import (
	"fmt"

	"gitlab.com/fisherprime/tally/lexer"
	"gitlab.com/fisherprime/tally/types"
)

type (
	// InstructionID int holding an identifier for the Instruction kinds.
	InstructionID int

	// Instruction is a step of a postfix (Reverse Polish) program.
	Instruction struct {
		ID  InstructionID
		Op  lexer.Operator // The operation of an InstrOperator
		Val int32          // The value of an InstrNumber
	}
)

const (
	_             InstructionID = iota // Consume 0 to start actual numbering at 1.
	InstrNumber                        // Push a value.
	InstrOperator                      // Pop two values, push the result.
)

// NumberInstruction creates an InstrNumber.
func NumberInstruction(v int32) Instruction { return Instruction{ID: InstrNumber, Val: v} }

// OperatorInstruction creates an InstrOperator.
func OperatorInstruction(op lexer.Operator) Instruction {
	return Instruction{ID: InstrOperator, Op: op}
}

// String is the fmt.Stringer interface implementation for Instruction.
func (i Instruction) String() string {
	switch i.ID {
	case InstrNumber:
		return fmt.Sprint(i.Val)
	case InstrOperator:
		return i.Op.String()
	default:
		return fmt.Sprintf("Instruction(%d)", i.ID)
	}
}

// Convert reorders infix Tokens into postfix Instructions using the shunting-yard algorithm.
//
// An empty Token slice yields an empty program, which Run rejects.
func Convert(tokens []lexer.Token) (output []Instruction, err error) {
	output = make([]Instruction, 0, len(tokens))
	stack := types.NewStack[lexer.Token](len(tokens))

	for _, token := range tokens {
		switch token.ID {
		case lexer.TokenNumber:
			output = append(output, NumberInstruction(token.Val))
		case lexer.TokenOpenBracket:
			stack.Push(token)
		case lexer.TokenCloseBracket:
			if output, err = popGroup(stack, output); err != nil {
				return nil, err
			}
		case lexer.TokenOperator:
			output = popOperators(stack, output, token.Op)
			stack.Push(token)
		default:
			return nil, fmt.Errorf("%w: unexpected token %v", ErrMalformedExpression, token)
		}
	}

	// Drain.
	for {
		top, ok := stack.Pop()
		if !ok {
			break
		}
		if top.ID == lexer.TokenOpenBracket {
			return nil, fmt.Errorf("%w: unclosed '('", ErrUnbalancedParentheses)
		}
		output = appendToken(output, top)
	}

	return
}

// popGroup emits stacked tokens up to & discarding the nearest open bracket.
func popGroup(stack *types.Stack[lexer.Token], output []Instruction) ([]Instruction, error) {
	for {
		top, ok := stack.Pop()
		if !ok {
			return nil, fmt.Errorf("%w: unmatched ')'", ErrUnbalancedParentheses)
		}
		if top.ID == lexer.TokenOpenBracket {
			return output, nil
		}
		output = appendToken(output, top)
	}
}

// popOperators emits stacked operators binding at least as tightly as op, stopping at an open
// bracket.
//
// Popping on equal precedence makes operators left-associative.
func popOperators(stack *types.Stack[lexer.Token], output []Instruction, op lexer.Operator) []Instruction {
	for {
		top, ok := stack.Peek()
		if !ok || top.ID == lexer.TokenOpenBracket {
			return output
		}
		if top.ID == lexer.TokenOperator && top.Op.Precedence() < op.Precedence() {
			return output
		}

		_, _ = stack.Pop()
		output = appendToken(output, top)
	}
}

// appendToken emits a stacked Number or Operator token.
func appendToken(output []Instruction, token lexer.Token) []Instruction {
	if token.ID == lexer.TokenNumber {
		return append(output, NumberInstruction(token.Val))
	}

	return append(output, OperatorInstruction(token.Op))
}
