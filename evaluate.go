// SPDX-License-Identifier: MIT
package tally

import (
	"errors"
	"fmt"

	"gitlab.com/fisherprime/tally/lexer"
	"gitlab.com/fisherprime/tally/types"
)

// Run executes a postfix program against a value stack.
//
// The program must leave exactly one value on the stack.
func Run(program []Instruction) (result int32, err error) {
	stack := types.NewStack[int32](len(program))

	for index, instr := range program {
		switch instr.ID {
		case InstrNumber:
			stack.Push(instr.Val)
		case InstrOperator:
			right, rOK := stack.Pop()
			left, lOK := stack.Pop()
			if !rOK || !lOK {
				err = fmt.Errorf("%w: missing operand for %s at step %d", ErrMalformedExpression, instr.Op, index)
				return
			}

			var value int32
			if value, err = Apply(instr.Op, left, right); err != nil {
				return
			}
			stack.Push(value)
		default:
			err = fmt.Errorf("%w: unexpected instruction %v", ErrMalformedExpression, instr)
			return
		}
	}

	if stack.Len() != 1 {
		err = fmt.Errorf("%w: %d values left on the stack", ErrMalformedExpression, stack.Len())
		return
	}
	result, _ = stack.Pop()

	return
}

// Apply performs a checked arithmetic operation.
func Apply(op lexer.Operator, left, right int32) (result int32, err error) {
	switch op {
	case lexer.OpAdd:
		result, err = types.CheckedAdd(left, right)
	case lexer.OpSub:
		result, err = types.CheckedSub(left, right)
	case lexer.OpMul:
		result, err = types.CheckedMul(left, right)
	case lexer.OpDiv:
		result, err = types.CheckedDiv(left, right)
	default:
		return 0, fmt.Errorf("%w: unknown operator %v", ErrMalformedExpression, op)
	}

	switch {
	case errors.Is(err, types.ErrDivideByZero):
		err = fmt.Errorf("%w: %d %s %d", ErrDivisionByZero, left, op, right)
	case err != nil:
		err = fmt.Errorf("%w: %d %s %d", err, left, op, right)
	}

	return
}
