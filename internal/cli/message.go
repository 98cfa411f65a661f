// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"

	"gitlab.com/fisherprime/tally"
	"gitlab.com/fisherprime/tally/internal/config"
	"gitlab.com/fisherprime/tally/lexer"
)

type translation struct {
	err    error
	ru, en string
}

// Ordered most to least specific; ErrDivisionByZero wraps ErrArithmeticOverflow.
var translations = []translation{
	{tally.ErrInvalidEntryFormat, "В строке должны быть указаны продукт и цена", "A product and a price must be specified"},
	{tally.ErrDivisionByZero, "Деление на ноль", "Division by zero"},
	{tally.ErrArithmeticOverflow, "Переполнение при вычислении цены", "The price does not fit in a 32-bit integer"},
	{tally.ErrUnbalancedParentheses, "Несбалансированные скобки", "Unbalanced parentheses"},
	{tally.ErrMalformedExpression, "Некорректное выражение цены", "Malformed price expression"},
	{tally.ErrInvalidCharacter, "Недопустимый символ в цене", "Invalid character in the price"},
	{tally.ErrPanicked, "Внутренняя ошибка", "Internal error"},
}

// Message renders err for the user in the given locale, falling back to err.Error() for errors
// the tally package does not define.
func Message(err error, locale string) string {
	var charErr *lexer.CharacterError
	if errors.As(err, &charErr) {
		if locale == config.LocaleEN {
			return fmt.Sprintf("Invalid character %q at position %d", charErr.Char, charErr.Pos)
		}
		return fmt.Sprintf("Недопустимый символ %q в позиции %d", charErr.Char, charErr.Pos)
	}

	for _, t := range translations {
		if !errors.Is(err, t.err) {
			continue
		}
		if locale == config.LocaleEN {
			return t.en
		}
		return t.ru
	}

	return err.Error()
}
