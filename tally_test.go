// SPDX-License-Identifier: MIT
package tally

import (
	"errors"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    int32
		wantErr error
	}{
		{name: "number", expr: "10", want: 10},
		{name: "add", expr: "10+10", want: 20},
		{name: "mul", expr: "10*10", want: 100},
		{name: "div", expr: "100/10", want: 10},
		{name: "sub", expr: "20-10", want: 10},
		{name: "negative result", expr: "10-30", want: -20},
		{name: "truncating div", expr: "7/2", want: 3},

		{name: "div over add", expr: "10+10/10", want: 11},
		{name: "mul over add", expr: "10+10*3", want: 40},
		{name: "div over sub", expr: "10-10/10", want: 9},
		{name: "mul over sub", expr: "10-10*3", want: -20},
		{name: "spaced precedence", expr: "10+10 *  3", want: 40},

		{name: "brackets over div", expr: "(10+10)/10", want: 2},
		{name: "brackets over mul", expr: "(10+10)*10", want: 200},
		{name: "zero group div", expr: "(10-10 )/ 10", want: 0},
		{name: "zero group mul", expr: "(10-10 )* 10", want: 0},
		{name: "nested", expr: "((2+3)*(4-1))/5", want: 3},
		{name: "redundant brackets", expr: "((7))", want: 7},
		{name: "bracket after operator", expr: "2*(3+4)*5", want: 70},

		{name: "left-assoc sub", expr: "20-10-5", want: 5},
		{name: "left-assoc zero", expr: "10-10-5", want: -5},
		{name: "left-assoc div", expr: "100/10/5", want: 2},
		{name: "mixed mul div", expr: "12/4*3", want: 9},

		{name: "max int32", expr: "2147483647", want: 2147483647},
		{name: "min int32", expr: "0-2147483647-1", want: -2147483648},

		{name: "unclosed", expr: "(10+10", wantErr: ErrUnbalancedParentheses},
		{name: "unopened", expr: "10+10)", wantErr: ErrUnbalancedParentheses},
		{name: "invalid character", expr: "10+x", wantErr: ErrInvalidCharacter},
		{name: "add overflow", expr: "2147483647+1", wantErr: ErrArithmeticOverflow},
		{name: "mul overflow", expr: "65536*65536", wantErr: ErrArithmeticOverflow},
		{name: "sub overflow", expr: "0-2147483647-2", wantErr: ErrArithmeticOverflow},
		{name: "literal overflow", expr: "99999999999", wantErr: ErrArithmeticOverflow},
		{name: "div min by -1", expr: "(0-2147483647-1)/(0-1)", wantErr: ErrArithmeticOverflow},
		{name: "div by zero", expr: "10/0", wantErr: ErrDivisionByZero},
		{name: "div by zero group", expr: "10/(5-5)", wantErr: ErrDivisionByZero},
		{name: "empty", expr: "", wantErr: ErrMalformedExpression},
		{name: "empty brackets", expr: "()", wantErr: ErrMalformedExpression},
		{name: "unary minus", expr: "-5", wantErr: ErrMalformedExpression},
		{name: "dangling operator", expr: "5+", wantErr: ErrMalformedExpression},
		{name: "two numbers", expr: "5 5", wantErr: ErrMalformedExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Evaluate(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluate_divisionByZeroIsOverflow(t *testing.T) {
	_, err := Evaluate("1/0")
	if !errors.Is(err, ErrDivisionByZero) || !errors.Is(err, ErrArithmeticOverflow) {
		t.Errorf("Evaluate(\"1/0\") error = %v, want both ErrDivisionByZero & ErrArithmeticOverflow", err)
	}

	_, err = Evaluate("2147483647*2")
	if errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Evaluate() overflow error = %v, must not match ErrDivisionByZero", err)
	}
}

func TestEvaluate_idempotent(t *testing.T) {
	const expr = "(1200+350)*3-75/5"

	first, err := Evaluate(expr)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	for i := 0; i < 10; i++ {
		if got, err := Evaluate(expr); err != nil || got != first {
			t.Fatalf("Evaluate() run %d = (%v, %v), want (%v, nil)", i, got, err, first)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	src := "(1200+350)*3 - 75/5"

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := Evaluate(src); err != nil {
			b.Fatal(err)
		}
	}
}
