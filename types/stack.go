// SPDX-License-Identifier: MIT
package types

type (
	// Stack is a LIFO backed by a slice.
	//
	// The zero value is an empty Stack ready for use.
	Stack[T any] struct {
		items []T
	}
)

// NewStack instantiates a Stack with some initial capacity.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push a value onto the Stack.
func (s *Stack[T]) Push(value T) { s.items = append(s.items, value) }

// Pop the top value off the Stack.
//
// ok is false for an empty Stack.
func (s *Stack[T]) Pop() (value T, ok bool) {
	last := len(s.items) - 1
	if last < 0 {
		return
	}

	value, ok = s.items[last], true
	s.items = s.items[:last]

	return
}

// Peek at the top value without removing it.
func (s *Stack[T]) Peek() (value T, ok bool) {
	if len(s.items) < 1 {
		return
	}
	value, ok = s.items[len(s.items)-1], true

	return
}

// Len is the number of values on the Stack.
func (s *Stack[T]) Len() int { return len(s.items) }
