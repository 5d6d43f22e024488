// © 2026 Clove Language Authors
//
// SPDX-License-Identifier: Apache-2.0

package location

import "fmt"

// Range is a half-open span of byte offsets [Start, End) into the original
// source buffer. Offsets are opaque to everything downstream of the lexer;
// the only operations the reader performs on them are copying and comparing.
type Range struct {
	Start int
	End   int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Located pairs a value with the source range it was read from. Ranges of
// nested values are always contained within the range of the value they
// were parsed out of.
type Located[T any] struct {
	Range Range
	Value T
}

// At wraps a value with its source range.
func At[T any](value T, r Range) Located[T] {
	return Located[T]{Range: r, Value: value}
}
