// © 2026 Clove Language Authors
//
// SPDX-License-Identifier: Apache-2.0

package combinator

import (
	"fmt"
	"strings"
)

// Kind describes one way a parse failed.
type Kind interface {
	fmt.Stringer
	errorKind()
}

// KindExpected records a classifier mismatch: the token at the failure
// point was not of the expected category.
type KindExpected struct {
	Expected string
}

func (k KindExpected) errorKind() {}
func (k KindExpected) String() string {
	return fmt.Sprintf("expected %s", k.Expected)
}

// KindEndOfInput records that a parser needed at least one more token than
// was available.
type KindEndOfInput struct{}

func (k KindEndOfInput) errorKind() {}
func (k KindEndOfInput) String() string {
	return "unexpected end of input"
}

// KindOther records a structural violation found after successful
// sub-parses.
type KindOther struct {
	Message string
}

func (k KindOther) errorKind() {}
func (k KindOther) String() string {
	return k.Message
}

// Error is the structured failure produced by every parser: an ordered,
// non-empty list of failure kinds plus the number of tokens consumed
// before the failure point. Alt uses Consumed to report the branch that
// progressed furthest; drivers with a known repetition count use it to
// size skips.
type Error struct {
	Kinds    []Kind
	Consumed int
}

func (e *Error) Error() string {
	descs := make([]string, 0, len(e.Kinds))
	for _, k := range e.Kinds {
		descs = append(descs, k.String())
	}
	return fmt.Sprintf("parse failed after %d tokens: %s", e.Consumed, strings.Join(descs, "; "))
}

// NewError builds an *Error from one or more kinds.
func NewError(consumed int, kinds ...Kind) *Error {
	return &Error{Kinds: kinds, Consumed: consumed}
}

// advance adds n already-consumed tokens onto an error produced further
// into a sequence.
func advance(err error, n int) error {
	pe := coerce(err)
	pe.Consumed += n
	return pe
}

func coerce(err error) *Error {
	if pe, ok := err.(*Error); ok {
		return pe
	}
	return &Error{Kinds: []Kind{KindOther{Message: err.Error()}}}
}
