// © 2026 Clove Language Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package combinator provides generic backtracking parser combinators over
// token slices. A parser consumes a prefix of its input and returns the
// unconsumed remainder together with an output; failed parsers consume
// nothing observable to the caller, so alternation can retry freely
// against the same starting position.
package combinator

// Parser is the capability every combinator composes: given a token slice,
// either produce the remaining slice and an output, or fail with an *Error.
type Parser[T any, O any] func(toks []T) ([]T, O, error)

// Alt tries each alternative, in order, against the same starting
// position and returns the first success. Order is a semantic commitment:
// earlier alternatives win on prefix-compatible inputs. When every
// alternative fails, the resulting error aggregates all branch kinds and
// reports the consumed count of the branch that progressed furthest.
func Alt[T any, O any](parsers ...Parser[T, O]) Parser[T, O] {
	return func(toks []T) ([]T, O, error) {
		merged := &Error{}
		for _, p := range parsers {
			rest, out, err := p(toks)
			if err == nil {
				return rest, out, nil
			}
			pe := coerce(err)
			merged.Kinds = append(merged.Kinds, pe.Kinds...)
			if pe.Consumed > merged.Consumed {
				merged.Consumed = pe.Consumed
			}
		}
		var zero O
		return nil, zero, merged
	}
}

// Many0 repeats p until it fails, collecting outputs. Zero repetitions is
// a success with a nil slice; Many0 itself never fails.
func Many0[T any, O any](p Parser[T, O]) Parser[T, []O] {
	return func(toks []T) ([]T, []O, error) {
		var outs []O
		rest := toks
		for len(rest) > 0 {
			next, out, err := p(rest)
			if err != nil {
				break
			}
			if len(next) == len(rest) {
				// p matched without consuming; repeating it would never
				// terminate.
				break
			}
			outs = append(outs, out)
			rest = next
		}
		return rest, outs, nil
	}
}

// Many0Count is Many0 with the outputs discarded, returning only the
// repetition count.
func Many0Count[T any, O any](p Parser[T, O]) Parser[T, int] {
	return func(toks []T) ([]T, int, error) {
		rest, outs, _ := Many0(p)(toks)
		return rest, len(outs), nil
	}
}

// Pair is the output of Seq2.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Seq2 sequences two parsers, failing fast on the first failure and
// keeping both outputs.
func Seq2[T any, A any, B any](first Parser[T, A], second Parser[T, B]) Parser[T, Pair[A, B]] {
	return func(toks []T) ([]T, Pair[A, B], error) {
		var zero Pair[A, B]
		rest, a, err := first(toks)
		if err != nil {
			return nil, zero, err
		}
		consumed := len(toks) - len(rest)
		rest, b, err := second(rest)
		if err != nil {
			return nil, zero, advance(err, consumed)
		}
		return rest, Pair[A, B]{First: a, Second: b}, nil
	}
}

// Preceded runs first then second, discarding first's output.
func Preceded[T any, A any, B any](first Parser[T, A], second Parser[T, B]) Parser[T, B] {
	return func(toks []T) ([]T, B, error) {
		var zero B
		rest, _, err := first(toks)
		if err != nil {
			return nil, zero, err
		}
		consumed := len(toks) - len(rest)
		rest, out, err := second(rest)
		if err != nil {
			return nil, zero, advance(err, consumed)
		}
		return rest, out, nil
	}
}

// Delimited runs open, body, and close in sequence and returns only
// body's output.
func Delimited[T any, A any, B any, C any](open Parser[T, A], body Parser[T, B], close Parser[T, C]) Parser[T, B] {
	return func(toks []T) ([]T, B, error) {
		var zero B
		rest, _, err := open(toks)
		if err != nil {
			return nil, zero, err
		}
		consumed := len(toks) - len(rest)
		rest, out, err := body(rest)
		if err != nil {
			return nil, zero, advance(err, consumed)
		}
		consumed = len(toks) - len(rest)
		rest, _, err = close(rest)
		if err != nil {
			return nil, zero, advance(err, consumed)
		}
		return rest, out, nil
	}
}

// Map transforms a successful output through f; failures pass through
// unchanged.
func Map[T any, A any, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return func(toks []T) ([]T, B, error) {
		rest, out, err := p(toks)
		if err != nil {
			var zero B
			return nil, zero, err
		}
		return rest, f(out), nil
	}
}

// MapRes is Map with a fallible transform: f may reject an output that
// parsed structurally but violates a shape constraint. An *Error returned
// by f is propagated as-is so f can set its own consumed count; any other
// error is wrapped with the count of tokens p consumed.
func MapRes[T any, A any, B any](p Parser[T, A], f func(A) (B, error)) Parser[T, B] {
	return func(toks []T) ([]T, B, error) {
		var zero B
		rest, out, err := p(toks)
		if err != nil {
			return nil, zero, err
		}
		mapped, err := f(out)
		if err != nil {
			if pe, ok := err.(*Error); ok {
				return nil, zero, pe
			}
			return nil, zero, &Error{
				Kinds:    []Kind{KindOther{Message: err.Error()}},
				Consumed: len(toks) - len(rest),
			}
		}
		return rest, mapped, nil
	}
}
