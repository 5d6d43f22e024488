// © 2026 Clove Language Authors
//
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.clovelang.org/reader.go/internal/combinator"
	"gopkg.clovelang.org/reader.go/internal/location"
)

func TestRecognizersConsumeExactlyOneToken(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		parser combinator.Parser[location.Located[Token], location.Located[Token]]
		match  Type
	}{
		{name: "paren open", parser: ParenOpen, match: TypeParenOpen},
		{name: "paren close", parser: ParenClose, match: TypeParenClose},
		{name: "bracket open", parser: BracketOpen, match: TypeBracketOpen},
		{name: "bracket close", parser: BracketClose, match: TypeBracketClose},
		{name: "brace open", parser: BraceOpen, match: TypeBraceOpen},
		{name: "brace close", parser: BraceClose, match: TypeBraceClose},
		{name: "sharp", parser: Sharp, match: TypeSharp},
		{name: "comment out", parser: CommentOut, match: TypeCommentOut},
		{name: "hat", parser: Hat, match: TypeHat},
		{name: "at", parser: At, match: TypeAt},
		{name: "tilde", parser: Tilde, match: TypeTilde},
		{name: "tilde at", parser: TildeAt, match: TypeTildeAt},
		{name: "ampersand", parser: Ampersand, match: TypeAmpersand},
		{name: "quote", parser: Quote, match: TypeQuote},
		{name: "syntax quote", parser: SyntaxQuote, match: TypeSyntaxQuote},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			match := New(testCase.match, location.Range{Start: 0, End: 1})
			trailing := New(TypeSymbol, location.Range{Start: 2, End: 3})

			rest, out, err := testCase.parser(Stream{match, trailing})
			require.NoError(t, err)
			require.Equal(t, match, out)
			require.Equal(t, Stream{trailing}, rest)

			// Mismatch consumes nothing.
			wrong := New(TypeNone, location.Range{Start: 0, End: 1})
			_, _, err = testCase.parser(Stream{wrong})
			require.Error(t, err)
			require.Equal(t, 0, err.(*combinator.Error).Consumed)

			// Empty input is a distinct failure.
			_, _, err = testCase.parser(nil)
			require.Error(t, err)
			require.Equal(t, []combinator.Kind{combinator.KindEndOfInput{}}, err.(*combinator.Error).Kinds)
		})
	}
}

func TestExtractors(t *testing.T) {
	t.Parallel()

	sym := location.At(Token{Type: TypeSymbol, Text: "foo/bar"}, location.Range{Start: 0, End: 7})
	rest, text, err := SymbolText(Stream{sym})
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, "foo/bar", text)

	kw := location.At(Token{Type: TypeKeyword, Text: "::k"}, location.Range{Start: 0, End: 3})
	_, text, err = KeywordText(Stream{kw})
	require.NoError(t, err)
	require.Equal(t, "::k", text)

	str := location.At(Token{Type: TypeString, Text: "hi"}, location.Range{Start: 0, End: 4})
	_, text, err = StringText(Stream{str})
	require.NoError(t, err)
	require.Equal(t, "hi", text)

	ch := location.At(Token{Type: TypeChar, Char: '\n'}, location.Range{Start: 0, End: 8})
	_, c, err := CharValue(Stream{ch})
	require.NoError(t, err)
	require.Equal(t, '\n', c)

	i := location.At(Token{Type: TypeInteger, Int: -42}, location.Range{Start: 0, End: 3})
	_, iv, err := IntegerValue(Stream{i})
	require.NoError(t, err)
	require.Equal(t, int64(-42), iv)

	f := location.At(Token{Type: TypeFloat, Float: 1.5}, location.Range{Start: 0, End: 3})
	_, fv, err := FloatValue(Stream{f})
	require.NoError(t, err)
	require.Equal(t, 1.5, fv)

	// An extractor against the wrong category fails without consuming.
	_, _, err = SymbolText(Stream{kw})
	require.Error(t, err)
	require.Equal(t, 0, err.(*combinator.Error).Consumed)
}
