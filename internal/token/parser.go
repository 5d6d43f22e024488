// © 2026 Clove Language Authors
//
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"gopkg.clovelang.org/reader.go/internal/combinator"
	"gopkg.clovelang.org/reader.go/internal/location"
)

// One recognizer per lexical atom. Each consumes exactly one token on
// success and nothing at all on mismatch, so alternation over them can
// backtrack freely.

func one(tt Type) combinator.Parser[location.Located[Token], location.Located[Token]] {
	return func(toks Stream) (Stream, location.Located[Token], error) {
		var zero location.Located[Token]
		if len(toks) == 0 {
			return nil, zero, combinator.NewError(0, combinator.KindEndOfInput{})
		}
		if toks[0].Value.Type != tt {
			return nil, zero, combinator.NewError(0, combinator.KindExpected{Expected: tt.String()})
		}
		return toks[1:], toks[0], nil
	}
}

func payload[O any](tt Type, extract func(Token) O) combinator.Parser[location.Located[Token], O] {
	return combinator.Map(one(tt), func(lt location.Located[Token]) O {
		return extract(lt.Value)
	})
}

var (
	ParenOpen    = one(TypeParenOpen)
	ParenClose   = one(TypeParenClose)
	BracketOpen  = one(TypeBracketOpen)
	BracketClose = one(TypeBracketClose)
	BraceOpen    = one(TypeBraceOpen)
	BraceClose   = one(TypeBraceClose)
	Sharp        = one(TypeSharp)
	CommentOut   = one(TypeCommentOut)
	Hat          = one(TypeHat)
	At           = one(TypeAt)
	Tilde        = one(TypeTilde)
	TildeAt      = one(TypeTildeAt)
	Ampersand    = one(TypeAmpersand)
	Quote        = one(TypeQuote)
	SyntaxQuote  = one(TypeSyntaxQuote)
)

var (
	SymbolText   = payload(TypeSymbol, func(t Token) string { return t.Text })
	KeywordText  = payload(TypeKeyword, func(t Token) string { return t.Text })
	StringText   = payload(TypeString, func(t Token) string { return t.Text })
	CharValue    = payload(TypeChar, func(t Token) rune { return t.Char })
	IntegerValue = payload(TypeInteger, func(t Token) int64 { return t.Int })
	FloatValue   = payload(TypeFloat, func(t Token) float64 { return t.Float })
)
