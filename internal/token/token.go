// © 2026 Clove Language Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package token defines the classified lexical units produced by the lexer
// and the one-token recognizers the form grammar is built from.
package token

import (
	"fmt"

	"gopkg.clovelang.org/reader.go/internal/location"
)

type Type int

const (
	TypeNone Type = iota
	TypeParenOpen
	TypeParenClose
	TypeBracketOpen
	TypeBracketClose
	TypeBraceOpen
	TypeBraceClose
	TypeSharp
	TypeCommentOut
	TypeHat
	TypeAt
	TypeTilde
	TypeTildeAt
	TypeAmpersand
	TypeQuote
	TypeSyntaxQuote
	TypeSymbol
	TypeKeyword
	TypeString
	TypeChar
	TypeInteger
	TypeFloat
)

var typeNames = map[Type]string{
	TypeNone:         "NONE",
	TypeParenOpen:    "(",
	TypeParenClose:   ")",
	TypeBracketOpen:  "[",
	TypeBracketClose: "]",
	TypeBraceOpen:    "{",
	TypeBraceClose:   "}",
	TypeSharp:        "#",
	TypeCommentOut:   "#_",
	TypeHat:          "^",
	TypeAt:           "@",
	TypeTilde:        "~",
	TypeTildeAt:      "~@",
	TypeAmpersand:    "&",
	TypeQuote:        "'",
	TypeSyntaxQuote:  "`",
	TypeSymbol:       "symbol",
	TypeKeyword:      "keyword",
	TypeString:       "string",
	TypeChar:         "char",
	TypeInteger:      "integer",
	TypeFloat:        "float",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// Token is one classified lexical unit. Text is sliced from the original
// source buffer rather than copied: the source must outlive every token
// and every AST node built from it. Exactly one of the payload fields is
// meaningful, selected by Type.
type Token struct {
	Type  Type
	Text  string
	Char  rune
	Int   int64
	Float float64
}

func (t Token) String() string {
	switch t.Type {
	case TypeSymbol, TypeKeyword:
		return t.Text
	case TypeString:
		return fmt.Sprintf("%q", t.Text)
	case TypeChar:
		return fmt.Sprintf("\\%c", t.Char)
	case TypeInteger:
		return fmt.Sprintf("%d", t.Int)
	case TypeFloat:
		return fmt.Sprintf("%g", t.Float)
	default:
		return t.Type.String()
	}
}

// Stream is the parser input contract: the lexer's positioned tokens,
// non-overlapping and covering the source left to right.
type Stream = []location.Located[Token]

// New builds a positioned token.
func New(tt Type, r location.Range) location.Located[Token] {
	return location.At(Token{Type: tt}, r)
}
