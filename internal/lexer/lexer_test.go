// © 2026 Clove Language Authors
//
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.clovelang.org/reader.go/internal/exc"
	"gopkg.clovelang.org/reader.go/internal/location"
	"gopkg.clovelang.org/reader.go/internal/token"
)

func at(t token.Token, start int, end int) location.Located[token.Token] {
	return location.At(t, location.Range{Start: start, End: end})
}

func punct(tt token.Type, start int, end int) location.Located[token.Token] {
	return token.New(tt, location.Range{Start: start, End: end})
}

func TestLexer(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected token.Stream
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace and commas only",
			input:    " \t,\r\n ,",
			expected: nil,
		},
		{
			name:  "comment out marker binds before sharp",
			input: "#_1 2",
			expected: token.Stream{
				punct(token.TypeCommentOut, 0, 2),
				at(token.Token{Type: token.TypeInteger, Text: "1", Int: 1}, 2, 3),
				at(token.Token{Type: token.TypeInteger, Text: "2", Int: 2}, 4, 5),
			},
		},
		{
			name:  "sharp brace",
			input: "#{1}",
			expected: token.Stream{
				punct(token.TypeSharp, 0, 1),
				punct(token.TypeBraceOpen, 1, 2),
				at(token.Token{Type: token.TypeInteger, Text: "1", Int: 1}, 2, 3),
				punct(token.TypeBraceClose, 3, 4),
			},
		},
		{
			name:  "namespaced symbol",
			input: "foo/bar",
			expected: token.Stream{
				at(token.Token{Type: token.TypeSymbol, Text: "foo/bar"}, 0, 7),
			},
		},
		{
			name:  "division symbol",
			input: "/",
			expected: token.Stream{
				at(token.Token{Type: token.TypeSymbol, Text: "/"}, 0, 1),
			},
		},
		{
			name:  "keywords keep their colon prefix",
			input: ":k ::k :ns/k",
			expected: token.Stream{
				at(token.Token{Type: token.TypeKeyword, Text: ":k"}, 0, 2),
				at(token.Token{Type: token.TypeKeyword, Text: "::k"}, 3, 6),
				at(token.Token{Type: token.TypeKeyword, Text: ":ns/k"}, 7, 12),
			},
		},
		{
			name:  "string contents keep escapes verbatim",
			input: `"hi\n"`,
			expected: token.Stream{
				at(token.Token{Type: token.TypeString, Text: `hi\n`}, 0, 6),
			},
		},
		{
			name:  "char literals",
			input: `\a \newline \u0041`,
			expected: token.Stream{
				at(token.Token{Type: token.TypeChar, Char: 'a'}, 0, 2),
				at(token.Token{Type: token.TypeChar, Char: '\n'}, 3, 11),
				at(token.Token{Type: token.TypeChar, Char: 'A'}, 12, 18),
			},
		},
		{
			name:  "numbers",
			input: "-3 +4.5 1e3",
			expected: token.Stream{
				at(token.Token{Type: token.TypeInteger, Text: "-3", Int: -3}, 0, 2),
				at(token.Token{Type: token.TypeFloat, Text: "+4.5", Float: 4.5}, 3, 7),
				at(token.Token{Type: token.TypeFloat, Text: "1e3", Float: 1000}, 8, 11),
			},
		},
		{
			name:  "quote family",
			input: "'x `y ~z ~@w",
			expected: token.Stream{
				punct(token.TypeQuote, 0, 1),
				at(token.Token{Type: token.TypeSymbol, Text: "x"}, 1, 2),
				punct(token.TypeSyntaxQuote, 3, 4),
				at(token.Token{Type: token.TypeSymbol, Text: "y"}, 4, 5),
				punct(token.TypeTilde, 6, 7),
				at(token.Token{Type: token.TypeSymbol, Text: "z"}, 7, 8),
				punct(token.TypeTildeAt, 9, 11),
				at(token.Token{Type: token.TypeSymbol, Text: "w"}, 11, 12),
			},
		},
		{
			name:  "ampersand alone versus symbol",
			input: "& &rest",
			expected: token.Stream{
				punct(token.TypeAmpersand, 0, 1),
				at(token.Token{Type: token.TypeSymbol, Text: "&rest"}, 2, 7),
			},
		},
		{
			name:  "metadata and deref markers",
			input: "^m @a",
			expected: token.Stream{
				punct(token.TypeHat, 0, 1),
				at(token.Token{Type: token.TypeSymbol, Text: "m"}, 1, 2),
				punct(token.TypeAt, 3, 4),
				at(token.Token{Type: token.TypeSymbol, Text: "a"}, 4, 5),
			},
		},
		{
			name:  "line comments are skipped",
			input: "; nothing\n42",
			expected: token.Stream{
				at(token.Token{Type: token.TypeInteger, Text: "42", Int: 42}, 10, 12),
			},
		},
		{
			name:  "collections",
			input: "(a, b) [c] {d e}",
			expected: token.Stream{
				punct(token.TypeParenOpen, 0, 1),
				at(token.Token{Type: token.TypeSymbol, Text: "a"}, 1, 2),
				at(token.Token{Type: token.TypeSymbol, Text: "b"}, 4, 5),
				punct(token.TypeParenClose, 5, 6),
				punct(token.TypeBracketOpen, 7, 8),
				at(token.Token{Type: token.TypeSymbol, Text: "c"}, 8, 9),
				punct(token.TypeBracketClose, 9, 10),
				punct(token.TypeBraceOpen, 11, 12),
				at(token.Token{Type: token.TypeSymbol, Text: "d"}, 12, 13),
				at(token.Token{Type: token.TypeSymbol, Text: "e"}, 14, 15),
				punct(token.TypeBraceClose, 15, 16),
			},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			reporter := exc.NewReporter(nil)
			toks, err := NewLexer(reporter).Lex("/test", testCase.input)
			require.NoError(t, err)
			require.Empty(t, reporter.Reported())
			require.Equal(t, testCase.expected, toks)
		})
	}
}

func TestLexerErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		code  string
	}{
		{name: "unterminated string", input: `"abc`, code: exc.CodeUnexpectedEOF},
		{name: "double namespace separator", input: "a/b/c", code: exc.CodeInvalidSymbol},
		{name: "double separator in keyword", input: ":a/b/c", code: exc.CodeInvalidSymbol},
		{name: "bare keyword marker", input: ": x", code: exc.CodeInvalidToken},
		{name: "bad char name", input: `\nope`, code: exc.CodeInvalidCharLiteral},
		{name: "malformed float", input: "1.2.3", code: exc.CodeInvalidNumber},
		{name: "dangling backslash", input: `\`, code: exc.CodeUnexpectedEOF},
		{name: "string ends in escape", input: `"ab\`, code: exc.CodeUnexpectedEOF},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			reporter := exc.NewReporter(nil)
			_, err := NewLexer(reporter).Lex("/test", testCase.input)
			require.Error(t, err)
			reported := reporter.Reported()
			require.Len(t, reported, 1)
			require.Equal(t, testCase.code, reported[0].Code())

			// Error ranges always stay within the source buffer, even
			// when the failing lexeme is cut off mid-escape.
			loc := reported[0].Location()
			require.GreaterOrEqual(t, loc.Start, 0)
			require.LessOrEqual(t, loc.End, len(testCase.input))
		})
	}
}
