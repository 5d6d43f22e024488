// © 2026 Clove Language Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package lexer turns Clove source text into the positioned token stream
// the reader consumes. Token text fields are slices of the source buffer,
// never copies, so the buffer must outlive the stream.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.clovelang.org/reader.go/internal/exc"
	"gopkg.clovelang.org/reader.go/internal/location"
	"gopkg.clovelang.org/reader.go/internal/optional"
	"gopkg.clovelang.org/reader.go/internal/token"
)

type Lexer struct {
	reporter exc.Reporter
}

func NewLexer(reporter exc.Reporter) *Lexer {
	return &Lexer{reporter: reporter}
}

// Lex scans src completely, returning the full token stream. Lexical
// errors go through the Reporter; a fatal one aborts the scan, non-fatal
// ones skip the offending lexeme and keep scanning.
func (self *Lexer) Lex(uri string, src string) (token.Stream, error) {
	s := &scanner{
		reporter: self.reporter,
		uri:      uri,
		src:      src,
	}
	return s.scan()
}

type scanner struct {
	reporter exc.Reporter
	uri      string
	src      string
	pos      int
}

var charNames = map[string]rune{
	"newline":   '\n',
	"space":     ' ',
	"tab":       '\t',
	"return":    '\r',
	"backspace": '\b',
	"formfeed":  '\f',
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == ','
}

// isDelimiter reports whether b ends a running symbol, keyword, number, or
// char-literal name. Bytes of multi-byte UTF-8 runes are all >= 0x80 and
// therefore never delimiters, which keeps non-ASCII identifiers intact.
func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', ',',
		'(', ')', '[', ']', '{', '}',
		'"', ';', '^', '@', '~', '`', '\\':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (s *scanner) fail(code string, start int, msg string) error {
	return s.reporter.Report(exc.New(exc.Location{
		URI:   s.uri,
		Range: location.Range{Start: start, End: s.pos},
	}, code, msg))
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		b := s.src[s.pos]
		if isSpace(b) {
			s.pos++
			continue
		}
		if b == ';' {
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
			continue
		}
		return
	}
}

func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

// run consumes and returns the maximal region of non-delimiter bytes.
func (s *scanner) run() string {
	start := s.pos
	for s.pos < len(s.src) && !isDelimiter(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *scanner) scan() (token.Stream, error) {
	var toks token.Stream
	punct := func(tt token.Type, width int) {
		start := s.pos
		s.pos += width
		toks = append(toks, location.At(token.Token{Type: tt}, location.Range{Start: start, End: s.pos}))
	}
	for {
		s.skipSpace()
		if s.pos >= len(s.src) {
			return toks, nil
		}
		start := s.pos
		var scanned optional.Optional[token.Token]
		var err error
		switch b := s.src[s.pos]; {
		case b == '(':
			punct(token.TypeParenOpen, 1)
			continue
		case b == ')':
			punct(token.TypeParenClose, 1)
			continue
		case b == '[':
			punct(token.TypeBracketOpen, 1)
			continue
		case b == ']':
			punct(token.TypeBracketClose, 1)
			continue
		case b == '{':
			punct(token.TypeBraceOpen, 1)
			continue
		case b == '}':
			punct(token.TypeBraceClose, 1)
			continue
		case b == '#' && s.peekAt(1) == '_':
			punct(token.TypeCommentOut, 2)
			continue
		case b == '#':
			punct(token.TypeSharp, 1)
			continue
		case b == '~' && s.peekAt(1) == '@':
			punct(token.TypeTildeAt, 2)
			continue
		case b == '~':
			punct(token.TypeTilde, 1)
			continue
		case b == '^':
			punct(token.TypeHat, 1)
			continue
		case b == '@':
			punct(token.TypeAt, 1)
			continue
		case b == '\'':
			punct(token.TypeQuote, 1)
			continue
		case b == '`':
			punct(token.TypeSyntaxQuote, 1)
			continue
		case b == '&' && (s.pos+1 >= len(s.src) || isDelimiter(s.src[s.pos+1])):
			punct(token.TypeAmpersand, 1)
			continue
		case b == '"':
			scanned, err = s.scanString(start)
		case b == '\\':
			scanned, err = s.scanChar(start)
		case b == ':':
			scanned, err = s.scanKeyword(start)
		case isDigit(b) || ((b == '+' || b == '-') && isDigit(s.peekAt(1))):
			scanned, err = s.scanNumber(start)
		default:
			scanned, err = s.scanSymbol(start)
		}
		if err != nil {
			return nil, err
		}
		if scanned.IsPresent() {
			toks = append(toks, location.At(scanned.Value(), location.Range{Start: start, End: s.pos}))
		}
	}
}

// scanString leaves escapes verbatim in the token text: the reader hands
// out slices of the source, it does not build new strings.
func (s *scanner) scanString(start int) (optional.Optional[token.Token], error) {
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			if s.pos > len(s.src) {
				s.pos = len(s.src)
			}
		case '"':
			s.pos++
			return optional.Some(token.Token{Type: token.TypeString, Text: s.src[start+1 : s.pos-1]}), nil
		default:
			s.pos++
		}
	}
	return optional.None[token.Token](), s.fail(exc.CodeUnexpectedEOF, start, "unterminated string literal")
}

func (s *scanner) scanChar(start int) (optional.Optional[token.Token], error) {
	s.pos++
	if s.pos >= len(s.src) {
		return optional.None[token.Token](), s.fail(exc.CodeUnexpectedEOF, start, "EOF while reading char literal")
	}
	name := s.run()
	if name == "" {
		// The char itself is a delimiter, e.g. \( or \,.
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		s.pos += size
		return optional.Some(token.Token{Type: token.TypeChar, Char: r}), nil
	}
	if r, size := utf8.DecodeRuneInString(name); size == len(name) {
		return optional.Some(token.Token{Type: token.TypeChar, Char: r}), nil
	}
	if r, ok := charNames[name]; ok {
		return optional.Some(token.Token{Type: token.TypeChar, Char: r}), nil
	}
	if len(name) == 5 && name[0] == 'u' {
		if v, err := strconv.ParseUint(name[1:], 16, 32); err == nil {
			return optional.Some(token.Token{Type: token.TypeChar, Char: rune(v)}), nil
		}
	}
	return optional.None[token.Token](), s.fail(exc.CodeInvalidCharLiteral, start, fmt.Sprintf("unsupported char literal \\%s", name))
}

func (s *scanner) scanKeyword(start int) (optional.Optional[token.Token], error) {
	s.pos++
	if s.pos < len(s.src) && s.src[s.pos] == ':' {
		s.pos++
	}
	name := s.run()
	if name == "" {
		return optional.None[token.Token](), s.fail(exc.CodeInvalidToken, start, "keyword without a name")
	}
	if strings.Count(name, "/") > 1 {
		return optional.None[token.Token](), s.fail(exc.CodeInvalidSymbol, start, fmt.Sprintf("keyword %q has more than one namespace separator", s.src[start:s.pos]))
	}
	return optional.Some(token.Token{Type: token.TypeKeyword, Text: s.src[start:s.pos]}), nil
}

func (s *scanner) scanNumber(start int) (optional.Optional[token.Token], error) {
	text := s.run()
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return optional.None[token.Token](), s.fail(exc.CodeInvalidNumber, start, fmt.Sprintf("invalid float literal %q", text))
		}
		return optional.Some(token.Token{Type: token.TypeFloat, Text: text, Float: f}), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return optional.None[token.Token](), s.fail(exc.CodeInvalidNumber, start, fmt.Sprintf("invalid integer literal %q", text))
	}
	return optional.Some(token.Token{Type: token.TypeInteger, Text: text, Int: i}), nil
}

func (s *scanner) scanSymbol(start int) (optional.Optional[token.Token], error) {
	text := s.run()
	if text == "" {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		s.pos += size
		return optional.None[token.Token](), s.fail(exc.CodeInvalidToken, start, fmt.Sprintf("unexpected character %q", r))
	}
	if text != "/" && strings.Count(text, "/") > 1 {
		return optional.None[token.Token](), s.fail(exc.CodeInvalidSymbol, start, fmt.Sprintf("symbol %q has more than one namespace separator", text))
	}
	return optional.Some(token.Token{Type: token.TypeSymbol, Text: text}), nil
}
