// © 2026 Clove Language Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package reader implements the form grammar of the Clove reader syntax:
// a recursive-descent, backtracking parse over the lexer's positioned
// token stream, producing a located syntax tree.
package reader

import (
	"strings"

	"gopkg.clovelang.org/reader.go/internal/combinator"
	"gopkg.clovelang.org/reader.go/internal/location"
	"gopkg.clovelang.org/reader.go/internal/optional"
	"gopkg.clovelang.org/reader.go/internal/token"
)

// Tokens is the grammar's input: an immutable slice the productions only
// ever take suffixes of, so failed alternatives leave no trace.
type Tokens = token.Stream

// located wraps a production so its result carries the source range of
// exactly the tokens it consumed: start of the first consumed token
// through end of the last consumed token. Sibling ranges never overlap
// and child ranges always nest inside their parent's.
func located(p combinator.Parser[location.Located[token.Token], Form]) combinator.Parser[location.Located[token.Token], location.Located[Form]] {
	return func(toks Tokens) (Tokens, location.Located[Form], error) {
		var zero location.Located[Form]
		if len(toks) == 0 {
			return nil, zero, combinator.NewError(0, combinator.KindEndOfInput{})
		}
		rest, out, err := p(toks)
		if err != nil {
			return nil, zero, err
		}
		r := location.Range{Start: toks[0].Range.Start, End: toks[0].Range.Start}
		if consumed := len(toks) - len(rest); consumed > 0 {
			r.End = toks[consumed-1].Range.End
		}
		return rest, location.At(out, r), nil
	}
}

// splitName splits identifier text on its single namespace separator. The
// lexer guarantees at most one `/`; a lone `/` is the division symbol,
// not a separator.
func splitName(text string) (optional.Optional[string], string) {
	if i := strings.IndexByte(text, '/'); i >= 0 && text != "/" {
		return optional.Some(text[:i]), text[i+1:]
	}
	return optional.None[string](), text
}

// symbolPayload parses one symbol token into its bare {ns, name} pair.
// The deref/unquote productions build directly on this instead of
// unwrapping a full Symbol node.
func symbolPayload(toks Tokens) (Tokens, Symbol, error) {
	return combinator.Map(token.SymbolText, func(text string) Symbol {
		ns, name := splitName(text)
		return Symbol{NS: ns, Name: name}
	})(toks)
}

func parseSymbol(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(symbolPayload, func(sym Symbol) Form {
		return sym
	}))(toks)
}

func parseKeyword(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(token.KeywordText, func(text string) Form {
		if strings.HasPrefix(text, "::") {
			text = text[2:]
		} else {
			text = text[1:]
		}
		ns, name := splitName(text)
		return Keyword{NS: ns, Name: name}
	}))(toks)
}

func parseCharLiteral(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(token.CharValue, func(c rune) Form {
		return CharLiteral{Value: c}
	}))(toks)
}

func parseStringLiteral(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(token.StringText, func(s string) Form {
		return StringLiteral{Value: s}
	}))(toks)
}

func parseIntegerLiteral(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(token.IntegerValue, func(i int64) Form {
		return IntegerLiteral{Value: i}
	}))(toks)
}

func parseFloatLiteral(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(token.FloatValue, func(f float64) Form {
		return FloatLiteral{Value: f}
	}))(toks)
}

func parseList(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(
		combinator.Delimited(token.ParenOpen, combinator.Many0(ParseForm), token.ParenClose),
		func(forms []location.Located[Form]) Form {
			return List{Forms: forms}
		},
	))(toks)
}

func parseVector(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(
		combinator.Delimited(token.BracketOpen, combinator.Many0(ParseForm), token.BracketClose),
		func(forms []location.Located[Form]) Form {
			return Vector{Forms: forms}
		},
	))(toks)
}

func parseMap(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.MapRes(
		combinator.Delimited(token.BraceOpen, combinator.Many0(ParseForm), token.BraceClose),
		func(kvs []location.Located[Form]) (Form, error) {
			if len(kvs)%2 != 0 {
				return nil, combinator.NewError(len(kvs),
					combinator.KindOther{Message: "map literal must have an even number of forms"})
			}
			return Map{Entries: kvs}, nil
		},
	))(toks)
}

func parseSet(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(
		combinator.Seq2(token.Sharp,
			combinator.Delimited(token.BraceOpen, combinator.Many0(ParseForm), token.BraceClose)),
		func(p combinator.Pair[location.Located[token.Token], []location.Located[Form]]) Form {
			return Set{Forms: p.Second}
		},
	))(toks)
}

func parseRegexLiteral(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(
		combinator.Preceded(token.Sharp, token.StringText),
		func(s string) Form {
			return RegexLiteral{Value: s}
		},
	))(toks)
}

// parseAnonymousFn accepts zero or more parenthesized bodies after the
// `#`, not exactly one. Set and regex literals sit earlier in the
// alternation, so they claim their sharp prefixes first.
func parseAnonymousFn(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(
		combinator.Preceded(token.Sharp, combinator.Many0(parseList)),
		func(bodies []location.Located[Form]) Form {
			return AnonymousFn{Bodies: bodies}
		},
	))(toks)
}

func parseMetadata(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(
		combinator.Preceded(token.Hat, ParseForm),
		func(form location.Located[Form]) Form {
			return Metadata{Form: &form}
		},
	))(toks)
}

func parseAnd(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(token.Ampersand, func(_ location.Located[token.Token]) Form {
		return And{}
	}))(toks)
}

func parseAtomDeref(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(
		combinator.Preceded(token.At, symbolPayload),
		func(sym Symbol) Form {
			return AtomDeref{Sym: sym}
		},
	))(toks)
}

func parseQuoted(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(
		combinator.Preceded(token.Quote, ParseForm),
		func(form location.Located[Form]) Form {
			return Quoted{Form: &form}
		},
	))(toks)
}

func parseUnquoted(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(
		combinator.Preceded(token.Tilde, symbolPayload),
		func(sym Symbol) Form {
			return Unquoted{Sym: sym}
		},
	))(toks)
}

func parseUnquotedSplicing(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(
		combinator.Preceded(token.TildeAt, symbolPayload),
		func(sym Symbol) Form {
			return UnquotedSplicing{Sym: sym}
		},
	))(toks)
}

func parseSyntaxQuoted(toks Tokens) (Tokens, location.Located[Form], error) {
	return located(combinator.Map(
		combinator.Preceded(token.SyntaxQuote, ParseForm),
		func(form location.Located[Form]) Form {
			return SyntaxQuoted{Form: &form}
		},
	))(toks)
}

// ParseForm parses a single form. The alternation order is a grammar
// commitment: set and regex must come before anonymous-fn because all
// three start with a sharp token.
func ParseForm(toks Tokens) (Tokens, location.Located[Form], error) {
	return combinator.Alt(
		parseSymbol,
		parseKeyword,
		parseCharLiteral,
		parseStringLiteral,
		parseIntegerLiteral,
		parseFloatLiteral,
		parseList,
		parseVector,
		parseMap,
		parseSet,
		parseRegexLiteral,
		parseAnonymousFn,
		parseMetadata,
		parseAnd,
		parseAtomDeref,
		parseQuoted,
		parseUnquoted,
		parseUnquotedSplicing,
		parseSyntaxQuoted,
	)(toks)
}

// ParseRoot parses every top-level form until the stream is exhausted.
// Each comment-out marker discards the one form that follows it; trailing
// markers with nothing left to discard are tolerated. Root itself is the
// only unlocated node.
func ParseRoot(toks Tokens) (Tokens, Root, error) {
	rest := toks
	var forms []location.Located[Form]
	for len(rest) > 0 {
		var count int
		rest, count, _ = combinator.Many0Count(token.CommentOut)(rest)
		for i := 0; i < count && len(rest) > 0; i++ {
			next, _, err := ParseForm(rest)
			if err != nil {
				return nil, Root{}, err
			}
			rest = next
		}
		if len(rest) == 0 {
			break
		}
		next, form, err := ParseForm(rest)
		if err != nil {
			return nil, Root{}, err
		}
		rest = next
		forms = append(forms, form)
	}
	return rest, Root{Forms: forms}, nil
}
