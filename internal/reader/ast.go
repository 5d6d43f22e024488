// © 2026 Clove Language Authors
//
// SPDX-License-Identifier: Apache-2.0

package reader

import (
	"gopkg.clovelang.org/reader.go/internal/location"
	"gopkg.clovelang.org/reader.go/internal/optional"
)

// Form is implemented by every node of the syntax tree. The tree is built
// bottom-up during reading and is immutable afterwards; every composite
// node owns its children exclusively.
type Form interface {
	form()
}

// Symbol is an identifier, optionally namespaced by a single `/`. Name and
// NS are slices of the original source text.
type Symbol struct {
	NS   optional.Optional[string]
	Name string
}

func (Symbol) form() {}

func (s Symbol) String() string {
	if s.NS.IsPresent() {
		return s.NS.Value() + "/" + s.Name
	}
	return s.Name
}

// Keyword is `:name`, `::name`, or `:ns/name`, with the colon prefix
// already stripped.
type Keyword struct {
	NS   optional.Optional[string]
	Name string
}

func (Keyword) form() {}

func (k Keyword) String() string {
	if k.NS.IsPresent() {
		return ":" + k.NS.Value() + "/" + k.Name
	}
	return ":" + k.Name
}

type CharLiteral struct {
	Value rune
}

type StringLiteral struct {
	Value string
}

type IntegerLiteral struct {
	Value int64
}

type FloatLiteral struct {
	Value float64
}

type RegexLiteral struct {
	Value string
}

func (CharLiteral) form()    {}
func (StringLiteral) form()  {}
func (IntegerLiteral) form() {}
func (FloatLiteral) form()   {}
func (RegexLiteral) form()   {}

// List is `( … )`.
type List struct {
	Forms []location.Located[Form]
}

// Vector is `[ … ]`.
type Vector struct {
	Forms []location.Located[Form]
}

// Map is `{ … }`. Entries is the flat key, value, key, value… sequence and
// always has even length.
type Map struct {
	Entries []location.Located[Form]
}

// Set is `#{ … }`.
type Set struct {
	Forms []location.Located[Form]
}

// AnonymousFn is `#` followed by the parsed list bodies.
type AnonymousFn struct {
	Bodies []location.Located[Form]
}

func (List) form()        {}
func (Vector) form()      {}
func (Map) form()         {}
func (Set) form()         {}
func (AnonymousFn) form() {}

// Metadata is `^form`: an annotation attached to the following form of
// any variant.
type Metadata struct {
	Form *location.Located[Form]
}

// Quoted is `'form`.
type Quoted struct {
	Form *location.Located[Form]
}

// SyntaxQuoted is `` `form ``.
type SyntaxQuoted struct {
	Form *location.Located[Form]
}

func (Metadata) form()     {}
func (Quoted) form()       {}
func (SyntaxQuoted) form() {}

// And is the `&` marker used in parameter lists.
type And struct{}

// AtomDeref is `@sym`.
type AtomDeref struct {
	Sym Symbol
}

// Unquoted is `~sym`.
type Unquoted struct {
	Sym Symbol
}

// UnquotedSplicing is `~@sym`.
type UnquotedSplicing struct {
	Sym Symbol
}

func (And) form()              {}
func (AtomDeref) form()        {}
func (Unquoted) form()         {}
func (UnquotedSplicing) form() {}

// Root holds the whole parsed file. Only Root itself carries no range;
// every child is located.
type Root struct {
	Forms []location.Located[Form]
}

func (Root) form() {}
