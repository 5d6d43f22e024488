// © 2026 Clove Language Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"gopkg.clovelang.org/reader.go/internal/exc"
	"gopkg.clovelang.org/reader.go/internal/lexer"
	"gopkg.clovelang.org/reader.go/internal/reader"
)

type opts struct {
	DumpTokens bool
	DumpTree   bool
}

func main() {
	op := &opts{}
	flags := pflag.NewFlagSet("clove-read", pflag.PanicOnError)
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Output the token stream as it is processed")
	flags.BoolVar(&op.DumpTree, "dump-tree", false, "Output the syntax tree after reading")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	failed := false
	for _, target := range targets {
		reporter := exc.NewReporter(nil)
		lx := lexer.NewLexer(reporter)
		src, err := os.ReadFile(target)
		if err != nil {
			fmt.Fprintln(os.Stderr, exc.Wrap(exc.Location{URI: target}, exc.CodeFileNotFound, err).Error())
			failed = true
			continue
		}
		toks, err := lx.Lex(target, string(src))
		if err != nil {
			for _, e := range reporter.Reported() {
				fmt.Fprintln(os.Stderr, e.Error())
			}
			failed = true
			continue
		}
		if op.DumpTokens {
			for _, t := range toks {
				fmt.Printf("%s %v\n", t.Range, t.Value)
			}
		}
		_, root, err := reader.ParseRoot(toks)
		if err != nil {
			loc := exc.Location{URI: target}
			if len(toks) > 0 {
				loc.Range = toks[len(toks)-1].Range
			}
			fmt.Fprintln(os.Stderr, exc.Wrap(loc, exc.CodeSyntax, err).Error())
			failed = true
			continue
		}
		if op.DumpTree {
			for _, form := range root.Forms {
				fmt.Printf("%s %#v\n", form.Range, form.Value)
			}
		}
	}
	if failed {
		os.Exit(1)
	}
}
