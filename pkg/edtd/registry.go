/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"golang.org/x/exp/slices"
)

// Grammar is an exported entry point with the value type erased
type Grammar struct {
	Name        string
	Description string
	Parse       func(src string) (any, string, error)
}

func grammar[T any](name, descr string, f func(string) (T, string, error)) Grammar {
	return Grammar{
		Name:        name,
		Description: descr,
		Parse: func(src string) (any, string, error) {
			v, rest, err := f(src)
			if err != nil {
				return nil, rest, err
			}
			return v, rest, nil
		},
	}
}

var grammars = []Grammar{
	grammar(GrammarHeader, "declare header { name := literal; ... }", ParseHeader),
	grammar(GrammarHeaderStatement, "name := literal;", ParseHeaderStatement),
	grammar(GrammarTypeDeclaration, "name := type [ properties ];", ParseTypeDeclaration),
	grammar(GrammarType, "builtin type keyword or type name", ParseType),
	grammar(GrammarParent, "parent: name, ...;", ParseParent),
	grammar(GrammarLevel, "level: start..[end];", ParseLevel),
	grammar(GrammarCardinality, "card: * | ? | 1 | +;", ParseCardinality),
	grammar(GrammarOrdered, "ordered: yes | 1 | no | 0;", ParseOrdered),
	grammar(GrammarSize, "size: uint range list;", ParseSize),
	grammar(GrammarIntRange, "range: int range list;", ParseIntRange),
	grammar(GrammarUintRange, "range: uint range list;", ParseUintRange),
	grammar(GrammarFloatRange, "range: float comparison list;", ParseFloatRange),
	grammar(GrammarDateRange, "range: date range list;", ParseDateRange),
	grammar(GrammarStringRange, "range: code point range list;", ParseStringRange),
	grammar(GrammarBinaryRange, "range: byte range list;", ParseBinaryRange),
	grammar(GrammarIntDefault, "def: int;", ParseIntDefault),
	grammar(GrammarUintDefault, "def: uint;", ParseUintDefault),
	grammar(GrammarFloatDefault, "def: float;", ParseFloatDefault),
	grammar(GrammarDateDefault, "def: date;", ParseDateDefault),
	grammar(GrammarStringDefault, "def: UTF-8 byte literal;", ParseStringDefault),
	grammar(GrammarBinaryDefault, "def: byte literal;", ParseBinaryDefault),
	grammar(GrammarElementID, "hex encoded element ID", ParseElementID),
	grammar(GrammarIdent, "name", ParseIdent),
	grammar(GrammarInt, "signed integer", ParseInt),
	grammar(GrammarUint, "unsigned integer", ParseUint),
	grammar(GrammarFloat, "floating point number", ParseFloat),
	grammar(GrammarDate, "YYYYMMDDThh:mm:ss[.fraction] or nanoseconds since 2001-01-01", ParseDate),
	grammar(GrammarString, "UTF-8 byte literal", ParseText),
	grammar(GrammarBinary, "0x hex digits or quoted literal", ParseBytes),
	grammar(GrammarComment, "// line or /* block */ comment", ParseComment),
	grammar(GrammarSeparator, "whitespace and comments", func(src string) (string, string, error) {
		rest := SkipSeparator(src)
		return src[:len(src)-len(rest)], rest, nil
	}),
}

// Grammars returns all exported grammars, top-level constructs first
func Grammars() []Grammar {
	return slices.Clone(grammars)
}

// GrammarByName returns the grammar with the given name
func GrammarByName(name string) (Grammar, bool) {
	i := slices.IndexFunc(grammars, func(g Grammar) bool { return g.Name == name })
	if i < 0 {
		return Grammar{}, false
	}
	return grammars[i], true
}
