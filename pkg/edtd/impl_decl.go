/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"github.com/voedger/edtd/pkg/parsec"
)

func builtin(kw string, kind TypeKind) parsec.Parser[Type] {
	return parsec.Value(keyword(kw), Type{Kind: kind})
}

// typeTag is a builtin type keyword or a reference to a named type
var typeTag = parsec.Named(GrammarType, parsec.AltComplete(
	builtin(kwInt, TypeKind_Int),
	builtin(kwUint, TypeKind_Uint),
	builtin(kwFloat, TypeKind_Float),
	builtin(kwString, TypeKind_String),
	builtin(kwDate, TypeKind_Date),
	builtin(kwBinary, TypeKind_Binary),
	builtin(kwContainer, TypeKind_Container),
	parsec.Map(ident, func(name Ident) Type { return Type{Kind: TypeKind_Named, Name: name} }),
))

var (
	intProperty  = parsec.AltComplete(asProperty(intRange), asProperty(intDefault))
	uintProperty = parsec.AltComplete(asProperty(uintRange), asProperty(uintDefault))
)

var (
	declName      = parsec.Terminated(ident, parsec.Seq(separator, parsec.Tag(defineOp), separator))
	openBracket   = token("[")
	closeBracket  = token("]")
	optTerminator = parsec.Opt(terminator)
)

// properties folds `prop prop ... ]` into d. The list is not empty
func properties(d TypeDeclaration, prop parsec.Parser[Property]) parsec.Parser[TypeDeclaration] {
	item := parsec.Preceded(separator, prop)
	return func(in parsec.Input) (TypeDeclaration, parsec.Input, error) {
		first, rest, err := item(in)
		if err != nil {
			if _, _, e := closeBracket(in); e == nil {
				return TypeDeclaration{}, in, parsec.Fail(in, ErrNoProperties(d.Name))
			}
			return TypeDeclaration{}, in, err
		}
		tail := parsec.Fold(item, func() TypeDeclaration { return d.with(first) }, TypeDeclaration.with)
		return parsec.Terminated(tail, closeBracket)(rest)
	}
}

// typeDeclaration is `name := type [ '[' property+ ']' ] [;]`.
// Only int and uint take bracketed properties, any other type gives an empty Int record
func typeDeclaration(in parsec.Input) (TypeDeclaration, parsec.Input, error) {
	name, rest, err := declName(in)
	if err != nil {
		return TypeDeclaration{}, in, err
	}
	t, rest, err := typeTag(rest)
	if err != nil {
		return TypeDeclaration{}, in, err
	}

	d := TypeDeclaration{Name: name, Type: t, Kind: TypeKind_Int}
	var prop parsec.Parser[Property]
	switch t.Kind {
	case TypeKind_Int:
		prop = intProperty
	case TypeKind_Uint:
		d.Kind = TypeKind_Uint
		prop = uintProperty
	}

	if prop != nil {
		if _, afterOpen, e := openBracket(rest); e == nil {
			// committed: a malformed list fails the declaration
			if d, rest, err = properties(d, prop)(afterOpen); err != nil {
				return TypeDeclaration{}, in, err
			}
		}
	}

	_, rest, _ = optTerminator(rest)
	return d, rest, nil
}
