/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"time"

	"github.com/voedger/edtd/pkg/parsec"
)

type statementOf func(name Ident) HeaderStatement

// literal matches `v sep ;` and defers building the statement until the name is known.
// The terminator is part of every alternative so that `1.5;` is not taken for the uint `1`
func literal[T any](v parsec.Parser[T], stmt func(Ident, T) HeaderStatement) parsec.Parser[statementOf] {
	return parsec.Map(parsec.Terminated(v, terminator), func(val T) statementOf {
		return func(name Ident) HeaderStatement { return stmt(name, val) }
	})
}

// Tried in order, so a non-negative integer is always a uint
// and valid UTF-8 byte literals are always strings
var headerLiteral = parsec.AltComplete(
	literal(uintV, func(n Ident, v uint64) HeaderStatement { return UintStatement{Name: n, Value: v} }),
	literal(intV, func(n Ident, v int64) HeaderStatement { return IntStatement{Name: n, Value: v} }),
	literal(floatV, func(n Ident, v float64) HeaderStatement { return FloatStatement{Name: n, Value: v} }),
	literal(compactDate, func(n Ident, v time.Time) HeaderStatement { return DateStatement{Name: n, Value: v} }),
	literal(textV, func(n Ident, v string) HeaderStatement { return StringStatement{Name: n, Value: v} }),
	literal(bytesV, func(n Ident, v []byte) HeaderStatement { return BinaryStatement{Name: n, Value: v} }),
	literal(ident, func(n Ident, v Ident) HeaderStatement { return NamedStatement{Name: n, Value: v} }),
)

// `name := literal ;`
func headerStatement(in parsec.Input) (HeaderStatement, parsec.Input, error) {
	name, rest, err := declName(in)
	if err != nil {
		return nil, in, err
	}
	stmt, rest, err := headerLiteral(rest)
	if err != nil {
		return nil, in, err
	}
	return stmt(name), rest, nil
}

var headerOpen = parsec.Seq(keyword(kwDeclare), separator, keyword(kwHeader), separator, parsec.Tag("{"), separator)

// `declare header { statement+ }`
var headerBlock = parsec.Map(
	parsec.Delimited(headerOpen, parsec.SepBy1(parsec.Parser[HeaderStatement](headerStatement), separator), token("}")),
	func(stmts []HeaderStatement) Header { return stmts },
)
