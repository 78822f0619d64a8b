/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"github.com/voedger/edtd/pkg/parsec"
)

// `// text \n`. A line comment at the end of the source may miss the newline
var lineComment = parsec.Preceded(
	parsec.Tag("//"),
	parsec.Alt(
		parsec.Terminated(parsec.TakeUntil("\n"), parsec.Tag("\n")),
		parsec.TakeWhile(isAnyByte),
	),
)

// `/* text */`
var blockComment = parsec.Preceded(
	parsec.Tag("/*"),
	parsec.Terminated(parsec.TakeUntil("*/"), parsec.Tag("*/")),
)

// comment returns the comment text without delimiters
var comment = parsec.Named(GrammarComment, parsec.Alt(lineComment, blockComment))

var whitespace = parsec.TakeWhile(isSpace)

// separator skips whitespace and comments. It never fails
var separator = parsec.Recognize(
	parsec.Preceded(whitespace, parsec.Many0(parsec.Terminated(comment, whitespace))),
)

// ident is the longest run of alphanumerics and underscores which does not start with a digit
var ident = parsec.Named(GrammarIdent, parsec.Map(
	parsec.Recognize(parsec.Preceded(parsec.Satisfy(isIdentStart), parsec.TakeWhile(isIdentChar))),
	func(s string) Ident { return Ident(s) },
))

// keyword matches kw unless it is a prefix of a longer ident
func keyword(kw string) parsec.Parser[string] {
	return parsec.Terminated(parsec.Tag(kw), parsec.Not(parsec.Satisfy(isIdentChar)))
}

// token matches lit preceded by optional separator
func token(lit string) parsec.Parser[string] {
	return parsec.Seq(separator, parsec.Tag(lit))
}

// `sep , sep`
var listSep = parsec.Seq(separator, parsec.Tag(","), separator)

// `sep ;`
var terminator = token(";")
