/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import "time"

// ReferenceInstant is the zero point of integer date literals, which count nanoseconds from it
var ReferenceInstant = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	kwDeclare   = "declare"
	kwHeader    = "header"
	kwParent    = "parent"
	kwLevel     = "level"
	kwCard      = "card"
	kwOrdered   = "ordered"
	kwDef       = "def"
	kwRange     = "range"
	kwSize      = "size"
	kwInt       = "int"
	kwUint      = "uint"
	kwFloat     = "float"
	kwString    = "string"
	kwDate      = "date"
	kwBinary    = "binary"
	kwContainer = "container"
)

const (
	// MaxCodePoint bounds string range items
	MaxCodePoint = 0x10FFFF

	// MaxByte bounds binary range items
	MaxByte = 0xFF
)

const (
	nanoDigits  = 9
	hexPrefix   = "0x"
	quote       = `"`
	rangeDots   = ".."
	defineOp    = ":="
	dateTimeSep = "T"
)

// Grammar names
const (
	GrammarComment         = "comment"
	GrammarSeparator       = "separator"
	GrammarIdent           = "ident"
	GrammarElementID       = "id"
	GrammarType            = "type"
	GrammarParent          = "parent"
	GrammarLevel           = "level"
	GrammarCardinality     = "card"
	GrammarOrdered         = "ordered"
	GrammarInt             = "int"
	GrammarUint            = "uint"
	GrammarFloat           = "float"
	GrammarDate            = "date"
	GrammarString          = "string"
	GrammarBinary          = "binary"
	GrammarIntDefault      = "int-def"
	GrammarUintDefault     = "uint-def"
	GrammarFloatDefault    = "float-def"
	GrammarDateDefault     = "date-def"
	GrammarStringDefault   = "string-def"
	GrammarBinaryDefault   = "binary-def"
	GrammarIntRange        = "int-range"
	GrammarUintRange       = "uint-range"
	GrammarFloatRange      = "float-range"
	GrammarDateRange       = "date-range"
	GrammarStringRange     = "string-range"
	GrammarBinaryRange     = "binary-range"
	GrammarSize            = "size"
	GrammarTypeDeclaration = "dtype"
	GrammarHeaderStatement = "header-statement"
	GrammarHeader          = "header"
)
