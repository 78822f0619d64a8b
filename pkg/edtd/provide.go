/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"fmt"
	"time"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/edtd/pkg/parsec"
)

// parse applies p to the beginning of src.
// On success it returns the value and the unconsumed rest of src, otherwise a *ParseError and src
func parse[T any](grammar string, p parsec.Parser[T], src string) (T, string, error) {
	v, rest, err := parsec.Run(p, src)
	if err != nil {
		pe := newParseError(grammar, src, err)
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("%s: %s failure at %s: %v", grammar, pe.Kind.TrimString(), pe.Pos, err))
		}
		return v, src, pe
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%s: %d of %d byte(s) consumed", grammar, len(src)-len(rest), len(src)))
	}
	return v, rest, nil
}

// ParseComment returns the text of a `//` or `/* */` comment without delimiters
func ParseComment(src string) (string, string, error) {
	return parse(GrammarComment, comment, src)
}

// SkipSeparator skips leading whitespace and comments
func SkipSeparator(src string) string {
	_, rest, _ := parse(GrammarSeparator, separator, src)
	return rest
}

func ParseIdent(src string) (Ident, string, error) {
	return parse(GrammarIdent, ident, src)
}

// ParseElementID parses a hex encoded element ID and checks that it belongs to one of the ID classes
func ParseElementID(src string) (ElementID, string, error) {
	return parse(GrammarElementID, elementID, src)
}

func ParseType(src string) (Type, string, error) {
	return parse(GrammarType, typeTag, src)
}

// ParseParent parses `parent : name, ... ;`
func ParseParent(src string) ([]Ident, string, error) {
	return parse(GrammarParent, parent, src)
}

// ParseLevel parses `level : start..[end] ;`
func ParseLevel(src string) (Level, string, error) {
	return parse(GrammarLevel, level, src)
}

// ParseCardinality parses `card : * | ? | 1 | + ;`
func ParseCardinality(src string) (Cardinality, string, error) {
	return parse(GrammarCardinality, cardinality, src)
}

// ParseOrdered parses `ordered : yes | 1 | no | 0 ;`
func ParseOrdered(src string) (Ordered, string, error) {
	return parse(GrammarOrdered, ordered, src)
}

func ParseInt(src string) (int64, string, error) {
	return parse(GrammarInt, intV, src)
}

func ParseUint(src string) (uint64, string, error) {
	return parse(GrammarUint, uintV, src)
}

func ParseFloat(src string) (float64, string, error) {
	return parse(GrammarFloat, floatV, src)
}

// ParseDate parses `YYYYMMDDThh:mm:ss[.fraction]` or a number of nanoseconds since ReferenceInstant
func ParseDate(src string) (time.Time, string, error) {
	return parse(GrammarDate, dateV, src)
}

// ParseBytes parses `0x` followed by hex digits or a quoted literal
func ParseBytes(src string) ([]byte, string, error) {
	return parse(GrammarBinary, bytesV, src)
}

// ParseText is ParseBytes which also requires valid UTF-8
func ParseText(src string) (string, string, error) {
	return parse(GrammarString, textV, src)
}

func ParseIntDefault(src string) (IntDefault, string, error) {
	return parse(GrammarIntDefault, intDefault, src)
}

func ParseUintDefault(src string) (UintDefault, string, error) {
	return parse(GrammarUintDefault, uintDefault, src)
}

func ParseFloatDefault(src string) (FloatDefault, string, error) {
	return parse(GrammarFloatDefault, floatDefault, src)
}

func ParseDateDefault(src string) (DateDefault, string, error) {
	return parse(GrammarDateDefault, dateDefault, src)
}

func ParseStringDefault(src string) (StringDefault, string, error) {
	return parse(GrammarStringDefault, stringDefault, src)
}

func ParseBinaryDefault(src string) (BinaryDefault, string, error) {
	return parse(GrammarBinaryDefault, binaryDefault, src)
}

func ParseIntRange(src string) (IntRange, string, error) {
	return parse(GrammarIntRange, intRange, src)
}

func ParseUintRange(src string) (UintRange, string, error) {
	return parse(GrammarUintRange, uintRange, src)
}

func ParseFloatRange(src string) (FloatRange, string, error) {
	return parse(GrammarFloatRange, floatRange, src)
}

func ParseDateRange(src string) (DateRange, string, error) {
	return parse(GrammarDateRange, dateRange, src)
}

// ParseStringRange parses a uint range of code points, each bound must not exceed MaxCodePoint
func ParseStringRange(src string) (StringRange, string, error) {
	return parse(GrammarStringRange, stringRange, src)
}

// ParseBinaryRange parses a uint range of bytes, each bound must not exceed MaxByte
func ParseBinaryRange(src string) (BinaryRange, string, error) {
	return parse(GrammarBinaryRange, binaryRange, src)
}

func ParseSize(src string) (Size, string, error) {
	return parse(GrammarSize, size, src)
}

// ParseTypeDeclaration parses `name := type [ '[' property* ']' ] [;]`
func ParseTypeDeclaration(src string) (TypeDeclaration, string, error) {
	return parse(GrammarTypeDeclaration, typeDeclarationP, src)
}

// ParseHeaderStatement parses `name := literal ;`
func ParseHeaderStatement(src string) (HeaderStatement, string, error) {
	return parse(GrammarHeaderStatement, headerStatementP, src)
}

// ParseHeader parses `declare header { statement+ }`
func ParseHeader(src string) (Header, string, error) {
	return parse(GrammarHeader, headerBlockP, src)
}

var (
	typeDeclarationP = parsec.Named(GrammarTypeDeclaration, parsec.Parser[TypeDeclaration](typeDeclaration))
	headerStatementP = parsec.Named(GrammarHeaderStatement, parsec.Parser[HeaderStatement](headerStatement))
	headerBlockP     = parsec.Named(GrammarHeader, headerBlock)
)
