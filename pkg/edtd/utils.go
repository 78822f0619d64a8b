/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/exp/constraints"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool { return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' }

func isIdentStart(b byte) bool { return isAlpha(b) || b == '_' }

func isIdentChar(b byte) bool { return isIdentStart(b) || isDigit(b) }

func isHexDigit(b byte) bool {
	return isDigit(b) || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

func isIntChar(b byte) bool { return isDigit(b) || b == '-' }

func isFloatChar(b byte) bool {
	return isDigit(b) || b == '-' || b == '+' || b == '.' || b == 'e'
}

func isAnyByte(byte) bool { return true }

func parseUnsigned[T constraints.Unsigned](s string, base, bitSize int) (T, error) {
	v, err := strconv.ParseUint(s, base, bitSize)
	return T(v), err
}

func parseSigned[T constraints.Signed](s string, bitSize int) (T, error) {
	v, err := strconv.ParseInt(s, 10, bitSize)
	return T(v), err
}

// position converts the byte offset into 1-based line and column
func position(src string, offset int) lexer.Position {
	if offset > len(src) {
		offset = len(src)
	}
	head := src[:offset]
	return lexer.Position{
		Offset: offset,
		Line:   1 + strings.Count(head, "\n"),
		Column: offset - strings.LastIndexByte(head, '\n'),
	}
}
