/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/voedger/edtd/pkg/parsec"
)

func enrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

// ErrNoMatch is returned (wrapped) when the input does not match a grammar
var ErrNoMatch = parsec.ErrNoMatch

// ErrIncomplete is returned (wrapped) when the input ends before a grammar could decide.
// Callers which pass the whole source should treat it as a failure
var ErrIncomplete = parsec.ErrIncomplete

var ErrOddHexDigitsError = errors.New("odd number of hex digits")

func ErrOddHexDigits(n int) error {
	return enrichError(ErrOddHexDigitsError, "%d digit(s)", n)
}

var ErrNotHexError = errors.New("not a hex digit")

func ErrNotHex(b byte, pos int) error {
	return enrichError(ErrNotHexError, "%q at %d", b, pos)
}

var ErrInvalidUTF8Error = errors.New("invalid UTF-8 text")

func ErrInvalidUTF8(s string) error {
	return enrichError(ErrInvalidUTF8Error, "%q", s)
}

var ErrInvalidDateError = errors.New("invalid date")

func ErrInvalidDate(msg string, args ...any) error {
	return enrichError(ErrInvalidDateError, msg, args...)
}

var ErrOutOfDomainError = errors.New("out of domain")

func ErrOutOfDomain(v, max uint64) error {
	return enrichError(ErrOutOfDomainError, "%d exceeds %d", v, max)
}

var ErrNoPropertiesError = errors.New("no properties in brackets")

func ErrNoProperties(name Ident) error {
	return enrichError(ErrNoPropertiesError, "%s", name)
}

// ParseError is returned by the exported parse functions.
// It wraps *parsec.Error, so errors.Is works with ErrNoMatch, ErrIncomplete and conversion causes
type ParseError struct {
	// Grammar is the top-level grammar which was applied
	Grammar string

	// Context is the innermost named sub-grammar which failed
	Context string

	Kind parsec.Kind
	Pos  lexer.Position
	Err  error
}

func (e *ParseError) Error() string {
	if e.Context == e.Grammar {
		return fmt.Sprintf("%s: %v", e.Pos.String(), e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Pos.String(), e.Grammar, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(grammar, src string, err error) *ParseError {
	pe := &ParseError{Grammar: grammar, Kind: parsec.Kind_NoMatch, Err: err}
	var e *parsec.Error
	if errors.As(err, &e) {
		pe.Context = e.Grammar
		pe.Kind = e.Kind
		pe.Pos = position(src, e.Offset)
	} else {
		pe.Pos = position(src, 0)
	}
	return pe
}
