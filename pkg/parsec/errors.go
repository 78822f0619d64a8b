/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parsec

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoMatch = errors.New("no match")

var ErrIncomplete = errors.New("incomplete input")

func (k Kind) sentinel() error {
	switch k {
	case Kind_NoMatch:
		return ErrNoMatch
	case Kind_Incomplete:
		return ErrIncomplete
	}
	return nil
}

// Renders a Kind without "Kind_" prefix
func (k Kind) TrimString() string {
	return strings.TrimPrefix(k.String(), "Kind_")
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Grammar != "" {
		b.WriteString(e.Grammar)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%v at offset %d", e.Kind.sentinel(), e.Offset)
	if e.Needed > 0 {
		fmt.Fprintf(&b, ", %d more byte(s) needed", e.Needed)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Incomplete reports whether err is a parse failure caused by the end of input
func Incomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// Fail returns a non-match at in caused by cause.
// Hand-written parsers use it to reject input which the grammar recognizes only partially
func Fail(in Input, cause error) error {
	return noMatchCause(in, cause)
}

func noMatch(in Input) *Error {
	return &Error{Kind: Kind_NoMatch, Offset: in.off}
}

func noMatchCause(in Input, cause error) *Error {
	return &Error{Kind: Kind_NoMatch, Offset: in.off, Cause: cause}
}

func incomplete(in Input, needed int) *Error {
	return &Error{Kind: Kind_Incomplete, Offset: in.Len() + in.off, Needed: needed}
}

// asError converts any error returned by a parser into *Error.
// Foreign errors are treated as non-matches at in
func asError(in Input, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return noMatchCause(in, err)
}
