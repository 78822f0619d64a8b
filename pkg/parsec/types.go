/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parsec

// Input is an immutable cursor over a source text.
// Advancing returns a new Input, the source itself is never copied
type Input struct {
	src string
	off int
}

// Parser is a total function from the remaining input to either
// a value with the remainder or an *Error
type Parser[T any] func(in Input) (T, Input, error)

// Unit is the value of parsers which recognize text without producing anything
type Unit struct{}

//go:generate stringer -type=Kind -output=kind_string.go

// Kind of a parse failure
type Kind uint8

const (
	Kind_null Kind = iota

	// Kind_NoMatch is a local recoverable failure. Ordered choice tries the next alternative
	Kind_NoMatch

	// Kind_Incomplete means the input ended before the grammar could decide
	Kind_Incomplete

	Kind_Count
)

// Error describes why a parser failed at Offset.
// Grammar is the name of the innermost named grammar, Cause is an optional conversion error
type Error struct {
	Kind    Kind
	Offset  int
	Needed  int
	Grammar string
	Cause   error
}
