/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=Cardinality -output=cardinality_string.go

const (
	Cardinality_null Cardinality = iota

	Cardinality_ZeroOrOne  // ?
	Cardinality_ExactlyOne // 1
	Cardinality_ZeroOrMany // *
	Cardinality_OneOrMany  // +

	Cardinality_Count
)

func (k Cardinality) MarshalText() ([]byte, error) {
	var s string
	if k < Cardinality_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an Cardinality in human-readable form, without "Cardinality_" prefix,
// suitable for debugging or error messages
func (k Cardinality) TrimString() string {
	const pref = "Cardinality_"
	return strings.TrimPrefix(k.String(), pref)
}

// Symbol returns the notation of the cardinality in card property
func (k Cardinality) Symbol() string {
	switch k {
	case Cardinality_ZeroOrOne:
		return "?"
	case Cardinality_ExactlyOne:
		return "1"
	case Cardinality_ZeroOrMany:
		return "*"
	case Cardinality_OneOrMany:
		return "+"
	}
	return ""
}
