/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=TypeKind -output=type-kind_string.go

const (
	// null - no-value type. Returned when the requested kind does not exist
	TypeKind_null TypeKind = iota

	TypeKind_Int
	TypeKind_Uint
	TypeKind_Float
	TypeKind_String
	TypeKind_Date
	TypeKind_Binary
	TypeKind_Container

	// Reference to a user-declared type
	TypeKind_Named

	TypeKind_Count
)

func (k TypeKind) MarshalText() ([]byte, error) {
	var s string
	if k < TypeKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an TypeKind in human-readable form, without "TypeKind_" prefix,
// suitable for debugging or error messages
func (k TypeKind) TrimString() string {
	const pref = "TypeKind_"
	return strings.TrimPrefix(k.String(), pref)
}
