/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=StatementKind -output=statement-kind_string.go

const (
	StatementKind_null StatementKind = iota

	StatementKind_Uint
	StatementKind_Int
	StatementKind_Float
	StatementKind_Date
	StatementKind_String
	StatementKind_Binary
	StatementKind_Named

	StatementKind_Count
)

func (k StatementKind) MarshalText() ([]byte, error) {
	var s string
	if k < StatementKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an StatementKind in human-readable form, without "StatementKind_" prefix,
// suitable for debugging or error messages
func (k StatementKind) TrimString() string {
	const pref = "StatementKind_"
	return strings.TrimPrefix(k.String(), pref)
}
