/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=RangeKind -output=range-kind_string.go

const (
	RangeKind_null RangeKind = iota

	// Single value, stored in Start
	RangeKind_Single

	// Both bounds, start..end
	RangeKind_Bounded

	// Lower bound only, start..
	RangeKind_From

	// Upper bound only, ..end
	RangeKind_To

	RangeKind_Count
)

func (k RangeKind) MarshalText() ([]byte, error) {
	var s string
	if k < RangeKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an RangeKind in human-readable form, without "RangeKind_" prefix,
// suitable for debugging or error messages
func (k RangeKind) TrimString() string {
	const pref = "RangeKind_"
	return strings.TrimPrefix(k.String(), pref)
}
