/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=PropertyKind -output=property-kind_string.go

const (
	PropertyKind_null PropertyKind = iota

	PropertyKind_IntDefault
	PropertyKind_UintDefault
	PropertyKind_FloatDefault
	PropertyKind_DateDefault
	PropertyKind_StringDefault
	PropertyKind_BinaryDefault

	PropertyKind_IntRange
	PropertyKind_UintRange
	PropertyKind_FloatRange
	PropertyKind_DateRange
	PropertyKind_StringRange
	PropertyKind_BinaryRange

	PropertyKind_Size
	PropertyKind_Ordered

	PropertyKind_Count
)

func (k PropertyKind) MarshalText() ([]byte, error) {
	var s string
	if k < PropertyKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders an PropertyKind in human-readable form, without "PropertyKind_" prefix,
// suitable for debugging or error messages
func (k PropertyKind) TrimString() string {
	const pref = "PropertyKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// IsDefault returns is the property a default value
func (k PropertyKind) IsDefault() bool {
	return k >= PropertyKind_IntDefault && k <= PropertyKind_BinaryDefault
}

// IsRange returns is the property a value range
func (k PropertyKind) IsRange() bool {
	return k >= PropertyKind_IntRange && k <= PropertyKind_BinaryRange
}
