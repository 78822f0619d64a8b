/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ebml

//go:generate stringer -type=Class -output=class_string.go

// Class of an element ID, defined by the length of its shortest encoding
type Class uint8

const (
	// null - not a valid ID
	Class_null Class = iota

	Class_A // 1 byte
	Class_B // 2 bytes
	Class_C // 3 bytes
	Class_D // 4 bytes

	Class_Count
)

// ID is a validated element ID.
//
// The zero value is not a valid ID
type ID struct {
	class Class
	value uint32
}

type classBounds struct {
	marker uint32
	min    uint32
	max    uint32
}
