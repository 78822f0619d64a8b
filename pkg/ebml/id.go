/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ebml

import (
	"fmt"
	"strings"
)

// IDFromEncoded validates an ID given in its encoded form, marker bit included.
// The marker bit position must match the shortest encoding of the value
func IDFromEncoded(encoded uint32) (ID, error) {
	for c := Class_A; c < Class_Count; c++ {
		b := classes[c]
		if encoded&^(b.marker-1) != b.marker {
			continue
		}
		return newID(c, encoded&(b.marker-1))
	}
	return ID{}, ErrInvalidID("%#X has no canonical class", encoded)
}

// NewClassA returns 1-byte ID with the value v
func NewClassA(v uint32) (ID, error) { return newID(Class_A, v) }

// NewClassB returns 2-byte ID with the value v
func NewClassB(v uint32) (ID, error) { return newID(Class_B, v) }

// NewClassC returns 3-byte ID with the value v
func NewClassC(v uint32) (ID, error) { return newID(Class_C, v) }

// NewClassD returns 4-byte ID with the value v
func NewClassD(v uint32) (ID, error) { return newID(Class_D, v) }

func newID(c Class, v uint32) (ID, error) {
	b := classes[c]
	if v < b.min || v > b.max {
		return ID{}, ErrInvalidID("value %#X is out of %v bounds [%#X, %#X]", v, c.TrimString(), b.min, b.max)
	}
	return ID{class: c, value: v}, nil
}

func (id ID) Class() Class { return id.class }

// Value returns the ID without the marker bit
func (id ID) Value() uint32 { return id.value }

// Encoded returns the ID with the marker bit, as it is written in a stream
func (id ID) Encoded() uint32 {
	if id.class == Class_null {
		return 0
	}
	return classes[id.class].marker | id.value
}

// Len returns the encoded length in bytes
func (id ID) Len() int { return int(id.class) }

func (id ID) String() string {
	return fmt.Sprintf("%0*X", id.Len()*2, id.Encoded())
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// Renders a Class without "Class_" prefix
func (c Class) TrimString() string {
	return strings.TrimPrefix(c.String(), "Class_")
}
