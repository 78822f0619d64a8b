/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"time"

	"github.com/voedger/edtd/pkg/ebml"
)

// Ident is a name. Parsed idents share memory with the source text
type Ident string

// Scalar kind of a declared type
type TypeKind uint8

// Type is a type tag of a declaration.
// Name is set for TypeKind_Named only
type Type struct {
	Kind TypeKind
	Name Ident
}

// Kind of a range item
type RangeKind uint8

// RangeItem is one item of a comma separated range list over an ordered domain
type RangeItem[T any] struct {
	Kind  RangeKind
	Start T
	End   T
}

type (
	IntRangeItem    = RangeItem[int64]
	UintRangeItem   = RangeItem[uint64]
	DateRangeItem   = RangeItem[time.Time]
	StringRangeItem = RangeItem[rune]
	BinaryRangeItem = RangeItem[byte]
)

// FloatRangeItem is a range item with independently inclusive or exclusive bounds
type FloatRangeItem struct {
	Kind         RangeKind
	Start        float64
	IncludeStart bool
	End          float64
	IncludeEnd   bool
}

// Level is an inclusive nesting level range. End is meaningless for open levels
type Level struct {
	Start uint64
	End   uint64
	Open  bool
}

type Cardinality uint8

type PropertyKind uint8

// Property is one of IntDefault, UintDefault, FloatDefault, DateDefault, StringDefault,
// BinaryDefault, IntRange, UintRange, FloatRange, DateRange, StringRange, BinaryRange,
// Size or Ordered
type Property interface {
	PropertyKind() PropertyKind
}

type (
	IntDefault    int64
	UintDefault   uint64
	FloatDefault  float64
	DateDefault   time.Time
	StringDefault string
	BinaryDefault []byte

	IntRange    []IntRangeItem
	UintRange   []UintRangeItem
	FloatRange  []FloatRangeItem
	DateRange   []DateRangeItem
	StringRange []StringRangeItem
	BinaryRange []BinaryRangeItem

	// Size bounds element data length in bytes
	Size []UintRangeItem

	Ordered bool
)

// TypeDeclaration is the product of `name := type [ properties ]`.
//
// Kind is TypeKind_Uint for uint declarations and TypeKind_Int for all others.
// Default is nil, IntDefault or UintDefault; Range is nil, IntRange or UintRange
type TypeDeclaration struct {
	Name    Ident
	Type    Type
	Kind    TypeKind
	Default Property
	Range   Property
}

type StatementKind uint8

// HeaderStatement is one `name := literal;` of a header block
type HeaderStatement interface {
	StatementKind() StatementKind
	StatementName() Ident
}

type (
	UintStatement struct {
		Name  Ident
		Value uint64
	}
	IntStatement struct {
		Name  Ident
		Value int64
	}
	FloatStatement struct {
		Name  Ident
		Value float64
	}
	DateStatement struct {
		Name  Ident
		Value time.Time
	}
	StringStatement struct {
		Name  Ident
		Value string
	}
	BinaryStatement struct {
		Name  Ident
		Value []byte
	}
	// NamedStatement refers to another name
	NamedStatement struct {
		Name  Ident
		Value Ident
	}
)

// Header is a non-empty ordered list of header statements
type Header []HeaderStatement

// ElementID is a validated element ID
type ElementID = ebml.ID
