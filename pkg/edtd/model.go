/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"fmt"
	"time"
)

func Single[T any](v T) RangeItem[T] {
	return RangeItem[T]{Kind: RangeKind_Single, Start: v}
}

func Bounded[T any](start, end T) RangeItem[T] {
	return RangeItem[T]{Kind: RangeKind_Bounded, Start: start, End: end}
}

func From[T any](start T) RangeItem[T] {
	return RangeItem[T]{Kind: RangeKind_From, Start: start}
}

func To[T any](end T) RangeItem[T] {
	return RangeItem[T]{Kind: RangeKind_To, End: end}
}

// Value returns the value of a single item
func (r RangeItem[T]) Value() T { return r.Start }

func (r RangeItem[T]) String() string {
	switch r.Kind {
	case RangeKind_Single:
		return fmt.Sprint(r.Start)
	case RangeKind_Bounded:
		return fmt.Sprintf("%v..%v", r.Start, r.End)
	case RangeKind_From:
		return fmt.Sprintf("%v..", r.Start)
	case RangeKind_To:
		return fmt.Sprintf("..%v", r.End)
	}
	return r.Kind.String()
}

func FloatBounded(start float64, includeStart bool, end float64, includeEnd bool) FloatRangeItem {
	return FloatRangeItem{Kind: RangeKind_Bounded, Start: start, IncludeStart: includeStart, End: end, IncludeEnd: includeEnd}
}

func FloatFrom(start float64, includeStart bool) FloatRangeItem {
	return FloatRangeItem{Kind: RangeKind_From, Start: start, IncludeStart: includeStart}
}

func FloatTo(end float64, includeEnd bool) FloatRangeItem {
	return FloatRangeItem{Kind: RangeKind_To, End: end, IncludeEnd: includeEnd}
}

func comparator(sym string, inclusive bool) string {
	if inclusive {
		return sym + "="
	}
	return sym
}

func (r FloatRangeItem) String() string {
	switch r.Kind {
	case RangeKind_Bounded:
		return fmt.Sprintf("%v%s..%s%v", r.Start, comparator("<", r.IncludeStart), comparator("<", r.IncludeEnd), r.End)
	case RangeKind_From:
		return fmt.Sprintf("%s%v", comparator(">", r.IncludeStart), r.Start)
	case RangeKind_To:
		return fmt.Sprintf("%s%v", comparator("<", r.IncludeEnd), r.End)
	}
	return r.Kind.String()
}

func OpenLevel(start uint64) Level { return Level{Start: start, Open: true} }

func BoundedLevel(start, end uint64) Level { return Level{Start: start, End: end} }

func (l Level) String() string {
	if l.Open {
		return fmt.Sprintf("%d..", l.Start)
	}
	return fmt.Sprintf("%d..%d", l.Start, l.End)
}

func (t Type) String() string {
	if t.Kind == TypeKind_Named {
		return string(t.Name)
	}
	return t.Kind.TrimString()
}

func (IntDefault) PropertyKind() PropertyKind    { return PropertyKind_IntDefault }
func (UintDefault) PropertyKind() PropertyKind   { return PropertyKind_UintDefault }
func (FloatDefault) PropertyKind() PropertyKind  { return PropertyKind_FloatDefault }
func (DateDefault) PropertyKind() PropertyKind   { return PropertyKind_DateDefault }
func (StringDefault) PropertyKind() PropertyKind { return PropertyKind_StringDefault }
func (BinaryDefault) PropertyKind() PropertyKind { return PropertyKind_BinaryDefault }
func (IntRange) PropertyKind() PropertyKind      { return PropertyKind_IntRange }
func (UintRange) PropertyKind() PropertyKind     { return PropertyKind_UintRange }
func (FloatRange) PropertyKind() PropertyKind    { return PropertyKind_FloatRange }
func (DateRange) PropertyKind() PropertyKind     { return PropertyKind_DateRange }
func (StringRange) PropertyKind() PropertyKind   { return PropertyKind_StringRange }
func (BinaryRange) PropertyKind() PropertyKind   { return PropertyKind_BinaryRange }
func (Size) PropertyKind() PropertyKind          { return PropertyKind_Size }
func (Ordered) PropertyKind() PropertyKind       { return PropertyKind_Ordered }

func (d DateDefault) Time() time.Time { return time.Time(d) }

func (d DateDefault) String() string { return time.Time(d).String() }

// MarshalText renders the default in RFC 3339 with nanoseconds
func (d DateDefault) MarshalText() ([]byte, error) { return time.Time(d).MarshalText() }

// with returns the declaration updated by p.
// Defaults and ranges are independent slots, a later property replaces an earlier one in the same slot
func (d TypeDeclaration) with(p Property) TypeDeclaration {
	switch k := p.PropertyKind(); {
	case k.IsDefault():
		d.Default = p
	case k.IsRange():
		d.Range = p
	}
	return d
}

func (s UintStatement) StatementKind() StatementKind   { return StatementKind_Uint }
func (s IntStatement) StatementKind() StatementKind    { return StatementKind_Int }
func (s FloatStatement) StatementKind() StatementKind  { return StatementKind_Float }
func (s DateStatement) StatementKind() StatementKind   { return StatementKind_Date }
func (s StringStatement) StatementKind() StatementKind { return StatementKind_String }
func (s BinaryStatement) StatementKind() StatementKind { return StatementKind_Binary }
func (s NamedStatement) StatementKind() StatementKind  { return StatementKind_Named }

func (s UintStatement) StatementName() Ident   { return s.Name }
func (s IntStatement) StatementName() Ident    { return s.Name }
func (s FloatStatement) StatementName() Ident  { return s.Name }
func (s DateStatement) StatementName() Ident   { return s.Name }
func (s StringStatement) StatementName() Ident { return s.Name }
func (s BinaryStatement) StatementName() Ident { return s.Name }
func (s NamedStatement) StatementName() Ident  { return s.Name }

// Find returns the statement with the given name
func (h Header) Find(name Ident) (HeaderStatement, bool) {
	for _, s := range h {
		if s.StatementName() == name {
			return s, true
		}
	}
	return nil, false
}
