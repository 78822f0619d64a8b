/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/voedger/edtd/pkg/parsec"
)

// property returns `kw sep : sep body sep ;`
func property[T any](kw string, body parsec.Parser[T]) parsec.Parser[T] {
	return parsec.Delimited(
		parsec.Seq(keyword(kw), separator, parsec.Tag(":"), separator),
		body,
		terminator,
	)
}

func asProperty[P Property](p parsec.Parser[P]) parsec.Parser[Property] {
	return parsec.Map(p, func(v P) Property { return v })
}

// `parent : name, name ;`
var parent = parsec.Named(GrammarParent, property(kwParent, parsec.SepBy1(ident, listSep)))

var (
	dots      = parsec.Tag(rangeDots)
	levelFrom = parsec.Terminated(uintV, dots)
	levelEnd  = parsec.Opt(uintV)
)

// `level : start.. ;` or `level : start..end ;`
var level = parsec.Named(GrammarLevel, property(kwLevel, parsec.Parser[Level](func(in parsec.Input) (Level, parsec.Input, error) {
	start, rest, err := levelFrom(in)
	if err != nil {
		return Level{}, in, err
	}
	end, rest, _ := levelEnd(rest)
	if end == nil {
		return OpenLevel(start), rest, nil
	}
	return BoundedLevel(start, *end), rest, nil
})))

var cardinality = parsec.Named(GrammarCardinality, property(kwCard, parsec.AltComplete(
	parsec.Value(parsec.Tag("*"), Cardinality_ZeroOrMany),
	parsec.Value(parsec.Tag("?"), Cardinality_ZeroOrOne),
	parsec.Value(parsec.Tag("1"), Cardinality_ExactlyOne),
	parsec.Value(parsec.Tag("+"), Cardinality_OneOrMany),
)))

var ordered = parsec.Named(GrammarOrdered, property(kwOrdered, parsec.AltComplete(
	parsec.Value(parsec.AltComplete(parsec.Tag("yes"), parsec.Tag("1")), Ordered(true)),
	parsec.Value(parsec.AltComplete(parsec.Tag("no"), parsec.Tag("0")), Ordered(false)),
)))

// rangeItem tries, in order: `a..b`, `a..`, `..b` (if withTo) and `a`.
// The first alternative which matches wins
func rangeItem[T any](v parsec.Parser[T], withTo bool) parsec.Parser[RangeItem[T]] {
	from := parsec.Terminated(v, dots)
	bounded := func(in parsec.Input) (RangeItem[T], parsec.Input, error) {
		start, rest, err := from(in)
		if err != nil {
			return RangeItem[T]{}, in, err
		}
		end, rest, err := v(rest)
		if err != nil {
			return RangeItem[T]{}, in, err
		}
		return Bounded(start, end), rest, nil
	}
	alts := []parsec.Parser[RangeItem[T]]{
		bounded,
		parsec.Map(from, From[T]),
	}
	if withTo {
		alts = append(alts, parsec.Map(parsec.Preceded(dots, v), To[T]))
	}
	alts = append(alts, parsec.Map(v, Single[T]))
	return parsec.AltComplete(alts...)
}

func rangeList[T any](item parsec.Parser[T]) parsec.Parser[[]T] {
	return parsec.SepBy1(item, listSep)
}

var (
	intRangeItems  = rangeList(rangeItem(intV, true))
	uintRangeItems = rangeList(rangeItem(uintV, false))
	dateRangeItems = rangeList(rangeItem(dateV, true))
)

// reinterpret converts uint range items into a narrower domain.
// Any bound above max rejects the whole list
func reinterpret[T constraints.Integer](max uint64) func([]UintRangeItem) ([]RangeItem[T], error) {
	return func(items []UintRangeItem) ([]RangeItem[T], error) {
		if i := slices.IndexFunc(items, func(it UintRangeItem) bool { return it.Start > max || it.End > max }); i >= 0 {
			v := items[i].Start
			if v <= max {
				v = items[i].End
			}
			return nil, ErrOutOfDomain(v, max)
		}
		res := make([]RangeItem[T], len(items))
		for i, it := range items {
			res[i] = RangeItem[T]{Kind: it.Kind, Start: T(it.Start), End: T(it.End)}
		}
		return res, nil
	}
}

var intRange = parsec.Named(GrammarIntRange, property(kwRange,
	parsec.Map(intRangeItems, func(items []IntRangeItem) IntRange { return items })))

var uintRange = parsec.Named(GrammarUintRange, property(kwRange,
	parsec.Map(uintRangeItems, func(items []UintRangeItem) UintRange { return items })))

var dateRange = parsec.Named(GrammarDateRange, property(kwRange,
	parsec.Map(dateRangeItems, func(items []DateRangeItem) DateRange { return items })))

var stringRange = parsec.Named(GrammarStringRange, property(kwRange,
	parsec.Map(parsec.TryMap(uintRangeItems, reinterpret[rune](MaxCodePoint)),
		func(items []StringRangeItem) StringRange { return items })))

var binaryRange = parsec.Named(GrammarBinaryRange, property(kwRange,
	parsec.Map(parsec.TryMap(uintRangeItems, reinterpret[byte](MaxByte)),
		func(items []BinaryRangeItem) BinaryRange { return items })))

// `size` shares the grammar of uint ranges
var size = parsec.Named(GrammarSize, property(kwSize,
	parsec.Map(uintRangeItems, func(items []UintRangeItem) Size { return items })))

// `<` or `<=`, the result is true if the bound is inclusive
func comparison(sym string) parsec.Parser[bool] {
	return parsec.Preceded(parsec.Tag(sym), parsec.Map(parsec.Opt(parsec.Tag("=")), func(eq *string) bool { return eq != nil }))
}

var (
	lessThan    = comparison("<")
	greaterThan = comparison(">")
)

// `a<[=]..<[=]b`
func floatBounded(in parsec.Input) (FloatRangeItem, parsec.Input, error) {
	start, rest, err := floatV(in)
	if err != nil {
		return FloatRangeItem{}, in, err
	}
	includeStart, rest, err := lessThan(rest)
	if err != nil {
		return FloatRangeItem{}, in, err
	}
	if _, rest, err = dots(rest); err != nil {
		return FloatRangeItem{}, in, err
	}
	includeEnd, rest, err := lessThan(rest)
	if err != nil {
		return FloatRangeItem{}, in, err
	}
	end, rest, err := floatV(rest)
	if err != nil {
		return FloatRangeItem{}, in, err
	}
	return FloatBounded(start, includeStart, end, includeEnd), rest, nil
}

// `<[=]b`
func floatTo(in parsec.Input) (FloatRangeItem, parsec.Input, error) {
	includeEnd, rest, err := lessThan(in)
	if err != nil {
		return FloatRangeItem{}, in, err
	}
	end, rest, err := floatV(rest)
	if err != nil {
		return FloatRangeItem{}, in, err
	}
	return FloatTo(end, includeEnd), rest, nil
}

// `>[=]a`
func floatFrom(in parsec.Input) (FloatRangeItem, parsec.Input, error) {
	includeStart, rest, err := greaterThan(in)
	if err != nil {
		return FloatRangeItem{}, in, err
	}
	start, rest, err := floatV(rest)
	if err != nil {
		return FloatRangeItem{}, in, err
	}
	return FloatFrom(start, includeStart), rest, nil
}

var floatRange = parsec.Named(GrammarFloatRange, property(kwRange,
	parsec.Map(rangeList(parsec.AltComplete[FloatRangeItem](floatBounded, floatTo, floatFrom)),
		func(items []FloatRangeItem) FloatRange { return items })))

var intDefault = parsec.Named(GrammarIntDefault, property(kwDef,
	parsec.Map(intV, func(v int64) IntDefault { return IntDefault(v) })))

var uintDefault = parsec.Named(GrammarUintDefault, property(kwDef,
	parsec.Map(uintV, func(v uint64) UintDefault { return UintDefault(v) })))

var floatDefault = parsec.Named(GrammarFloatDefault, property(kwDef,
	parsec.Map(floatV, func(v float64) FloatDefault { return FloatDefault(v) })))

var dateDefault = parsec.Named(GrammarDateDefault, property(kwDef,
	parsec.Map(dateV, func(v time.Time) DateDefault { return DateDefault(v) })))

var stringDefault = parsec.Named(GrammarStringDefault, property(kwDef,
	parsec.Map(textV, func(v string) StringDefault { return StringDefault(v) })))

var binaryDefault = parsec.Named(GrammarBinaryDefault, property(kwDef,
	parsec.Map(bytesV, func(v []byte) BinaryDefault { return v })))
