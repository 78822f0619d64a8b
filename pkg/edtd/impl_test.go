/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"embed"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/edtd/pkg/ebml"
)

//go:embed testdata/*
var testdataFS embed.FS

func fixture(t *testing.T, name string) string {
	t.Helper()
	b, err := testdataFS.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(b)
}

func mustParse[T any](t *testing.T, f func(string) (T, string, error), name string) (T, string) {
	t.Helper()
	v, rest, err := f(fixture(t, name))
	require.NoError(t, err, name)
	return v, rest
}

func mustFail[T any](t *testing.T, f func(string) (T, string, error), name string) error {
	t.Helper()
	src := fixture(t, name)
	_, rest, err := f(src)
	require.Error(t, err, name)
	require.Equal(t, src, rest, "failed parse must not consume anything")
	return err
}

func date(year, month, day, hour, min, sec, nsec int) time.Time {
	return time.Date(year, time.Month(month), day, hour, min, sec, nsec, time.UTC)
}

func id(t *testing.T, newID func(uint32) (ebml.ID, error), v uint32) ElementID {
	res, err := newID(v)
	require.NoError(t, err)
	return res
}

func TestComment(t *testing.T) {
	require := require.New(t)

	v, rest := mustParse(t, ParseComment, "lcomment")
	require.Equal(" comment", v)
	require.Equal("next", rest)

	v, rest = mustParse(t, ParseComment, "bcomment")
	require.Equal(" comment ", v)
	require.Equal("next", rest)

	t.Run("line comment at the end of input", func(t *testing.T) {
		v, rest, err := ParseComment("// last")
		require.NoError(err)
		require.Equal(" last", v)
		require.Empty(rest)
	})

	t.Run("unterminated block comment", func(t *testing.T) {
		_, _, err := ParseComment("/* open")
		require.ErrorIs(err, ErrIncomplete)
	})
}

func TestSeparator(t *testing.T) {
	require := require.New(t)

	require.Equal("test\n", SkipSeparator(fixture(t, "separator0")))
	require.Equal("t\n", SkipSeparator(fixture(t, "separator1")))
	require.Equal("t", SkipSeparator("t"))
	require.Empty(SkipSeparator(""))
}

func TestIdent(t *testing.T) {
	require := require.New(t)

	v, rest := mustParse(t, ParseIdent, "name0")
	require.Equal(Ident("SimpleName"), v)
	require.Empty(rest)

	v, rest = mustParse(t, ParseIdent, "name1")
	require.Equal(Ident("_complexName1"), v)
	require.Equal("\n", rest)

	v, rest = mustParse(t, ParseIdent, "name2")
	require.Equal(Ident("___name___"), v)
	require.Equal(" foo\n", rest)

	mustFail(t, ParseIdent, "name3")
	mustFail(t, ParseIdent, "name4")

	_, _, err := ParseIdent("")
	require.ErrorIs(err, ErrIncomplete)
}

func TestElementID(t *testing.T) {
	require := require.New(t)

	v, rest := mustParse(t, ParseElementID, "id0")
	require.Equal(id(t, ebml.NewClassD, 0x0A45DFA3), v)
	require.Empty(rest)

	v, rest = mustParse(t, ParseElementID, "id1")
	require.Equal(id(t, ebml.NewClassA, 0x01), v)
	require.Equal(" ", rest)

	v, _ = mustParse(t, ParseElementID, "id2")
	require.Equal(id(t, ebml.NewClassA, 0x7E), v)

	v, rest = mustParse(t, ParseElementID, "id4")
	require.Equal(id(t, ebml.NewClassB, 0x7F), v)
	require.Equal("\n", rest)

	err := mustFail(t, ParseElementID, "id3")
	require.ErrorIs(err, ebml.ErrInvalidIDError)
	err = mustFail(t, ParseElementID, "id5")
	require.ErrorIs(err, ebml.ErrInvalidIDError)

	t.Run("wider than 32 bits", func(t *testing.T) {
		_, _, err := ParseElementID("1A45DFA300")
		require.ErrorIs(err, ErrNoMatch)
	})
}

func TestType(t *testing.T) {
	tests := []struct {
		fixture string
		want    Type
	}{
		{"vtype0", Type{Kind: TypeKind_Int}},
		{"vtype1", Type{Kind: TypeKind_Uint}},
		{"vtype2", Type{Kind: TypeKind_Float}},
		{"vtype3", Type{Kind: TypeKind_String}},
		{"vtype4", Type{Kind: TypeKind_Date}},
		{"vtype5", Type{Kind: TypeKind_Binary}},
		{"vtype6", Type{Kind: TypeKind_Named, Name: "foo_bar123"}},
		{"vtype8", Type{Kind: TypeKind_Named, Name: "integer"}},
		{"ctype0", Type{Kind: TypeKind_Container}},
	}
	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			v, _ := mustParse(t, ParseType, tt.fixture)
			require.Equal(t, tt.want, v)
		})
	}

	mustFail(t, ParseType, "vtype7")
}

func TestParent(t *testing.T) {
	require := require.New(t)

	v, rest := mustParse(t, ParseParent, "parent0")
	require.Equal([]Ident{"name1"}, v)
	require.Empty(rest)

	v, _ = mustParse(t, ParseParent, "parent1")
	require.Equal([]Ident{"name1", "name2", "name3", "name4"}, v)

	mustFail(t, ParseParent, "parent2")
}

func TestLevel(t *testing.T) {
	require := require.New(t)

	v, _ := mustParse(t, ParseLevel, "level0")
	require.Equal(OpenLevel(1), v)

	v, _ = mustParse(t, ParseLevel, "level1")
	require.Equal(BoundedLevel(1, 3), v)

	v, _ = mustParse(t, ParseLevel, "level2")
	require.Equal(BoundedLevel(4, 5), v)
	require.Equal("4..5", v.String())

	v, _ = mustParse(t, ParseLevel, "level3")
	require.Equal(OpenLevel(2341), v)
	require.Equal("2341..", v.String())

	mustFail(t, ParseLevel, "level4")
}

func TestCardinality(t *testing.T) {
	require := require.New(t)

	for fixtureName, want := range map[string]Cardinality{
		"cardinality0": Cardinality_ZeroOrMany,
		"cardinality1": Cardinality_ZeroOrOne,
		"cardinality2": Cardinality_ExactlyOne,
		"cardinality3": Cardinality_OneOrMany,
	} {
		v, rest := mustParse(t, ParseCardinality, fixtureName)
		require.Equal(want, v, fixtureName)
		require.Empty(rest)
	}
	mustFail(t, ParseCardinality, "cardinality4")
}

func TestOrdered(t *testing.T) {
	require := require.New(t)

	for fixtureName, want := range map[string]Ordered{
		"ordered0": true,
		"ordered1": true,
		"ordered2": false,
		"ordered3": false,
	} {
		v, _ := mustParse(t, ParseOrdered, fixtureName)
		require.Equal(want, v, fixtureName)
	}
	mustFail(t, ParseOrdered, "ordered4")
}

func TestInt(t *testing.T) {
	require := require.New(t)

	for fixtureName, want := range map[string]int64{
		"int0": 1234,
		"int1": -1234,
		"int2": 0x7FFF_FFFF_FFFF_FFFF,
		"int3": -9223372036854775808,
	} {
		v, _ := mustParse(t, ParseInt, fixtureName)
		require.Equal(want, v, fixtureName)
	}
	mustFail(t, ParseInt, "int4")
	mustFail(t, ParseInt, "int5")

	t.Run("uint rejects sign and overflow", func(t *testing.T) {
		_, _, err := ParseUint("-1")
		require.ErrorIs(err, ErrNoMatch)
		_, _, err = ParseUint("18446744073709551616")
		require.ErrorIs(err, ErrNoMatch)
		v, rest, err := ParseUint("18446744073709551615;")
		require.NoError(err)
		require.Equal(uint64(18446744073709551615), v)
		require.Equal(";", rest)
	})
}

func TestFloat(t *testing.T) {
	require := require.New(t)

	for fixtureName, want := range map[string]float64{
		"float0": 1,
		"float1": -1,
		"float2": 1.25132,
		"float3": -1.25132,
		"float4": 1.32e7,
		"float5": -1.31e7,
		"float6": 1e+3,
		"float7": 1e-3,
		"float8": -1e-3,
	} {
		v, _ := mustParse(t, ParseFloat, fixtureName)
		require.Equal(want, v, fixtureName)
	}
	mustFail(t, ParseFloat, "float9")

	_, _, err := ParseFloat("1e999")
	require.ErrorIs(err, ErrNoMatch)
}

func TestDate(t *testing.T) {
	require := require.New(t)

	v, rest, err := ParseDate("20170101T00:00:00")
	require.NoError(err)
	require.Equal(date(2017, 1, 1, 0, 0, 0, 0), v)
	require.Empty(rest)

	v, _, err = ParseDate("1234")
	require.NoError(err)
	require.Equal(ReferenceInstant.Add(1234*time.Nanosecond), v)

	t.Run("offsets at the int64 limits", func(t *testing.T) {
		v, _, err := ParseDate("9223372036854775807")
		require.NoError(err)
		require.Equal(2293, v.Year())

		v, _, err = ParseDate("-9223372036854775808")
		require.NoError(err)
		require.Equal(1708, v.Year())

		_, _, err = ParseDate("9223372036854775808")
		require.ErrorIs(err, ErrNoMatch)
	})

	t.Run("no date literal", func(t *testing.T) {
		_, rest, err := ParseDate("ab;")
		require.ErrorIs(err, ErrNoMatch)
		require.NotErrorIs(err, ErrIncomplete)
		require.Equal("ab;", rest)
	})

	t.Run("fraction without digits is not consumed", func(t *testing.T) {
		v, rest, err := ParseDate("20170101T00:00:00.;")
		require.NoError(err)
		require.Equal(date(2017, 1, 1, 0, 0, 0, 0), v)
		require.Equal(".;", rest)
	})

	t.Run("leap day", func(t *testing.T) {
		v, _, err := ParseDate("20200229T00:00:00")
		require.NoError(err)
		require.Equal(date(2020, 2, 29, 0, 0, 0, 0), v)

		// falls back to the integer form which stops at T
		_, rest, err := ParseDate("21000229T00:00:00")
		require.NoError(err)
		require.Equal("T00:00:00", rest)

		_, _, err = ParseDateDefault("def: 21000229T00:00:00;")
		require.ErrorIs(err, ErrNoMatch)
	})
}

func TestDateDefault(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		fixture string
		want    time.Time
	}{
		{"date0", date(2017, 1, 1, 0, 0, 0, 0)},
		{"date1", date(1234, 12, 25, 14, 15, 32, 420_000_000)},
		{"date4", date(2001, 1, 1, 0, 0, 0, 1234)},
		{"date5", date(2000, 12, 31, 23, 59, 59, 999_999_999)},
		{"date7", date(2017, 1, 1, 0, 0, 0, 123_456_789)},
	}
	for _, tt := range tests {
		v, rest := mustParse(t, ParseDateDefault, tt.fixture)
		require.Equal(tt.want, v.Time(), tt.fixture)
		require.Empty(rest)
	}

	for _, fixtureName := range []string{"date2", "date3", "date6"} {
		mustFail(t, ParseDateDefault, fixtureName)
	}
}

func TestScalarDefaults(t *testing.T) {
	require := require.New(t)

	i, _ := mustParse(t, ParseIntDefault, "int_def0")
	require.Equal(IntDefault(1234), i)

	u, _ := mustParse(t, ParseUintDefault, "uint_def0")
	require.Equal(UintDefault(1234), u)

	f, _ := mustParse(t, ParseFloatDefault, "float_def0")
	require.Equal(FloatDefault(1), f)

	t.Run("def keyword needs a word boundary", func(t *testing.T) {
		_, _, err := ParseIntDefault("default: 1;")
		require.ErrorIs(err, ErrNoMatch)
	})
}

func TestStringDefault(t *testing.T) {
	require := require.New(t)

	for fixtureName, want := range map[string]StringDefault{
		"string0": "hello",
		"string1": "Test",
		"string2": "Test\x04",
	} {
		v, rest := mustParse(t, ParseStringDefault, fixtureName)
		require.Equal(want, v, fixtureName)
		require.Empty(rest)
	}

	err := mustFail(t, ParseStringDefault, "string3")
	require.ErrorIs(err, ErrInvalidUTF8Error)

	err = mustFail(t, ParseStringDefault, "string4")
	require.ErrorIs(err, ErrNoMatch)
	require.NotErrorIs(err, ErrIncomplete)

	err = mustFail(t, ParseStringDefault, "string5")
	require.ErrorIs(err, ErrNoMatch)
}

func TestBinaryDefault(t *testing.T) {
	require := require.New(t)

	for fixtureName, want := range map[string]BinaryDefault{
		"string0": {0x68, 0x65, 0x6c, 0x6c, 0x6f},
		"string1": {0x54, 0x65, 0x73, 0x74},
		"string2": {0x54, 0x65, 0x73, 0x74, 0x04},
		"string3": {0x54, 0x65, 0x73, 0x74, 0x80, 0x81, 0x82},
	} {
		v, _ := mustParse(t, ParseBinaryDefault, fixtureName)
		require.Equal(want, v, fixtureName)
	}

	mustFail(t, ParseBinaryDefault, "string4")
	err := mustFail(t, ParseBinaryDefault, "string5")
	require.ErrorIs(err, ErrOddHexDigitsError)

	t.Run("non-hex digit", func(t *testing.T) {
		_, rest, err := ParseBinaryDefault("def: 0x68g5;")
		require.ErrorIs(err, ErrNoMatch)
		require.Equal("def: 0x68g5;", rest)

		_, rest, err = ParseStringDefault("def: 0x68g5;")
		require.ErrorIs(err, ErrNoMatch)
		require.Equal("def: 0x68g5;", rest)
	})

	t.Run("hex round trip", func(t *testing.T) {
		src := "def: 0x00FFa1B2c3;"
		v, _, err := ParseBinaryDefault(src)
		require.NoError(err)
		require.Equal("00ffa1b2c3", hex.EncodeToString(v))
	})
}

func TestDecodeHex(t *testing.T) {
	require := require.New(t)

	b, err := DecodeHex("68656c6c6f")
	require.NoError(err)
	require.Equal([]byte{0x68, 0x65, 0x6c, 0x6c, 0x6f}, b)

	b, err = DecodeHex(" 6 8\t65\r\n6C 6c 6F ")
	require.NoError(err)
	require.Equal([]byte("hello"), b)

	b, err = DecodeHex("")
	require.NoError(err)
	require.Empty(b)

	_, err = DecodeHex("686")
	require.ErrorIs(err, ErrOddHexDigitsError)

	_, err = DecodeHex("68g5")
	require.ErrorIs(err, ErrNotHexError)
	require.Contains(err.Error(), "at 2")

	t.Run("round trip", func(t *testing.T) {
		for _, src := range []string{"00", "ff00ff", "0123456789abcdef", "deadbeef"} {
			b, err := DecodeHex(src)
			require.NoError(err)
			require.Equal(src, hex.EncodeToString(b))
		}
	})
}

func TestIntRange(t *testing.T) {
	tests := []struct {
		fixture string
		want    IntRange
	}{
		{"int_range0", IntRange{Bounded[int64](-2, 5)}},
		{"int_range1", IntRange{From[int64](4)}},
		{"int_range2", IntRange{To[int64](102)}},
		{"int_range3", IntRange{Single[int64](45)}},
		{"int_range4", IntRange{Bounded[int64](-1, 4), Single[int64](5), From[int64](66)}},
		{"int_range5", IntRange{Bounded[int64](-100, -99), Single[int64](44), Single[int64](55), Bounded[int64](66, 70)}},
	}
	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			v, rest := mustParse(t, ParseIntRange, tt.fixture)
			require.Equal(t, tt.want, v)
			require.Empty(t, rest)
		})
	}
	mustFail(t, ParseIntRange, "int_range6")
}

func TestUintRange(t *testing.T) {
	tests := []struct {
		fixture string
		want    UintRange
	}{
		{"uint_range0", UintRange{Bounded[uint64](2, 5)}},
		{"uint_range1", UintRange{From[uint64](4)}},
		{"uint_range2", UintRange{Single[uint64](45)}},
		{"uint_range3", UintRange{Bounded[uint64](1, 4), Single[uint64](5), From[uint64](66)}},
		{"uint_range4", UintRange{Bounded[uint64](100, 200), Single[uint64](44), Single[uint64](55), Bounded[uint64](66, 70)}},
	}
	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			v, _ := mustParse(t, ParseUintRange, tt.fixture)
			require.Equal(t, tt.want, v)
		})
	}
	mustFail(t, ParseUintRange, "uint_range5")
}

func TestSize(t *testing.T) {
	tests := []struct {
		fixture string
		want    Size
	}{
		{"size_range0", Size{Bounded[uint64](2, 5)}},
		{"size_range1", Size{From[uint64](4)}},
		{"size_range2", Size{Single[uint64](45)}},
		{"size_range3", Size{Bounded[uint64](1, 4), Single[uint64](5), From[uint64](66)}},
		{"size_range4", Size{Bounded[uint64](100, 200), Single[uint64](44), Single[uint64](55), Bounded[uint64](66, 70)}},
	}
	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			v, _ := mustParse(t, ParseSize, tt.fixture)
			require.Equal(t, tt.want, v)
		})
	}
	mustFail(t, ParseSize, "size_range5")
}

func TestFloatRange(t *testing.T) {
	tests := []struct {
		fixture string
		want    FloatRange
	}{
		{"float_range0", FloatRange{FloatFrom(0, false)}},
		{"float_range1", FloatRange{FloatFrom(0, true)}},
		{"float_range2", FloatRange{FloatTo(0, false)}},
		{"float_range3", FloatRange{FloatTo(1.2, true)}},
		{"float_range4", FloatRange{FloatBounded(-1.34e4, false, 4, true)}},
		{"float_range5", FloatRange{
			FloatBounded(-4.4, true, -4.2, false),
			FloatBounded(1.2e6, false, 1.3e7, true),
			FloatFrom(2.4e8, true),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			v, rest := mustParse(t, ParseFloatRange, tt.fixture)
			require.Equal(t, tt.want, v)
			require.Empty(t, rest)
		})
	}
	mustFail(t, ParseFloatRange, "float_range6")
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		fixture string
		want    DateRange
	}{
		{"date_range0", DateRange{From(date(1902, 1, 2, 0, 0, 24, 0))}},
		{"date_range1", DateRange{To(date(1995, 4, 18, 4, 20, 0, 420_000_000))}},
		{"date_range2", DateRange{
			Bounded(date(2001, 1, 1, 0, 0, 0, 1234), date(2017, 1, 1, 19, 20, 45, 245_000_000)),
			From(date(2020, 1, 1, 0, 0, 0, 0)),
		}},
		{"date_range4", DateRange{Single(date(2020, 1, 1, 0, 0, 0, 0))}},
	}
	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			v, rest := mustParse(t, ParseDateRange, tt.fixture)
			require.Equal(t, tt.want, v)
			require.Empty(t, rest)
		})
	}
	mustFail(t, ParseDateRange, "date_range3")
}

func TestStringRange(t *testing.T) {
	require := require.New(t)

	v, _ := mustParse(t, ParseStringRange, "string_range0")
	require.Equal(StringRange{From[rune](32)}, v)

	v, _ = mustParse(t, ParseStringRange, "string_range1")
	require.Equal(StringRange{Bounded[rune](0x3040, 0x309F)}, v)

	v, _ = mustParse(t, ParseStringRange, "string_range2")
	require.Equal(StringRange{Single[rune](42)}, v)

	err := mustFail(t, ParseStringRange, "string_range3")
	require.ErrorIs(err, ErrOutOfDomainError)
	require.Contains(err.Error(), "1114112 exceeds 1114111")
}

func TestBinaryRange(t *testing.T) {
	require := require.New(t)

	v, _ := mustParse(t, ParseBinaryRange, "binary_range0")
	require.Equal(BinaryRange{From[byte](32)}, v)

	v, _ = mustParse(t, ParseBinaryRange, "binary_range1")
	require.Equal(BinaryRange{Bounded[byte](0x01, 0xFF)}, v)

	v, _ = mustParse(t, ParseBinaryRange, "binary_range2")
	require.Equal(BinaryRange{Single[byte](42)}, v)

	err := mustFail(t, ParseBinaryRange, "binary_range3")
	require.ErrorIs(err, ErrOutOfDomainError)
}

func TestHeaderStatement(t *testing.T) {
	tests := []struct {
		fixture string
		want    HeaderStatement
	}{
		{"header_statement0", UintStatement{Name: "FooBar", Value: 1}},
		{"header_statement1", IntStatement{Name: "FooBar", Value: -1}},
		{"header_statement2", FloatStatement{Name: "FooBarBaz", Value: 1.25e-2}},
		{"header_statement3", DateStatement{Name: "FooBar", Value: date(2014, 2, 3, 0, 12, 14, 500_000_000)}},
		{"header_statement4", StringStatement{Name: "FooBar", Value: "any unicode string 隣町"}},
		{"header_statement5", BinaryStatement{Name: "FooBar", Value: []byte{0xFA, 0xDE, 0xF0, 0x0D}}},
		{"header_statement6", NamedStatement{Name: "FooBar", Value: "BarFoo"}},
	}
	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			v, rest := mustParse(t, ParseHeaderStatement, tt.fixture)
			require.Equal(t, tt.want, v)
			require.Empty(t, rest)
		})
	}

	err := mustFail(t, ParseHeaderStatement, "header_statement7")
	require.ErrorIs(t, err, ErrNoMatch)

	t.Run("unknown literal is not incomplete", func(t *testing.T) {
		_, rest, err := ParseHeaderStatement("Foo := @;")
		require.ErrorIs(t, err, ErrNoMatch)
		require.NotErrorIs(t, err, ErrIncomplete)
		require.Equal(t, "Foo := @;", rest)
	})

	t.Run("integer dates are uints", func(t *testing.T) {
		v, _, err := ParseHeaderStatement("Foo := 1234;")
		require.NoError(t, err)
		require.Equal(t, StatementKind_Uint, v.StatementKind())
	})
}

func TestHeader(t *testing.T) {
	require := require.New(t)

	v, rest := mustParse(t, ParseHeader, "hblock0")
	require.Equal(Header{
		UintStatement{Name: "FooBar", Value: 1},
		StringStatement{Name: "Foo1", Value: "test"},
		BinaryStatement{Name: "FooBaz", Value: []byte{0xFA, 0xDE, 0xF0, 0x0D}},
		DateStatement{Name: "FooQux", Value: date(2000, 1, 1, 0, 0, 0, 0)},
		StringStatement{Name: "Foo", Value: "隣町"},
	}, v)
	require.Equal("\n", rest)

	s, ok := v.Find("FooBaz")
	require.True(ok)
	require.Equal(StatementKind_Binary, s.StatementKind())
	_, ok = v.Find("Unknown")
	require.False(ok)

	v, _, err := ParseHeader(`declare header { Foo := 1; Bar := "x"; }`)
	require.NoError(err)
	require.Equal(Header{UintStatement{Name: "Foo", Value: 1}, StringStatement{Name: "Bar", Value: "x"}}, v)

	mustFail(t, ParseHeader, "hblock1")
	err = mustFail(t, ParseHeader, "hblock2")
	require.ErrorIs(err, ErrIncomplete)
}

func TestTypeDeclaration(t *testing.T) {
	tests := []struct {
		fixture string
		want    TypeDeclaration
		rest    string
	}{
		{
			fixture: "dtype0",
			want: TypeDeclaration{
				Name:    "Foo",
				Type:    Type{Kind: TypeKind_Uint},
				Kind:    TypeKind_Uint,
				Default: UintDefault(5),
				Range:   UintRange{Bounded[uint64](1, 10)},
			},
		},
		{
			fixture: "dtype1",
			want: TypeDeclaration{
				Name:    "Foo",
				Type:    Type{Kind: TypeKind_Int},
				Kind:    TypeKind_Int,
				Default: IntDefault(-2),
				Range:   IntRange{To[int64](0)},
			},
			rest: "\nBar := uint;",
		},
		{
			fixture: "dtype2",
			want:    TypeDeclaration{Name: "Foo", Type: Type{Kind: TypeKind_Int}, Kind: TypeKind_Int},
		},
		{
			fixture: "dtype3",
			want:    TypeDeclaration{Name: "Foo", Type: Type{Kind: TypeKind_Float}, Kind: TypeKind_Int},
			rest:    " [ range: >0; ];",
		},
		{
			fixture: "dtype5",
			want:    TypeDeclaration{Name: "Foo", Type: Type{Kind: TypeKind_Named, Name: "MyType"}, Kind: TypeKind_Int},
		},
	}
	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			v, rest := mustParse(t, ParseTypeDeclaration, tt.fixture)
			require.Equal(t, tt.want, v)
			require.Equal(t, tt.rest, rest)
		})
	}

	t.Run("malformed property list fails the declaration", func(t *testing.T) {
		mustFail(t, ParseTypeDeclaration, "dtype4")
	})

	t.Run("empty property list fails the declaration", func(t *testing.T) {
		err := mustFail(t, ParseTypeDeclaration, "dtype6")
		require.ErrorIs(t, err, ErrNoMatch)
		require.ErrorIs(t, err, ErrNoPropertiesError)
	})

	t.Run("declarations in a row", func(t *testing.T) {
		require := require.New(t)
		src := fixture(t, "dtype1")
		var names []Ident
		for src = SkipSeparator(src); src != ""; src = SkipSeparator(src) {
			d, rest, err := ParseTypeDeclaration(src)
			require.NoError(err)
			names = append(names, d.Name)
			src = rest
		}
		require.Equal([]Ident{"Foo", "Bar"}, names)
	})
}
