/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"math"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/voedger/edtd/pkg/parsec"
)

var uintV = parsec.Named(GrammarUint, parsec.TryMap(parsec.TakeWhile(isDigit), func(s string) (uint64, error) {
	return parseUnsigned[uint64](s, 10, 64)
}))

var intV = parsec.Named(GrammarInt, parsec.TryMap(parsec.TakeWhile(isIntChar), func(s string) (int64, error) {
	return parseSigned[int64](s, 64)
}))

var floatV = parsec.Named(GrammarFloat, parsec.TryMap(parsec.TakeWhile(isFloatChar), func(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}))

type dateFields struct {
	year, month, day     int
	hour, minute, second int
	fraction             *string
}

func digits(n int) parsec.Parser[int] {
	return parsec.TryMap(parsec.Take(n), func(s string) (int, error) {
		for i := 0; i < len(s); i++ {
			if !isDigit(s[i]) {
				return 0, strconv.ErrSyntax
			}
		}
		return strconv.Atoi(s)
	})
}

var (
	digits4 = digits(4)
	digits2 = digits(2)
)

var fraction = parsec.Opt(parsec.Preceded(parsec.Tag("."), parsec.TakeWhile1(isDigit)))

// `YYYYMMDDThh:mm:ss[.fraction]`, fields are not validated yet
func dateTimeFields(in parsec.Input) (f dateFields, rest parsec.Input, err error) {
	fields := []struct {
		p   parsec.Parser[int]
		dst *int
		sep string
	}{
		{digits4, &f.year, ""},
		{digits2, &f.month, ""},
		{digits2, &f.day, dateTimeSep},
		{digits2, &f.hour, ":"},
		{digits2, &f.minute, ":"},
		{digits2, &f.second, ""},
	}
	rest = in
	for _, fld := range fields {
		if *fld.dst, rest, err = fld.p(rest); err != nil {
			return dateFields{}, in, err
		}
		if fld.sep != "" {
			if _, rest, err = parsec.Tag(fld.sep)(rest); err != nil {
				return dateFields{}, in, err
			}
		}
	}
	f.fraction, rest, _ = fraction(rest)
	return f, rest, nil
}

func daysIn(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (f dateFields) time() (time.Time, error) {
	switch {
	case f.month < 1 || f.month > 12:
		return time.Time{}, ErrInvalidDate("month %d", f.month)
	case f.day < 1 || f.day > daysIn(f.month, f.year):
		return time.Time{}, ErrInvalidDate("day %d of %04d-%02d", f.day, f.year, f.month)
	case f.hour > 23:
		return time.Time{}, ErrInvalidDate("hour %d", f.hour)
	case f.minute > 59:
		return time.Time{}, ErrInvalidDate("minute %d", f.minute)
	case f.second > 59:
		return time.Time{}, ErrInvalidDate("second %d", f.second)
	}
	nsec := 0
	if f.fraction != nil {
		frac := *f.fraction
		if len(frac) > nanoDigits {
			frac = frac[:nanoDigits]
		}
		for i := 0; i < nanoDigits; i++ {
			nsec *= 10
			if i < len(frac) {
				nsec += int(frac[i] - '0')
			}
		}
	}
	return time.Date(f.year, time.Month(f.month), f.day, f.hour, f.minute, f.second, nsec, time.UTC), nil
}

var compactDate = parsec.TryMap(parsec.Parser[dateFields](dateTimeFields), dateFields.time)

// offsetDate converts nanoseconds since ReferenceInstant.
// Any int64 offset stays within the range of time.Time, so the sum never wraps
func offsetDate(ns int64) time.Time {
	return ReferenceInstant.Add(time.Duration(ns))
}

// dateV tries the compact form first, then the nanosecond offset
var dateV = parsec.Named(GrammarDate, parsec.AltComplete(
	compactDate,
	parsec.Map(intV, offsetDate),
))

// DecodeHex decodes pairs of hex digits into bytes. Whitespace between digits,
// including between two digits of one byte, is skipped
func DecodeHex(s string) ([]byte, error) {
	res := make([]byte, 0, len(s)/2)
	var (
		buf byte
		cnt int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		var nibble byte
		switch {
		case c >= '0' && c <= '9':
			nibble = c - '0'
		case c >= 'a' && c <= 'f':
			nibble = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			nibble = c - 'A' + 10
		case isSpace(c):
			continue
		default:
			return nil, ErrNotHex(c, i)
		}
		buf = buf<<4 | nibble
		cnt++
		if cnt%2 == 0 {
			res = append(res, buf)
			buf = 0
		}
	}
	if cnt%2 != 0 {
		return nil, ErrOddHexDigits(cnt)
	}
	return res, nil
}

// `0x` followed by hex digits
var hexLiteral = parsec.TryMap(parsec.Preceded(parsec.Tag(hexPrefix), parsec.TakeWhile(isHexDigit)), DecodeHex)

// `"text"`, no escapes. The result shares memory with the source
var quotedLiteral = parsec.Delimited(parsec.Tag(quote), parsec.TakeUntil(quote), parsec.Tag(quote))

func validUTF8(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8(s)
	}
	return s, nil
}

// bytesV accepts any byte literal
var bytesV = parsec.Named(GrammarBinary, parsec.AltComplete(
	hexLiteral,
	parsec.Map(quotedLiteral, func(s string) []byte { return []byte(s) }),
))

// textV accepts byte literals which are valid UTF-8
var textV = parsec.Named(GrammarString, parsec.AltComplete(
	parsec.TryMap(hexLiteral, func(b []byte) (string, error) { return validUTF8(string(b)) }),
	parsec.TryMap(quotedLiteral, validUTF8),
))
