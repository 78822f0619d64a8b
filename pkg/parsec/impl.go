/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parsec

import (
	"strings"
)

func NewInput(src string) Input {
	return Input{src: src}
}

// Source returns the whole text the cursor runs over
func (in Input) Source() string { return in.src }

// Offset of the cursor from the start of the source
func (in Input) Offset() int { return in.off }

// Rest returns the unconsumed text. The result shares memory with the source
func (in Input) Rest() string { return in.src[in.off:] }

// Len returns the number of unconsumed bytes
func (in Input) Len() int { return len(in.src) - in.off }

func (in Input) Empty() bool { return in.off >= len(in.src) }

// Between returns the text consumed from in up to the cursor to
func (in Input) Between(to Input) string { return in.src[in.off:to.off] }

func (in Input) advance(n int) Input {
	return Input{src: in.src, off: in.off + n}
}

// Run applies p to src and returns the value and the unconsumed rest of src
func Run[T any](p Parser[T], src string) (T, string, error) {
	v, rest, err := p(NewInput(src))
	if err != nil {
		var zero T
		return zero, src, err
	}
	return v, rest.Rest(), nil
}

// Tag recognizes the literal lit.
// Input which is a proper prefix of lit is incomplete
func Tag(lit string) Parser[string] {
	return func(in Input) (string, Input, error) {
		rest := in.Rest()
		if strings.HasPrefix(rest, lit) {
			return lit, in.advance(len(lit)), nil
		}
		if len(rest) < len(lit) && strings.HasPrefix(lit, rest) {
			return "", in, incomplete(in, len(lit)-len(rest))
		}
		return "", in, noMatch(in)
	}
}

// Take returns exactly n bytes
func Take(n int) Parser[string] {
	return func(in Input) (string, Input, error) {
		if in.Len() < n {
			return "", in, incomplete(in, n-in.Len())
		}
		return in.Rest()[:n], in.advance(n), nil
	}
}

// Satisfy matches one byte satisfying pred
func Satisfy(pred func(byte) bool) Parser[byte] {
	return func(in Input) (byte, Input, error) {
		if in.Empty() {
			return 0, in, incomplete(in, 1)
		}
		b := in.src[in.off]
		if !pred(b) {
			return 0, in, noMatch(in)
		}
		return b, in.advance(1), nil
	}
}

// TakeWhile returns the longest, possibly empty, run of bytes satisfying pred
func TakeWhile(pred func(byte) bool) Parser[string] {
	return func(in Input) (string, Input, error) {
		rest := in.Rest()
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		return rest[:n], in.advance(n), nil
	}
}

// TakeWhile1 is TakeWhile which fails on an empty run
func TakeWhile1(pred func(byte) bool) Parser[string] {
	tw := TakeWhile(pred)
	return func(in Input) (string, Input, error) {
		if in.Empty() {
			return "", in, incomplete(in, 1)
		}
		s, rest, _ := tw(in)
		if len(s) == 0 {
			return "", in, noMatch(in)
		}
		return s, rest, nil
	}
}

// TakeUntil returns the text preceding the first occurrence of lit, lit itself is not consumed.
// Input without lit is incomplete
func TakeUntil(lit string) Parser[string] {
	return func(in Input) (string, Input, error) {
		rest := in.Rest()
		i := strings.Index(rest, lit)
		if i < 0 {
			return "", in, incomplete(in, len(lit))
		}
		return rest[:i], in.advance(i), nil
	}
}

func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) (B, Input, error) {
		a, rest, err := p(in)
		if err != nil {
			var zero B
			return zero, in, err
		}
		return f(a), rest, nil
	}
}

// TryMap is Map with fallible conversion. A conversion error is a non-match
// at the position where p started, carrying the error as the cause
func TryMap[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return func(in Input) (B, Input, error) {
		var zero B
		a, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}
		b, err := f(a)
		if err != nil {
			return zero, in, noMatchCause(in, err)
		}
		return b, rest, nil
	}
}

// Value replaces the result of p with v
func Value[A, B any](p Parser[A], v B) Parser[B] {
	return Map(p, func(A) B { return v })
}

// Opt never fails: it returns nil and consumes nothing if p fails
func Opt[T any](p Parser[T]) Parser[*T] {
	return func(in Input) (*T, Input, error) {
		v, rest, err := p(in)
		if err != nil {
			return nil, in, nil
		}
		return &v, rest, nil
	}
}

// Not succeeds without consuming anything if p fails
func Not[T any](p Parser[T]) Parser[Unit] {
	return func(in Input) (Unit, Input, error) {
		if _, _, err := p(in); err != nil {
			return Unit{}, in, nil
		}
		return Unit{}, in, noMatch(in)
	}
}

// Alt is the ordered choice: alternatives are tried left to right and the first
// one that matches wins. If all fail, the failure which got furthest is returned
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		var best *Error
		for _, p := range ps {
			v, rest, err := p(in)
			if err == nil {
				return v, rest, nil
			}
			if e := asError(in, err); best == nil || e.Offset > best.Offset {
				best = e
			}
		}
		var zero T
		if best == nil {
			best = noMatch(in)
		}
		return zero, in, best
	}
}

// AltComplete is Alt for grammars applied to the whole source. An alternative which
// runs out of input is a non-match at in, so the choice never reports incomplete input
func AltComplete[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		var best *Error
		for _, p := range ps {
			v, rest, err := p(in)
			if err == nil {
				return v, rest, nil
			}
			e := asError(in, err)
			if e.Kind == Kind_Incomplete {
				e = &Error{Kind: Kind_NoMatch, Offset: in.off, Grammar: e.Grammar}
			}
			if best == nil || e.Offset > best.Offset {
				best = e
			}
		}
		var zero T
		if best == nil {
			best = noMatch(in)
		}
		return zero, in, best
	}
}

// Seq applies recognizers one after another and returns the whole consumed text
func Seq(ps ...Parser[string]) Parser[string] {
	return func(in Input) (string, Input, error) {
		cur := in
		for _, p := range ps {
			_, rest, err := p(cur)
			if err != nil {
				return "", in, err
			}
			cur = rest
		}
		return in.Between(cur), cur, nil
	}
}

// Recognize returns the text consumed by p instead of its value
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(in Input) (string, Input, error) {
		_, rest, err := p(in)
		if err != nil {
			return "", in, err
		}
		return in.Between(rest), rest, nil
	}
}

func Preceded[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return func(in Input) (B, Input, error) {
		var zero B
		_, rest, err := a(in)
		if err != nil {
			return zero, in, err
		}
		v, rest, err := b(rest)
		if err != nil {
			return zero, in, err
		}
		return v, rest, nil
	}
}

func Terminated[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return func(in Input) (A, Input, error) {
		var zero A
		v, rest, err := a(in)
		if err != nil {
			return zero, in, err
		}
		if _, rest, err = b(rest); err != nil {
			return zero, in, err
		}
		return v, rest, nil
	}
}

func Delimited[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[B] {
	return Preceded(a, Terminated(b, c))
}

// Fold applies p zero or more times, combining the values into acc left to right.
// Repetition stops at the first failure or at a match which consumes nothing
func Fold[T, A any](p Parser[T], init func() A, f func(A, T) A) Parser[A] {
	return func(in Input) (A, Input, error) {
		acc := init()
		cur := in
		for !cur.Empty() {
			v, rest, err := p(cur)
			if err != nil || rest.off == cur.off {
				break
			}
			acc = f(acc, v)
			cur = rest
		}
		return acc, cur, nil
	}
}

// Many0 collects zero or more matches of p
func Many0[T any](p Parser[T]) Parser[[]T] {
	return Fold(p, func() []T { return nil }, func(acc []T, v T) []T { return append(acc, v) })
}

// SepBy1 collects one or more matches of p separated by sep.
// A separator which is not followed by p is left unconsumed
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		first, cur, err := p(in)
		if err != nil {
			return nil, in, err
		}
		res := []T{first}
		for {
			_, afterSep, err := sep(cur)
			if err != nil {
				break
			}
			v, rest, err := p(afterSep)
			if err != nil || rest.off == cur.off {
				break
			}
			res = append(res, v)
			cur = rest
		}
		return res, cur, nil
	}
}

// Named marks failures of p with the grammar name unless a nested grammar has already done it
func Named[T any](name string, p Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		v, rest, err := p(in)
		if err != nil {
			e := *asError(in, err)
			if e.Grammar == "" {
				e.Grammar = name
			}
			return v, in, &e
		}
		return v, rest, nil
	}
}
