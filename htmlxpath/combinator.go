package htmlxpath

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Parser is any function cursor -> (T, error), per spec §4.2. Run wraps
// every call with save-on-entry / revert-on-error, so composition (Alt,
// Many0, Seq2, ...) gets transparent backtracking without each combinator
// re-implementing the savepoint dance — the Go stand-in for the teacher's
// blanket `impl Parser for F` in original_source/src/utils/parser/traits.rs.
type Parser[T any] func(c *ParseCursor) (T, error)

// Run executes p with savepoint discipline: on success the savepoint is
// dropped, on failure the cursor reverts to it.
func (p Parser[T]) Run(c *ParseCursor) (T, error) {
	c.Save()
	out, err := p(c)
	if err != nil {
		c.Revert()
	} else {
		c.Commit()
	}
	return out, err
}

var caseFolder = cases.Fold()

// Char matches a single literal rune.
func Char(want rune) Parser[rune] {
	return func(c *ParseCursor) (rune, error) {
		got, ok := c.Peek()
		if !ok {
			return 0, errEndOfInput()
		}
		if got != want {
			return 0, errInvalidChar(got)
		}
		c.Advance()
		return got, nil
	}
}

// CharNoCase matches a single rune case-insensitively, folding with
// golang.org/x/text/cases rather than unicode.ToLower so non-ASCII
// letters fold correctly too.
func CharNoCase(want rune) Parser[rune] {
	wantFold := caseFolder.String(string(want))
	return func(c *ParseCursor) (rune, error) {
		got, ok := c.Peek()
		if !ok {
			return 0, errEndOfInput()
		}
		if caseFolder.String(string(got)) != wantFold {
			return 0, errInvalidChar(got)
		}
		c.Advance()
		return got, nil
	}
}

// Tag matches a literal string, rune by rune.
func Tag(s string) Parser[string] {
	runes := []rune(s)
	return func(c *ParseCursor) (string, error) {
		for _, r := range runes {
			if _, err := Char(r).Run(c); err != nil {
				return "", err
			}
		}
		return s, nil
	}
}

// TagNoCase matches a literal string case-insensitively.
func TagNoCase(s string) Parser[string] {
	runes := []rune(s)
	return func(c *ParseCursor) (string, error) {
		for _, r := range runes {
			if _, err := CharNoCase(r).Run(c); err != nil {
				return "", err
			}
		}
		return s, nil
	}
}

// Alpha0 consumes zero or more alphabetic scalars. It fails with end of
// input when no input remains at all.
func Alpha0(c *ParseCursor) (string, error) {
	if c.Len() == 0 {
		return "", errEndOfInput()
	}
	return c.ConsumeWhile(unicode.IsLetter), nil
}

// Alpha1 requires at least one alphabetic scalar.
func Alpha1(c *ParseCursor) (string, error) {
	out, err := Alpha0(c)
	if err != nil {
		return "", err
	}
	if len(out) == 0 {
		ch, ok := c.Peek()
		if !ok {
			return "", errEndOfInput()
		}
		return "", errInvalidChar(ch)
	}
	return out, nil
}

// Digit parses a run of decimal digits as an int.
func Digit(c *ParseCursor) (int, error) {
	if c.Len() == 0 {
		return 0, errEndOfInput()
	}
	str := c.ConsumeWhile(unicode.IsDigit)
	if str == "" {
		ch, ok := c.Peek()
		if !ok {
			return 0, errEndOfInput()
		}
		return 0, errInvalidChar(ch)
	}
	n := 0
	for _, r := range str {
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// Whitespace0 consumes zero or more whitespace scalars. It fails with end
// of input when no input remains at all.
func Whitespace0(c *ParseCursor) (string, error) {
	if c.Len() == 0 {
		return "", errEndOfInput()
	}
	return c.ConsumeWhile(unicode.IsSpace), nil
}

// Whitespace1 requires at least one whitespace scalar.
func Whitespace1(c *ParseCursor) (string, error) {
	out, err := Whitespace0(c)
	if err != nil {
		return "", err
	}
	if len(out) == 0 {
		ch, ok := c.Peek()
		if !ok {
			return "", errEndOfInput()
		}
		return "", errInvalidChar(ch)
	}
	return out, nil
}

// TakeWhile consumes scalars while pred holds; always succeeds, possibly
// with an empty string.
func TakeWhile(pred func(rune) bool) Parser[string] {
	return func(c *ParseCursor) (string, error) {
		return c.ConsumeWhile(pred), nil
	}
}

// TakeWhile1 is TakeWhile but fails on an empty match.
func TakeWhile1(pred func(rune) bool) Parser[string] {
	return func(c *ParseCursor) (string, error) {
		out := c.ConsumeWhile(pred)
		if out == "" {
			ch, ok := c.Peek()
			if !ok {
				return "", errEndOfInput()
			}
			return "", errInvalidChar(ch)
		}
		return out, nil
	}
}

// TakeTill consumes scalars until pred holds; always succeeds.
func TakeTill(pred func(rune) bool) Parser[string] {
	return func(c *ParseCursor) (string, error) {
		return c.ConsumeTill(pred), nil
	}
}

// TakeTill1 is TakeTill but fails on an empty match.
func TakeTill1(pred func(rune) bool) Parser[string] {
	return func(c *ParseCursor) (string, error) {
		out := c.ConsumeTill(pred)
		if out == "" {
			ch, ok := c.Peek()
			if !ok {
				return "", errEndOfInput()
			}
			return "", errInvalidChar(ch)
		}
		return out, nil
	}
}

// Opt always succeeds, yielding (value, true) on a match or (zero, false)
// otherwise.
func Opt[T any](p Parser[T]) Parser[Option[T]] {
	return func(c *ParseCursor) (Option[T], error) {
		v, err := p.Run(c)
		if err != nil {
			return Option[T]{}, nil
		}
		return Option[T]{Value: v, Present: true}, nil
	}
}

// Option is the Go stand-in for Rust's Option<T> as produced by Opt.
type Option[T any] struct {
	Value   T
	Present bool
}

// Many0 repeats p zero or more times.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(c *ParseCursor) ([]T, error) {
		var out []T
		for {
			v, err := p.Run(c)
			if err != nil {
				break
			}
			out = append(out, v)
		}
		return out, nil
	}
}

// Many1 requires at least one match of p.
func Many1[T any](p Parser[T]) Parser[[]T] {
	many := Many0(p)
	return func(c *ParseCursor) ([]T, error) {
		out, _ := many.Run(c)
		if len(out) == 0 {
			ch, ok := c.Peek()
			if !ok {
				return nil, errEndOfInput()
			}
			return nil, errInvalidChar(ch)
		}
		return out, nil
	}
}

// Preceded runs p1 then p2, keeping only p2's result.
func Preceded[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return func(c *ParseCursor) (B, error) {
		var zero B
		if _, err := p1.Run(c); err != nil {
			return zero, err
		}
		return p2.Run(c)
	}
}

// Terminated runs p1 then p2, keeping only p1's result.
func Terminated[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return func(c *ParseCursor) (A, error) {
		var zero A
		out, err := p1.Run(c)
		if err != nil {
			return zero, err
		}
		if _, err := p2.Run(c); err != nil {
			return zero, err
		}
		return out, nil
	}
}

// Delimited runs open, body, close in sequence, keeping only body's result.
func Delimited[O, T, C any](open Parser[O], body Parser[T], closeP Parser[C]) Parser[T] {
	return func(c *ParseCursor) (T, error) {
		var zero T
		if _, err := open.Run(c); err != nil {
			return zero, err
		}
		out, err := body.Run(c)
		if err != nil {
			return zero, err
		}
		if _, err := closeP.Run(c); err != nil {
			return zero, err
		}
		return out, nil
	}
}

// Trimmed strips surrounding (optional) whitespace around p.
func Trimmed[T any](p Parser[T]) Parser[T] {
	return Delimited(Parser[string](Whitespace0), p, Parser[string](Whitespace0))
}

// Alt tries each alternative in order with its own savepoint, returning
// the first success or the last alternative's error if all fail.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(c *ParseCursor) (T, error) {
		var zero T
		var lastErr error
		for _, p := range parsers {
			out, err := p.Run(c)
			if err == nil {
				return out, nil
			}
			lastErr = err
		}
		return zero, lastErr
	}
}

// Map transforms a parser's output value.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(c *ParseCursor) (B, error) {
		var zero B
		out, err := p.Run(c)
		if err != nil {
			return zero, err
		}
		return f(out), nil
	}
}

// Pair2 is the product of two parser outputs, the Go stand-in for the
// heterogeneous tuple `tuple(p1, p2)` builds in the Rust combinator kernel.
type Pair2[A, B any] struct {
	First  A
	Second B
}

// Seq2 runs two parsers in sequence, all-or-nothing.
func Seq2[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair2[A, B]] {
	return func(c *ParseCursor) (Pair2[A, B], error) {
		var zero Pair2[A, B]
		a, err := pa.Run(c)
		if err != nil {
			return zero, err
		}
		b, err := pb.Run(c)
		if err != nil {
			return zero, err
		}
		return Pair2[A, B]{a, b}, nil
	}
}

type Triple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Seq3 runs three parsers in sequence, all-or-nothing.
func Seq3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Triple3[A, B, C]] {
	return func(c *ParseCursor) (Triple3[A, B, C], error) {
		var zero Triple3[A, B, C]
		a, err := pa.Run(c)
		if err != nil {
			return zero, err
		}
		b, err := pb.Run(c)
		if err != nil {
			return zero, err
		}
		cc, err := pc.Run(c)
		if err != nil {
			return zero, err
		}
		return Triple3[A, B, C]{a, b, cc}, nil
	}
}

type Quad4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Seq4 runs four parsers in sequence, all-or-nothing.
func Seq4[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[Quad4[A, B, C, D]] {
	return func(c *ParseCursor) (Quad4[A, B, C, D], error) {
		var zero Quad4[A, B, C, D]
		a, err := pa.Run(c)
		if err != nil {
			return zero, err
		}
		b, err := pb.Run(c)
		if err != nil {
			return zero, err
		}
		cc, err := pc.Run(c)
		if err != nil {
			return zero, err
		}
		d, err := pd.Run(c)
		if err != nil {
			return zero, err
		}
		return Quad4[A, B, C, D]{a, b, cc, d}, nil
	}
}

func isWhitespaceASCII(r rune) bool {
	return strings.ContainsRune(" \n\r\t", r)
}
