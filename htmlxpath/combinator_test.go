package htmlxpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharAndTag(t *testing.T) {
	c := NewParseCursor(NewCharQueue("<div"))
	_, err := Char('<').Run(c)
	require.NoError(t, err)

	_, err = Tag("div").Run(c)
	require.NoError(t, err)

	_, ok := c.Peek()
	require.False(t, ok)
}

func TestCharNoCaseFoldsUnicode(t *testing.T) {
	c := NewParseCursor(NewCharQueue("DOCTYPE"))
	_, err := TagNoCase("doctype").Run(c)
	require.NoError(t, err)

	_, err = TagNoCase("été").Run(NewParseCursor(NewCharQueue("ÉTÉ")))
	require.NoError(t, err)
}

func TestAltTriesInOrderAndReturnsLastError(t *testing.T) {
	c := NewParseCursor(NewCharQueue("z"))
	p := Alt(Char('a'), Char('b'))
	_, err := p.Run(c)
	require.Error(t, err)

	le, ok := err.(*lexError)
	require.True(t, ok)
	require.Equal(t, 'z', le.invalid)
}

func TestAltBacktracksOnFailure(t *testing.T) {
	c := NewParseCursor(NewCharQueue("ab"))
	p := Alt(Tag("ax"), Tag("ab"))
	out, err := p.Run(c)
	require.NoError(t, err)
	require.Equal(t, "ab", out)
}

func TestMany0AndMany1(t *testing.T) {
	c := NewParseCursor(NewCharQueue("aaab"))
	out, err := Many0(Char('a')).Run(c)
	require.NoError(t, err)
	require.Len(t, out, 3)

	_, err = Many1(Char('z')).Run(NewParseCursor(NewCharQueue("b")))
	require.Error(t, err)
}

func TestOptAlwaysSucceeds(t *testing.T) {
	c := NewParseCursor(NewCharQueue("b"))
	out, err := Opt(Char('a')).Run(c)
	require.NoError(t, err)
	require.False(t, out.Present)

	ch, _ := c.Peek()
	require.Equal(t, 'b', ch, "opt must not consume on failure")
}

func TestDelimitedAndTrimmed(t *testing.T) {
	c := NewParseCursor(NewCharQueue("(  hi  )"))
	out, err := Delimited(Char('('), Trimmed(Tag("hi")), Char(')')).Run(c)
	require.NoError(t, err)
	require.Equal(t, "hi", out)
}

func TestSeq2And3(t *testing.T) {
	c := NewParseCursor(NewCharQueue("ab12"))
	pair, err := Seq2(Tag("ab"), Parser[int](Digit)).Run(c)
	require.NoError(t, err)
	require.Equal(t, "ab", pair.First)
	require.Equal(t, 12, pair.Second)

	triple, err := Seq3(Char('x'), Tag("yz"), Parser[int](Digit)).Run(NewParseCursor(NewCharQueue("xyz7")))
	require.NoError(t, err)
	require.Equal(t, 'x', triple.First)
	require.Equal(t, "yz", triple.Second)
	require.Equal(t, 7, triple.Third)
}

func TestMapTransformsOutput(t *testing.T) {
	c := NewParseCursor(NewCharQueue("42"))
	out, err := Map(Parser[int](Digit), func(n int) int { return n * 2 }).Run(c)
	require.NoError(t, err)
	require.Equal(t, 84, out)
}

func TestTakeWhile1FailsOnEmpty(t *testing.T) {
	_, err := TakeWhile1(func(r rune) bool { return r == 'x' }).Run(NewParseCursor(NewCharQueue("y")))
	require.Error(t, err)
}
