package htmlxpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildXPathSimpleChildAndDescendant(t *testing.T) {
	xp, err := BuildXPath("/html/body//a")
	require.NoError(t, err)
	require.Len(t, xp.Steps, 3)
	require.Equal(t, AxisChild, xp.Steps[0].Axis)
	require.Equal(t, "html", xp.Steps[0].TagName)
	require.Equal(t, AxisChild, xp.Steps[1].Axis)
	require.Equal(t, "body", xp.Steps[1].TagName)
	require.Equal(t, AxisDescendant, xp.Steps[2].Axis)
	require.Equal(t, "a", xp.Steps[2].TagName)
}

func TestBuildXPathAttrExistsPredicate(t *testing.T) {
	xp, err := BuildXPath("//a[@href]")
	require.NoError(t, err)
	require.Len(t, xp.Steps[0].Predicates, 1)
	pred, ok := xp.Steps[0].Predicates[0].(ExprPredicate)
	require.True(t, ok)
	cond, ok := pred.Cond.(AttrExists)
	require.True(t, ok)
	require.Equal(t, "href", cond.Attr)
}

func TestBuildXPathLogicalAndPredicate(t *testing.T) {
	xp, err := BuildXPath(`//div[@class*="item" & @data-ok]`)
	require.NoError(t, err)
	pred, ok := xp.Steps[0].Predicates[0].(LogicalPredicate)
	require.True(t, ok)
	require.Equal(t, LogicalAnd, pred.Op)

	left := pred.Left.(ExprPredicate).Cond.(AttrCond)
	require.Equal(t, "class", left.Attr)
	require.Equal(t, SpContains, left.SpType)
	require.Equal(t, "item", left.Val)

	right := pred.Right.(ExprPredicate).Cond.(AttrExists)
	require.Equal(t, "data-ok", right.Attr)
}

func TestBuildXPathPositionFromStartAndEnd(t *testing.T) {
	xp, err := BuildXPath("//li:nth=3")
	require.NoError(t, err)
	require.NotNil(t, xp.Steps[0].Pos)
	require.True(t, xp.Steps[0].Pos.Start)
	require.Equal(t, 3, xp.Steps[0].Pos.Pos)

	xp2, err := BuildXPath("//p:nth=-1")
	require.NoError(t, err)
	require.False(t, xp2.Steps[0].Pos.Start)
	require.Equal(t, 1, xp2.Steps[0].Pos.Pos)
}

func TestBuildXPathTextConditionOrOperator(t *testing.T) {
	xp, err := BuildXPath(`//span[text^="Hello" | text$="world"]`)
	require.NoError(t, err)
	pred := xp.Steps[0].Predicates[0].(LogicalPredicate)
	require.Equal(t, LogicalOr, pred.Op)
	left := pred.Left.(ExprPredicate).Cond.(TextCond)
	require.Equal(t, SpStarts, left.SpType)
	require.Equal(t, "Hello", left.Val)
	right := pred.Right.(ExprPredicate).Cond.(TextCond)
	require.Equal(t, SpEnds, right.SpType)
	require.Equal(t, "world", right.Val)
}

func TestBuildXPathInvalidCharIsParseError(t *testing.T) {
	_, err := BuildXPath("//div#bad")
	require.Error(t, err)
	xerr, ok := err.(*XPathError)
	require.True(t, ok)
	require.NotEmpty(t, xerr.Expression)
}
