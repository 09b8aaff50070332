package htmlxpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func queryAll(t *testing.T, doc *Document, expr string) []*Node {
	t.Helper()
	xp, err := BuildXPath(expr)
	require.NoError(t, err)
	filter := doc.Query(xp)
	var out []*Node
	for {
		n, ok := filter.Next()
		if !ok {
			break
		}
		out = append(out, n)
	}
	return out
}

// Scenario 1 (spec §8): //p:nth=-1 over three siblings yields the last one.
func TestFilterNthFromEnd(t *testing.T) {
	doc := mustBuildDocument(t, "<root><p>a</p><p>b</p><p>c</p></root>")
	matches := queryAll(t, doc, "//p:nth=-1")
	require.Len(t, matches, 1)
	require.Equal(t, "c", matches[0].TextContent.AsStr())
}

// Scenario 2: //span[@class="x"] picks out the first of two sibling spans.
func TestFilterAttrEqualsPredicate(t *testing.T) {
	doc := mustBuildDocument(t, `<div><span class="x">hi</span><span>ho</span></div>`)
	matches := queryAll(t, doc, `//span[@class="x"]`)
	require.Len(t, matches, 1)
	require.Equal(t, "hi", matches[0].TextContent.AsStr())
}

// Scenario 3: //li:nth=2 picks the second <li> in document order.
func TestFilterNthFromStart(t *testing.T) {
	doc := mustBuildDocument(t, "<ul><li>1</li><li>2</li><li>3</li></ul>")
	matches := queryAll(t, doc, "//li:nth=2")
	require.Len(t, matches, 1)
	require.Equal(t, "2", matches[0].TextContent.AsStr())
}

// Scenario 4: descendant vs. explicit child-path axis selection.
func TestFilterDescendantVsChildAxis(t *testing.T) {
	doc := mustBuildDocument(t, "<a><b><c>deep</c></b></a>")

	deep := queryAll(t, doc, "//c")
	require.Len(t, deep, 1)
	require.Equal(t, "deep", deep[0].TextContent.AsStr())

	viaPath := queryAll(t, doc, "/a/b/c")
	require.Len(t, viaPath, 1)
	require.Equal(t, deep[0], viaPath[0])

	require.Empty(t, queryAll(t, doc, "/a/c"))
}

// Scenario 5: text predicate operators, contains and starts-with.
func TestFilterTextConditionOperators(t *testing.T) {
	doc := mustBuildDocument(t, "<p>Hello world</p>")

	contains := queryAll(t, doc, `//p[text*="lo wo"]`)
	require.Len(t, contains, 1)

	starts := queryAll(t, doc, `//p[text^="world"]`)
	require.Empty(t, starts)
}

// Scenario 6: revert-stack recovery keeps a mis-nested <p> reachable.
func TestFilterAfterRevertStackRecovery(t *testing.T) {
	doc := mustBuildDocument(t, "<html><p>x</p></div></html>")
	matches := queryAll(t, doc, "//p")
	require.Len(t, matches, 1)
	// The stray </div> first closes <html>, whose finalizeText appends a
	// separator space; the reopened <p> is closed again afterwards, so its
	// span ends after that space.
	require.Equal(t, "x ", matches[0].TextContent.AsStr())
}

// Invariant 6: from-start k and from-end (n-k+1) select the same node.
func TestFilterNthComplementaryIndices(t *testing.T) {
	doc := mustBuildDocument(t, "<root><li>1</li><li>2</li><li>3</li><li>4</li></root>")

	fromStart := queryAll(t, doc, "//li:nth=2")
	fromEnd := queryAll(t, doc, "//li:nth=-3") // n=4, k=2 -> from-end n-k+1=3
	require.Len(t, fromStart, 1)
	require.Len(t, fromEnd, 1)
	require.Equal(t, fromStart[0], fromEnd[0])
}

func TestFilterLogicalAndPredicate(t *testing.T) {
	doc := mustBuildDocument(t, `<div><a href="/x" data-ok>x</a><a href="/y">y</a></div>`)
	matches := queryAll(t, doc, `//a[@href & @data-ok]`)
	require.Len(t, matches, 1)
	require.Equal(t, "x", matches[0].TextContent.AsStr())
}

func TestFilterChildAxisDoesNotDescend(t *testing.T) {
	doc := mustBuildDocument(t, "<root><a><b>x</b></a></root>")
	require.Empty(t, queryAll(t, doc, "/root/b"))
	require.Len(t, queryAll(t, doc, "//b"), 1)
}
