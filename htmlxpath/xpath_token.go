package htmlxpath

// xpathTokenKind distinguishes a parsed step from the tokenizer's two
// pseudo-tokens.
type xpathTokenKind int

const (
	xpathTokStep xpathTokenKind = iota
	xpathTokInvalidChar
	xpathTokEndOfInput
)

type xpathToken struct {
	kind    xpathTokenKind
	step    Step
	invalid rune
}

// parseXPathStep is the grammar entry point for one "/axis/tag[...]:nth=N"
// segment, ported from
// original_source/src/xpath/parser/tokenizer/parsers.rs.
func parseXPathStep() Parser[Step] {
	return Map(Seq4(parseAxis(), parseTagName(), parsePredicates(), Opt(parsePosition())),
		func(q Quad4[Axis, string, []Predicate, Option[Position]]) Step {
			step := Step{Axis: q.First, TagName: q.Second, Predicates: q.Third}
			if q.Fourth.Present {
				pos := q.Fourth.Value
				step.Pos = &pos
			}
			return step
		})
}

// parseAxis consumes a leading '/', then an optional second '/' to pick
// Descendant over Child.
func parseAxis() Parser[Axis] {
	return func(c *ParseCursor) (Axis, error) {
		if _, err := Char('/').Run(c); err != nil {
			return 0, err
		}
		if _, err := Char('/').Run(c); err == nil {
			return AxisDescendant, nil
		}
		return AxisChild, nil
	}
}

func parseTagName() Parser[string] {
	return Parser[string](Alpha1)
}

func parsePredicates() Parser[[]Predicate] {
	return Many0(Delimited(Char('['), Trimmed(parseLogical()), Char(']')))
}

// parsePosition parses ":nth=N" or ":nth=-N". A leading '-' selects
// counting from the end (Start=false); its absence counts from the
// start (Start=true). Pos always stores the magnitude.
func parsePosition() Parser[Position] {
	return Preceded(Preceded(Tag(":nth"), Trimmed(Char('='))),
		Map(Seq2(Opt(Char('-')), Parser[int](Digit)), func(p Pair2[Option[rune], int]) Position {
			return Position{Start: !p.First.Present, Pos: p.Second}
		}))
}

// parseLogical parses a chain of conditions joined left-associatively by
// '&'/'|', each operand optionally parenthesized.
func parseLogical() Parser[Predicate] {
	operand := Alt(parseCondition(), Delimited(Char('('), lazyLogical(), Char(')')))
	return func(c *ParseCursor) (Predicate, error) {
		left, err := operand.Run(c)
		if err != nil {
			return nil, err
		}
		for {
			op, err := Trimmed(parseLogicalOp()).Run(c)
			if err != nil {
				break
			}
			right, err := operand.Run(c)
			if err != nil {
				return nil, err
			}
			left = LogicalPredicate{Op: op, Left: left, Right: right}
		}
		return left, nil
	}
}

// lazyLogical defers to parseLogical at call time, breaking the direct
// recursive reference parseLogical would otherwise need in its own
// initializer (Go has no forward value reference for this shape).
func lazyLogical() Parser[Predicate] {
	return func(c *ParseCursor) (Predicate, error) {
		return parseLogical()(c)
	}
}

func parseLogicalOp() Parser[LogicalOperator] {
	return Alt(
		Map(Char('&'), func(rune) LogicalOperator { return LogicalAnd }),
		Map(Char('|'), func(rune) LogicalOperator { return LogicalOr }),
	)
}

func parseCondition() Parser[Predicate] {
	return Map(Alt(parseAttrCond(), parseTextCond()), func(cond Condition) Predicate {
		return ExprPredicate{Cond: cond}
	})
}

// parseAttrCond parses "@name", "@name*='v'", "@name^='v'", or "@name$='v'";
// a bare "@name" with no sp-type and no '=' yields AttrExists, while any
// other combination requires a quoted value.
func parseAttrCond() Parser[Condition] {
	return func(c *ParseCursor) (Condition, error) {
		attr, err := Preceded(Char('@'), TakeWhile1(isAttrNameChar)).Run(c)
		if err != nil {
			return nil, err
		}
		sp, _ := parseSp().Run(c)
		_, eqErr := Trimmed(Char('=')).Run(c)
		if sp == SpBase && eqErr != nil {
			return AttrExists{Attr: attr}, nil
		}
		if eqErr == nil {
			val, err := parseStr().Run(c)
			if err != nil {
				return nil, err
			}
			return AttrCond{Attr: attr, SpType: sp, Val: val}, nil
		}
		if ch, ok := c.Peek(); ok {
			return nil, errInvalidChar(ch)
		}
		return nil, errEndOfInput()
	}
}

func parseTextCond() Parser[Condition] {
	return func(c *ParseCursor) (Condition, error) {
		if _, err := Tag("text").Run(c); err != nil {
			return nil, err
		}
		sp, _ := parseSp().Run(c)
		val, err := Preceded(Trimmed(Char('=')), parseStr()).Run(c)
		if err != nil {
			return nil, err
		}
		return TextCond{SpType: sp, Val: val}, nil
	}
}

// parseSp reads an optional sp-type sigil ('*','^','$'); absence means
// SpBase, and this parser never fails.
func parseSp() Parser[SpType] {
	alt := Alt(
		Map(Char('*'), func(rune) SpType { return SpContains }),
		Map(Char('^'), func(rune) SpType { return SpStarts }),
		Map(Char('$'), func(rune) SpType { return SpEnds }),
	)
	return func(c *ParseCursor) (SpType, error) {
		sp, err := alt.Run(c)
		if err != nil {
			return SpBase, nil
		}
		return sp, nil
	}
}

// parseStr matches a single- or double-quoted literal, returning its
// content without the delimiters.
func parseStr() Parser[string] {
	return func(c *ParseCursor) (string, error) {
		q, err := Alt(Char('\''), Char('"')).Run(c)
		if err != nil {
			return "", err
		}
		content, err := TakeTill(func(r rune) bool { return r == q }).Run(c)
		if err != nil {
			return "", err
		}
		if _, err := Char(q).Run(c); err != nil {
			return "", err
		}
		return content, nil
	}
}
