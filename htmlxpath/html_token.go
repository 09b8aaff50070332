package htmlxpath

// TagKind distinguishes start, end, and self-closing ("empty") tags.
type TagKind int

const (
	TagStart TagKind = iota
	TagEnd
	TagEmpty
)

// htmlTag is the parsed shape of a start/end/empty tag, before it becomes
// a tree Node.
type htmlTag struct {
	Kind  TagKind
	Name  Handle
	Attrs []Attribute
}

type htmlTokenKind int

const (
	tokTag htmlTokenKind = iota
	tokText
	tokDoctype
	tokComment
	tokInvalidChar
	tokEndOfInput
)

// htmlToken is the tokenizer's output unit (spec §4.5): a Tag, Text,
// Doctype, Comment, or one of the two pseudo-tokens signalling a lexical
// failure.
type htmlToken struct {
	kind    htmlTokenKind
	tag     htmlTag
	text    string
	invalid rune
}

// isAttrNameChar matches the grammar's attribute-name class [a-zA-Z:-].
func isAttrNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-' || r == ':'
}

// parseToken is the Base-state grammar: try a tag, then a doctype, then a
// comment, then text, in that order (spec §4.5).
func parseToken() Parser[htmlToken] {
	return Alt(
		Map(parseTag(), func(t htmlTag) htmlToken { return htmlToken{kind: tokTag, tag: t} }),
		Map(parseDoctype(), func(s string) htmlToken { return htmlToken{kind: tokDoctype, text: s} }),
		Map(parseComment(), func(s string) htmlToken { return htmlToken{kind: tokComment, text: s} }),
		Map(parseText(), func(s string) htmlToken { return htmlToken{kind: tokText, text: s} }),
	)
}

// parseSpecial is the Special(name)-state grammar: try the matching end
// tag, otherwise consume text verbatim (spec §4.5's "special element"
// sub-mode for script/style).
func parseSpecial(name string) Parser[htmlToken] {
	return Alt(
		Map(parseSpecialEnd(name), func(t htmlTag) htmlToken { return htmlToken{kind: tokTag, tag: t} }),
		Map(parseText(), func(s string) htmlToken { return htmlToken{kind: tokText, text: s} }),
	)
}

func parseTag() Parser[htmlTag] {
	return Alt(parseStartOrEmpty(), parseEndTag())
}

// parseText lets one leading '<' through verbatim (it would otherwise fail
// every tag/doctype/comment alternative), then consumes everything up to
// the next '<'. Non-empty.
func parseText() Parser[string] {
	return func(c *ParseCursor) (string, error) {
		var out []rune
		if ch, err := Char('<').Run(c); err == nil {
			out = append(out, ch)
		}
		for {
			ch, ok := c.Peek()
			if !ok || ch == '<' {
				break
			}
			out = append(out, ch)
			c.Advance()
		}
		if len(out) == 0 {
			ch, ok := c.Peek()
			if !ok {
				return "", errEndOfInput()
			}
			return "", errInvalidChar(ch)
		}
		return string(out), nil
	}
}

func parseDoctype() Parser[string] {
	return Delimited(TagNoCase("<!DOCTYPE"), Trimmed(Parser[string](Alpha1)), Char('>'))
}

func parseComment() Parser[string] {
	return Delimited(Tag("<!--"), Trimmed(Parser[string](Alpha0)), Tag("-->"))
}

// parseStartOrEmpty parses start and empty tags together, since they share
// a grammar up to the closing '>'/'/>' (spec §4.5).
func parseStartOrEmpty() Parser[htmlTag] {
	body := Trimmed(Seq3(
		Map(Parser[string](Alpha1), func(name string) Handle { return Intern(name) }),
		parseAttrs(),
		Alt(
			Map(Char('>'), func(rune) TagKind { return TagStart }),
			Map(Tag("/>"), func(string) TagKind { return TagEmpty }),
		),
	))
	return Map(Preceded(Char('<'), body), func(t Triple3[Handle, []Attribute, TagKind]) htmlTag {
		return htmlTag{Kind: t.Third, Name: t.First, Attrs: t.Second}
	})
}

func parseEndTag() Parser[htmlTag] {
	name := Delimited(Tag("</"), Trimmed(Map(Parser[string](Alpha1), func(s string) Handle { return Intern(s) })), Char('>'))
	return Map(name, func(h Handle) htmlTag {
		return htmlTag{Kind: TagEnd, Name: h}
	})
}

func parseSpecialEnd(special string) Parser[htmlTag] {
	name := Delimited(Tag("</"), Map(Tag(special), func(s string) Handle { return Intern(s) }), Char('>'))
	return Map(name, func(h Handle) htmlTag {
		return htmlTag{Kind: TagEnd, Name: h}
	})
}

func parseAttrs() Parser[[]Attribute] {
	return Many0(Trimmed(parseAttr()))
}

func parseAttr() Parser[Attribute] {
	return func(c *ParseCursor) (Attribute, error) {
		name, err := Map(TakeWhile1(isAttrNameChar), func(s string) Handle { return Intern(s) }).Run(c)
		if err != nil {
			return Attribute{}, err
		}
		_, eqErr := Trimmed(Char('=')).Run(c)
		if eqErr != nil {
			return Attribute{Name: name, Value: AttributeValue{Exists: true}}, nil
		}
		lit, err := parseQuotedString().Run(c)
		if err != nil {
			return Attribute{}, err
		}
		return Attribute{Name: name, Value: AttributeValue{Literal: lit}}, nil
	}
}

// parseQuotedString matches single- or double-quoted content without the
// delimiter itself.
func parseQuotedString() Parser[string] {
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
