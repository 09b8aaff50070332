package htmlxpath

// xpathSink accumulates parsed Steps and latches the first error, mirroring
// original_source/src/xpath/parser/sink/xpath_sink.rs.
type xpathSink struct {
	steps []Step
	err   *XPathError
}

func newXPathSink() *xpathSink {
	return &xpathSink{}
}

func (s *xpathSink) processToken(tok xpathToken) bool {
	switch tok.kind {
	case xpathTokStep:
		s.steps = append(s.steps, tok.step)
		return true
	case xpathTokInvalidChar:
		s.err = xpathParseError(errInvalidChar(tok.invalid))
		return false
	default: // xpathTokEndOfInput
		return false
	}
}

func (s *xpathSink) end() (*XPath, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &XPath{Steps: s.steps}, nil
}

// xpathTokenizer drives parseXPathStep over the whole input, one step at a
// time, until the sink reports suspension (end of input, or a lexical
// error).
type xpathTokenizer struct {
	cursor *ParseCursor
	sink   *xpathSink
}

func newXPathTokenizer(input string, sink *xpathSink) *xpathTokenizer {
	return &xpathTokenizer{
		cursor: NewParseCursor(NewCharQueue(input)),
		sink:   sink,
	}
}

func (t *xpathTokenizer) run() {
	for t.step() {
	}
}

func (t *xpathTokenizer) step() bool {
	step, err := parseXPathStep().Run(t.cursor)
	if err != nil {
		return t.handleErr(err)
	}
	t.cursor.Flush()
	return t.sink.processToken(xpathToken{kind: xpathTokStep, step: step})
}

func (t *xpathTokenizer) handleErr(err error) bool {
	if le, ok := err.(*lexError); ok && le.endOfInput {
		return t.sink.processToken(xpathToken{kind: xpathTokEndOfInput})
	}
	var invalid rune
	if le, ok := err.(*lexError); ok {
		invalid = le.invalid
	}
	return t.sink.processToken(xpathToken{kind: xpathTokInvalidChar, invalid: invalid})
}

// BuildXPath parses input (e.g. "//div[@class='x']/p:nth=1") into an
// XPath, ready to be run via Node.Query/Document.Query. Ported from
// original_source/src/xpath/parser/builder.rs.
func BuildXPath(input string, opts ...Option) (*XPath, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	sink := newXPathSink()
	tokenizer := newXPathTokenizer(input, sink)
	tokenizer.run()

	xp, err := sink.end()
	if err != nil {
		cfg.logger.Warn("xpath parse error", "expression", input)
		return nil, err
	}
	return xp, nil
}
