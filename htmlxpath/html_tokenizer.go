package htmlxpath

// htmlTokenizerState is Base or Special(name), per spec §4.5.
type htmlTokenizerState struct {
	special bool
	name    string
}

// htmlSinkResult mirrors the Rust TokenSinkResult: Continue, Special(name)
// (switch into the script/style sub-mode), or Suspend.
type htmlSinkResult struct {
	kind htmlSinkResultKind
	name string
}

type htmlSinkResultKind int

const (
	sinkContinue htmlSinkResultKind = iota
	sinkSpecial
	sinkSuspend
)

// htmlTokenizer drives the parser-combinator grammar over a ParseCursor,
// dispatching each token to a sink until the sink requests suspension.
type htmlTokenizer struct {
	cursor *ParseCursor
	state  htmlTokenizerState
	sink   *htmlSink
}

func newHTMLTokenizer(input string, sink *htmlSink) *htmlTokenizer {
	return &htmlTokenizer{
		cursor: NewParseCursor(NewCharQueue(input)),
		sink:   sink,
	}
}

// run feeds the whole input through step() until the sink suspends.
func (t *htmlTokenizer) run() {
	for {
		if t.step() == sinkSuspend {
			return
		}
	}
}

func (t *htmlTokenizer) step() htmlSinkResultKind {
	var tok htmlToken
	var err error
	if t.state.special {
		tok, err = parseSpecial(t.state.name).Run(t.cursor)
		if err == nil && tok.kind == tokTag {
			t.state = htmlTokenizerState{}
		}
	} else {
		tok, err = parseToken().Run(t.cursor)
	}

	if err != nil {
		return t.handleErr(err)
	}
	t.cursor.Flush()
	return t.emit(tok)
}

func (t *htmlTokenizer) handleErr(err error) htmlSinkResultKind {
	if le, ok := err.(*lexError); ok && le.endOfInput {
		return t.emit(htmlToken{kind: tokEndOfInput})
	}
	var invalid rune
	if le, ok := err.(*lexError); ok {
		invalid = le.invalid
	}
	return t.emit(htmlToken{kind: tokInvalidChar, invalid: invalid})
}

func (t *htmlTokenizer) emit(tok htmlToken) htmlSinkResultKind {
	result := t.sink.processToken(tok)
	switch result.kind {
	case sinkSpecial:
		t.state = htmlTokenizerState{special: true, name: result.name}
	case sinkSuspend:
		return sinkSuspend
	}
	return sinkContinue
}
