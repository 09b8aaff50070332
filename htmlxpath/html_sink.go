package htmlxpath

import "log/slog"

var htmlSpecialTags = map[string]bool{"script": true, "style": true}

// htmlSink is the tree builder (C5 sink): an arena, an open-element stack
// seeded with a sentinel "root" node, a pending-text buffer, and a latch
// for the first error. Ported from
// original_source/src/dom/parser/sink/dom_sink.rs.
type htmlSink struct {
	arena     *LazyBase
	openStack []*Node
	pending   []rune
	err       *DomError
	logger    *slog.Logger
}

func newHTMLSink(logger *slog.Logger) *htmlSink {
	return &htmlSink{
		arena:     NewLazyBase(),
		openStack: []*Node{newNode(Intern("root"))},
		logger:    logger,
	}
}

func (s *htmlSink) processToken(tok htmlToken) htmlSinkResult {
	switch tok.kind {
	case tokTag:
		switch tok.tag.Kind {
		case TagStart:
			return s.handleStart(tok.tag)
		case TagEnd:
			return s.handleEnd(tok.tag)
		case TagEmpty:
			return s.handleEmpty(tok.tag)
		}
	case tokText:
		return s.handleText(tok.text)
	case tokEndOfInput:
		return htmlSinkResult{kind: sinkSuspend}
	case tokInvalidChar:
		s.err = domParseError(errInvalidChar(tok.invalid))
		s.logger.Warn("html parse error", "char", string(tok.invalid))
		return htmlSinkResult{kind: sinkSuspend}
	}
	return htmlSinkResult{kind: sinkContinue}
}

func (s *htmlSink) handleStart(tag htmlTag) htmlSinkResult {
	s.finalizeText()
	if htmlSpecialTags[tag.Name.String()] {
		s.addNode(tag)
		return htmlSinkResult{kind: sinkSpecial, name: tag.Name.String()}
	}
	s.addNode(tag)
	return htmlSinkResult{kind: sinkContinue}
}

func (s *htmlSink) handleEnd(tag htmlTag) htmlSinkResult {
	s.finalizeText()

	if len(s.openStack) == 1 {
		s.logger.Debug("revert-stack recovery", "tag", tag.Name.String())
		return s.revertStack()
	}

	top := s.openStack[len(s.openStack)-1]
	if tag.Name == top.Tag {
		return s.finalizeNode()
	}

	// Mismatch: pop the top anyway and re-handle the same end tag, closing
	// until a match is found or the stack empties (spec §4.5).
	if res := s.finalizeNode(); res.kind == sinkSuspend {
		return res
	}
	return s.handleEnd(tag)
}

func (s *htmlSink) handleEmpty(tag htmlTag) htmlSinkResult {
	s.finalizeText()
	s.addNode(tag)
	return s.finalizeNode()
}

func (s *htmlSink) handleText(str string) htmlSinkResult {
	if len(s.pending) == 0 {
		i := 0
		for ; i < len(str); i++ {
			if !isWhitespaceASCII(rune(str[i])) {
				break
			}
		}
		s.pending = append(s.pending, []rune(str[i:])...)
	} else {
		s.pending = append(s.pending, []rune(str)...)
	}
	return htmlSinkResult{kind: sinkContinue}
}

func (s *htmlSink) addNode(tag htmlTag) {
	n := &Node{
		Tag:         tag.Name,
		Attributes:  tag.Attrs,
		TextContent: initLazyStr(s.arena),
	}
	s.openStack = append(s.openStack, n)
}

func (s *htmlSink) finalizeNode() htmlSinkResult {
	if len(s.openStack) < 2 {
		return htmlSinkResult{kind: sinkSuspend}
	}
	last := s.openStack[len(s.openStack)-1]
	s.openStack = s.openStack[:len(s.openStack)-1]
	parent := s.openStack[len(s.openStack)-1]

	last.TextContent.finalize()
	parent.Children = append(parent.Children, last)
	return htmlSinkResult{kind: sinkContinue}
}

// revertStack reopens previously-closed siblings when a stray end tag
// arrives with only the sentinel root on the stack: walk down through the
// most recently appended subtree, moving each top's last child back onto
// the open stack, until the top has no children.
func (s *htmlSink) revertStack() htmlSinkResult {
	for {
		top := s.openStack[len(s.openStack)-1]
		if len(top.Children) == 0 {
			break
		}
		child := top.Children[len(top.Children)-1]
		top.Children = top.Children[:len(top.Children)-1]
		s.openStack = append(s.openStack, child)
	}
	return htmlSinkResult{kind: sinkContinue}
}

// finalizeText strips trailing ASCII whitespace from the pending buffer,
// appends it to the arena (which enforces its own single-space
// separator), then clears the buffer.
func (s *htmlSink) finalizeText() {
	end := len(s.pending)
	for end > 0 && isWhitespaceASCII(s.pending[end-1]) {
		end--
	}
	s.arena.Append(string(s.pending[:end]))
	s.pending = s.pending[:0]
}

// end finalizes the sink: fails if an error was latched, otherwise
// requires the sentinel root to contain exactly one child, which becomes
// the document root. Then finalizes the arena (builds the suffix array)
// and returns the Document.
func (s *htmlSink) end() (*Document, error) {
	if s.err != nil {
		return nil, s.err
	}

	// Pop the top of the open stack. If every start tag was matched by an
	// end tag, this is the sentinel root; if tags were left unclosed at
	// EndOfInput, it is the innermost still-open element instead — that
	// case is rejected below exactly like an original document with no
	// single root, matching original_source/src/dom/parser/sink/dom_sink.rs.
	top := s.openStack[len(s.openStack)-1]
	s.openStack = s.openStack[:len(s.openStack)-1]

	var node *Node
	if n := len(top.Children); n > 0 {
		node = top.Children[n-1]
		top.Children = top.Children[:n-1]
	}

	if node == nil {
		return nil, domGenericError("No root node exists")
	}
	if len(s.openStack) != 0 || len(top.Children) != 0 {
		return nil, domGenericError("Multiple root nodes")
	}

	s.arena.Finalize()
	return &Document{Arena: s.arena, Root: node}, nil
}
