package htmlxpath

import (
	"log/slog"

	"github.com/google/uuid"
)

// config holds the options shared by BuildDocument and BuildXPath.
type config struct {
	logger *slog.Logger
}

func defaultConfig() *config {
	return &config{logger: slog.Default()}
}

// Option configures a BuildDocument or BuildXPath call, per spec §10's
// functional-options style (ported from the teacher's Option func(*config)
// pattern in _examples/arturoeanton-go-xml).
type Option func(*config)

// WithLogger attaches a structured logger; parse warnings (revert-stack
// recovery, latched lexical errors) are emitted through it. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// BuildDocument parses input as HTML into a Document (C1-C5): it tokenizes
// and tree-builds in one pass, then finalizes the text arena so substring
// queries become available. Ported end to end from
// original_source/src/dom/parser/interface.rs and
// original_source/src/dom/parser/builder.rs.
func BuildDocument(input string, opts ...Option) (*Document, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	sink := newHTMLSink(cfg.logger)
	tokenizer := newHTMLTokenizer(input, sink)
	tokenizer.run()

	doc, err := sink.end()
	if err != nil {
		return nil, err
	}
	doc.ID = uuid.New()
	return doc, nil
}
