package cypher

import (
	"context"
	"fmt"
	"strings"

	"github.com/talentgraph/talentgraph/graph"
	"github.com/talentgraph/talentgraph/logging"
	"github.com/talentgraph/talentgraph/model"
)

// SynthesizerOptions configure a Synthesizer.
type SynthesizerOptions struct {
	Logger logging.Logger
}

// Synthesizer converts a free-text question into a Cypher query with a
// single model call, constrained by the fixed graph schema. It is the
// fallback for questions no template covers.
type Synthesizer struct {
	llm    model.Model
	schema graph.Schema
	logger logging.Logger
}

// NewSynthesizer creates a Synthesizer for the given model and schema.
func NewSynthesizer(llm model.Model, schema graph.Schema, optFns ...func(o *SynthesizerOptions)) *Synthesizer {
	opts := SynthesizerOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Synthesizer{llm: llm, schema: schema, logger: opts.Logger}
}

// Synthesize generates a Cypher query answering the utterance. The
// completion is sanitized: fences stripped and a leading "cypher" language
// tag removed, since models ignore formatting instructions often enough.
func (s *Synthesizer) Synthesize(ctx context.Context, utterance string) (string, error) {
	prompt := fmt.Sprintf(synthesisPrompt, s.schema.PromptText(), utterance)
	resp, err := s.llm.Invoke(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("synthesize query: %w", err)
	}

	q := Sanitize(resp)
	if q == "" {
		return "", fmt.Errorf("synthesize query: model returned empty query")
	}
	s.logger.Debug("query synthesized", "query", q)
	return q, nil
}

// Sanitize strips fence wrapping and a leading "cypher" tag from a model
// completion, returning the bare query text.
func Sanitize(completion string) string {
	q := model.StripFences(completion)
	if len(q) >= 6 && strings.EqualFold(q[:6], "cypher") {
		q = strings.TrimSpace(q[6:])
	}
	return q
}
