// Package render formats query results into recruiter-friendly natural
// language. The router guarantees the renderer is never called with an empty
// result set; that path short-circuits to a fixed message upstream.
package render

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talentgraph/talentgraph/core"
	"github.com/talentgraph/talentgraph/logging"
	"github.com/talentgraph/talentgraph/model"
)

const renderPrompt = `You are a helpful assistant. Format the following database query result for a recruiter.
Present each candidate clearly in conversational natural language, using bullet points or short paragraphs.
If multiple candidates are present, number them. For each candidate, include any available fields such as
email, skills, education, work experience, projects, or activities - only if present in the data.
Use concise sentences and omit any null or empty values.

Data:
%s`

// Options configure an LLMRenderer.
type Options struct {
	Logger logging.Logger
}

// LLMRenderer formats result rows with one model call, falling back to
// pretty-printed JSON when the model is unavailable.
type LLMRenderer struct {
	llm    model.Model
	logger logging.Logger
}

var _ core.Renderer = (*LLMRenderer)(nil)

// NewLLMRenderer creates a renderer backed by the given model.
func NewLLMRenderer(llm model.Model, optFns ...func(o *Options)) *LLMRenderer {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &LLMRenderer{llm: llm, logger: opts.Logger}
}

// Render implements core.Renderer.
func (r *LLMRenderer) Render(ctx context.Context, records []core.Record) (string, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode records for rendering: %w", err)
	}

	resp, err := r.llm.Invoke(ctx, fmt.Sprintf(renderPrompt, string(data)))
	if err != nil {
		r.logger.Warn("render model call failed, returning raw result", "error", err)
		return string(data), nil
	}
	return model.StripFences(resp), nil
}
