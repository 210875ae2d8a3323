package model

import (
	"context"
	"fmt"
	"strings"
)

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required to drive classification, query
// synthesis and rendering. Calls are synchronous and blocking; timeouts and
// retries toward the endpoint are the provider's concern.
type Model interface {
	// Invoke sends a single prompt and returns the completion text.
	Invoke(ctx context.Context, prompt string) (string, error)

	// Info returns information about the model implementation.
	Info() Info
}

// StripFences removes markdown code-fence wrapping from a completion. It
// handles a leading fence with an optional language tag and a trailing fence,
// returning the trimmed inner text. Text without fences is only trimmed.
func StripFences(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	out = strings.TrimPrefix(out, "```")
	// Drop a language tag such as "cypher" or "json" on the fence line.
	if idx := strings.IndexByte(out, '\n'); idx >= 0 {
		first := strings.TrimSpace(out[:idx])
		if first != "" && !strings.ContainsAny(first, " \t") {
			out = out[idx+1:]
		}
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.Trim(strings.TrimSpace(out), "`")
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
type MockModel struct {
	info      Info
	responses map[string]string
	fn        func(prompt string) (string, error)
}

// NewMockModel constructs a MockModel.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: provider},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// SetFunc registers a function consulted before canned responses, allowing
// tests to script completions based on prompt content.
func (m *MockModel) SetFunc(fn func(prompt string) (string, error)) { m.fn = fn }

// Invoke implements Model; returns the scripted or canned completion.
func (m *MockModel) Invoke(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	if m.fn != nil {
		return m.fn(prompt)
	}
	if resp, ok := m.responses[prompt]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", prompt), nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
