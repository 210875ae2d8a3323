package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", "candidate", "candidate"},
		{"surrounding whitespace", "  candidate \n", "candidate"},
		{"bare fences", "```\ncandidate\n```", "candidate"},
		{"language tag", "```cypher\nMATCH (c:Candidate)\nRETURN c.name\n```", "MATCH (c:Candidate)\nRETURN c.name"},
		{"inline fences", "```candidate```", "candidate"},
		{"json tag", "```json\n[{\"c.name\": \"x\"}]\n```", "[{\"c.name\": \"x\"}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

func TestMockModel(t *testing.T) {
	m := NewMockModel("test", "mock")
	m.AddResponse("ping", "pong")

	got, err := m.Invoke(context.Background(), "ping")
	assert.NoError(t, err)
	assert.Equal(t, "pong", got)

	got, err = m.Invoke(context.Background(), "unknown")
	assert.NoError(t, err)
	assert.Contains(t, got, "Mock response to:")

	m.SetFunc(func(prompt string) (string, error) { return "scripted", nil })
	got, err = m.Invoke(context.Background(), "ping")
	assert.NoError(t, err)
	assert.Equal(t, "scripted", got)

	assert.Equal(t, "mock", m.Info().Provider)
}
