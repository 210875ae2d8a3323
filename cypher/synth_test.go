package cypher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentgraph/talentgraph/graph"
	"github.com/talentgraph/talentgraph/model"
)

func TestSynthesize(t *testing.T) {
	llm := model.NewMockModel("mock", "mock")
	llm.SetFunc(func(prompt string) (string, error) {
		assert.Contains(t, prompt, "(:Candidate)-[:HAS_SKILL]->(:Skill)")
		assert.Contains(t, prompt, "who knows python?")
		return "```cypher\nMATCH (c:Candidate)-[:HAS_SKILL]->(s:Skill)\nWHERE toLower(s.name) CONTAINS 'python'\nRETURN c.name\n```", nil
	})

	synth := NewSynthesizer(llm, graph.DefaultSchema())
	q, err := synth.Synthesize(context.Background(), "who knows python?")
	assert.NoError(t, err)
	assert.Equal(t,
		"MATCH (c:Candidate)-[:HAS_SKILL]->(s:Skill)\nWHERE toLower(s.name) CONTAINS 'python'\nRETURN c.name",
		q)
}

func TestSynthesize_ModelError(t *testing.T) {
	llm := model.NewMockModel("mock", "mock")
	llm.SetFunc(func(prompt string) (string, error) {
		return "", errors.New("rate limited")
	})

	synth := NewSynthesizer(llm, graph.DefaultSchema())
	_, err := synth.Synthesize(context.Background(), "who knows python?")
	assert.ErrorContains(t, err, "synthesize query")
}

func TestSynthesize_EmptyCompletion(t *testing.T) {
	llm := model.NewMockModel("mock", "mock")
	llm.SetFunc(func(prompt string) (string, error) {
		return "```\n```", nil
	})

	synth := NewSynthesizer(llm, graph.DefaultSchema())
	_, err := synth.Synthesize(context.Background(), "who knows python?")
	assert.ErrorContains(t, err, "empty query")
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", "MATCH (c:Candidate) RETURN c.name", "MATCH (c:Candidate) RETURN c.name"},
		{"fenced", "```\nMATCH (c:Candidate) RETURN c.name\n```", "MATCH (c:Candidate) RETURN c.name"},
		{"fenced with tag", "```cypher\nMATCH (c:Candidate) RETURN c.name\n```", "MATCH (c:Candidate) RETURN c.name"},
		{"bare tag prefix", "cypher MATCH (c:Candidate) RETURN c.name", "MATCH (c:Candidate) RETURN c.name"},
		{"uppercase tag", "CYPHER MATCH (c:Candidate) RETURN c.name", "MATCH (c:Candidate) RETURN c.name"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}
