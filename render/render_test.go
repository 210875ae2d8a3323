package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentgraph/talentgraph/core"
	"github.com/talentgraph/talentgraph/model"
)

func TestRender(t *testing.T) {
	llm := model.NewMockModel("mock", "mock")
	llm.SetFunc(func(prompt string) (string, error) {
		assert.Contains(t, prompt, "Format the following database query result")
		assert.Contains(t, prompt, "Arju Thapa")
		return "1. Arju Thapa - arju@example.com", nil
	})

	r := NewLLMRenderer(llm)
	out, err := r.Render(context.Background(), []core.Record{{
		"c.name":  core.String("Arju Thapa"),
		"c.email": core.String("arju@example.com"),
	}})
	assert.NoError(t, err)
	assert.Equal(t, "1. Arju Thapa - arju@example.com", out)
}

func TestRender_StripsFences(t *testing.T) {
	llm := model.NewMockModel("mock", "mock")
	llm.SetFunc(func(prompt string) (string, error) {
		return "```\n1. Arju Thapa\n```", nil
	})

	r := NewLLMRenderer(llm)
	out, err := r.Render(context.Background(), []core.Record{{"c.name": core.String("Arju Thapa")}})
	assert.NoError(t, err)
	assert.Equal(t, "1. Arju Thapa", out)
}

func TestRender_ModelFailureFallsBackToRawJSON(t *testing.T) {
	llm := model.NewMockModel("mock", "mock")
	llm.SetFunc(func(prompt string) (string, error) {
		return "", errors.New("rate limited")
	})

	r := NewLLMRenderer(llm)
	out, err := r.Render(context.Background(), []core.Record{{"c.name": core.String("Arju Thapa")}})
	assert.NoError(t, err)
	assert.True(t, strings.Contains(out, `"c.name"`))
	assert.True(t, strings.Contains(out, "Arju Thapa"))
}
