package talentgraph

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentgraph/talentgraph/core"
	"github.com/talentgraph/talentgraph/model"
	"github.com/talentgraph/talentgraph/session"
)

// scriptedModel answers each prompt by role, keyed on prompt content.
type scriptedModel struct {
	intent   string
	followup string
	query    string
	rendered string
	converse string
}

func (m *scriptedModel) Invoke(_ context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "classify the user's input"):
		return m.intent, nil
	case strings.Contains(prompt, "follow-up question"):
		return m.followup, nil
	case strings.Contains(prompt, "expert in Cypher"):
		return m.query, nil
	case strings.Contains(prompt, "Format the following database query result"):
		return m.rendered, nil
	default:
		return m.converse, nil
	}
}

func (m *scriptedModel) Info() model.Info { return model.Info{Name: "scripted", Provider: "mock"} }

type recordingExecutor struct {
	queries []string
	records []core.Record
}

func (e *recordingExecutor) Run(_ context.Context, query string, _ map[string]any) ([]core.Record, error) {
	e.queries = append(e.queries, query)
	return e.records, nil
}

func TestAsk_ConversationalRoundTrip(t *testing.T) {
	llm := &scriptedModel{intent: "conversation", converse: "Hello! Ask me about candidates."}
	tg := New(llm, &recordingExecutor{})

	reply, err := tg.Ask(context.Background(), "sess-1", "hello")
	assert.NoError(t, err)
	assert.Equal(t, "Hello! Ask me about candidates.", reply)
}

func TestAsk_GeneratesSessionID(t *testing.T) {
	llm := &scriptedModel{intent: "conversation", converse: "Hi!"}
	tg := New(llm, &recordingExecutor{})

	_, err := tg.Ask(context.Background(), "", "hello")
	assert.NoError(t, err)
}

func TestAsk_RehydratesFromSummaryStore(t *testing.T) {
	ctx := context.Background()

	// A previous process answered a skills query for this session.
	store := session.NewInMemoryStore()
	assert.NoError(t, store.Save(ctx, "sess-1", []core.Turn{
		core.NewUserTurn("show me candidates with python skills"),
		core.NewAssistantTurn("Query result:\n[{\"c.name\": \"Arju Thapa\"}, {\"c.name\": \"Biplav Ghale\"}]"),
	}))

	llm := &scriptedModel{
		intent:   "candidate",
		followup: "followup",
		rendered: "Their emails are listed below.",
	}
	exec := &recordingExecutor{records: []core.Record{
		{"c.name": core.String("Arju Thapa"), "c.email": core.String("arju@example.com")},
	}}
	tg := New(llm, exec, func(o *Options) { o.SummaryStore = store })

	// A follow-up in a fresh process still resolves against the stored
	// history.
	reply, err := tg.Ask(ctx, "sess-1", "what are their emails?")
	assert.NoError(t, err)
	assert.Equal(t, "Their emails are listed below.", reply)
	assert.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "WHERE c.name IN ['Arju Thapa', 'Biplav Ghale']")
}

func TestClearSession(t *testing.T) {
	ctx := context.Background()
	store := session.NewInMemoryStore()

	llm := &scriptedModel{
		intent:   "candidate",
		followup: "standalone",
		query:    "MATCH (c:Candidate)-[:HAS_SKILL]->(s:Skill) WHERE toLower(s.name) CONTAINS 'python' RETURN c.name",
		rendered: "Found Arju Thapa.",
	}
	exec := &recordingExecutor{records: []core.Record{{"c.name": core.String("Arju Thapa")}}}
	tg := New(llm, exec, func(o *Options) { o.SummaryStore = store })

	_, err := tg.Ask(ctx, "sess-1", "show me candidates with python skills")
	assert.NoError(t, err)

	saved, err := store.Load(ctx, "sess-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, saved)

	assert.NoError(t, tg.ClearSession(ctx, "sess-1"))

	saved, err = store.Load(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Nil(t, saved)

	// A follow-up after the reset has no context left to resolve: the turn
	// runs as a plain synthesized query.
	llm.followup = "followup"
	_, err = tg.Ask(ctx, "sess-1", "what are their emails?")
	assert.NoError(t, err)
	assert.Contains(t, exec.queries[len(exec.queries)-1], "toLower(s.name)")
}
