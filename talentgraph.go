// Package talentgraph provides a high-level façade over the query router and
// its collaborators (model, graph executor, session stores, rendering)
// enabling construction of a conversational layer over a résumé knowledge
// graph. Most applications interact with this package by:
//  1. Creating a TalentGraph via New() with a model and graph executor
//     (optionally overriding the default in-memory session store)
//  2. Calling Ask with a session id and the user's utterance
//  3. Calling ClearSession when an operator resets a conversation
//
// The façade delegates orchestration to router.Router while keeping setup
// and usage ergonomics concise. Defaults are safe for local development and
// testing; production deployments supply a durable summary store and a
// structured logger.
package talentgraph

import (
	"context"
	"sync"

	"github.com/talentgraph/talentgraph/core"
	"github.com/talentgraph/talentgraph/graph"
	"github.com/talentgraph/talentgraph/logging"
	"github.com/talentgraph/talentgraph/model"
	"github.com/talentgraph/talentgraph/router"
	"github.com/talentgraph/talentgraph/session"
)

// Options configures the TalentGraph instance.
type Options struct {
	// SummaryStore persists per-session summaries. Defaults to the
	// in-memory implementation.
	SummaryStore core.SummaryStore
	// Schema supplied to the query synthesizer. Defaults to the résumé
	// graph schema.
	Schema graph.Schema
	// Renderer formats non-empty query results (defaults to the LLM renderer).
	Renderer core.Renderer
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// TalentGraph is the high-level façade aggregating the router and services.
// Live sessions are cached in-process; each is rehydrated from the summary
// store on first use so context survives restarts.
type TalentGraph struct {
	router *TurnRouter
	store  core.SummaryStore
	logger logging.Logger

	mu       sync.Mutex
	sessions map[string]*core.Session
}

// TurnRouter is the orchestrator type; aliased here so callers constructing
// a TalentGraph rarely need to import the router package directly.
type TurnRouter = router.Router

// New creates a TalentGraph instance. Any unset service is initialized with
// a safe default.
func New(llm model.Model, executor core.GraphExecutor, optFns ...func(o *Options)) *TalentGraph {
	opts := Options{
		SummaryStore: session.NewInMemoryStore(),
		Schema:       graph.DefaultSchema(),
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	r := router.New(llm, executor, opts.SummaryStore, opts.Schema, func(o *router.Options) {
		o.Logger = opts.Logger
		o.Renderer = opts.Renderer
	})

	return &TalentGraph{
		router:   r,
		store:    opts.SummaryStore,
		logger:   opts.Logger,
		sessions: make(map[string]*core.Session),
	}
}

// Ask processes one utterance for the given session and returns the reply.
// An empty session id starts a fresh session with a generated id; use
// core.NewID to mint ids up front when the caller tracks them.
func (t *TalentGraph) Ask(ctx context.Context, sessionID, utterance string) (string, error) {
	sess := t.getSession(ctx, sessionID)
	return t.router.Handle(ctx, sess, utterance)
}

// ClearSession drops a session's in-memory turns and durable summary.
func (t *TalentGraph) ClearSession(ctx context.Context, sessionID string) error {
	t.mu.Lock()
	if sess, ok := t.sessions[sessionID]; ok {
		sess.Reset()
		delete(t.sessions, sessionID)
	}
	t.mu.Unlock()
	return t.store.Clear(ctx, sessionID)
}

// getSession returns the cached live session or rehydrates one from the
// summary store. A load failure is logged and treated as an empty history;
// refusing to answer because the summary is unreadable would be worse.
func (t *TalentGraph) getSession(ctx context.Context, sessionID string) *core.Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	if sessionID != "" {
		if sess, ok := t.sessions[sessionID]; ok {
			return sess
		}
	}

	sess := core.NewSession(sessionID)
	if sessionID != "" {
		turns, err := t.store.Load(ctx, sessionID)
		if err != nil {
			t.logger.Warn("summary load failed, starting with empty history", "session", sessionID, "error", err)
		} else if len(turns) > 0 {
			sess.Replace(turns)
		}
	}
	t.sessions[sess.ID] = sess
	return sess
}
