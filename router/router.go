// Package router orchestrates a conversational turn end to end: classify the
// utterance, resolve follow-up context, build or synthesize a Cypher query,
// execute it, render the answer and persist the turn. Each turn walks a
// fixed state machine; no error inside it is fatal, the worst-case
// user-visible outcome is a fixed "no matches" message.
package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/talentgraph/talentgraph/classify"
	"github.com/talentgraph/talentgraph/core"
	"github.com/talentgraph/talentgraph/cypher"
	"github.com/talentgraph/talentgraph/followup"
	"github.com/talentgraph/talentgraph/graph"
	"github.com/talentgraph/talentgraph/logging"
	"github.com/talentgraph/talentgraph/model"
	"github.com/talentgraph/talentgraph/render"
)

// State names a position in the per-turn state machine. Exposed for
// observability; transitions are logged at debug level.
type State string

const (
	StateIdle               State = "idle"
	StateClassifying        State = "classifying"
	StateConversational     State = "conversational"
	StateVulgar             State = "vulgar"
	StateFollowupResolution State = "followup_resolution"
	StateStandaloneQuery    State = "standalone_query"
	StateExecuting          State = "executing"
	StateRendering          State = "rendering"
	StatePersisted          State = "persisted"
)

const (
	defaultVulgarResponse    = "Please use appropriate language."
	defaultNoMatchesResponse = "No matching candidates found in the database."
	defaultConverseFallback  = "I'm sorry, I don't know how to answer that right now."

	// Placeholder persisted when a query result cannot be serialized into
	// the conversation history.
	saveFailurePlaceholder = "I found some results, but couldn't save them to the conversation history."

	// Persisted query results are capped so follow-up extraction stays
	// cheap and the durable summary bounded.
	defaultMaxResultLength = 2000
)

// Options configure a Router.
type Options struct {
	Logger logging.Logger
	// Renderer formats non-empty query results. Defaults to the LLM
	// renderer backed by the router's model.
	Renderer core.Renderer
	// VulgarResponse is the fixed reply for vulgar utterances. No model
	// call is made for it.
	VulgarResponse string
	// NoMatchesResponse is the fixed reply when a query returns no rows.
	NoMatchesResponse string
	// MaxResultLength caps the persisted result JSON, in runes.
	MaxResultLength int
}

// Router composes the classifier, context resolution, query building and the
// external collaborators into the turn state machine. A single session is
// processed strictly sequentially; distinct sessions are independent.
type Router struct {
	llm         model.Model
	classifier  *classify.Classifier
	synthesizer *cypher.Synthesizer
	executor    core.GraphExecutor
	store       core.SummaryStore
	renderer    core.Renderer
	logger      logging.Logger

	vulgarResponse    string
	noMatchesResponse string
	maxResultLength   int
}

// New creates a Router. The model drives classification, synthesis, the
// conversational path and (by default) rendering.
func New(llm model.Model, executor core.GraphExecutor, store core.SummaryStore, schema graph.Schema, optFns ...func(o *Options)) *Router {
	opts := Options{
		Logger:            logging.NoOpLogger{},
		VulgarResponse:    defaultVulgarResponse,
		NoMatchesResponse: defaultNoMatchesResponse,
		MaxResultLength:   defaultMaxResultLength,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Renderer == nil {
		opts.Renderer = render.NewLLMRenderer(llm, func(o *render.Options) { o.Logger = opts.Logger })
	}

	return &Router{
		llm:               llm,
		classifier:        classify.NewClassifier(llm, func(o *classify.Options) { o.Logger = opts.Logger }),
		synthesizer:       cypher.NewSynthesizer(llm, schema, func(o *cypher.SynthesizerOptions) { o.Logger = opts.Logger }),
		executor:          executor,
		store:             store,
		renderer:          opts.Renderer,
		logger:            opts.Logger,
		vulgarResponse:    opts.VulgarResponse,
		noMatchesResponse: opts.NoMatchesResponse,
		maxResultLength:   opts.MaxResultLength,
	}
}

// turn tracks the state machine position for one utterance.
type turn struct {
	router *Router
	sess   *core.Session
	state  State
}

func (t *turn) to(next State) {
	t.router.logger.Debug("state transition", "session", t.sess.ID, "from", string(t.state), "to", string(next))
	t.state = next
}

// Handle processes one utterance for the session and returns the reply shown
// to the user. The session's turn log is updated before returning; for
// candidate-query turns the durable summary is flushed synchronously.
func (r *Router) Handle(ctx context.Context, sess *core.Session, utterance string) (string, error) {
	if sess == nil {
		return "", fmt.Errorf("handle: nil session")
	}

	t := &turn{router: r, sess: sess, state: StateIdle}
	t.to(StateClassifying)
	intent := r.classifier.Classify(ctx, utterance)

	switch intent {
	case classify.IntentVulgar:
		t.to(StateVulgar)
		r.persist(ctx, t, utterance, r.vulgarResponse, false)
		return r.vulgarResponse, nil

	case classify.IntentConversational:
		t.to(StateConversational)
		reply := r.converse(ctx, sess, utterance)
		r.persist(ctx, t, utterance, reply, false)
		return reply, nil

	default: // candidate-query
		return r.handleCandidate(ctx, t, utterance)
	}
}

// handleCandidate covers the FollowupResolution / StandaloneQuery /
// Executing / Rendering legs of the state machine.
func (r *Router) handleCandidate(ctx context.Context, t *turn, utterance string) (string, error) {
	sess := t.sess

	var entities core.EntitySet
	if r.classifier.IsFollowup(ctx, utterance) {
		t.to(StateFollowupResolution)
		entities = followup.ExtractEntities(sess.Turns())
	} else {
		t.to(StateStandaloneQuery)
	}

	var (
		query string
		err   error
	)
	switch {
	case len(entities) > 0:
		field := followup.DetectField(utterance)
		if built, ok := cypher.Build(entities, field); ok {
			query = built
			r.logger.Debug("template query built", "session", sess.ID, "field", string(field))
		} else {
			// Field not recognized: synthesize, then scope to the known
			// entity set.
			query, err = r.synthesizer.Synthesize(ctx, utterance)
			if err == nil {
				query = cypher.InjectEntityFilter(query, entities)
			}
		}
	default:
		// No context available (or standalone question): delegate fully to
		// the synthesizer.
		query, err = r.synthesizer.Synthesize(ctx, utterance)
	}

	t.to(StateExecuting)

	var records []core.Record
	if err != nil {
		r.logger.Warn("query synthesis failed, degrading to empty result", "session", sess.ID, "error", err)
	} else {
		records, err = r.executor.Run(ctx, query, nil)
		if err != nil {
			r.logger.Warn("query execution failed, degrading to empty result", "session", sess.ID, "error", err)
			records = nil
		}
	}

	if len(records) == 0 {
		r.persist(ctx, t, utterance, r.noMatchesResponse, true)
		return r.noMatchesResponse, nil
	}

	t.to(StateRendering)
	reply, err := r.renderer.Render(ctx, records)
	if err != nil {
		r.logger.Warn("rendering failed, returning raw result", "session", sess.ID, "error", err)
		reply = r.rawResult(records)
	}

	// History keeps the raw result rather than the rendered prose so
	// follow-up extraction can recover entity names from it.
	r.persist(ctx, t, utterance, r.memoryContent(records), true)
	return reply, nil
}

// converse answers small talk with the conversation history as context.
// Model failures degrade to a fixed apologetic reply.
func (r *Router) converse(ctx context.Context, sess *core.Session, utterance string) string {
	var history strings.Builder
	for _, t := range sess.Turns() {
		switch t.Role {
		case core.RoleUser:
			history.WriteString("Human: " + t.Content + "\n")
		case core.RoleAssistant:
			history.WriteString("CV parser: " + t.Content + "\n")
		}
	}

	resp, err := r.llm.Invoke(ctx, fmt.Sprintf(conversePrompt, history.String(), utterance))
	if err != nil {
		r.logger.Warn("conversational reply failed", "session", sess.ID, "error", err)
		return defaultConverseFallback
	}
	return model.StripFences(resp)
}

// memoryContent serializes query results into the assistant turn persisted
// for follow-up extraction, capped at maxResultLength runes. A
// serialization failure is replaced with a placeholder; the conversation
// continues.
func (r *Router) memoryContent(records []core.Record) string {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		r.logger.Error("could not serialize query result for history", "error", err)
		return saveFailurePlaceholder
	}

	result := string(data)
	if runes := []rune(result); len(runes) > r.maxResultLength {
		result = string(runes[:r.maxResultLength]) + "... [truncated]"
	}
	return "Query result:\n" + result
}

func (r *Router) rawResult(records []core.Record) string {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return r.noMatchesResponse
	}
	return string(data)
}

// persist appends the user utterance and the assistant content to the
// session and, for candidate-query turns, flushes the durable summary
// synchronously. A store failure is logged, never surfaced.
func (r *Router) persist(ctx context.Context, t *turn, utterance, historyContent string, flush bool) {
	t.sess.Append(core.NewUserTurn(utterance), core.NewAssistantTurn(historyContent))

	if flush {
		if err := r.store.Save(ctx, t.sess.ID, t.sess.Turns()); err != nil {
			r.logger.Warn("summary flush failed", "session", t.sess.ID, "error", err)
		}
	}
	t.to(StatePersisted)
	t.to(StateIdle)
}

const conversePrompt = `The following is a friendly conversation between a human and a CV parser.
The CV parser is helpful and provides lots of specific details about candidates from its knowledge graph.
If the CV parser does not know the answer to a question, it truthfully says it does not know.

Current conversation:
%s
Human: %s
CV parser:`
