// Package classify labels incoming utterances so the router can decide
// whether a turn needs a graph query at all, and whether it refers back to
// previously shown entities.
//
// Both operations are single-shot model calls that must return exactly one
// canonical token. The model is not guaranteed deterministic; the only
// contract is that an unrecognized response degrades to the safest category
// instead of failing the turn.
package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/talentgraph/talentgraph/logging"
	"github.com/talentgraph/talentgraph/model"
)

// Intent is the category assigned to an utterance.
type Intent string

const (
	// IntentConversational covers greetings, small talk and questions about
	// the system itself. Also the safe default for classification failures.
	IntentConversational Intent = "conversation"
	// IntentVulgar covers inappropriate language; answered with a fixed
	// response and never executed as a query.
	IntentVulgar Intent = "vulgar"
	// IntentCandidateQuery covers questions about candidates that require a
	// graph query.
	IntentCandidateQuery Intent = "candidate"
)

// Options configure a Classifier.
type Options struct {
	Logger logging.Logger
}

// Classifier labels utterances using a generative model.
type Classifier struct {
	llm    model.Model
	logger logging.Logger
}

// NewClassifier creates a Classifier backed by the given model.
func NewClassifier(llm model.Model, optFns ...func(o *Options)) *Classifier {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Classifier{llm: llm, logger: opts.Logger}
}

// Classify labels the utterance as conversational, vulgar or candidate-query.
// Model failures and unrecognized tokens default to IntentConversational.
func (c *Classifier) Classify(ctx context.Context, utterance string) Intent {
	resp, err := c.llm.Invoke(ctx, fmt.Sprintf(intentPrompt, utterance))
	if err != nil {
		c.logger.Warn("intent classification failed, defaulting to conversation", "error", err)
		return IntentConversational
	}

	switch token := canonicalToken(resp); Intent(token) {
	case IntentConversational, IntentVulgar, IntentCandidateQuery:
		return Intent(token)
	default:
		c.logger.Warn("unrecognized intent token, defaulting to conversation", "token", token)
		return IntentConversational
	}
}

// IsFollowup reports whether the utterance refers back to previous results
// (pronouns/anaphora such as "their", "those", "the above") rather than
// being self-contained. Failures default to standalone.
func (c *Classifier) IsFollowup(ctx context.Context, utterance string) bool {
	resp, err := c.llm.Invoke(ctx, fmt.Sprintf(followupPrompt, utterance))
	if err != nil {
		c.logger.Warn("follow-up classification failed, treating as standalone", "error", err)
		return false
	}
	return canonicalToken(resp) == "followup"
}

// canonicalToken normalizes a model completion down to the bare token:
// fences stripped, whitespace and markdown emphasis trimmed, lowercased.
func canonicalToken(resp string) string {
	token := model.StripFences(resp)
	token = strings.Trim(token, "*_` \t\r\n.")
	return strings.ToLower(token)
}
