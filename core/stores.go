package core

import "context"

// SummaryStore persists a session's turn summary keyed by session id so that
// conversational context survives process restarts.
//
// Semantics:
//   - Load returns (nil, nil) when no summary exists for the id
//   - Save is an idempotent upsert; last writer wins per session id
//   - Persisted turns must reconstruct the in-memory sequence exactly with
//     respect to role, content and order.
type SummaryStore interface {
	Load(ctx context.Context, sessionID string) ([]Turn, error)
	Save(ctx context.Context, sessionID string, turns []Turn) error
	Clear(ctx context.Context, sessionID string) error
}

// GraphExecutor runs a graph query and returns its rows. An empty result is
// an empty slice, never an error; execution failures surface as a recoverable
// error the caller can degrade on.
type GraphExecutor interface {
	Run(ctx context.Context, query string, params map[string]any) ([]Record, error)
}

// Renderer formats query result rows into user-facing text. The router never
// calls it with an empty result set; that path short-circuits to a fixed
// message.
type Renderer interface {
	Render(ctx context.Context, records []Record) (string, error)
}
