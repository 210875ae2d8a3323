// Package core provides the foundational domain types and interfaces used by
// TalentGraph. It defines the core abstractions for:
//
//   - Turns & Sessions (ordered conversational history, safe for concurrent use)
//   - Values & Records (explicit polymorphic results returned by graph queries)
//   - Entity sets (candidate names recovered from prior answers)
//   - Pluggable stores for durable session summaries, graph query execution
//     and result rendering
//
// The package intentionally keeps implementation concerns (persistence, model
// providers, the query router) out of scope, exposing small interfaces to
// enable custom backends and extensions.
package core
