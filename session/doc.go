// Package session houses concrete implementations of core.SummaryStore. The
// interface itself (and the Session struct) live in the core package to
// centralize domain contracts; keeping only implementations here prevents
// higher level packages from depending on concrete storage.
//
// Two configurations of the same component are provided: InMemoryStore for
// transient conversations and RedisStore for session-durable persistence.
// Only the wiring layer decides which one to instantiate.
package session
