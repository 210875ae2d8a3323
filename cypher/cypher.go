// Package cypher produces the graph queries the router executes: fixed
// template queries for recognized follow-up fields, model-synthesized
// queries for everything else, and a best-effort entity filter injection for
// synthesized queries that must be scoped to previously shown candidates.
//
// Template queries are assembled from a small clause list and rendered to
// text only at the boundary; synthesized queries are free text from the
// model and are only ever edited line-wise.
package cypher

import (
	"fmt"
	"strings"

	"github.com/talentgraph/talentgraph/core"
)

// Literal renders s as a single-quoted Cypher string literal, escaping
// backslashes and embedded quotes so names like O'Brien never produce a
// syntactically broken literal.
func Literal(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `'`, `\'`)
	return "'" + escaped + "'"
}

// NamesLiteral renders an entity set as a Cypher list literal with sorted,
// escaped members, e.g. ['Arju Thapa', 'Biplav Ghale'].
func NamesLiteral(entities core.EntitySet) string {
	names := entities.Names()
	literals := make([]string, len(names))
	for i, n := range names {
		literals[i] = Literal(n)
	}
	return "[" + strings.Join(literals, ", ") + "]"
}

// clauseKind tags the clauses a template query is built from.
type clauseKind int

const (
	clauseMatch clauseKind = iota
	clauseWhere
	clauseOptionalMatch
	clauseReturn
)

// clause is one line of a template query. Filter clauses carry their
// predicate text already escaped.
type clause struct {
	kind clauseKind
	text string
}

func (c clause) render() string {
	switch c.kind {
	case clauseMatch:
		return "MATCH " + c.text
	case clauseWhere:
		return "WHERE " + c.text
	case clauseOptionalMatch:
		return "OPTIONAL MATCH " + c.text
	case clauseReturn:
		return "RETURN " + c.text
	default:
		return c.text
	}
}

// query is the intermediate representation of a template query: an ordered
// clause list rendered to text once, at the boundary.
type query struct {
	clauses []clause
}

func (q *query) add(kind clauseKind, format string, args ...any) {
	q.clauses = append(q.clauses, clause{kind: kind, text: fmt.Sprintf(format, args...)})
}

func (q *query) render() string {
	lines := make([]string, len(q.clauses))
	for i, c := range q.clauses {
		lines[i] = c.render()
	}
	return strings.Join(lines, "\n")
}
