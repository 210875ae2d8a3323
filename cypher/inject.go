package cypher

import (
	"strings"

	"github.com/talentgraph/talentgraph/core"
)

// InjectEntityFilter scopes a synthesized query to the given entity set. It
// locates the first MATCH line binding (c:Candidate) and either extends an
// existing WHERE on that line with a name-membership conjunction, or inserts
// a new WHERE line immediately after it. When no such line exists the filter
// is appended as a trailing clause.
//
// This is a best-effort textual transformation, not a parser: unrelated
// lines are never reordered or altered. An empty entity set is a no-op.
func InjectEntityFilter(q string, entities core.EntitySet) string {
	if len(entities) == 0 {
		return q
	}

	filter := "c.name IN " + NamesLiteral(entities)
	lines := strings.Split(q, "\n")

	for i, line := range lines {
		if !matchesCandidateBinding(line) {
			continue
		}
		if idx := strings.Index(line, "WHERE"); idx >= 0 {
			rest := strings.TrimSpace(line[idx+len("WHERE"):])
			lines[i] = line[:idx] + "WHERE " + filter + " AND " + rest
		} else {
			lines = append(lines[:i+1], append([]string{"WHERE " + filter}, lines[i+1:]...)...)
		}
		return strings.Join(lines, "\n")
	}

	lines = append(lines, "WHERE "+filter)
	return strings.Join(lines, "\n")
}

// matchesCandidateBinding reports whether a line is a MATCH clause binding
// the candidate variable, tolerant of whitespace inside the node pattern.
func matchesCandidateBinding(line string) bool {
	if !strings.Contains(line, "MATCH") {
		return false
	}
	compact := strings.ReplaceAll(line, " ", "")
	return strings.Contains(compact, "(c:Candidate")
}
