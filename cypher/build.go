package cypher

import (
	"github.com/talentgraph/talentgraph/core"
	"github.com/talentgraph/talentgraph/followup"
	"github.com/talentgraph/talentgraph/graph"
)

// Build emits the deterministic template query for a recognized follow-up
// field: filter candidates by name membership, then either return the scalar
// property directly (email) or traverse one relationship and aggregate the
// related nodes' attributes per candidate, deduplicated.
//
// The second return is false when the field is unresolved (or unknown),
// signaling the caller to fall back to the synthesizer. Building is pure: no
// side effects, no failure mode beyond that.
func Build(entities core.EntitySet, field followup.Field) (string, bool) {
	q := &query{}
	q.add(clauseMatch, "(c:%s)", graph.LabelCandidate)
	q.add(clauseWhere, "c.name IN %s", NamesLiteral(entities))

	switch field {
	case followup.FieldEmail:
		q.add(clauseReturn, "DISTINCT c.name, c.email")
	case followup.FieldEducation:
		q.add(clauseOptionalMatch, "(c)-[:%s]->(edu:%s)", graph.RelStudiedIn, graph.LabelEducation)
		q.add(clauseReturn, "c.name, collect(DISTINCT {university: edu.university, degree: edu.degree}) AS education")
	case followup.FieldWork:
		q.add(clauseOptionalMatch, "(c)-[:%s]->(w:%s)", graph.RelWorkedIn, graph.LabelWork)
		q.add(clauseReturn, "c.name, collect(DISTINCT {company: w.company, position: w.position, years: w.years}) AS workExperience")
	case followup.FieldSkill:
		q.add(clauseOptionalMatch, "(c)-[:%s]->(s:%s)", graph.RelHasSkill, graph.LabelSkill)
		q.add(clauseReturn, "c.name, collect(DISTINCT s.name) AS skills")
	case followup.FieldProject:
		q.add(clauseOptionalMatch, "(c)-[:%s]->(p:%s)", graph.RelHasProjectOn, graph.LabelProject)
		q.add(clauseReturn, "c.name, collect(DISTINCT p.name) AS projects")
	case followup.FieldActivity:
		q.add(clauseOptionalMatch, "(c)-[:%s]->(a:%s)", graph.RelHasActivity, graph.LabelActivity)
		q.add(clauseReturn, "c.name, collect(DISTINCT a.name) AS activities")
	default:
		return "", false
	}

	return q.render(), true
}
