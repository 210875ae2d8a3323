// Package graph describes the fixed résumé knowledge-graph schema the query
// layer is constrained to use, plus the candidate document shape ingested
// into it. The schema is read-only at runtime; it is rendered to text and
// supplied unchanged to the query synthesizer on every call.
package graph

import (
	"fmt"
	"strings"
)

// NodeLabel enumerates the node labels of the knowledge graph.
type NodeLabel string

const (
	LabelCandidate NodeLabel = "Candidate"
	LabelSkill     NodeLabel = "Skill"
	LabelEducation NodeLabel = "Education"
	LabelWork      NodeLabel = "Work"
	LabelProject   NodeLabel = "Project"
	LabelActivity  NodeLabel = "Activity"
)

// RelType enumerates the relationship types connecting candidates to their
// attribute nodes. All relationships point away from Candidate.
type RelType string

const (
	RelHasSkill     RelType = "HAS_SKILL"
	RelStudiedIn    RelType = "STUDIED_IN"
	RelWorkedIn     RelType = "WORKED_IN"
	RelHasProjectOn RelType = "HAS_PROJECT_ON"
	RelHasActivity  RelType = "HAS_ACTIVITY"
)

// Node describes one node label and its properties.
type Node struct {
	Label      NodeLabel
	Properties []string
}

// Relationship describes one directed relationship type.
type Relationship struct {
	Type RelType
	From NodeLabel
	To   NodeLabel
}

// Schema is the fixed, read-only description of the knowledge graph. Nodes
// and Relationships keep declaration order so the rendered prompt text is
// stable across calls.
type Schema struct {
	Nodes         []Node
	Relationships []Relationship
}

// DefaultSchema returns the résumé knowledge-graph schema.
func DefaultSchema() Schema {
	return Schema{
		Nodes: []Node{
			{Label: LabelCandidate, Properties: []string{"name", "email", "age"}},
			{Label: LabelSkill, Properties: []string{"name"}},
			{Label: LabelEducation, Properties: []string{"university", "degree"}},
			{Label: LabelWork, Properties: []string{"company", "position", "years"}},
			{Label: LabelProject, Properties: []string{"name"}},
			{Label: LabelActivity, Properties: []string{"name"}},
		},
		Relationships: []Relationship{
			{Type: RelHasSkill, From: LabelCandidate, To: LabelSkill},
			{Type: RelStudiedIn, From: LabelCandidate, To: LabelEducation},
			{Type: RelWorkedIn, From: LabelCandidate, To: LabelWork},
			{Type: RelHasProjectOn, From: LabelCandidate, To: LabelProject},
			{Type: RelHasActivity, From: LabelCandidate, To: LabelActivity},
		},
	}
}

// PromptText renders the schema in the compact notation the synthesizer is
// prompted with, e.g. "(:Candidate {name, email, age})" followed by
// "(:Candidate)-[:HAS_SKILL]->(:Skill)" lines.
func (s Schema) PromptText() string {
	var sb strings.Builder
	for _, n := range s.Nodes {
		fmt.Fprintf(&sb, "(:%s {%s})\n", n.Label, strings.Join(n.Properties, ", "))
	}
	sb.WriteString("\n")
	for _, r := range s.Relationships {
		fmt.Fprintf(&sb, "(:%s)-[:%s]->(:%s)\n", r.From, r.Type, r.To)
	}
	return sb.String()
}
