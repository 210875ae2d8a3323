package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/talentgraph/talentgraph/graph"
)

const candidateExistsQuery = `MATCH (c:Candidate {name: $name, email: $email}) RETURN c LIMIT 1`

// UNWIND-based MERGE so attribute nodes are created with their full property
// set and shared between candidates where the properties match.
const storeCandidateQuery = `
MERGE (c:Candidate {name: $name, email: $email})
SET c.age = $age

WITH c
UNWIND $skills AS skill
    MERGE (s:Skill {name: skill.name})
    MERGE (c)-[:HAS_SKILL]->(s)

WITH c
UNWIND $education AS edu
    MERGE (e:Education {degree: edu.degree, university: edu.university})
    MERGE (c)-[:STUDIED_IN]->(e)

WITH c
UNWIND $work_experience AS exp
    MERGE (w:Work {company: exp.company, position: exp.position, years: exp.years})
    MERGE (c)-[:WORKED_IN]->(w)

WITH c
UNWIND $projects AS proj
    MERGE (p:Project {name: proj.name})
    MERGE (c)-[:HAS_PROJECT_ON]->(p)

WITH c
UNWIND $activities AS act
    MERGE (a:Activity {name: act.name})
    MERGE (c)-[:HAS_ACTIVITY]->(a)
`

// CandidateExists reports whether a candidate with the given identity pair is
// already stored.
func (e *Executor) CandidateExists(ctx context.Context, name, email string) (bool, error) {
	session := e.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: e.database, AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	exists, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, candidateExistsQuery, map[string]any{"name": name, "email": email})
		if err != nil {
			return false, err
		}
		return result.Next(ctx), result.Err()
	})
	if err != nil {
		return false, fmt.Errorf("check candidate exists: %w", err)
	}
	return exists.(bool), nil
}

// SaveCandidate upserts a parsed résumé into the graph. It returns false
// without writing when the candidate identity pair already exists.
func (e *Executor) SaveCandidate(ctx context.Context, c graph.Candidate) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	exists, err := e.CandidateExists(ctx, c.Name, c.Email)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	c = c.Normalize()

	session := e.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: e.database})
	defer session.Close(ctx)

	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, storeCandidateQuery, candidateParams(c))
	})
	if err != nil {
		return false, fmt.Errorf("store candidate %q: %w", c.Name, err)
	}

	e.logger.Info("candidate stored", "name", c.Name)
	return true, nil
}

func candidateParams(c graph.Candidate) map[string]any {
	skills := make([]map[string]any, 0, len(c.Skills))
	for _, s := range c.Skills {
		skills = append(skills, map[string]any{"name": s.Name})
	}
	education := make([]map[string]any, 0, len(c.Education))
	for _, e := range c.Education {
		education = append(education, map[string]any{"university": e.University, "degree": e.Degree})
	}
	work := make([]map[string]any, 0, len(c.Work))
	for _, w := range c.Work {
		work = append(work, map[string]any{"company": w.Company, "position": w.Position, "years": w.Years})
	}
	projects := make([]map[string]any, 0, len(c.Projects))
	for _, p := range c.Projects {
		projects = append(projects, map[string]any{"name": p.Name})
	}
	activities := make([]map[string]any, 0, len(c.Activities))
	for _, a := range c.Activities {
		activities = append(activities, map[string]any{"name": a.Name})
	}

	var age any
	if c.Age != nil {
		age = *c.Age
	}

	return map[string]any{
		"name":            c.Name,
		"email":           c.Email,
		"age":             age,
		"skills":          skills,
		"education":       education,
		"work_experience": work,
		"projects":        projects,
		"activities":      activities,
	}
}
