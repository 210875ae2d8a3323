package graph

import "fmt"

// Skill names a single skill attached to a candidate.
type Skill struct {
	Name string `json:"name"`
}

// Education is one completed degree.
type Education struct {
	University string `json:"university"`
	Degree     string `json:"degree"`
}

// Work is one employment entry.
type Work struct {
	Company  string  `json:"company"`
	Position string  `json:"position"`
	Years    float64 `json:"years"`
}

// Project names a project a candidate has worked on.
type Project struct {
	Name string `json:"name"`
}

// Activity names an extracurricular activity.
type Activity struct {
	Name string `json:"name"`
}

// Candidate is the parsed résumé document ingested into the graph. Name and
// email are required and jointly identify a candidate; everything else is
// optional.
type Candidate struct {
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Age        *int        `json:"age,omitempty"`
	Skills     []Skill     `json:"skills,omitempty"`
	Education  []Education `json:"education,omitempty"`
	Work       []Work      `json:"work_experience,omitempty"`
	Projects   []Project   `json:"projects,omitempty"`
	Activities []Activity  `json:"activities,omitempty"`
}

// Validate checks the identity fields are present.
func (c Candidate) Validate() error {
	if c.Name == "" || c.Email == "" {
		return fmt.Errorf("candidate requires name and email, got name=%q email=%q", c.Name, c.Email)
	}
	return nil
}

// Normalize drops list entries missing their required fields so ingestion
// never writes half-formed attribute nodes. Returns a cleaned copy.
func (c Candidate) Normalize() Candidate {
	out := c
	out.Skills = nil
	for _, s := range c.Skills {
		if s.Name != "" {
			out.Skills = append(out.Skills, s)
		}
	}
	out.Education = nil
	for _, e := range c.Education {
		if e.University != "" && e.Degree != "" {
			out.Education = append(out.Education, e)
		}
	}
	out.Work = nil
	for _, w := range c.Work {
		if w.Company != "" && w.Position != "" && w.Years > 0 {
			out.Work = append(out.Work, w)
		}
	}
	out.Projects = nil
	for _, p := range c.Projects {
		if p.Name != "" {
			out.Projects = append(out.Projects, p)
		}
	}
	out.Activities = nil
	for _, a := range c.Activities {
		if a.Name != "" {
			out.Activities = append(out.Activities, a)
		}
	}
	return out
}
