package graph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateValidate(t *testing.T) {
	ok := Candidate{Name: "Arju Thapa", Email: "arju@example.com"}
	assert.NoError(t, ok.Validate())

	assert.Error(t, Candidate{Email: "arju@example.com"}.Validate())
	assert.Error(t, Candidate{Name: "Arju Thapa"}.Validate())
}

func TestCandidateNormalize(t *testing.T) {
	c := Candidate{
		Name:  "Arju Thapa",
		Email: "arju@example.com",
		Skills: []Skill{
			{Name: "Python"},
			{Name: ""},
		},
		Education: []Education{
			{University: "Tribhuvan University", Degree: "BSc CSIT"},
			{University: "", Degree: "MSc"},
		},
		Work: []Work{
			{Company: "Acme", Position: "Engineer", Years: 2.5},
			{Company: "Acme", Position: "Intern", Years: 0},
			{Company: "", Position: "Engineer", Years: 1},
		},
		Projects:   []Project{{Name: "chatbot"}, {Name: ""}},
		Activities: []Activity{{Name: ""}},
	}

	out := c.Normalize()
	assert.Equal(t, []Skill{{Name: "Python"}}, out.Skills)
	assert.Equal(t, []Education{{University: "Tribhuvan University", Degree: "BSc CSIT"}}, out.Education)
	assert.Equal(t, []Work{{Company: "Acme", Position: "Engineer", Years: 2.5}}, out.Work)
	assert.Equal(t, []Project{{Name: "chatbot"}}, out.Projects)
	assert.Nil(t, out.Activities)

	// The receiver is untouched.
	assert.Len(t, c.Skills, 2)
}

func TestCandidateJSONShape(t *testing.T) {
	var c Candidate
	err := json.Unmarshal([]byte(`{
		"name": "Arju Thapa",
		"email": "arju@example.com",
		"age": 26,
		"skills": [{"name": "Python"}],
		"work_experience": [{"company": "Acme", "position": "Engineer", "years": 2}]
	}`), &c)
	assert.NoError(t, err)
	assert.Equal(t, "Arju Thapa", c.Name)
	assert.NotNil(t, c.Age)
	assert.Equal(t, 26, *c.Age)
	assert.Equal(t, "Acme", c.Work[0].Company)
}
