// Package followup resolves conversational context for candidate queries: it
// recovers the entity set shown in a prior answer and maps a follow-up
// utterance to the attribute category it asks about.
package followup

import "strings"

// Field is the attribute category a follow-up utterance requests.
type Field string

const (
	FieldEmail      Field = "email"
	FieldEducation  Field = "education"
	FieldWork       Field = "work"
	FieldSkill      Field = "skill"
	FieldProject    Field = "project"
	FieldActivity   Field = "activity"
	FieldUnresolved Field = "unresolved"
)

// Priority-ordered keyword table. First matching category wins, so an
// utterance mentioning both "email" and "company" resolves to email.
var fieldKeywords = []struct {
	field    Field
	keywords []string
}{
	{FieldEmail, []string{"email", "e-mail", "mail"}},
	{FieldEducation, []string{"education", "university", "degree"}},
	{FieldWork, []string{"work", "experience", "company", "position"}},
	{FieldSkill, []string{"skill"}},
	{FieldProject, []string{"project"}},
	{FieldActivity, []string{"activity", "activities"}},
}

// DetectField maps an utterance to the attribute category it requests via
// case-insensitive keyword matching. It is pure and total: identical input
// always yields the same category, FieldUnresolved when nothing matches.
// No model call happens here; this exists specifically to avoid generative
// calls for common, narrow follow-ups.
func DetectField(utterance string) Field {
	q := strings.ToLower(utterance)
	for _, entry := range fieldKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				return entry.field
			}
		}
	}
	return FieldUnresolved
}
