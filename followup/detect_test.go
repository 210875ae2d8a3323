package followup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectField(t *testing.T) {
	tests := []struct {
		utterance string
		want      Field
	}{
		{"what is their email", FieldEmail},
		{"E-Mail addresses please", FieldEmail},
		{"where did they study, which university", FieldEducation},
		{"what degree do they hold", FieldEducation},
		{"show their work experience", FieldWork},
		{"which company do they work for", FieldWork},
		{"what skills do they have", FieldSkill},
		{"list their projects", FieldProject},
		{"any activities?", FieldActivity},
		{"tell me about their hobbies", FieldUnresolved},
		{"", FieldUnresolved},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectField(tt.utterance), "utterance %q", tt.utterance)
	}
}

// Priority order breaks ties: email outranks work even when both match.
func TestDetectField_PriorityOrder(t *testing.T) {
	assert.Equal(t, FieldEmail, DetectField("email of the person at that company"))
	assert.Equal(t, FieldEducation, DetectField("university and work history"))
}

// Same input always yields the same category, independent of call order.
func TestDetectField_Pure(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, FieldSkill, DetectField("their skills"))
		assert.Equal(t, FieldUnresolved, DetectField("their hobbies"))
	}
}
