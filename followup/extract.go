package followup

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/talentgraph/talentgraph/core"
)

// namePattern catches key/value shapes like `"c.name": "Arju Thapa"` or
// `name: 'Biplav Ghale'` in raw text when strict parsing fails. The dotted
// prefix is optional so a bare `name` key matches too.
var namePattern = regexp.MustCompile(`(?i)['"]?(?:[a-z][a-z0-9_]*\.)?name['"]?\s*:\s*['"]([^'"]+)['"]`)

// ExtractEntities recovers the set of candidate names previously shown to
// the user. It scans the history in reverse chronological order, picks the
// first assistant turn that mentions a name attribute, and parses the
// embedded structured payload; a pattern scan over the raw text is the
// fallback. An empty set means no context is available, not an error.
func ExtractEntities(turns []core.Turn) core.EntitySet {
	names := core.NewEntitySet()

	var content string
	for i := len(turns) - 1; i >= 0; i-- {
		t := turns[i]
		if t.Role == core.RoleAssistant && strings.Contains(strings.ToLower(t.Content), "name") {
			content = t.Content
			break
		}
	}
	if content == "" {
		return names
	}

	// Skip any leading label like "Query result:" and keep the payload part.
	payload := content
	if idx := strings.IndexAny(content, "[{"); idx >= 0 {
		payload = content[idx:]
	}

	collectParsedNames(payload, names)
	if len(names) == 0 {
		for _, match := range namePattern.FindAllStringSubmatch(payload, -1) {
			if match[1] != "" {
				names.Add(match[1])
			}
		}
	}
	return names
}

// collectParsedNames strict-parses the payload and collects every string
// value whose key is a name attribute. Only a list of mappings qualifies;
// any other shape (or a parse failure) contributes nothing.
func collectParsedNames(payload string, names core.EntitySet) {
	var parsed any
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return
	}
	items, ok := parsed.([]any)
	if !ok {
		return
	}
	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for k, v := range record {
			if !isNameKey(k) {
				continue
			}
			if s, ok := v.(string); ok && s != "" {
				names.Add(s)
			}
		}
	}
}

// isNameKey matches "name" exactly or a dotted suffix like "c.name",
// case-insensitive.
func isNameKey(key string) bool {
	k := strings.ToLower(key)
	return k == "name" || strings.HasSuffix(k, ".name")
}
