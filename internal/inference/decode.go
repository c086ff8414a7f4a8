package inference

import (
	"encoding/json"
	"strings"
)

// DecodeTags parses the model's raw response text into a tag list. The
// response is expected to hold a JSON object with a "tags" array, possibly
// wrapped in a fenced code block (with or without a language tag). A missing
// "tags" field yields an empty list; anything that fails to parse as JSON is
// a *MalformedResponseError.
func DecodeTags(raw string) ([]string, error) {
	content := strings.TrimSpace(raw)

	if strings.HasPrefix(content, "```") {
		lines := strings.Split(content, "\n")
		if strings.HasPrefix(lines[0], "```") {
			lines = lines[1:]
		}
		if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
			lines = lines[:len(lines)-1]
		}
		content = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	var parsed struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, &MalformedResponseError{RawText: raw, Cause: err}
	}

	if parsed.Tags == nil {
		return []string{}, nil
	}
	return parsed.Tags, nil
}
