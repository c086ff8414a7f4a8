package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTags_RoundTrip(t *testing.T) {
	lists := [][]string{
		{"태그1", "태그2"},
		{"single"},
		{},
	}

	for _, tags := range lists {
		body, err := json.Marshal(map[string][]string{"tags": tags})
		require.NoError(t, err)

		for _, fence := range []string{
			"%s",
			"```\n%s\n```",
			"```json\n%s\n```",
		} {
			raw := fmt.Sprintf(fence, body)
			got, err := DecodeTags(raw)
			require.NoError(t, err, "input: %q", raw)
			assert.Equal(t, tags, got)
		}
	}
}

func TestDecodeTags_SurroundingWhitespace(t *testing.T) {
	got, err := DecodeTags("\n\n```json\n{\"tags\": [\"A\"]}\n```\n\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, got)
}

func TestDecodeTags_MissingFieldDefaultsToEmpty(t *testing.T) {
	got, err := DecodeTags(`{"other": 1}`)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestDecodeTags_MalformedInput(t *testing.T) {
	_, err := DecodeTags("not json")
	require.Error(t, err)

	var malformed *MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "not json", malformed.RawText)
	assert.Error(t, malformed.Cause)
}

func TestDecodeTags_MalformedRetainsOriginalFencedText(t *testing.T) {
	raw := "```json\n{broken\n```"
	_, err := DecodeTags(raw)

	var malformed *MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, raw, malformed.RawText)
}

func TestDecodeTags_PreservesModelOrder(t *testing.T) {
	got, err := DecodeTags(`{"tags": ["z", "a", "z"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "z"}, got)
}
