package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_RemovesSpecialChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ascii punctuation",
			input:    "Hello, World!",
			expected: "hello world",
		},
		{
			name:     "mixed hangul and latin",
			input:    "토스 (Toss)_Test!",
			expected: "토스 toss test",
		},
		{
			name:     "collapses runs to single space",
			input:    "KT -- Music",
			expected: "kt music",
		},
		{
			name:     "trims leading and trailing noise",
			input:    "  ***viva republica***  ",
			expected: "viva republica",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Hello, World!", "토스 (Toss)_Test!", "SK텔레콤", "", "already normal"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestResolve_KnownAliases(t *testing.T) {
	r := NewResolver(DefaultTable())

	assert.Equal(t, "비바리퍼블리카", r.Resolve("toss"))
	assert.Equal(t, "비바리퍼블리카", r.Resolve("TOSS Korea"))
	assert.Equal(t, "비바리퍼블리카", r.Resolve("토스"))
	assert.Equal(t, "위대한상상", r.Resolve("Yogiyo!"))
	assert.Equal(t, "삼성전자", r.Resolve("Samsung Electronics Co., Ltd."))
}

func TestResolve_IgnoresCaseAndPunctuationNoise(t *testing.T) {
	r := NewResolver(DefaultTable())

	assert.Equal(t, "SK텔레콤", r.Resolve("  SK-Telecom (Seoul) "))
	assert.Equal(t, "KT뮤직", r.Resolve("Genie_Music"))
}

func TestResolve_UnknownPassthrough(t *testing.T) {
	r := NewResolver(DefaultTable())

	assert.Equal(t, "UnknownCorp", r.Resolve("UnknownCorp"))
	assert.Equal(t, "어느회사", r.Resolve("어느회사"))
}

func TestResolve_FirstMatchFollowsTableOrder(t *testing.T) {
	// Both entries claim the alias "acme"; the declared order decides.
	table := []Entry{
		{Canonical: "FirstCo", Aliases: []string{"acme"}},
		{Canonical: "SecondCo", Aliases: []string{"acme corp"}},
	}
	r := NewResolver(table)

	assert.Equal(t, "FirstCo", r.Resolve("Acme Corp"))
}

func TestResolve_SubstringContainment(t *testing.T) {
	r := NewResolver(DefaultTable())

	// The alias only has to appear inside the normalized input.
	assert.Equal(t, "비바리퍼블리카", r.Resolve("Viva Republica Inc."))
	assert.Equal(t, "앤틀러", r.Resolve("Antler Korea 1st Cohort"))
}
