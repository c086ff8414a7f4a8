// Package alias maps free-text company and service names from resumes to
// canonical legal-entity names.
package alias

import (
	"regexp"
	"strings"
)

// Entry associates a canonical legal-entity name with its known aliases
// (service names, brand names, English transliterations). Alias strings must
// already be in normalized form: lowercase, punctuation collapsed to spaces.
type Entry struct {
	Canonical string
	Aliases   []string
}

// DefaultTable returns the production alias table. Order matters: resolution
// is first-match over the declared order, so overlapping aliases resolve to
// the earlier entry.
func DefaultTable() []Entry {
	return []Entry{
		{Canonical: "비바리퍼블리카", Aliases: []string{"토스", "toss", "viva republica"}},
		{Canonical: "위대한상상", Aliases: []string{"요기요", "yogiyo"}},
		{Canonical: "서치라이트", Aliases: []string{"searchright ai", "searchright"}},
		{Canonical: "KT뮤직", Aliases: []string{"genie music", "kt music"}},
		{Canonical: "국민은행", Aliases: []string{"kookmin bank"}},
		{Canonical: "코인텍", Aliases: []string{"kointech"}},
		{Canonical: "카사", Aliases: []string{"kasa"}},
		{Canonical: "SK텔레콤", Aliases: []string{"sk telecom"}},
		{Canonical: "SK플레닛", Aliases: []string{"sk planet"}},
		{Canonical: "앤틀러", Aliases: []string{"antler"}},
		{Canonical: "엘박스", Aliases: []string{"엘박스"}},
		{Canonical: "삼성전자", Aliases: []string{"samsung electronics"}},
	}
}

// nonNamePattern matches every run of characters that is not an ASCII
// letter/digit or a Hangul syllable.
var nonNamePattern = regexp.MustCompile(`[^a-z0-9ㄱ-힣]+`)

// Normalize lowercases the input, collapses punctuation and other non-name
// characters into single spaces, and trims. Normalize is idempotent.
func Normalize(text string) string {
	t := strings.ToLower(text)
	return strings.TrimSpace(nonNamePattern.ReplaceAllString(t, " "))
}

// Resolver resolves raw company names against an immutable alias table.
type Resolver struct {
	entries []Entry
}

// NewResolver creates a resolver over the given table. The table is not
// copied; callers must not mutate it after construction.
func NewResolver(entries []Entry) *Resolver {
	return &Resolver{entries: entries}
}

// Resolve returns the canonical name for a raw company name. Lookup is
// substring containment over the normalized input, first match in table
// order. Unknown names pass through unchanged so retrieval can still be
// attempted under the name the resume used.
func (r *Resolver) Resolve(rawName string) string {
	norm := Normalize(rawName)
	for _, entry := range r.entries {
		for _, a := range entry.Aliases {
			if strings.Contains(norm, a) {
				return entry.Canonical
			}
		}
	}
	return rawName
}
