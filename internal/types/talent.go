// Package types provides type definitions for structured data used throughout the talent-tagger system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// DateInfo is a year/month pair from a resume employment window
type DateInfo struct {
	Year  int `json:"year" validate:"required"`
	Month int `json:"month" validate:"required,min=1,max=12"`
}

// StartEndDate holds an employment window. A nil End means current employment.
type StartEndDate struct {
	Start DateInfo  `json:"start" validate:"required"`
	End   *DateInfo `json:"end,omitempty"`
}

// Position represents one employment entry in a resume
type Position struct {
	Title        string       `json:"title" validate:"required"`
	CompanyName  string       `json:"companyName" validate:"required"`
	Description  string       `json:"description,omitempty"`
	StartEndDate StartEndDate `json:"startEndDate" validate:"required"`
}

// ResumePayload is the inbound resume. Positions is the recognized schema;
// every other top-level field the caller sends is preserved verbatim in
// Extras and serialized back when the payload is rendered into a prompt.
type ResumePayload struct {
	Positions []Position `json:"positions" validate:"required,min=1,dive"`

	Extras map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the recognized schema and captures all remaining
// top-level fields into Extras.
func (p *ResumePayload) UnmarshalJSON(data []byte) error {
	type payloadAlias ResumePayload
	var known payloadAlias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	delete(all, "positions")
	if len(all) > 0 {
		known.Extras = all
	}

	*p = ResumePayload(known)
	return nil
}

// MarshalJSON merges the extras back alongside the recognized fields, so the
// serialized form matches what the caller originally sent.
func (p ResumePayload) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.Extras)+1)
	for k, v := range p.Extras {
		out[k] = v
	}

	positions, err := json.Marshal(p.Positions)
	if err != nil {
		return nil, err
	}
	out["positions"] = positions

	return json.Marshal(out)
}

// TagResult is the inference output: an ordered list of experience tags,
// preserved in the order the model produced them.
type TagResult struct {
	Tags []string `json:"tags"`
}
