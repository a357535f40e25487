// Package response models the polymorphic AI answer payload and routes it
// to the matching renderer. An answer is either opaque prose, one of the
// typed artifact shapes, or an orchestrated composite wrapping several of
// them.
package response

import (
	"bytes"
	"encoding/json"

	"github.com/mistakeknot/pathplan/internal/roadmap"
)

// Known artifact type tags.
const (
	TypeRoadmap          = "roadmap"
	TypeFeatureBrief     = "feature_brief"
	TypeBugList          = "bug_list"
	TypeStrategicSummary = "strategic_summary"
	TypeQA               = "qa_response"
	TypeOrchestrated     = "orchestrated_response"
)

// Bug is one row of a bug_list artifact.
type Bug struct {
	Description string              `json:"description"`
	Impact      string              `json:"impact"`
	Frequency   string              `json:"frequency"`
	References  []roadmap.Reference `json:"references"`
}

// Part wraps one nested response inside an orchestrated_response.
type Part struct {
	Data *AIResponse `json:"data"`
}

// AIResponse is the tagged union of everything the backend can answer
// with. A bare JSON string decodes into Text; objects decode into the
// typed fields. Initiatives stays a pointer so a roadmap that omits the
// field entirely is distinguishable from one with an empty array.
type AIResponse struct {
	Type             string                `json:"type"`
	OverviewText     string                `json:"overview_text"`
	Answer           string                `json:"answer"`
	Summary          string                `json:"summary"`
	Initiatives      *[]roadmap.Initiative `json:"initiatives"`
	Bugs             []Bug                 `json:"bugs"`
	ProblemStatement string                `json:"problem_statement"`
	UserStories      []string              `json:"user_stories"`
	Recommendation   string                `json:"recommendation"`
	References       []roadmap.Reference   `json:"references"`
	Evidence         []roadmap.Reference   `json:"evidence"`
	Parts            []Part                `json:"parts"`

	text   string
	isText bool
	raw    json.RawMessage
}

// Text wraps plain prose as a response value.
func Text(s string) *AIResponse {
	return &AIResponse{text: s, isText: true}
}

// IsText reports whether the response is opaque prose.
func (r *AIResponse) IsText() bool { return r.isText }

// Prose returns the prose content of a text response.
func (r *AIResponse) Prose() string { return r.text }

// Raw returns the original payload bytes, kept for diagnostics when a
// typed artifact turns out malformed.
func (r *AIResponse) Raw() json.RawMessage { return r.raw }

// Overview probes the conventional overview fields in priority order:
// overview_text, then answer, then summary. Empty when none is set.
func (r *AIResponse) Overview() string {
	switch {
	case r.OverviewText != "":
		return r.OverviewText
	case r.Answer != "":
		return r.Answer
	default:
		return r.Summary
	}
}

// Title returns the human-readable name of the artifact type, used in the
// chat transcript ("Product Roadmap Generated") and export filenames.
func (r *AIResponse) Title() string {
	if r.isText {
		return "Response"
	}
	switch r.Type {
	case TypeRoadmap:
		return "Product Roadmap"
	case TypeFeatureBrief:
		return "Feature Brief"
	case TypeBugList:
		return "Bug List"
	case TypeStrategicSummary:
		return "Strategic Summary"
	case TypeQA:
		return "AI Answer"
	case TypeOrchestrated:
		return "Combined Analysis"
	default:
		return "AI Output"
	}
}

type aiResponseAlias AIResponse

// UnmarshalJSON accepts either a bare JSON string (opaque prose) or a
// typed object, preserving the raw bytes either way.
func (r *AIResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*r = AIResponse{text: s, isText: true}
		r.raw = append(json.RawMessage(nil), trimmed...)
		return nil
	}
	var alias aiResponseAlias
	if err := json.Unmarshal(trimmed, &alias); err != nil {
		return err
	}
	*r = AIResponse(alias)
	r.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

// MarshalJSON writes prose back as a bare string and otherwise replays
// the original payload so round-tripping through the chat history does
// not lose unknown fields.
func (r *AIResponse) MarshalJSON() ([]byte, error) {
	if r.isText {
		return json.Marshal(r.text)
	}
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	return json.Marshal(aiResponseAlias(*r))
}
