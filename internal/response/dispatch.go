package response

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mistakeknot/pathplan/internal/roadmap"
)

// MaxDepth caps orchestrated_response recursion. The wire format puts no
// limit on nesting, so a hostile or cyclic payload must be cut off here.
const MaxDepth = 16

// ErrTooDeep reports an orchestrated_response nested past MaxDepth.
var ErrTooDeep = errors.New("response: orchestrated parts nested too deeply")

// Renderer is the per-type render contract. Dispatch walks a response
// value and calls exactly one method per leaf, in document order.
// Malformed and unknown payloads are reported through their own methods
// rather than errors; both are non-fatal by design.
type Renderer interface {
	// Prose renders markdown text with no further structure.
	Prose(markdown string)
	// Roadmap receives the overview plus the initiative hierarchy that
	// feeds the table, Gantt, Kanban, and timeline views.
	Roadmap(overview string, initiatives []roadmap.Initiative, refs []roadmap.Reference)
	FeatureBrief(overview, problemStatement string, userStories []string, refs []roadmap.Reference)
	BugList(overview string, bugs []Bug)
	StrategicSummary(overview string)
	// QA renders a question answer with its evidence references.
	QA(answer string, evidence []roadmap.Reference, recommendation string)
	// MalformedRoadmap reports a roadmap object missing its initiatives
	// array; raw is the offending payload for diagnostics.
	MalformedRoadmap(raw json.RawMessage)
	// Unknown reports an unrecognized type tag as a non-blocking notice.
	Unknown(typeTag string)
}

// Dispatch routes resp to the renderer, recursing through orchestrated
// parts. The only error it can return is ErrTooDeep (wrapped); every
// well-formed or even malformed payload resolves to renderer calls.
func Dispatch(resp *AIResponse, r Renderer) error {
	return dispatch(resp, r, 0)
}

func dispatch(resp *AIResponse, r Renderer, depth int) error {
	if resp == nil {
		r.Prose("No content to display.")
		return nil
	}
	if resp.IsText() {
		r.Prose(resp.Prose())
		return nil
	}
	switch resp.Type {
	case TypeOrchestrated:
		if depth >= MaxDepth {
			return fmt.Errorf("%w (depth %d)", ErrTooDeep, depth)
		}
		if resp.OverviewText != "" {
			r.Prose(resp.OverviewText)
		}
		for _, part := range resp.Parts {
			if err := dispatch(part.Data, r, depth+1); err != nil {
				return err
			}
		}
	case TypeRoadmap:
		if resp.Initiatives == nil {
			r.MalformedRoadmap(resp.Raw())
			return nil
		}
		r.Roadmap(resp.Overview(), *resp.Initiatives, resp.References)
	case TypeFeatureBrief:
		r.FeatureBrief(resp.Overview(), resp.ProblemStatement, resp.UserStories, resp.References)
	case TypeBugList:
		r.BugList(resp.Overview(), resp.Bugs)
	case TypeStrategicSummary:
		r.StrategicSummary(resp.Overview())
	case TypeQA:
		r.QA(resp.Overview(), resp.Evidence, resp.Recommendation)
	default:
		tag := resp.Type
		if tag == "" {
			tag = "unknown"
		}
		r.Unknown(tag)
	}
	return nil
}
