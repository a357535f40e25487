package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/mistakeknot/pathplan/internal/roadmap"
)

// recordingRenderer logs dispatch calls in order.
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) Prose(md string) {
	r.calls = append(r.calls, "prose:"+md)
}

func (r *recordingRenderer) Roadmap(overview string, initiatives []roadmap.Initiative, refs []roadmap.Reference) {
	r.calls = append(r.calls, fmt.Sprintf("roadmap:%d", len(initiatives)))
}

func (r *recordingRenderer) FeatureBrief(overview, problem string, stories []string, refs []roadmap.Reference) {
	r.calls = append(r.calls, "brief:"+problem)
}

func (r *recordingRenderer) BugList(overview string, bugs []Bug) {
	r.calls = append(r.calls, fmt.Sprintf("bugs:%d", len(bugs)))
}

func (r *recordingRenderer) StrategicSummary(overview string) {
	r.calls = append(r.calls, "summary:"+overview)
}

func (r *recordingRenderer) QA(answer string, evidence []roadmap.Reference, rec string) {
	r.calls = append(r.calls, "qa:"+answer)
}

func (r *recordingRenderer) MalformedRoadmap(raw json.RawMessage) {
	r.calls = append(r.calls, "malformed")
}

func (r *recordingRenderer) Unknown(tag string) {
	r.calls = append(r.calls, "unknown:"+tag)
}

func TestDispatchProse(t *testing.T) {
	rec := &recordingRenderer{}
	if err := Dispatch(Text("hello"), rec); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "prose:hello" {
		t.Fatalf("calls %v", rec.calls)
	}
}

func TestDispatchNil(t *testing.T) {
	rec := &recordingRenderer{}
	if err := Dispatch(nil, rec); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("calls %v", rec.calls)
	}
}

func TestDispatchMalformedRoadmap(t *testing.T) {
	var r AIResponse
	if err := json.Unmarshal([]byte(`{"type":"roadmap"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rec := &recordingRenderer{}
	if err := Dispatch(&r, rec); err != nil {
		t.Fatalf("malformed roadmap must not fail dispatch: %v", err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "malformed" {
		t.Fatalf("calls %v", rec.calls)
	}
}

func TestDispatchUnknownType(t *testing.T) {
	rec := &recordingRenderer{}
	if err := Dispatch(&AIResponse{Type: "sonnet"}, rec); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if rec.calls[0] != "unknown:sonnet" {
		t.Fatalf("calls %v", rec.calls)
	}
	rec = &recordingRenderer{}
	_ = Dispatch(&AIResponse{}, rec)
	if rec.calls[0] != "unknown:unknown" {
		t.Fatalf("empty tag: %v", rec.calls)
	}
}

func TestDispatchOrchestratedOrder(t *testing.T) {
	payload := `{
		"type": "orchestrated_response",
		"overview_text": "two parts follow",
		"parts": [
			{"data": "A"},
			{"data": {"type": "bug_list", "bugs": []}}
		]
	}`
	var r AIResponse
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rec := &recordingRenderer{}
	if err := Dispatch(&r, rec); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	want := []string{"prose:two parts follow", "prose:A", "bugs:0"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls %v", rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("call %d: %q, want %q", i, rec.calls[i], want[i])
		}
	}
}

func TestDispatchDepthCap(t *testing.T) {
	// Build a chain nested past MaxDepth.
	inner := &AIResponse{Type: TypeOrchestrated, OverviewText: "leaf"}
	for i := 0; i < MaxDepth+2; i++ {
		inner = &AIResponse{Type: TypeOrchestrated, Parts: []Part{{Data: inner}}}
	}
	rec := &recordingRenderer{}
	err := Dispatch(inner, rec)
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("expected ErrTooDeep, got %v", err)
	}
}

func TestDispatchQAAndBrief(t *testing.T) {
	rec := &recordingRenderer{}
	qa := &AIResponse{Type: TypeQA, Answer: "use quarters", Evidence: []roadmap.Reference{{Source: "s"}}}
	if err := Dispatch(qa, rec); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	brief := &AIResponse{Type: TypeFeatureBrief, ProblemStatement: "onboarding drop-off"}
	if err := Dispatch(brief, rec); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if rec.calls[0] != "qa:use quarters" || rec.calls[1] != "brief:onboarding drop-off" {
		t.Fatalf("calls %v", rec.calls)
	}
}
