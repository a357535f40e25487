package export

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mistakeknot/pathplan/internal/response"
)

var exportTime = time.Date(2025, time.September, 1, 10, 30, 0, 0, time.UTC)

func TestFilename(t *testing.T) {
	if got := Filename("roadmap", exportTime); got != "pathplan_roadmap_20250901T103000.yaml" {
		t.Fatalf("got %q", got)
	}
	if got := Filename("", exportTime); !strings.HasPrefix(got, "pathplan_output_") {
		t.Fatalf("got %q", got)
	}
}

func TestRenderArtifactKeepsAllFields(t *testing.T) {
	var art response.AIResponse
	payload := `{"type":"bug_list","summary":"two bugs","bugs":[{"description":"crash","impact":"high","extra":"kept"}]}`
	if err := json.Unmarshal([]byte(payload), &art); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := Render(&art, "sess-1", exportTime)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)
	for _, want := range []string{"type: bug_list", "crash", "extra: kept", "session: sess-1", "2025-09-01T10:30:00Z"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}
}

func TestRenderProse(t *testing.T) {
	out, err := Render(response.Text("hello there"), "", exportTime)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "type: prose") || !strings.Contains(string(out), "hello there") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestRenderNil(t *testing.T) {
	if _, err := Render(nil, "", exportTime); err == nil {
		t.Fatalf("expected error")
	}
}

func TestWriteCreatesFile(t *testing.T) {
	dir := t.TempDir()
	var art response.AIResponse
	_ = json.Unmarshal([]byte(`{"type":"strategic_summary","summary":"s"}`), &art)
	path, err := Write(dir, &art, "sess", exportTime)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "strategic_summary") {
		t.Fatalf("content:\n%s", data)
	}
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteSummary(dir, "prd_summary.md", "# Summary")
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "# Summary" {
		t.Fatalf("content %q", data)
	}
}
