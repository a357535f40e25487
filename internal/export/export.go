// Package export writes artifacts to disk as human-readable YAML, for
// the user-initiated download action.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mistakeknot/pathplan/internal/response"
)

const filenameTimeLayout = "20060102T150405"

// Filename builds the export file name from the artifact's type tag and
// the generation timestamp.
func Filename(typeTag string, now time.Time) string {
	tag := strings.TrimSpace(typeTag)
	if tag == "" {
		tag = "output"
	}
	return fmt.Sprintf("pathplan_%s_%s.yaml", tag, now.Format(filenameTimeLayout))
}

type document struct {
	Type        string `yaml:"type"`
	GeneratedAt string `yaml:"generated_at"`
	Session     string `yaml:"session,omitempty"`
	Content     any    `yaml:"content"`
}

// Render serializes an artifact to YAML. The typed payload is re-decoded
// from its raw JSON so the export carries every field the backend sent,
// not just the ones the views use.
func Render(artifact *response.AIResponse, sessionID string, now time.Time) ([]byte, error) {
	if artifact == nil {
		return nil, fmt.Errorf("export: nothing to export")
	}
	doc := document{
		Type:        artifact.Type,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Session:     sessionID,
	}
	if artifact.IsText() {
		doc.Type = "prose"
		doc.Content = artifact.Prose()
	} else if raw := artifact.Raw(); len(raw) > 0 {
		var content any
		if err := json.Unmarshal(raw, &content); err != nil {
			return nil, fmt.Errorf("export: decode artifact: %w", err)
		}
		doc.Content = content
	} else {
		doc.Content = artifact
	}
	return yaml.Marshal(doc)
}

// Write renders the artifact into dir and returns the file path.
func Write(dir string, artifact *response.AIResponse, sessionID string, now time.Time) (string, error) {
	data, err := Render(artifact, sessionID, now)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, Filename(artifact.Type, now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}

// WriteSummary saves one of the downloadable markdown summaries from the
// initial analysis.
func WriteSummary(dir, name, content string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}
