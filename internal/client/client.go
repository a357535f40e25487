// Package client talks to the PathPlan analysis backend. It is a thin
// boundary: two POST endpoints, JSON in and out, one timeout, no retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mistakeknot/pathplan/internal/response"
	"github.com/mistakeknot/pathplan/internal/session"
)

// EnvBackendURL overrides the configured backend URL when set.
const EnvBackendURL = "PATHPLAN_BACKEND_URL"

const defaultTimeout = 2 * time.Minute

// ErrIncompleteAnalysis reports an initial-analysis response missing one
// of its two required analyses.
var ErrIncompleteAnalysis = errors.New("client: analysis response missing prdAnalysis or feedbackAnalysis")

// ErrEmptyResult reports a generation response carrying no payload.
var ErrEmptyResult = errors.New("client: backend returned an empty or malformed response")

// BackendError is a non-2xx answer from the backend, with the error
// message the backend put in its body when there was one.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend error (%d)", e.StatusCode)
}

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// Client is the backend API client.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL. The PATHPLAN_BACKEND_URL
// environment variable, when set, wins over the argument.
func New(baseURL string, opts ...Option) *Client {
	if env := strings.TrimSpace(os.Getenv(EnvBackendURL)); env != "" {
		baseURL = env
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AnalysisRequest is the initial-analysis request body. PDF content
// arrives base64-encoded with IsPRDPDF set.
type AnalysisRequest struct {
	PRDContent      string `json:"prdContent"`
	FeedbackContent string `json:"feedbackContent"`
	IsPRDPDF        bool   `json:"isPrdPdf"`
}

// PRDAnalysis is the structured PRD summary for the right panel.
type PRDAnalysis struct {
	BulletPoints          []string `json:"bulletPoints"`
	KeyFeatures           []string `json:"keyFeatures"`
	SuccessMetrics        []string `json:"successMetrics"`
	TechnicalRequirements []string `json:"technicalRequirements"`
}

// FeedbackAnalysis is the sentiment breakdown of the uploaded feedback.
type FeedbackAnalysis struct {
	Total          int              `json:"total"`
	Positive       int              `json:"positive"`
	Negative       int              `json:"negative"`
	Neutral        int              `json:"neutral"`
	Summaries      FeedbackSummaries `json:"summaries"`
	CategoryCounts map[string]int   `json:"categoryCounts"`
}

// FeedbackSummaries groups the per-sentiment summary lines.
type FeedbackSummaries struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
	Neutral  []string `json:"neutral"`
}

// AnalysisResult is the successful initial-analysis payload.
type AnalysisResult struct {
	PRDAnalysis                 *PRDAnalysis      `json:"prdAnalysis"`
	FeedbackAnalysis            *FeedbackAnalysis `json:"feedbackAnalysis"`
	PRDDownloadableSummary      string            `json:"prdDownloadableSummary"`
	FeedbackDownloadableSummary string            `json:"feedbackDownloadableSummary"`
}

// InitialAnalysis runs the two uploaded documents through the backend.
// A response missing either analysis is reported as an error, never a
// crash; the session simply stays on the upload screen.
func (c *Client) InitialAnalysis(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	var result AnalysisResult
	if err := c.post(ctx, "/initial-analysis", req, &result); err != nil {
		return nil, err
	}
	if result.PRDAnalysis == nil || result.FeedbackAnalysis == nil {
		return nil, ErrIncompleteAnalysis
	}
	return &result, nil
}

// wireMessage is the chat history entry shape the backend expects.
type wireMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
	Type    string `json:"type,omitempty"`
}

type generateRequest struct {
	Prompt      string        `json:"prompt"`
	ChatHistory []wireMessage `json:"chatHistory"`
}

type generateResult struct {
	// The field is named roadmap for historical reasons; it holds any
	// response variant.
	Roadmap *response.AIResponse `json:"roadmap"`
}

// GenerateRoadmap sends the prompt plus the conversation so far and
// returns the artifact the backend answered with.
func (c *Client) GenerateRoadmap(ctx context.Context, prompt string, history []session.Message) (*response.AIResponse, error) {
	req := generateRequest{Prompt: prompt, ChatHistory: make([]wireMessage, 0, len(history))}
	for _, msg := range history {
		wm := wireMessage{Role: string(msg.Role)}
		if msg.Artifact != nil {
			wm.Content = msg.Artifact
			wm.Type = msg.Artifact.Type
		} else {
			wm.Content = msg.Text
		}
		req.ChatHistory = append(req.ChatHistory, wm)
	}
	var result generateResult
	if err := c.post(ctx, "/generate-roadmap", req, &result); err != nil {
		return nil, err
	}
	if result.Roadmap == nil {
		return nil, ErrEmptyResult
	}
	return result.Roadmap, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("reach backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &BackendError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage pulls the backend's error field out of a failure body,
// falling back to the raw text.
func errorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}
