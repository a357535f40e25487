// Package session owns the mutable state of one analysis session: the UI
// stage, the append-only chat history, panel visibility, and which
// artifact is currently displayed. All mutation goes through explicit
// commands; nothing outside this package writes the state.
package session

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mistakeknot/pathplan/internal/response"
)

// Stage is the active UI surface.
type Stage int

const (
	// StageUpload is the document-upload screen shown until the initial
	// analysis succeeds.
	StageUpload Stage = iota
	// StageMain is the three-column view. Entered exactly once; there is
	// no way back to the upload screen within a session.
	StageMain
)

// Role of a chat message author.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// Message is one entry of the chat transcript. AI messages carry either
// prose (Text set) or a typed artifact. Messages are never mutated after
// append.
type Message struct {
	Role     Role
	Text     string
	Artifact *response.AIResponse
}

// IsArtifact reports whether the message holds a typed (non-prose)
// artifact eligible for detail viewing.
func (m Message) IsArtifact() bool {
	return m.Role == RoleAI && m.Artifact != nil && !m.Artifact.IsText()
}

var (
	// ErrEmptyPrompt rejects blank prompts before any request is issued.
	ErrEmptyPrompt = errors.New("session: prompt is empty")
	// ErrRequestInFlight rejects a submission while one is outstanding.
	ErrRequestInFlight = errors.New("session: a generation request is already in flight")
	// ErrNotArtifact rejects detail-view selection of prose messages.
	ErrNotArtifact = errors.New("session: message holds no viewable artifact")
	// ErrNoSuchMessage rejects selection of an out-of-range index.
	ErrNoSuchMessage = errors.New("session: no such message")
)

// Session is the single-writer state machine. It is not safe for
// concurrent use; callers introducing parallel requests must serialize
// commands to keep append ordering and the latest-wins rule intact.
type Session struct {
	id                   string
	stage                Stage
	history              []Message
	selected             *response.AIResponse
	leftVisible          bool
	rightVisible         bool
	conversationExpanded bool
	awaiting             bool
}

// New creates a fresh session on the upload stage.
func New() *Session {
	return &Session{
		id:                   uuid.NewString(),
		stage:                StageUpload,
		rightVisible:         true,
		conversationExpanded: true,
	}
}

func (s *Session) ID() string    { return s.id }
func (s *Session) Stage() Stage  { return s.stage }
func (s *Session) Awaiting() bool { return s.awaiting }

// History returns a copy of the transcript.
func (s *Session) History() []Message {
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) Len() int { return len(s.history) }

// Selected returns the artifact shown in the detail view, or nil.
func (s *Session) Selected() *response.AIResponse { return s.selected }

func (s *Session) LeftVisible() bool          { return s.leftVisible }
func (s *Session) RightVisible() bool         { return s.rightVisible }
func (s *Session) ConversationExpanded() bool { return s.conversationExpanded }

// CompleteAnalysis moves the session to the main view. The transition
// fires once; repeat calls are no-ops.
func (s *Session) CompleteAnalysis() {
	s.stage = StageMain
}

// SubmitPrompt validates and appends the user's prompt, then marks a
// generation request outstanding. Empty prompts and overlapping requests
// are rejected with the state unchanged.
func (s *Session) SubmitPrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	if s.awaiting {
		return ErrRequestInFlight
	}
	s.append(Message{Role: RoleUser, Text: prompt})
	s.awaiting = true
	return nil
}

// ResolveArtifact delivers a successful generation result. When the user
// is not viewing the full conversation, the newest artifact wins the
// detail view; an explicit ViewDetails selection made afterwards still
// overrides it.
func (s *Session) ResolveArtifact(artifact *response.AIResponse) {
	s.awaiting = false
	if artifact == nil {
		return
	}
	if artifact.IsText() {
		s.append(Message{Role: RoleAI, Text: artifact.Prose()})
		return
	}
	s.append(Message{Role: RoleAI, Artifact: artifact})
	if !s.conversationExpanded {
		s.selected = artifact
	}
}

// ResolveError delivers a failed generation as a prose AI message. The
// selected artifact is never touched by failures.
func (s *Session) ResolveError(description string) {
	s.awaiting = false
	s.append(Message{Role: RoleAI, Text: "Error: " + description})
}

// ViewDetails selects the artifact of a historical AI message and
// collapses the conversation. Explicit selection always wins over the
// latest-wins rule, regardless of recency.
func (s *Session) ViewDetails(index int) error {
	if index < 0 || index >= len(s.history) {
		return ErrNoSuchMessage
	}
	msg := s.history[index]
	if !msg.IsArtifact() {
		return ErrNotArtifact
	}
	s.selected = msg.Artifact
	s.conversationExpanded = false
	return nil
}

// ExpandConversation returns to the full chat view, keeping the selection
// for when the user collapses again.
func (s *Session) ExpandConversation() { s.conversationExpanded = true }

// CollapseConversation switches to the single-artifact detail view.
func (s *Session) CollapseConversation() { s.conversationExpanded = false }

func (s *Session) ToggleLeftPanel()  { s.leftVisible = !s.leftVisible }
func (s *Session) ToggleRightPanel() { s.rightVisible = !s.rightVisible }

// ClearHistory resets the conversation: transcript emptied, left panel
// hidden, conversation re-expanded, selection cleared. The stage is
// untouched; a cleared session stays on the main view.
func (s *Session) ClearHistory() {
	s.history = nil
	s.leftVisible = false
	s.conversationExpanded = true
	s.selected = nil
	s.awaiting = false
}

func (s *Session) append(msg Message) {
	wasEmpty := len(s.history) == 0
	s.history = append(s.history, msg)
	if wasEmpty {
		s.leftVisible = true
	}
}
