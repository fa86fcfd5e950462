// ABOUTME: Conversation session owning message history and the turn lifecycle.
// ABOUTME: Idle → AwaitingResponse → Idle with a hard single-flight guard.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/harperreed/ticbuddy/internal/intent"
	"github.com/harperreed/ticbuddy/internal/models"
	"github.com/harperreed/ticbuddy/internal/program"
	"github.com/harperreed/ticbuddy/internal/prompt"
	"github.com/harperreed/ticbuddy/internal/storage"
)

// State is the session's turn state.
type State int

const (
	StateIdle State = iota
	StateAwaitingResponse
)

// ErrBusy is returned when a send is attempted while a request is
// already in flight. Overlapping sends are rejected, never raced.
var ErrBusy = errors.New("a request is already in flight")

// requestWindow bounds how many trailing messages are sent per
// request. The persisted window is storage.HistoryLimit.
const requestWindow = 20

// TurnResult reports what one completed turn produced.
type TurnResult struct {
	// Reply is the assistant text with any log tag stripped, or the
	// apologetic message when the turn failed.
	Reply string

	// LoggedEntry is the tic entry auto-logged from the reply's tag,
	// nil when the reply carried none.
	LoggedEntry *models.TicEntry

	// Failed is true when the transport failed and Reply is an
	// apology carrying the diagnostic.
	Failed bool
}

// Session drives conversation turns against a Transport, auto-logging
// tic entries the assistant signals and keeping the history window
// persisted.
type Session struct {
	mu        sync.Mutex
	state     State
	transport Transport
	repo      storage.Repository
	composer  *prompt.Composer
	scheduler *program.Scheduler
	messages  []models.ChatMessage
	now       func() time.Time
}

// NewSession creates a session over the given store and transport,
// restoring persisted history. An empty history gets a welcome message
// derived from the profile's recommended phase.
func NewSession(repo storage.Repository, transport Transport) (*Session, error) {
	s := &Session{
		state:     StateIdle,
		transport: transport,
		repo:      repo,
		composer:  prompt.NewComposer(),
		scheduler: program.NewScheduler(repo),
		now:       time.Now,
	}

	history, err := repo.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	s.messages = history

	if len(s.messages) == 0 {
		if err := s.addWelcomeMessage(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WithClock overrides the session's clock. Intended for tests.
func (s *Session) WithClock(now func() time.Time) *Session {
	s.now = now
	s.composer.WithClock(now)
	s.scheduler.WithClock(now)
	return s
}

// Messages returns a copy of the in-memory history.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// CurrentState returns the session's turn state.
func (s *Session) CurrentState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SendTurn runs one conversation turn. Empty input (after trimming) is
// silently ignored and returns a nil result. A turn attempted while
// another is in flight returns ErrBusy. Transport failures do not
// return an error; they surface as an apologetic reply in the result.
// A canceled context skips the whole post-response pipeline, so no
// partial entry or message write is ever applied.
func (s *Session) SendTurn(ctx context.Context, userText string) (*TurnResult, error) {
	text := strings.TrimSpace(userText)
	if text == "" {
		return nil, nil
	}

	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.state = StateAwaitingResponse

	profile, err := s.repo.LoadProfile()
	if err != nil {
		s.state = StateIdle
		s.mu.Unlock()
		return nil, fmt.Errorf("load profile: %w", err)
	}

	userMsg := newMessageAt(models.RoleUser, text, s.now())
	s.messages = append(s.messages, userMsg)
	req := Request{
		Messages:     s.outboundWindow(),
		SystemPrompt: s.composer.Build(profile),
	}
	s.mu.Unlock()

	raw, err := s.transport.Complete(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		apology := fmt.Sprintf("Oops! I had a little glitch. 🤖 Try again? %v", err)
		s.messages = append(s.messages, newMessageAt(models.RoleAssistant, apology, s.now()))
		return &TurnResult{Reply: apology, Failed: true}, nil
	}

	result := &TurnResult{}
	if in := intent.Extract(raw); in != nil {
		entry := in.ToEntry().WithDate(s.now())
		if err := s.repo.AppendEntry(entry); err != nil {
			return nil, fmt.Errorf("append auto-logged entry: %w", err)
		}
		result.LoggedEntry = entry
	}

	result.Reply = intent.Strip(raw)
	s.messages = append(s.messages, newMessageAt(models.RoleAssistant, result.Reply, s.now()))

	if err := s.repo.SaveHistory(s.messages); err != nil {
		return nil, fmt.Errorf("save history: %w", err)
	}
	if _, _, err := s.scheduler.AdvanceIfNeeded(profile); err != nil {
		return nil, fmt.Errorf("advance phase: %w", err)
	}

	return result, nil
}

// ClearHistory wipes persisted and in-memory history and reposts the
// welcome message.
func (s *Session) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.ClearHistory(); err != nil {
		return err
	}
	s.messages = nil
	return s.addWelcomeMessage()
}

// outboundWindow is the last requestWindow messages of prior history
// oldest-first, plus the just-appended user message. Callers hold the
// lock.
func (s *Session) outboundWindow() []Message {
	prior := s.messages[:len(s.messages)-1]
	if len(prior) > requestWindow {
		prior = prior[len(prior)-requestWindow:]
	}
	out := make([]Message, 0, len(prior)+1)
	for _, m := range prior {
		out = append(out, Message{Role: string(m.Role), Content: m.Content})
	}
	latest := s.messages[len(s.messages)-1]
	out = append(out, Message{Role: string(latest.Role), Content: latest.Content})
	return out
}

// addWelcomeMessage appends the greeting for an empty history.
// Callers either hold the lock or are still constructing the session.
func (s *Session) addWelcomeMessage() error {
	profile, err := s.repo.LoadProfile()
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	name := profile.Name
	if name == "" {
		name = "there"
	}
	phase := program.RecommendedPhaseFor(profile, s.now())
	welcome := fmt.Sprintf("Hi %s! 👋 I'm TicBuddy, your tic-fighting sidekick! 🦸\n\n%s\n\nYou can tell me about any tics you notice, and I'll help you log them. Or just chat — I'm here! 😊\n\nWhat's going on today?",
		name, phase.GoalText())
	s.messages = append(s.messages, newMessageAt(models.RoleAssistant, welcome, s.now()))
	return nil
}

func newMessageAt(role models.Role, content string, at time.Time) models.ChatMessage {
	m := models.NewChatMessage(role, content)
	m.Timestamp = at
	return m
}
