package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Session is the caller behind one console. It prints to its writer and
// remembers the context selected with "context use".
type Session struct {
	id   string
	name string

	mu      sync.Mutex
	out     io.Writer
	context string
}

// NewSession creates a session printing to out, starting in context.
func NewSession(name string, out io.Writer, context string) *Session {
	return &Session{
		id:      uuid.NewString(),
		name:    name,
		out:     out,
		context: context,
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Name returns the name the session's user is known by.
func (s *Session) Name() string {
	return s.name
}

// Print writes message followed by a newline.
func (s *Session) Print(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, message)
}

// SetOutput redirects the session, used once readline owns the terminal.
func (s *Session) SetOutput(out io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = out
}

// Context returns the selected context.
func (s *Session) Context() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.context
}

// SetContext selects a context.
func (s *Session) SetContext(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.context = name
}
