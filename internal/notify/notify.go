// Package notify delivers short user-facing messages (login failures,
// cart updates, form confirmations) to whatever front end is attached.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/techmarket/internal/logging"
	"github.com/google/uuid"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// ParseKind maps a string to a Kind; unknown values become Info.
func ParseKind(s string) Kind {
	switch k := Kind(s); k {
	case Success, Error, Warning:
		return k
	default:
		return Info
	}
}

func (k Kind) Icon() string {
	switch k {
	case Success:
		return "✓"
	case Error:
		return "✗"
	case Warning:
		return "⚠"
	default:
		return "ℹ"
	}
}

type Notification struct {
	ID        string
	Kind      Kind
	Message   string
	CreatedAt time.Time
}

func newNotification(kind Kind, message string, now time.Time) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Kind:      ParseKind(string(kind)),
		Message:   message,
		CreatedAt: now,
	}
}

func (n Notification) String() string {
	return n.Kind.Icon() + " " + n.Message
}

type Notifier interface {
	Notify(kind Kind, message string)
}

// Console writes one line per notification to w and logs it with its id,
// so a message on screen can be matched to the surrounding log records.
type Console struct {
	mu     sync.Mutex
	w      io.Writer
	logger logging.Logger
	now    func() time.Time
}

func NewConsole(w io.Writer, logger logging.Logger) *Console {
	return &Console{w: w, logger: logger, now: time.Now}
}

func (c *Console) Notify(kind Kind, message string) {
	n := newNotification(kind, message, c.now())

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, n.String())
	c.logger.Debug(context.Background(), "notification shown",
		"id", n.ID, "kind", n.Kind, "message", n.Message, "created_at", n.CreatedAt)
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
	now   func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

func (r *Recorder) Notify(kind Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, newNotification(kind, message, r.now()))
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}
