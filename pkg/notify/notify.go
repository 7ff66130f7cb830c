// Package notify is the toast-notification seam. On the old static site
// these were Bootstrap toasts; here the default sink logs them and keeps a
// short buffer so the web layer can hand pending toasts to the page.
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Severity of a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is one user-visible message.
type Notification struct {
	Message  string        `json:"message"`
	Severity Severity      `json:"severity"`
	Duration time.Duration `json:"duration"`
}

// Notifier presents notifications to the user.
type Notifier interface {
	Notify(message string, severity Severity, duration time.Duration)
}

// Buffer logs every notification and retains the most recent ones until
// they are drained by the presentation layer.
type Buffer struct {
	log     *zap.Logger
	mu      sync.Mutex
	pending []Notification
}

// NewBuffer returns a Buffer logging through log.
func NewBuffer(log *zap.Logger) *Buffer {
	return &Buffer{log: log}
}

func (b *Buffer) Notify(message string, severity Severity, duration time.Duration) {
	b.log.Info("notification",
		zap.String("severity", string(severity)),
		zap.String("message", message),
	)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, Notification{Message: message, Severity: severity, Duration: duration})
	if len(b.pending) > 20 {
		b.pending = b.pending[len(b.pending)-20:]
	}
}

// Drain returns and clears the pending notifications.
func (b *Buffer) Drain() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = nil
	return out
}

var _ Notifier = (*Buffer)(nil)
