// Package navigate is the page-navigation seam, standing in for
// window.location on the old site.
package navigate

import (
	"sync"

	"go.uber.org/zap"
)

// Navigator sends the user to a page.
type Navigator interface {
	Navigate(page string)
}

// Recorder remembers the last requested navigation so the web layer can
// turn it into a redirect, and logs each one.
type Recorder struct {
	log  *zap.Logger
	mu   sync.Mutex
	last string
}

// NewRecorder returns a Recorder logging through log.
func NewRecorder(log *zap.Logger) *Recorder {
	return &Recorder{log: log}
}

func (r *Recorder) Navigate(page string) {
	r.log.Info("navigate", zap.String("page", page))
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = page
}

// Last returns the most recent navigation target, empty when none happened.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

var _ Navigator = (*Recorder)(nil)
