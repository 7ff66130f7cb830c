package services

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"redhatters.link/models"
	"redhatters.link/pkg/clock"

	"github.com/google/uuid"
)

// Simulated typing latency: a bot response lands after a random delay in
// [1s, 2s).
const (
	responseDelayBase   = time.Second
	responseDelayJitter = time.Second
)

// IChatService hands out chat widgets, one per profile and audience.
type IChatService interface {
	Widget(profileID string, audience models.Audience) *ChatWidget
	Shutdown()
}

// ChatService owns the widget instances.
type ChatService struct {
	matcher IChatbotService
	clock   clock.Clock
	delayFn func() time.Duration

	mu      sync.Mutex
	widgets map[string]*ChatWidget
}

// NewChatService wires a ChatService.
func NewChatService(matcher IChatbotService, clk clock.Clock) *ChatService {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &ChatService{
		matcher: matcher,
		clock:   clk,
		delayFn: func() time.Duration {
			return responseDelayBase + time.Duration(rng.Int63n(int64(responseDelayJitter)))
		},
		widgets: make(map[string]*ChatWidget),
	}
}

// Widget returns the profile's widget for an audience, creating it on first
// use.
func (s *ChatService) Widget(profileID string, audience models.Audience) *ChatWidget {
	key := profileID + "/" + string(audience)
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.widgets[key]; ok {
		return w
	}
	w := newChatWidget(audience, s.matcher, s.clock, s.delayFn)
	s.widgets[key] = w
	return w
}

// Shutdown cancels pending responses of every widget.
func (s *ChatService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.widgets {
		w.Close()
	}
}

var _ IChatService = (*ChatService)(nil)

// ChatWidget is one chat window: an open/closed toggle and an append-only
// transcript. A send inserts a typing placeholder and schedules the bot
// response as a cancellable delayed task; at most one response is in flight,
// further sends queue in order. This replaces the old fire-and-forget
// timers, whose interleaving could answer rapid double-submits out of order.
type ChatWidget struct {
	audience models.Audience
	matcher  IChatbotService
	clock    clock.Clock
	delayFn  func() time.Duration

	mu         sync.Mutex
	open       bool
	transcript []models.ChatMessage
	pending    clock.Timer
	typingID   string
	queue      []string
}

func newChatWidget(audience models.Audience, matcher IChatbotService, clk clock.Clock, delayFn func() time.Duration) *ChatWidget {
	return &ChatWidget{audience: audience, matcher: matcher, clock: clk, delayFn: delayFn}
}

// Toggle flips visibility and returns the new state. Hiding the widget does
// not cancel a pending response; the transcript keeps growing.
func (w *ChatWidget) Toggle() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = !w.open
	return w.open
}

// IsOpen reports visibility.
func (w *ChatWidget) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// Send submits user text. Empty or whitespace-only input is rejected with
// no transcript change. The response arrives after the simulated typing
// delay; while one is pending, further sends wait in a FIFO queue.
func (w *ChatWidget) Send(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.transcript = append(w.transcript, models.ChatMessage{
		ID:     uuid.NewString(),
		Sender: models.SenderUser,
		Text:   text,
		SentAt: w.clock.Now(),
	})

	if w.pending != nil {
		w.queue = append(w.queue, text)
		return true
	}
	w.dispatchLocked(text)
	return true
}

// Transcript returns a copy of the messages, placeholder included.
func (w *ChatWidget) Transcript() []models.ChatMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.ChatMessage, len(w.transcript))
	copy(out, w.transcript)
	return out
}

// Close cancels pending work: the delayed response is stopped, the typing
// placeholder removed and the queue dropped. The transcript itself stays.
func (w *ChatWidget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
		w.removeTypingLocked()
	}
	w.queue = nil
	w.open = false
}

// dispatchLocked inserts the typing placeholder and schedules the response.
// Caller holds w.mu.
func (w *ChatWidget) dispatchLocked(text string) {
	w.typingID = uuid.NewString()
	w.transcript = append(w.transcript, models.ChatMessage{
		ID:     w.typingID,
		Sender: models.SenderBot,
		Typing: true,
		SentAt: w.clock.Now(),
	})
	w.pending = w.clock.AfterFunc(w.delayFn(), func() {
		w.respond(text)
	})
}

func (w *ChatWidget) respond(text string) {
	resp := w.matcher.Match(text, w.audience)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		// Cancelled between firing and acquiring the lock.
		return
	}
	w.pending = nil
	w.removeTypingLocked()
	w.transcript = append(w.transcript, models.ChatMessage{
		ID:       uuid.NewString(),
		Sender:   models.SenderBot,
		Text:     resp.Message,
		Response: &resp,
		SentAt:   w.clock.Now(),
	})

	if len(w.queue) > 0 {
		next := w.queue[0]
		w.queue = w.queue[1:]
		w.dispatchLocked(next)
	}
}

func (w *ChatWidget) removeTypingLocked() {
	if w.typingID == "" {
		return
	}
	for i, m := range w.transcript {
		if m.ID == w.typingID {
			w.transcript = append(w.transcript[:i], w.transcript[i+1:]...)
			break
		}
	}
	w.typingID = ""
}
