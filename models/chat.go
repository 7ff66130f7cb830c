package models

import "time"

// Audience selects which chatbot variant answers: the public widget for
// visitors or the member widget behind the login.
type Audience string

const (
	AudiencePublic Audience = "public"
	AudienceMember Audience = "member"
)

// Valid reports whether the value names a known audience.
func (a Audience) Valid() bool {
	return a == AudiencePublic || a == AudienceMember
}

// ResponseEntry is a canned chatbot answer plus its follow-up suggestions.
type ResponseEntry struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// ChatSender distinguishes transcript authorship.
type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderBot  ChatSender = "bot"
)

// ChatMessage is one transcript entry of a chat widget. Typing marks the
// transient placeholder shown while a response is pending.
type ChatMessage struct {
	ID       string         `json:"id"`
	Sender   ChatSender     `json:"sender"`
	Text     string         `json:"text"`
	Response *ResponseEntry `json:"response,omitempty"`
	Typing   bool           `json:"typing,omitempty"`
	SentAt   time.Time      `json:"sentAt"`
}

// SuggestionActionKind tells the caller what a clicked suggestion does.
type SuggestionActionKind string

const (
	ActionNavigate SuggestionActionKind = "navigate"
	ActionResubmit SuggestionActionKind = "resubmit"
)

// SuggestionAction is the resolution of a suggestion label: either navigate
// to a page or feed the label back through the chat pipeline.
type SuggestionAction struct {
	Kind SuggestionActionKind `json:"kind"`
	Page string               `json:"page,omitempty"`
	Text string               `json:"text,omitempty"`
}
