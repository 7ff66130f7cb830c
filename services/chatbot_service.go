package services

import (
	"strings"

	"redhatters.link/botdata"
	"redhatters.link/models"
)

// IChatbotService maps free-text input to a canned response.
type IChatbotService interface {
	Match(text string, audience models.Audience) models.ResponseEntry
}

// ChatbotService walks the audience's topic table in definition order and
// answers with the first topic containing any keyword of the input. Matching
// is case-insensitive substring containment, not word matching, so "help"
// also triggers inside "helpful". A pure function of its static tables.
type ChatbotService struct{}

// NewChatbotService creates a ChatbotService.
func NewChatbotService() IChatbotService {
	return &ChatbotService{}
}

// Match always returns a usable entry: first topic hit, else the shared
// greeting list (both audiences use the visitor greeting vocabulary), else
// the audience default. Topics without a response entry degrade to default.
func (s *ChatbotService) Match(text string, audience models.Audience) models.ResponseEntry {
	lower := strings.ToLower(text)
	responses := botdata.Responses(audience)

	for _, entry := range botdata.Knowledge(audience) {
		if containsAny(lower, entry.Keywords) {
			if resp, ok := responses[entry.Topic]; ok {
				return resp
			}
			return responses[botdata.TopicDefault]
		}
	}

	if containsAny(lower, botdata.Greetings) {
		return responses[botdata.TopicGreeting]
	}

	return responses[botdata.TopicDefault]
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
