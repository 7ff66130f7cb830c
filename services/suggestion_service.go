package services

import (
	"redhatters.link/botdata"
	"redhatters.link/models"
)

// ISuggestionService resolves a clicked suggestion label.
type ISuggestionService interface {
	Resolve(label string) models.SuggestionAction
}

// SuggestionService resolves labels against the static suggestion and page
// tables.
type SuggestionService struct{}

// NewSuggestionService creates a SuggestionService.
func NewSuggestionService() ISuggestionService {
	return &SuggestionService{}
}

// Resolve returns a navigation when the label maps to a topic with a page;
// every other label is handed back for re-submission through the chat
// pipeline, as if the user had typed it.
func (s *SuggestionService) Resolve(label string) models.SuggestionAction {
	if topic, ok := botdata.SuggestionTopics[label]; ok {
		if page, ok := botdata.PageMap[topic]; ok {
			return models.SuggestionAction{Kind: models.ActionNavigate, Page: page}
		}
	}
	return models.SuggestionAction{Kind: models.ActionResubmit, Text: label}
}
