package services

import (
	"testing"

	"redhatters.link/botdata"
	"redhatters.link/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveNavigation(t *testing.T) {
	router := NewSuggestionService()

	action := router.Resolve("View Events")
	assert.Equal(t, models.ActionNavigate, action.Kind)
	assert.Equal(t, "events.html", action.Page)

	action = router.Resolve("Read Handbook")
	assert.Equal(t, models.ActionNavigate, action.Kind)
	assert.Equal(t, "member-handbook.html", action.Page)
}

func TestResolveViewChaptersResubmits(t *testing.T) {
	router := NewSuggestionService()

	// "View Chapters" is offered as a suggestion but deliberately absent
	// from the label table: it re-enters the chat pipeline and gets the
	// chapters response in-chat, while "Find Chapters" navigates.
	action := router.Resolve("View Chapters")
	assert.Equal(t, models.ActionResubmit, action.Kind)
	assert.Equal(t, "View Chapters", action.Text)

	action = router.Resolve("Find Chapters")
	assert.Equal(t, models.ActionNavigate, action.Kind)
	assert.Equal(t, "wa-chapters.html", action.Page)
}

func TestResolveUnmappedLabelResubmits(t *testing.T) {
	router := NewSuggestionService()

	action := router.Resolve("some unmapped label")
	assert.Equal(t, models.ActionResubmit, action.Kind)
	assert.Equal(t, "some unmapped label", action.Text)
	assert.Empty(t, action.Page)
}

func TestEverySuggestionLabelResolves(t *testing.T) {
	router := NewSuggestionService()

	// Every suggestion offered by a response table must either navigate or
	// come back as a resubmittable phrase; none may dead-end.
	for _, table := range []map[string]models.ResponseEntry{botdata.PublicResponses, botdata.MemberResponses} {
		for topic, entry := range table {
			for _, label := range entry.Suggestions {
				action := router.Resolve(label)
				switch action.Kind {
				case models.ActionNavigate:
					assert.NotEmpty(t, action.Page, "topic %s label %q", topic, label)
				case models.ActionResubmit:
					assert.Equal(t, label, action.Text, "topic %s label %q", topic, label)
				default:
					t.Fatalf("topic %s label %q: unexpected action %v", topic, label, action.Kind)
				}
			}
		}
	}
}
