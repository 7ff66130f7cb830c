package services

import (
	"testing"

	"redhatters.link/botdata"
	"redhatters.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchGreeting(t *testing.T) {
	matcher := NewChatbotService()

	resp := matcher.Match("hello", models.AudiencePublic)
	assert.Equal(t, botdata.PublicResponses[botdata.TopicGreeting], resp)

	// Case-insensitive.
	upper := matcher.Match("HELLO THERE", models.AudiencePublic)
	assert.Equal(t, resp, upper)
}

func TestMatchMemberGreetingUsesSharedVocabulary(t *testing.T) {
	matcher := NewChatbotService()

	// The member table has no greeting topic of its own; the shared list
	// still triggers the member greeting text.
	resp := matcher.Match("good morning", models.AudienceMember)
	assert.Equal(t, botdata.MemberResponses[botdata.TopicGreeting], resp)
}

func TestMatchTopicFirstWins(t *testing.T) {
	matcher := NewChatbotService()

	resp := matcher.Match("how do I join?", models.AudiencePublic)
	assert.Equal(t, botdata.PublicResponses["membership"], resp)

	// "activities" belongs to both events and hoot_ideas; events is defined
	// first and wins.
	resp = matcher.Match("any activities coming up?", models.AudiencePublic)
	assert.Equal(t, botdata.PublicResponses["events"], resp)
}

func TestMatchSubstringNotWordBoundary(t *testing.T) {
	matcher := NewChatbotService()

	// "help" matches inside "helpful"; the help topic has no response
	// entry, so it degrades to the default.
	resp := matcher.Match("you are very helpful", models.AudiencePublic)
	assert.Equal(t, botdata.PublicResponses[botdata.TopicDefault], resp)
}

func TestMatchUnknownFallsBackToDefault(t *testing.T) {
	matcher := NewChatbotService()

	resp := matcher.Match("xyzzy-no-such-word", models.AudiencePublic)
	assert.Equal(t, botdata.PublicResponses[botdata.TopicDefault], resp)

	resp = matcher.Match("xyzzy-no-such-word", models.AudienceMember)
	assert.Equal(t, botdata.MemberResponses[botdata.TopicDefault], resp)
}

func TestMatchAlwaysUsable(t *testing.T) {
	matcher := NewChatbotService()

	inputs := []string{"", "   ", "hello", "rsvp please", "?!.", "crafts and games"}
	for _, audience := range []models.Audience{models.AudiencePublic, models.AudienceMember} {
		for _, input := range inputs {
			resp := matcher.Match(input, audience)
			require.NotEmpty(t, resp.Message, "input %q audience %q", input, audience)
			require.NotNil(t, resp.Suggestions)
		}
	}
}

func TestMemberAudienceGetsMemberTable(t *testing.T) {
	matcher := NewChatbotService()

	resp := matcher.Match("change my password", models.AudienceMember)
	assert.Equal(t, botdata.MemberResponses["account"], resp)

	// The same text on the public widget has no account topic and falls
	// through to default.
	resp = matcher.Match("change my password", models.AudiencePublic)
	assert.Equal(t, botdata.PublicResponses[botdata.TopicDefault], resp)
}
