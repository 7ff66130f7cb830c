// Package botdata holds the canonical static tables of the site chatbot:
// keyword sets, canned responses, and the suggestion and page maps. The
// tables existed in several drifting copies on the old site; this is the one
// copy everything reads.
package botdata

import "redhatters.link/models"

// TopicEntry binds a topic to its trigger keywords. Matching walks the
// table in order; the first topic with a keyword contained in the input
// wins, so order is part of the data.
type TopicEntry struct {
	Topic    string
	Keywords []string
}

// Greetings is shared by both audiences. It is checked only after the
// topic tables, so a greeting inside a topical question never shadows the
// topic.
var Greetings = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}

// PublicKnowledge is the visitor widget's topic table.
var PublicKnowledge = []TopicEntry{
	{Topic: "about", Keywords: []string{"what is", "tell me about", "about red hatters", "who are you", "mission"}},
	{Topic: "membership", Keywords: []string{"join", "membership", "become a member", "how to join", "benefits"}},
	{Topic: "events", Keywords: []string{"events", "activities", "meetings", "gatherings", "calendar"}},
	{Topic: "contact", Keywords: []string{"contact", "phone", "email", "address", "location", "where"}},
	{Topic: "help", Keywords: []string{"help", "support", "assistance", "questions"}},
	{Topic: "hoot_ideas", Keywords: []string{"ideas", "activities", "hoot ideas", "event ideas", "gathering ideas"}},
	{Topic: "crafts", Keywords: []string{"crafts", "crafting", "diy", "projects", "making"}},
	{Topic: "games", Keywords: []string{"games", "playing", "fun activities", "entertainment"}},
	{Topic: "printables", Keywords: []string{"printables", "downloads", "print", "materials"}},
}

// MemberKnowledge is the member widget's topic table.
var MemberKnowledge = []TopicEntry{
	{Topic: "account", Keywords: []string{"account", "profile", "settings", "password", "update"}},
	{Topic: "resources", Keywords: []string{"resources", "downloads", "handbook", "guides", "materials"}},
	{Topic: "chat", Keywords: []string{"chat", "discussions", "talk", "message", "conversation"}},
	{Topic: "events", Keywords: []string{"events", "activities", "meetings", "calendar", "rsvp"}},
	{Topic: "members", Keywords: []string{"find members", "member search", "directory", "other members"}},
	{Topic: "navigation", Keywords: []string{"navigation", "menu", "pages", "links", "site map"}},
	{Topic: "hoot_ideas", Keywords: []string{"ideas", "activities", "hoot ideas", "event ideas", "gathering ideas"}},
	{Topic: "crafts", Keywords: []string{"crafts", "crafting", "diy", "projects", "making"}},
	{Topic: "games", Keywords: []string{"games", "playing", "fun activities", "entertainment"}},
	{Topic: "printables", Keywords: []string{"printables", "downloads", "print", "materials"}},
	{Topic: "newsletter", Keywords: []string{"newsletter", "news", "updates", "subscribe"}},
	{Topic: "chapters", Keywords: []string{"chapters", "wa chapters", "local groups", "near me"}},
}

// Knowledge returns the topic table for an audience. Unknown audiences get
// the public table.
func Knowledge(audience models.Audience) []TopicEntry {
	if audience == models.AudienceMember {
		return MemberKnowledge
	}
	return PublicKnowledge
}
