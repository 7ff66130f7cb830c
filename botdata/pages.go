package botdata

// PageMap resolves a topic key to its page.
var PageMap = map[string]string{
	"about":       "about-us.html",
	"benefits":    "benefits.html",
	"membership":  "register.html",
	"events":      "events.html",
	"contact":     "contact-us.html",
	"resources":   "resources.html",
	"hoot_ideas":  "hoot-ideas.html",
	"crafts":      "crafts.html",
	"games":       "games.html",
	"printables":  "printables.html",
	"newsletter":  "newsletter.html",
	"chapters":    "wa-chapters.html",
	"account":     "account.html",
	"discussions": "discussions.html",
	"members":     "member-search.html",
	"handbook":    "member-handbook.html",
	"faq":         "faq.html",
	"donate":      "donate.html",
}

// SuggestionTopics maps a suggestion button label to a topic key. Labels
// absent here are re-submitted through the chat pipeline instead.
var SuggestionTopics = map[string]string{
	"Learn About Us":       "about",
	"Join Membership":      "membership",
	"View Events":          "events",
	"Get Ideas":            "hoot_ideas",
	"Contact Us":           "contact",
	"View Benefits":        "benefits",
	"Find Chapters":        "chapters",
	"Read FAQ":             "faq",
	"Register Now":         "membership",
	"Contact Form":         "contact",
	"Browse Ideas":         "hoot_ideas",
	"View Crafts":          "crafts",
	"See Games":            "games",
	"Check Printables":     "printables",
	"My Account":           "account",
	"Find Members":         "members",
	"Browse Resources":     "resources",
	"Open Account":         "account",
	"Update Profile":       "account",
	"Change Password":      "account",
	"View Settings":        "account",
	"Read Handbook":        "handbook",
	"Join Discussions":     "discussions",
	"Search Members":       "members",
	"Subscribe Newsletter": "newsletter",
	"Check News":           "newsletter",
	"Update Settings":      "account",
	"Play Games":           "games",
	"Check Calendar":       "events",
	"Share Ideas":          "hoot_ideas",
	"Check Resources":      "resources",
}
