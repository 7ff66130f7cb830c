package botdata

import "redhatters.link/models"

// Topic keys that are not plain topics.
const (
	TopicGreeting = "greeting"
	TopicDefault  = "default"
)

// PublicResponses are the visitor widget's canned answers. Keys a knowledge
// topic lacks here (e.g. "help") degrade to the default entry.
var PublicResponses = map[string]models.ResponseEntry{
	TopicGreeting: {
		Message:     "Hello! Welcome to Red Hatters WA! I'm here to help you learn about our amazing community. What would you like to know?",
		Suggestions: []string{"Learn About Us", "Join Membership", "View Events", "Get Ideas", "Contact Us"},
	},
	"about": {
		Message:     "Red Hatters WA is a vibrant community of women over 50 who believe in fun, friendship, and frivolity! We're part of the international Red Hat Society, celebrating life with style, laughter, and purple hats. Our mission is to connect amazing women across Western Australia through social activities, events, and lifelong friendships.",
		Suggestions: []string{"View Benefits", "Join Membership", "Find Chapters", "Read FAQ"},
	},
	"membership": {
		Message:     "Becoming a Red Hatter is easy and rewarding! Members enjoy access to exclusive events, social gatherings, member resources, our online community, and the chance to make lifelong friendships. You can join by visiting our membership page or contacting us directly. We'd love to have you in our purple sisterhood!",
		Suggestions: []string{"Register Now", "View Benefits", "Contact Us", "Read FAQ"},
	},
	"events": {
		Message:     "We host wonderful events throughout Western Australia! From monthly social gatherings and themed parties to day trips, craft workshops, and special celebrations. Check our events calendar for upcoming activities, and feel free to contact us for more information about specific events.",
		Suggestions: []string{"View Events", "Get Ideas", "Find Chapters", "Contact Us"},
	},
	"contact": {
		Message:     "You can reach us through our contact form on the website, email us at info@redhatterswa.com.au, or call us. We're always happy to answer questions and help you get involved with our community!",
		Suggestions: []string{"Contact Form", "View Events", "Join Membership", "Read FAQ"},
	},
	"hoot_ideas": {
		Message:     "Looking for creative ideas for your next Red Hat gathering? We have a fantastic collection of activity ideas, themes, and event suggestions! From craft days to themed parties, there's something for everyone.",
		Suggestions: []string{"Browse Ideas", "View Crafts", "See Games", "Check Printables"},
	},
	"crafts": {
		Message:     "Crafting is a wonderful way to express creativity and bond with fellow Red Hatters! We have various craft projects, DIY ideas, and creative activities perfect for our community gatherings.",
		Suggestions: []string{"View Crafts", "Get Ideas", "Check Printables", "See Events"},
	},
	"games": {
		Message:     "Games and fun activities are at the heart of our Red Hat gatherings! We have a variety of games, entertainment ideas, and interactive activities to keep everyone engaged and having fun.",
		Suggestions: []string{"Play Games", "Get Ideas", "View Events", "Check Printables"},
	},
	"printables": {
		Message:     "We offer a range of printable materials including handbooks, guides, activity sheets, and resources to enhance your Red Hat experience. All available for easy download!",
		Suggestions: []string{"Browse Printables", "Get Ideas", "View Crafts", "Check Resources"},
	},
	TopicDefault: {
		Message:     "I'd be happy to help! You can ask me about Red Hatters WA, membership, events, or how to contact us. What would you like to know?",
		Suggestions: []string{"Learn About Us", "Join Membership", "View Events", "Get Ideas", "Contact Us"},
	},
}

// MemberResponses are the member widget's canned answers.
var MemberResponses = map[string]models.ResponseEntry{
	TopicGreeting: {
		Message:     "Welcome back! Great to see you again. How can I assist you with your member account today?",
		Suggestions: []string{"My Account", "View Events", "Find Members", "Browse Resources"},
	},
	"account": {
		Message:     "I can help you with your account settings! You can update your profile information, change your password, manage your privacy settings, and view your membership details. Use the tabs in your account page to navigate between different sections.",
		Suggestions: []string{"Open Account", "Update Profile", "Change Password", "View Settings"},
	},
	"resources": {
		Message:     "As a member, you have access to exclusive resources including our member handbook, craft guides, event materials, and printable resources. Check the Resources section in the navigation menu to explore all available materials.",
		Suggestions: []string{"Browse Resources", "Read Handbook", "View Crafts", "Check Printables"},
	},
	"chat": {
		Message:     "You can connect with other members through our chat rooms! Visit the Discussions page to join conversations, share ideas, or just chat with your fellow Red Hatters. It's a great way to stay connected between events.",
		Suggestions: []string{"Join Discussions", "Find Members", "View Events", "Share Ideas"},
	},
	"events": {
		Message:     "Check out our Events page for upcoming activities and gatherings! You can RSVP to events, see who else is attending, and get all the details you need. Don't forget to mark your calendar for our regular social meetings.",
		Suggestions: []string{"View Events", "Get Ideas", "Find Members", "Check Calendar"},
	},
	"members": {
		Message:     "Use the Member Search feature to find and connect with other Red Hatters in your area or with similar interests. You can search by location, interests, or browse through our member directory.",
		Suggestions: []string{"Search Members", "View Chapters", "Join Discussions", "Update Profile"},
	},
	"hoot_ideas": {
		Message:     "Looking for creative ideas for your next Red Hat gathering? We have a fantastic collection of activity ideas, themes, and event suggestions! From craft days to themed parties, there's something for everyone.",
		Suggestions: []string{"Browse Ideas", "View Crafts", "See Games", "Check Printables"},
	},
	"crafts": {
		Message:     "Crafting is a wonderful way to express creativity and bond with fellow Red Hatters! We have various craft projects, DIY ideas, and creative activities perfect for our community gatherings.",
		Suggestions: []string{"View Crafts", "Get Ideas", "Check Printables", "See Events"},
	},
	"games": {
		Message:     "Games and fun activities are at the heart of our Red Hat gatherings! We have a variety of games, entertainment ideas, and interactive activities to keep everyone engaged and having fun.",
		Suggestions: []string{"Play Games", "Get Ideas", "View Events", "Check Printables"},
	},
	"printables": {
		Message:     "We offer a range of printable materials including handbooks, guides, activity sheets, and resources to enhance your Red Hat experience. All available for easy download!",
		Suggestions: []string{"Browse Printables", "Get Ideas", "View Crafts", "Check Resources"},
	},
	"newsletter": {
		Message:     "Stay updated with our newsletter! Get the latest news, event announcements, member spotlights, and exclusive content delivered to your inbox.",
		Suggestions: []string{"Subscribe Newsletter", "View Events", "Check News", "Update Settings"},
	},
	"chapters": {
		Message:     "Find Red Hat chapters near you! We have chapters throughout Western Australia where you can connect with local members and participate in regional activities.",
		Suggestions: []string{"Find Chapters", "Search Members", "View Events", "Contact Us"},
	},
	"navigation": {
		Message:     "The website is designed to be easy to navigate! Use the main menu for general pages, and the Members/Resources dropdowns for member-exclusive content. Your Account page has all your personal settings and information.",
		Suggestions: []string{"My Account", "Browse Resources", "View Events", "Find Members"},
	},
	TopicDefault: {
		Message:     "I'm here to help with your member account and website navigation! You can ask me about account settings, member resources, events, finding other members, or how to use the website.",
		Suggestions: []string{"My Account", "View Events", "Find Members", "Browse Resources"},
	},
}

// Responses returns the response table for an audience.
func Responses(audience models.Audience) map[string]models.ResponseEntry {
	if audience == models.AudienceMember {
		return MemberResponses
	}
	return PublicResponses
}
