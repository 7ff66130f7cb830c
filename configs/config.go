package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment names. The fallback environment routes form traffic to the
// Formspree relay instead of the first-party API.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvFallback    = "fallback"
)

// Session timing. The inactivity window is fixed at 30 minutes with a
// warning 5 minutes before expiry; protected pages redirect after 2 seconds.
const (
	SessionTimeout        = 30 * time.Minute
	SessionWarningLead    = 5 * time.Minute
	ProtectedRedirectWait = 2 * time.Second
)

// EmailDomain is appended to the username to derive the demo member email.
const EmailDomain = "redhatterswa.com.au"

// ToastDuration is how long a notification stays visible.
const ToastDuration = 5 * time.Second

// AppConfig carries the per-process settings read from the environment.
type AppConfig struct {
	Env    string
	Port   string
	APIURL string
}

// FormEndpoints maps a form type to its first-party API path.
var FormEndpoints = map[string]string{
	"contact":         "/api/contact",
	"newsletter":      "/api/newsletter",
	"registration":    "/api/registration",
	"profile":         "/api/account/profile",
	"password":        "/api/account/password",
	"settings":        "/api/account/settings",
	"donation":        "/api/donation",
	"hoot_idea":       "/api/hoot-ideas",
	"news_submission": "/api/news-submission",
}

// FormspreeEndpoints maps a form type to its fallback relay URL. The form
// IDs are placeholders overridden per deployment via FORMSPREE_<TYPE>.
var FormspreeEndpoints = map[string]string{
	"contact":         "https://formspree.io/f/contact-form",
	"newsletter":      "https://formspree.io/f/newsletter-form",
	"registration":    "https://formspree.io/f/registration-form",
	"profile":         "https://formspree.io/f/profile-form",
	"password":        "https://formspree.io/f/password-form",
	"settings":        "https://formspree.io/f/settings-form",
	"hoot_idea":       "https://formspree.io/f/hoot-ideas-form",
	"news_submission": "https://formspree.io/f/news-form",
}

// ProtectedPages are member-only; unauthenticated visits warn and bounce to
// the login page.
var ProtectedPages = map[string]bool{
	"members-corner.html":  true,
	"member-search.html":   true,
	"member-role.html":     true,
	"member-handbook.html": true,
	"resources.html":       true,
	"events.html":          true,
	"newsletter.html":      true,
	"games.html":           true,
	"crafts.html":          true,
	"printables.html":      true,
	"news-notes.html":      true,
	"discussions.html":     true,
	"offers.html":          true,
	"donate.html":          true,
	"account.html":         true,
	"wa-chapters.html":     true,
}

// PublicPages clear any lingering demo session on visit.
var PublicPages = map[string]bool{
	"index.html":       true,
	"about-us.html":    true,
	"benefits.html":    true,
	"history.html":     true,
	"pinkhatters.html": true,
	"faq.html":         true,
	"contact-us.html":  true,
	"register.html":    true,
	"login.html":       true,
}

// Load reads the process configuration. Missing values fall back to the
// fallback environment, matching the static-site default.
func Load() AppConfig {
	_ = godotenv.Load()

	cfg := AppConfig{
		Env:    os.Getenv("APP_ENV"),
		Port:   os.Getenv("APP_PORT"),
		APIURL: os.Getenv("API_URL"),
	}
	if cfg.Env == "" {
		cfg.Env = EnvFallback
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	return cfg
}

// FallbackMode reports whether form traffic should use the Formspree relay.
func (c AppConfig) FallbackMode() bool {
	return c.Env == EnvFallback
}

// FormspreeURL resolves the relay URL for a form type, honoring the
// FORMSPREE_<TYPE> override.
func (c AppConfig) FormspreeURL(formType string) string {
	if v := os.Getenv("FORMSPREE_" + formType); v != "" {
		return v
	}
	return FormspreeEndpoints[formType]
}

// APIEndpoint resolves the first-party URL for a form type.
func (c AppConfig) APIEndpoint(formType string) string {
	return c.APIURL + FormEndpoints[formType]
}
