package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProfileCookie names the cookie standing in for the browser profile: the
// old site's localStorage was per browser, so all demo state is keyed by it.
const ProfileCookie = "rh_profile"

const profileLocal = "profileID"

// EnsureProfile returns the request's profile id, minting and setting the
// cookie on first contact.
func EnsureProfile(c *fiber.Ctx) string {
	if id := c.Cookies(ProfileCookie); id != "" {
		c.Locals(profileLocal, id)
		return id
	}
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     ProfileCookie,
		Value:    id,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(profileLocal, id)
	return id
}

// ProfileID reads the profile id stored by EnsureProfile.
func ProfileID(c *fiber.Ctx) string {
	if id, ok := c.Locals(profileLocal).(string); ok {
		return id
	}
	return ""
}
