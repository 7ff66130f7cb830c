package middlewares

import (
	"redhatters.link/services"
	"redhatters.link/utils"

	"github.com/gofiber/fiber/v2"
)

// Auth guards member-only routes. Unauthenticated requests get a JSON 401
// (the pages themselves handle the friendly redirect); authenticated ones
// count as activity and slide the inactivity window.
func Auth(session services.ISessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID := utils.ProfileID(c)
		if !session.IsLoggedIn(c.UserContext(), profileID) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Please log in to access this page.",
			})
		}
		session.Touch(c.UserContext(), profileID)
		return c.Next()
	}
}

// Guest keeps logged-in members away from guest-only routes such as the
// login form; they are sent back to the home page.
func Guest(session services.ISessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if session.IsLoggedIn(c.UserContext(), utils.ProfileID(c)) {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Next()
	}
}
