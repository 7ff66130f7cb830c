package routes

import (
	"redhatters.link/pkg/notify"
	"redhatters.link/services"
	"redhatters.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// Deps bundles the services the route groups wire their handlers with.
type Deps struct {
	Session    services.ISessionService
	Chat       services.IChatService
	Suggestion services.ISuggestionService
	RSVP       services.IRSVPService
	Form       services.IFormService
	Like       services.ILikeService
	Notifier   *notify.Buffer
}

// SetupRoutes registers the global middleware and all route groups.
func SetupRoutes(app *fiber.App, deps Deps) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(ensureProfile)

	registerAuthRoutes(app, deps)
	registerChatRoutes(app, deps)
	registerRSVPRoutes(app, deps)
	registerSiteRoutes(app, deps)
}

// ensureProfile pins every request to a browser profile so per-profile
// state (session, RSVPs, likes) has a stable key.
func ensureProfile(c *fiber.Ctx) error {
	utils.EnsureProfile(c)
	return c.Next()
}
