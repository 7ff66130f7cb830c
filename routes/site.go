package routes

import (
	site_handlers "redhatters.link/handlers/site"

	"github.com/gofiber/fiber/v2"
)

func registerSiteRoutes(app *fiber.App, deps Deps) {
	siteHandler := site_handlers.NewSiteHandler(deps.Form, deps.Like, deps.Session, deps.Notifier)

	app.Get("/", siteHandler.Home)
	app.Get("/chat", siteHandler.Chat)

	api := app.Group("/api")
	api.Post("/forms/:type", siteHandler.SubmitForm)
	api.Post("/likes/:id", siteHandler.ToggleLike)
	api.Get("/likes", siteHandler.Likes)
	api.Get("/notifications", siteHandler.Notifications)
	api.Post("/visit", siteHandler.Visit)

	// Must stay last so every unmatched route lands here.
	app.Use(siteHandler.NotFound)
}
