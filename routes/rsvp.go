package routes

import (
	rsvp_handlers "redhatters.link/handlers/rsvp"
	"redhatters.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerRSVPRoutes(app *fiber.App, deps Deps) {
	rsvpHandler := rsvp_handlers.NewRSVPHandler(deps.RSVP, deps.Session)

	memberRoutes := app.Group("/api")
	memberRoutes.Use(middlewares.Auth(deps.Session))
	memberRoutes.Get("/events/:id/rsvp", rsvpHandler.Event)
	memberRoutes.Post("/events/:id/rsvp", rsvpHandler.Submit)
	memberRoutes.Get("/my-events", rsvpHandler.MyEvents)
}
