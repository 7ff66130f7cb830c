package routes

import (
	auth_handlers "redhatters.link/handlers/auth"
	"redhatters.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, deps Deps) {
	authHandler := auth_handlers.NewAuthHandler(deps.Session)
	authGroup := app.Group("/auth")

	guestRoutes := authGroup.Group("")
	guestRoutes.Use(middlewares.Guest(deps.Session))
	guestRoutes.Get("/login", authHandler.ShowLogin)
	guestRoutes.Post("/login", authHandler.Login)

	authGroup.Get("/session", authHandler.Session)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/logout", authHandler.Logout)
}
