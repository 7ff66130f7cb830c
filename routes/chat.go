package routes

import (
	chat_handlers "redhatters.link/handlers/chat"

	"github.com/gofiber/fiber/v2"
)

func registerChatRoutes(app *fiber.App, deps Deps) {
	chatHandler := chat_handlers.NewChatHandler(deps.Chat, deps.Suggestion, deps.Session)
	chatGroup := app.Group("/api/chat/:audience")

	chatGroup.Get("/", chatHandler.Transcript)
	chatGroup.Post("/messages", chatHandler.SendMessage)
	chatGroup.Post("/toggle", chatHandler.Toggle)
	chatGroup.Post("/suggestions", chatHandler.Suggestion)
}
