package chat

import (
	"redhatters.link/models"
	"redhatters.link/services"
	"redhatters.link/utils"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler exposes the chat widgets over HTTP. The widget keeps the
// transcript server-side; pages poll it while a response is pending.
type ChatHandler struct {
	chatService       services.IChatService
	suggestionService services.ISuggestionService
	sessionService    services.ISessionService
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(chatService services.IChatService, suggestionService services.ISuggestionService, sessionService services.ISessionService) *ChatHandler {
	return &ChatHandler{
		chatService:       chatService,
		suggestionService: suggestionService,
		sessionService:    sessionService,
	}
}

type messageRequest struct {
	Message string `json:"message" form:"message"`
}

type suggestionRequest struct {
	Label string `json:"label" form:"label"`
}

// widget resolves the request's widget, enforcing that the member widget is
// only reachable with a live session.
func (h *ChatHandler) widget(c *fiber.Ctx) (*services.ChatWidget, error) {
	audience := models.Audience(c.Params("audience"))
	if !audience.Valid() {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown chatbot"})
	}
	profileID := utils.ProfileID(c)
	if audience == models.AudienceMember && !h.sessionService.IsLoggedIn(c.UserContext(), profileID) {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Please log in to access this page."})
	}
	return h.chatService.Widget(profileID, audience), nil
}

// SendMessage feeds user text into the widget. Empty input is accepted
// silently with no transcript change, like the old send button.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	w, err := h.widget(c)
	if w == nil {
		return err
	}
	var req messageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	accepted := w.Send(req.Message)
	return c.JSON(fiber.Map{"accepted": accepted, "transcript": w.Transcript()})
}

// Transcript returns the widget's messages, typing placeholder included.
func (h *ChatHandler) Transcript(c *fiber.Ctx) error {
	w, err := h.widget(c)
	if w == nil {
		return err
	}
	return c.JSON(fiber.Map{"open": w.IsOpen(), "transcript": w.Transcript()})
}

// Toggle flips the widget's visibility.
func (h *ChatHandler) Toggle(c *fiber.Ctx) error {
	w, err := h.widget(c)
	if w == nil {
		return err
	}
	return c.JSON(fiber.Map{"open": w.Toggle()})
}

// Suggestion resolves a clicked suggestion button: either a page to
// navigate to, or the label re-enters the chat pipeline as a message.
func (h *ChatHandler) Suggestion(c *fiber.Ctx) error {
	w, err := h.widget(c)
	if w == nil {
		return err
	}
	var req suggestionRequest
	if err := c.BodyParser(&req); err != nil || req.Label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	action := h.suggestionService.Resolve(req.Label)
	resp := fiber.Map{"action": action}
	if action.Kind == models.ActionResubmit {
		w.Send(action.Text)
		resp["transcript"] = w.Transcript()
	}
	return c.JSON(resp)
}
