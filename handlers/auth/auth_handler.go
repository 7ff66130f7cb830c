package auth

import (
	"redhatters.link/services"
	"redhatters.link/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler serves the demo login and session endpoints.
type AuthHandler struct {
	sessionService services.ISessionService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(sessionService services.ISessionService) *AuthHandler {
	return &AuthHandler{sessionService: sessionService}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// ShowLogin renders the login page.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"Title": "Member Login"}, "layouts/main")
}

// Login authenticates a demo member. The outcome is a boolean, never an
// HTTP error: failures surface as the error toast the service queued.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	profileID := utils.ProfileID(c)
	ok := h.sessionService.Login(c.UserContext(), profileID, req.Username, req.Password)
	return c.JSON(fiber.Map{
		"success":    ok,
		"navigation": h.sessionService.NavigationState(c.UserContext(), profileID),
	})
}

// Logout ends the session and reports where the site sends the user next.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessionService.Logout(c.UserContext(), utils.ProfileID(c))
	return c.JSON(fiber.Map{"success": true, "redirect": "index.html"})
}

// Session returns the current session and navigation state, for pages to
// render their protected/public regions.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	profileID := utils.ProfileID(c)
	session, ok := h.sessionService.CurrentSession(c.UserContext(), profileID)
	resp := fiber.Map{
		"loggedIn":   ok,
		"navigation": h.sessionService.NavigationState(c.UserContext(), profileID),
	}
	if ok {
		resp["session"] = session
	}
	return c.JSON(resp)
}
