package site

import (
	"errors"

	"redhatters.link/configs"
	"redhatters.link/configs/configslog"
	"redhatters.link/pkg/notify"
	"redhatters.link/services"
	"redhatters.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SiteHandler covers the page-level endpoints: form relays, newsletter
// likes, toast notifications and the per-page visit hook that drives the
// demo session rules.
type SiteHandler struct {
	formService    services.IFormService
	likeService    services.ILikeService
	sessionService services.ISessionService
	notifier       *notify.Buffer
}

// NewSiteHandler creates a SiteHandler.
func NewSiteHandler(
	formService services.IFormService,
	likeService services.ILikeService,
	sessionService services.ISessionService,
	notifier *notify.Buffer,
) *SiteHandler {
	return &SiteHandler{
		formService:    formService,
		likeService:    likeService,
		sessionService: sessionService,
		notifier:       notifier,
	}
}

// Home renders the landing page.
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	profileID := utils.ProfileID(c)
	return c.Render("index", fiber.Map{
		"Title":      "Red Hatters WA",
		"Navigation": h.sessionService.NavigationState(c.UserContext(), profileID),
	}, "layouts/main")
}

type formRequest struct {
	Source string            `json:"source" form:"source"`
	Fields map[string]string `json:"fields"`
}

// SubmitForm relays a site form to its configured endpoint.
func (h *SiteHandler) SubmitForm(c *fiber.Ctx) error {
	formType := c.Params("type")

	var req formRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Source == "" {
		req.Source = c.Get("Referer")
	}

	err := h.formService.Submit(c.UserContext(), formType, req.Source, req.Fields)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrFormUnknownType), errors.Is(err, services.ErrFormValidation):
			status = fiber.StatusBadRequest
		case errors.Is(err, services.ErrFormRelayFailed):
			status = fiber.StatusBadGateway
		default:
			configslog.Log.Error("form submit failed", zap.String("type", formType), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// ToggleLike flips the liked state of a newsletter item.
func (h *SiteHandler) ToggleLike(c *fiber.Ctx) error {
	profileID := utils.ProfileID(c)
	liked := h.likeService.ToggleLike(c.UserContext(), profileID, c.Params("id"))
	return c.JSON(fiber.Map{"liked": liked})
}

// Likes lists the profile's liked newsletter items.
func (h *SiteHandler) Likes(c *fiber.Ctx) error {
	profileID := utils.ProfileID(c)
	items := h.likeService.LikedItems(c.UserContext(), profileID)
	if items == nil {
		items = []string{}
	}
	return c.JSON(fiber.Map{"items": items})
}

// Notifications drains and returns the pending toasts, oldest first.
func (h *SiteHandler) Notifications(c *fiber.Ctx) error {
	pending := h.notifier.Drain()
	if pending == nil {
		pending = []notify.Notification{}
	}
	return c.JSON(fiber.Map{"notifications": pending})
}

type visitRequest struct {
	Page string `json:"page" form:"page"`
}

// Visit applies the demo session rules for a page load: protected pages
// require a live session, public pages discard any leftover demo state.
func (h *SiteHandler) Visit(c *fiber.Ctx) error {
	profileID := utils.ProfileID(c)

	var req visitRequest
	if err := c.BodyParser(&req); err != nil || req.Page == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "page is required"})
	}

	if configs.ProtectedPages[req.Page] {
		if !h.sessionService.IsLoggedIn(c.UserContext(), profileID) {
			h.sessionService.CheckProtectedAccess(c.UserContext(), profileID, req.Page)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"allowed":  false,
				"redirect": "login.html",
			})
		}
		h.sessionService.Touch(c.UserContext(), profileID)
	} else if configs.PublicPages[req.Page] {
		h.sessionService.ClearDemoState(c.UserContext(), profileID)
	}

	return c.JSON(fiber.Map{
		"allowed":    true,
		"navigation": h.sessionService.NavigationState(c.UserContext(), profileID),
	})
}

// Chat renders the chat widget demo page.
func (h *SiteHandler) Chat(c *fiber.Ctx) error {
	profileID := utils.ProfileID(c)
	return c.Render("chat", fiber.Map{
		"Title":      "Chat - Red Hatters WA",
		"Navigation": h.sessionService.NavigationState(c.UserContext(), profileID),
	}, "layouts/main")
}

// NotFound is the fallthrough handler for unknown routes.
func (h *SiteHandler) NotFound(c *fiber.Ctx) error {
	if c.Accepts("html", "json") == "json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title": "Page Not Found",
	}, "layouts/main")
}
