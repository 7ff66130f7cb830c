package rsvp

import (
	"errors"

	"redhatters.link/configs/configslog"
	"redhatters.link/models"
	"redhatters.link/services"
	"redhatters.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVPHandler serves event RSVPs and the "my events" listing. All routes
// sit behind the auth middleware; the attendee identity comes from the
// session, not the request body.
type RSVPHandler struct {
	rsvpService    services.IRSVPService
	sessionService services.ISessionService
}

// NewRSVPHandler creates an RSVPHandler.
func NewRSVPHandler(rsvpService services.IRSVPService, sessionService services.ISessionService) *RSVPHandler {
	return &RSVPHandler{rsvpService: rsvpService, sessionService: sessionService}
}

type rsvpRequest struct {
	Status models.RSVPStatus `json:"status" form:"status"`
}

// Submit records the member's answer for an event.
func (h *RSVPHandler) Submit(c *fiber.Ctx) error {
	eventID := c.Params("id")
	profileID := utils.ProfileID(c)

	var req rsvpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	session, ok := h.sessionService.CurrentSession(c.UserContext(), profileID)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Please log in to access this page."})
	}

	info := models.AttendeeInfo{Name: session.Username, Email: session.Email}
	err := h.rsvpService.SetStatus(c.UserContext(), profileID, eventID, session.Username, info, req.Status)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrRSVPInvalidStatus) || errors.Is(err, services.ErrRSVPInvalidInput) {
			status = fiber.StatusBadRequest
		} else {
			configslog.Log.Error("rsvp submit failed", zap.String("event", eventID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(h.rsvpService.GetEvent(c.UserContext(), profileID, eventID))
}

// Event returns an event's attendee list together with the member's own
// answer.
func (h *RSVPHandler) Event(c *fiber.Ctx) error {
	eventID := c.Params("id")
	profileID := utils.ProfileID(c)

	event := h.rsvpService.GetEvent(c.UserContext(), profileID, eventID)
	resp := fiber.Map{"event": event}
	if session, ok := h.sessionService.CurrentSession(c.UserContext(), profileID); ok {
		resp["responded"] = h.rsvpService.HasResponded(c.UserContext(), profileID, eventID, session.Username)
		resp["status"] = h.rsvpService.GetStatus(c.UserContext(), profileID, eventID, session.Username)
	}
	return c.JSON(resp)
}

// MyEvents lists the member's RSVPs across all events, oldest first.
func (h *RSVPHandler) MyEvents(c *fiber.Ctx) error {
	profileID := utils.ProfileID(c)
	session, ok := h.sessionService.CurrentSession(c.UserContext(), profileID)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Please log in to access this page."})
	}
	events := h.rsvpService.ListUserEvents(c.UserContext(), profileID, session.Username)
	if events == nil {
		events = []models.UserEvent{}
	}
	return c.JSON(fiber.Map{"events": events})
}
