package services

import (
	"context"
	"sort"

	"redhatters.link/configs/configslog"
	"redhatters.link/models"
	"redhatters.link/pkg/clock"
	"redhatters.link/repositories"

	"go.uber.org/zap"
)

// RSVPServiceError is the error type of RSVP operations.
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPInvalidStatus RSVPServiceError = "invalid rsvp status"
	ErrRSVPInvalidInput  RSVPServiceError = "event id and attendee id are required"
)

// IRSVPService keeps per-event attendee lists in the profile's store.
type IRSVPService interface {
	SetStatus(ctx context.Context, profileID, eventID, attendeeID string, info models.AttendeeInfo, status models.RSVPStatus) error
	GetEvent(ctx context.Context, profileID, eventID string) models.EventRSVP
	HasResponded(ctx context.Context, profileID, eventID, attendeeID string) bool
	GetStatus(ctx context.Context, profileID, eventID, attendeeID string) *models.RSVPStatus
	ListUserEvents(ctx context.Context, profileID, attendeeID string) []models.UserEvent
}

// RSVPService implements IRSVPService on the key-value store. The whole
// event mapping is read, modified and written back on every change; across
// concurrent writers the last write wins, which the demo accepts.
type RSVPService struct {
	store repositories.IKVStore
	clock clock.Clock
}

// NewRSVPService wires an RSVPService.
func NewRSVPService(store repositories.IKVStore, clk clock.Clock) IRSVPService {
	return &RSVPService{store: store, clock: clk}
}

// SetStatus records an attendee's answer. "no" removes any existing entry
// and is idempotent; "yes" and "maybe" replace an existing entry by
// remove-then-append, so a re-RSVP moves to the end of the list.
func (s *RSVPService) SetStatus(ctx context.Context, profileID, eventID, attendeeID string, info models.AttendeeInfo, status models.RSVPStatus) error {
	if eventID == "" || attendeeID == "" {
		return ErrRSVPInvalidInput
	}
	if !status.Valid() {
		return ErrRSVPInvalidStatus
	}

	events := s.readAll(ctx, profileID)
	event, ok := events[eventID]
	if !ok {
		event = models.EventRSVP{EventID: eventID}
	}

	kept := event.Attendees[:0:0]
	for _, a := range event.Attendees {
		if a.ID != attendeeID {
			kept = append(kept, a)
		}
	}
	event.Attendees = kept

	if status != models.RSVPStatusNo {
		event.Attendees = append(event.Attendees, models.Attendee{
			ID:       attendeeID,
			Name:     info.Name,
			Email:    info.Email,
			Status:   status,
			RSVPDate: s.clock.Now(),
		})
	}
	event.TotalCount = len(event.Attendees)
	events[eventID] = event

	if err := s.store.Set(ctx, profileID, models.KVKeyEventRSVPs, events); err != nil {
		configslog.Log.Error("rsvp persist failed",
			zap.String("event", eventID), zap.String("attendee", attendeeID), zap.Error(err))
		return err
	}
	return nil
}

// GetEvent returns the event's record, empty when nobody responded yet.
func (s *RSVPService) GetEvent(ctx context.Context, profileID, eventID string) models.EventRSVP {
	if event, ok := s.readAll(ctx, profileID)[eventID]; ok {
		return event
	}
	return models.EventRSVP{EventID: eventID, Attendees: []models.Attendee{}}
}

// HasResponded reports whether the attendee appears in the event's list.
func (s *RSVPService) HasResponded(ctx context.Context, profileID, eventID, attendeeID string) bool {
	return s.GetStatus(ctx, profileID, eventID, attendeeID) != nil
}

// GetStatus returns the attendee's recorded status, nil when absent.
func (s *RSVPService) GetStatus(ctx context.Context, profileID, eventID, attendeeID string) *models.RSVPStatus {
	for _, a := range s.GetEvent(ctx, profileID, eventID).Attendees {
		if a.ID == attendeeID {
			status := a.Status
			return &status
		}
	}
	return nil
}

// ListUserEvents returns one row per event the attendee responded to,
// ordered by ascending RSVP date.
func (s *RSVPService) ListUserEvents(ctx context.Context, profileID, attendeeID string) []models.UserEvent {
	var out []models.UserEvent
	for _, event := range s.readAll(ctx, profileID) {
		for _, a := range event.Attendees {
			if a.ID == attendeeID {
				out = append(out, models.UserEvent{
					EventID:        event.EventID,
					Status:         a.Status,
					RSVPDate:       a.RSVPDate,
					TotalAttendees: event.TotalCount,
				})
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RSVPDate.Before(out[j].RSVPDate) })
	return out
}

func (s *RSVPService) readAll(ctx context.Context, profileID string) map[string]models.EventRSVP {
	events := make(map[string]models.EventRSVP)
	s.store.Get(ctx, profileID, models.KVKeyEventRSVPs, &events)
	return events
}

var _ IRSVPService = (*RSVPService)(nil)
