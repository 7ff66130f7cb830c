package services

import (
	"context"
	"testing"
	"time"

	"redhatters.link/models"
	"redhatters.link/pkg/clock"
	"redhatters.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRSVPFixture() (IRSVPService, *clock.Manual) {
	clk := clock.NewManual(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	return NewRSVPService(repositories.NewMemoryKVStore(), clk), clk
}

var testAttendee = models.AttendeeInfo{Name: "Rosemary", Email: "rosemary@redhatterswa.com.au"}

func TestSetStatusReplacesExistingEntry(t *testing.T) {
	svc, _ := newRSVPFixture()
	ctx := context.Background()

	require.NoError(t, svc.SetStatus(ctx, "p1", "e1", "u1", testAttendee, models.RSVPStatusYes))
	require.NoError(t, svc.SetStatus(ctx, "p1", "e1", "u1", testAttendee, models.RSVPStatusMaybe))

	event := svc.GetEvent(ctx, "p1", "e1")
	require.Len(t, event.Attendees, 1)
	assert.Equal(t, models.RSVPStatusMaybe, event.Attendees[0].Status)
	assert.Equal(t, 1, event.TotalCount)
}

func TestSetStatusNoRemoves(t *testing.T) {
	svc, _ := newRSVPFixture()
	ctx := context.Background()

	require.NoError(t, svc.SetStatus(ctx, "p1", "e1", "u1", testAttendee, models.RSVPStatusYes))
	require.NoError(t, svc.SetStatus(ctx, "p1", "e1", "u1", testAttendee, models.RSVPStatusNo))

	event := svc.GetEvent(ctx, "p1", "e1")
	assert.Empty(t, event.Attendees)
	assert.Equal(t, 0, event.TotalCount)
	assert.False(t, svc.HasResponded(ctx, "p1", "e1", "u1"))

	// Repeating "no" stays a no-op.
	require.NoError(t, svc.SetStatus(ctx, "p1", "e1", "u1", testAttendee, models.RSVPStatusNo))
	assert.Equal(t, 0, svc.GetEvent(ctx, "p1", "e1").TotalCount)
}

func TestReRSVPMovesToEnd(t *testing.T) {
	svc, _ := newRSVPFixture()
	ctx := context.Background()

	require.NoError(t, svc.SetStatus(ctx, "p1", "e1", "u1", testAttendee, models.RSVPStatusYes))
	require.NoError(t, svc.SetStatus(ctx, "p1", "e1", "u2", models.AttendeeInfo{Name: "Hazel"}, models.RSVPStatusYes))
	require.NoError(t, svc.SetStatus(ctx, "p1", "e1", "u1", testAttendee, models.RSVPStatusMaybe))

	event := svc.GetEvent(ctx, "p1", "e1")
	require.Len(t, event.Attendees, 2)
	assert.Equal(t, "u2", event.Attendees[0].ID)
	assert.Equal(t, "u1", event.Attendees[1].ID)
	assert.Equal(t, 2, event.TotalCount)
}

func TestGetEventAbsent(t *testing.T) {
	svc, _ := newRSVPFixture()

	event := svc.GetEvent(context.Background(), "p1", "nowhere")
	assert.Equal(t, "nowhere", event.EventID)
	assert.Empty(t, event.Attendees)
	assert.Equal(t, 0, event.TotalCount)
}

func TestGetStatus(t *testing.T) {
	svc, _ := newRSVPFixture()
	ctx := context.Background()

	assert.Nil(t, svc.GetStatus(ctx, "p1", "e1", "u1"))

	require.NoError(t, svc.SetStatus(ctx, "p1", "e1", "u1", testAttendee, models.RSVPStatusYes))
	status := svc.GetStatus(ctx, "p1", "e1", "u1")
	require.NotNil(t, status)
	assert.Equal(t, models.RSVPStatusYes, *status)
}

func TestSetStatusValidation(t *testing.T) {
	svc, _ := newRSVPFixture()
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetStatus(ctx, "p1", "", "u1", testAttendee, models.RSVPStatusYes), ErrRSVPInvalidInput)
	assert.ErrorIs(t, svc.SetStatus(ctx, "p1", "e1", "", testAttendee, models.RSVPStatusYes), ErrRSVPInvalidInput)
	assert.ErrorIs(t, svc.SetStatus(ctx, "p1", "e1", "u1", testAttendee, "perhaps"), ErrRSVPInvalidStatus)
}

func TestListUserEventsOrderedByRSVPDate(t *testing.T) {
	svc, clk := newRSVPFixture()
	ctx := context.Background()

	require.NoError(t, svc.SetStatus(ctx, "p1", "march-lunch", "u1", testAttendee, models.RSVPStatusYes))
	clk.Advance(time.Hour)
	require.NoError(t, svc.SetStatus(ctx, "p1", "april-tea", "u1", testAttendee, models.RSVPStatusMaybe))
	clk.Advance(time.Hour)
	require.NoError(t, svc.SetStatus(ctx, "p1", "craft-day", "u1", testAttendee, models.RSVPStatusYes))

	// Another member's RSVP must not appear in u1's listing.
	require.NoError(t, svc.SetStatus(ctx, "p1", "march-lunch", "u2", models.AttendeeInfo{Name: "Hazel"}, models.RSVPStatusYes))

	events := svc.ListUserEvents(ctx, "p1", "u1")
	require.Len(t, events, 3)
	assert.Equal(t, "march-lunch", events[0].EventID)
	assert.Equal(t, "april-tea", events[1].EventID)
	assert.Equal(t, "craft-day", events[2].EventID)
	assert.Equal(t, 2, events[0].TotalAttendees)
	assert.Equal(t, models.RSVPStatusMaybe, events[1].Status)
}
