package models

import "time"

// RSVPStatus is an attendee's answer. "no" is never stored; it removes the
// attendee from the event instead.
type RSVPStatus string

const (
	RSVPStatusYes   RSVPStatus = "yes"
	RSVPStatusMaybe RSVPStatus = "maybe"
	RSVPStatusNo    RSVPStatus = "no"
)

// Valid reports whether s is one of the three accepted answers.
func (s RSVPStatus) Valid() bool {
	return s == RSVPStatusYes || s == RSVPStatusMaybe || s == RSVPStatusNo
}

// Attendee is one RSVP entry of an event.
type Attendee struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Status   RSVPStatus `json:"status"`
	RSVPDate time.Time  `json:"rsvpDate"`
}

// AttendeeInfo is the caller-supplied identity for an RSVP.
type AttendeeInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EventRSVP is the attendee list of one event. Attendees keep RSVP order and
// are unique by attendee id; TotalCount always equals len(Attendees).
type EventRSVP struct {
	EventID    string     `json:"eventId"`
	Attendees  []Attendee `json:"attendees"`
	TotalCount int        `json:"totalCount"`
}

// UserEvent is one row of a member's "my events" listing.
type UserEvent struct {
	EventID        string     `json:"eventId"`
	Status         RSVPStatus `json:"status"`
	RSVPDate       time.Time  `json:"rsvpDate"`
	TotalAttendees int        `json:"totalAttendees"`
}
