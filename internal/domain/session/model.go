package session

import (
	"strings"
	"time"
)

// Status is the session lifecycle state. Transitions driven through
// UpdateStatus are deliberately unrestricted; the only derived transition is
// RECRUITING -> CONFIRMED when the guest roster fills.
type Status string

const (
	StatusRecruiting Status = "RECRUITING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusRecruiting, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Session is one scheduled occurrence of a team's game, with its own
// guest-recruitment state. A user id appears in at most one of
// ConfirmedMemberIDs, GuestIDs and PendingGuestIDs.
type Session struct {
	ID        string `firestore:"id" json:"id"`
	TeamID    string `firestore:"teamId" json:"teamId"`
	Date      string `firestore:"date" json:"date"`           // YYYY-MM-DD
	StartTime string `firestore:"startTime" json:"startTime"` // "HH:MM"
	Duration  int    `firestore:"duration" json:"duration"`   // minutes
	CourtID   string `firestore:"courtId" json:"courtId"`     // copied from the team's home court

	ConfirmedMemberIDs []string `firestore:"confirmedMemberIds" json:"confirmedMemberIds"`
	GuestIDs           []string `firestore:"guestIds" json:"guestIds"`
	PendingGuestIDs    []string `firestore:"pendingGuestIds" json:"pendingGuestIds"`

	NeededGuests int `firestore:"neededGuests" json:"neededGuests"`
	MaxGuests    int `firestore:"maxGuests" json:"maxGuests"`
	GuestFee     int `firestore:"guestFee" json:"guestFee"`

	NeedGuard   int `firestore:"needGuard,omitempty" json:"needGuard,omitempty"`
	NeedForward int `firestore:"needForward,omitempty" json:"needForward,omitempty"`
	NeedCenter  int `firestore:"needCenter,omitempty" json:"needCenter,omitempty"`

	Status      Status `firestore:"status" json:"status"`
	Description string `firestore:"description,omitempty" json:"description,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// GuestSlotsFull reports whether the approved-guest roster is at capacity.
func (s *Session) GuestSlotsFull() bool {
	return len(s.GuestIDs) >= s.MaxGuests
}

// HasGuest reports whether uid is an approved guest.
func (s *Session) HasGuest(uid string) bool {
	for _, id := range s.GuestIDs {
		if id == uid {
			return true
		}
	}
	return false
}

// HasPendingGuest reports whether uid is awaiting a decision.
func (s *Session) HasPendingGuest(uid string) bool {
	for _, id := range s.PendingGuestIDs {
		if id == uid {
			return true
		}
	}
	return false
}

type CreateSessionInput struct {
	TeamID             string   `json:"teamId" validate:"required"`
	Date               string   `json:"date" validate:"required"`
	StartTime          string   `json:"startTime" validate:"required"`
	Duration           int      `json:"duration" validate:"required,min=1"`
	ConfirmedMemberIDs []string `json:"confirmedMemberIds"`
	NeededGuests       int      `json:"neededGuests" validate:"min=0"`
	MaxGuests          int      `json:"maxGuests,omitempty"` // defaults to neededGuests+2
	GuestFee           int      `json:"guestFee,omitempty"`
	NeedGuard          int      `json:"needGuard,omitempty"`
	NeedForward        int      `json:"needForward,omitempty"`
	NeedCenter         int      `json:"needCenter,omitempty"`
	Description        string   `json:"description,omitempty"`
}

func (in *CreateSessionInput) Trim() {
	in.TeamID = strings.TrimSpace(in.TeamID)
	in.Date = strings.TrimSpace(in.Date)
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.Description = strings.TrimSpace(in.Description)
}

type UpdateSessionInput struct {
	Date         *string `json:"date,omitempty"`
	StartTime    *string `json:"startTime,omitempty"`
	Duration     *int    `json:"duration,omitempty"`
	CourtID      *string `json:"courtId,omitempty"`
	NeededGuests *int    `json:"neededGuests,omitempty"`
	MaxGuests    *int    `json:"maxGuests,omitempty"`
	GuestFee     *int    `json:"guestFee,omitempty"`
	Description  *string `json:"description,omitempty"`
}

// Filters narrow ListSessions results. Zero fields are ignored.
type Filters struct {
	TeamID       string `json:"teamId,omitempty"`
	Status       Status `json:"status,omitempty"`
	Date         string `json:"date,omitempty"`
	CourtID      string `json:"courtId,omitempty"`
	HasOpenSlots bool   `json:"hasOpenSlots,omitempty"` // only sessions still taking guests
}
