package guest

import (
	"strings"
	"time"
)

// Position a guest offers to fill.
type Position string

const (
	PositionGuard   Position = "GUARD"
	PositionForward Position = "FORWARD"
	PositionCenter  Position = "CENTER"
	PositionAny     Position = "ANY"
)

// Status is the application lifecycle state. PENDING is the only non-terminal
// state; APPROVED, REJECTED and CANCELLED are terminal.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// Application is a prospective guest's request to play in one session. While
// PENDING, its user id sits in the session's pendingGuestIds; approval moves
// the id to guestIds, rejection and cancellation drop it.
type Application struct {
	ID          string     `firestore:"id" json:"id"`
	SessionID   string     `firestore:"sessionId" json:"sessionId"`
	UserID      string     `firestore:"userId" json:"userId"`
	Position    Position   `firestore:"position" json:"position"`
	Message     string     `firestore:"message,omitempty" json:"message,omitempty"`
	Status      Status     `firestore:"status" json:"status"`
	AppliedAt   time.Time  `firestore:"appliedAt" json:"appliedAt"`
	RespondedAt *time.Time `firestore:"respondedAt,omitempty" json:"respondedAt,omitempty"`
	RespondedBy string     `firestore:"respondedBy,omitempty" json:"respondedBy,omitempty"`
	CancelledAt *time.Time `firestore:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
}

type ApplyInput struct {
	SessionID string   `json:"sessionId"` // taken from the route, not the body
	Position  Position `json:"position" validate:"required,oneof=GUARD FORWARD CENTER ANY"`
	Message   string   `json:"message,omitempty"`
}

func (in *ApplyInput) Trim() {
	in.SessionID = strings.TrimSpace(in.SessionID)
	in.Message = strings.TrimSpace(in.Message)
}
