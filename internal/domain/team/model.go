package team

import (
	"strings"
	"time"
)

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusInactive   Status = "INACTIVE"
	StatusRecruiting Status = "RECRUITING"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusInactive, StatusRecruiting:
		return true
	}
	return false
}

// Position a member plays on the roster.
type Position string

const (
	PositionGuard   Position = "GUARD"
	PositionForward Position = "FORWARD"
	PositionCenter  Position = "CENTER"
	PositionFlex    Position = "FLEX"
)

// RequestStatus is the lifecycle state of a join request. PENDING is the only
// non-terminal state.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestApproved  RequestStatus = "APPROVED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestCancelled RequestStatus = "CANCELLED"
)

// RegularSchedule is the team's recurring weekly slot.
type RegularSchedule struct {
	DayOfWeek  int      `firestore:"dayOfWeek" json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	StartTime  string   `firestore:"startTime" json:"startTime"` // "HH:MM"
	Duration   int      `firestore:"duration" json:"duration"`   // minutes
	IsActive   bool     `firestore:"isActive" json:"isActive"`
	Exceptions []string `firestore:"exceptions,omitempty" json:"exceptions,omitempty"` // skipped dates (YYYY-MM-DD)
}

// Team is a persistent group of players with a single captain. The captain is
// always present in MemberIDs and cannot be removed.
type Team struct {
	ID          string `firestore:"id" json:"id"`
	Name        string `firestore:"name" json:"name"`
	NameLower   string `firestore:"nameLower" json:"-"`
	Slug        string `firestore:"slug" json:"slug"`
	Description string `firestore:"description,omitempty" json:"description,omitempty"`
	LogoURL     string `firestore:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	FoundedDate string `firestore:"foundedDate" json:"foundedDate"`
	HomeCourtID string `firestore:"homeCourtId" json:"homeCourtId"`
	Level       int    `firestore:"level" json:"level"` // 1 (beginner) .. 5 (advanced)
	Status      Status `firestore:"status" json:"status"`

	CaptainID  string   `firestore:"captainId" json:"captainId"`
	MemberIDs  []string `firestore:"memberIds" json:"memberIds"`
	MaxMembers int      `firestore:"maxMembers" json:"maxMembers"`

	RegularSchedule RegularSchedule `firestore:"regularSchedule" json:"regularSchedule"`

	Wins       int `firestore:"wins" json:"wins"`
	Losses     int `firestore:"losses" json:"losses"`
	TotalGames int `firestore:"totalGames" json:"totalGames"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// HasMember reports whether uid is on the roster.
func (t *Team) HasMember(uid string) bool {
	for _, id := range t.MemberIDs {
		if id == uid {
			return true
		}
	}
	return false
}

// IsFull reports whether the roster is at capacity.
func (t *Team) IsFull() bool {
	return len(t.MemberIDs) >= t.MaxMembers
}

// JoinRequest is a prospective member's request to join a team's permanent
// roster. At most one PENDING request may exist per (team, user) pair.
type JoinRequest struct {
	ID          string        `firestore:"id" json:"id"`
	TeamID      string        `firestore:"teamId" json:"teamId"`
	UserID      string        `firestore:"userId" json:"userId"`
	Position    Position      `firestore:"position" json:"position"`
	Message     string        `firestore:"message,omitempty" json:"message,omitempty"`
	Status      RequestStatus `firestore:"status" json:"status"`
	AppliedAt   time.Time     `firestore:"appliedAt" json:"appliedAt"`
	RespondedAt *time.Time    `firestore:"respondedAt,omitempty" json:"respondedAt,omitempty"`
	RespondedBy string        `firestore:"respondedBy,omitempty" json:"respondedBy,omitempty"`
}

type CreateTeamInput struct {
	Name            string          `json:"name" validate:"required"`
	Description     string          `json:"description,omitempty"`
	HomeCourtID     string          `json:"homeCourtId" validate:"required"`
	Level           int             `json:"level" validate:"required,min=1,max=5"`
	MaxMembers      int             `json:"maxMembers" validate:"required,min=2"`
	RegularSchedule RegularSchedule `json:"regularSchedule"`
	Status          Status          `json:"status,omitempty"` // defaults to RECRUITING
}

func (in *CreateTeamInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.HomeCourtID = strings.TrimSpace(in.HomeCourtID)
}

type UpdateTeamInput struct {
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	HomeCourtID     *string          `json:"homeCourtId,omitempty"`
	Level           *int             `json:"level,omitempty"`
	Status          *Status          `json:"status,omitempty"`
	MaxMembers      *int             `json:"maxMembers,omitempty"`
	RegularSchedule *RegularSchedule `json:"regularSchedule,omitempty"`
	LogoURL         *string          `json:"logoUrl,omitempty"`
}

type ApplyToTeamInput struct {
	TeamID   string   `json:"teamId"` // taken from the route, not the body
	Position Position `json:"position" validate:"required,oneof=GUARD FORWARD CENTER FLEX"`
	Message  string   `json:"message,omitempty"`
}

func (in *ApplyToTeamInput) Trim() {
	in.TeamID = strings.TrimSpace(in.TeamID)
	in.Message = strings.TrimSpace(in.Message)
}

// Filters narrow ListTeams results. Nil/zero fields are ignored.
type Filters struct {
	Status       Status `json:"status,omitempty"`
	Level        int    `json:"level,omitempty"`
	DayOfWeek    *int   `json:"dayOfWeek,omitempty"`
	CourtID      string `json:"courtId,omitempty"`
	IsRecruiting bool   `json:"isRecruiting,omitempty"` // only teams with open roster slots
}
