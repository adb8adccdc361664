package match

import (
	"strings"
	"time"
)

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusFull      Status = "FULL"
	StatusClosed    Status = "CLOSED"
	StatusCompleted Status = "COMPLETED"
)

type GameType string

const (
	GameThreeVThree GameType = "THREE_V_THREE"
	GameFiveVFive   GameType = "FIVE_V_FIVE"
)

// Match is an open pickup game anyone can join, independent of teams.
type Match struct {
	ID        string `firestore:"id" json:"id"`
	Title     string `firestore:"title" json:"title"`
	CourtID   string `firestore:"courtId" json:"courtId"`
	Date      string `firestore:"date" json:"date"`           // YYYY-MM-DD
	StartTime string `firestore:"startTime" json:"startTime"` // "HH:MM"
	Duration  int    `firestore:"duration" json:"duration"`   // minutes

	GameType GameType `firestore:"gameType" json:"gameType"`
	LevelMin int      `firestore:"levelMin" json:"levelMin"`
	LevelMax int      `firestore:"levelMax" json:"levelMax"`

	MaxPlayers       int      `firestore:"maxPlayers" json:"maxPlayers"`
	CurrentPlayerIDs []string `firestore:"currentPlayerIds" json:"currentPlayerIds"`
	GuardSlots       int      `firestore:"guardSlots" json:"guardSlots"`
	ForwardSlots     int      `firestore:"forwardSlots" json:"forwardSlots"`
	CenterSlots      int      `firestore:"centerSlots" json:"centerSlots"`

	PricePerPerson int `firestore:"pricePerPerson" json:"pricePerPerson"`

	Status    Status    `firestore:"status" json:"status"`
	CreatedBy string    `firestore:"createdBy" json:"createdBy"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

func (m *Match) HasPlayer(uid string) bool {
	for _, id := range m.CurrentPlayerIDs {
		if id == uid {
			return true
		}
	}
	return false
}

func (m *Match) IsFull() bool {
	return len(m.CurrentPlayerIDs) >= m.MaxPlayers
}

type CreateMatchInput struct {
	Title          string   `json:"title" validate:"required"`
	CourtID        string   `json:"courtId" validate:"required"`
	Date           string   `json:"date" validate:"required"`
	StartTime      string   `json:"startTime" validate:"required"`
	Duration       int      `json:"duration" validate:"required,min=1"`
	GameType       GameType `json:"gameType" validate:"required,oneof=THREE_V_THREE FIVE_V_FIVE"`
	LevelMin       int      `json:"levelMin"`
	LevelMax       int      `json:"levelMax"`
	MaxPlayers     int      `json:"maxPlayers" validate:"required,min=2"`
	GuardSlots     int      `json:"guardSlots"`
	ForwardSlots   int      `json:"forwardSlots"`
	CenterSlots    int      `json:"centerSlots"`
	PricePerPerson int      `json:"pricePerPerson"`
}

func (in *CreateMatchInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.CourtID = strings.TrimSpace(in.CourtID)
	in.Date = strings.TrimSpace(in.Date)
	in.StartTime = strings.TrimSpace(in.StartTime)
}

// Filters narrow ListMatches results. Zero fields are ignored.
type Filters struct {
	Status   Status   `json:"status,omitempty"`
	GameType GameType `json:"gameType,omitempty"`
	Date     string   `json:"date,omitempty"`
	CourtID  string   `json:"courtId,omitempty"`
}
