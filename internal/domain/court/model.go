package court

import (
	"strings"
	"time"
)

type CourtType string

const (
	TypeIndoor  CourtType = "INDOOR"
	TypeOutdoor CourtType = "OUTDOOR"
)

type CourtSize string

const (
	SizeThreeVThree CourtSize = "THREE_V_THREE"
	SizeFiveVFive   CourtSize = "FIVE_V_FIVE"
	SizeBoth        CourtSize = "BOTH"
)

// Court is a venue teams and matches reference by id.
type Court struct {
	ID      string  `firestore:"id" json:"id"`
	Name    string  `firestore:"name" json:"name"`
	Address string  `firestore:"address" json:"address"`
	Lat     float64 `firestore:"lat" json:"lat"`
	Lng     float64 `firestore:"lng" json:"lng"`

	CourtType  CourtType `firestore:"courtType,omitempty" json:"courtType,omitempty"`
	CourtSize  CourtSize `firestore:"courtSize,omitempty" json:"courtSize,omitempty"`
	Floor      string    `firestore:"floor,omitempty" json:"floor,omitempty"`
	Facilities []string  `firestore:"facilities,omitempty" json:"facilities,omitempty"`
	Images     []string  `firestore:"images,omitempty" json:"images,omitempty"`

	PricePerHour int `firestore:"pricePerHour" json:"pricePerHour"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type CreateCourtInput struct {
	Name         string    `json:"name" validate:"required"`
	Address      string    `json:"address" validate:"required"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	CourtType    CourtType `json:"courtType,omitempty"`
	CourtSize    CourtSize `json:"courtSize,omitempty"`
	Floor        string    `json:"floor,omitempty"`
	Facilities   []string  `json:"facilities,omitempty"`
	PricePerHour int       `json:"pricePerHour"`
}

func (in *CreateCourtInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Floor = strings.TrimSpace(in.Floor)
}

type UpdateCourtInput struct {
	Name         *string    `json:"name,omitempty"`
	Address      *string    `json:"address,omitempty"`
	Lat          *float64   `json:"lat,omitempty"`
	Lng          *float64   `json:"lng,omitempty"`
	CourtType    *CourtType `json:"courtType,omitempty"`
	CourtSize    *CourtSize `json:"courtSize,omitempty"`
	Floor        *string    `json:"floor,omitempty"`
	Facilities   *[]string  `json:"facilities,omitempty"`
	Images       *[]string  `json:"images,omitempty"`
	PricePerHour *int       `json:"pricePerHour,omitempty"`
}
