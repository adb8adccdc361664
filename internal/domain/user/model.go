package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

type Position string

const (
	PositionGuard    Position = "GUARD"
	PositionForward  Position = "FORWARD"
	PositionCenter   Position = "CENTER"
	PositionAllRound Position = "ALL_ROUND"
)

// Profile is the platform-side record for an authenticated user. The uid and
// email come from the identity provider; everything else is self-reported or
// accumulated.
type Profile struct {
	UID          string   `firestore:"uid" json:"uid"`
	Email        string   `firestore:"email,omitempty" json:"email,omitempty"`
	Name         string   `firestore:"name,omitempty" json:"name,omitempty"`
	Phone        string   `firestore:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage string   `firestore:"profileImage,omitempty" json:"profileImage,omitempty"`
	Role         Role     `firestore:"role,omitempty" json:"role,omitempty"`
	Position     Position `firestore:"position,omitempty" json:"position,omitempty"`
	Level        int      `firestore:"level,omitempty" json:"level,omitempty"` // 1000-3000

	TotalMatches   int     `firestore:"totalMatches" json:"totalMatches"`
	AttendanceRate float64 `firestore:"attendanceRate" json:"attendanceRate"`
	NoShowCount    int     `firestore:"noShowCount" json:"noShowCount"`

	Badges []string `firestore:"badges,omitempty" json:"badges,omitempty"`

	CreatedAt time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// EffectiveRole treats a missing role as USER.
func (p Profile) EffectiveRole() Role {
	if p.Role == "" {
		return RoleUser
	}
	return p.Role
}

func (p Profile) IsAdmin() bool {
	r := p.EffectiveRole()
	return r == RoleAdmin || r == RoleSuperAdmin
}

func (p Profile) IsSuperAdmin() bool {
	return p.EffectiveRole() == RoleSuperAdmin
}

type UpdateProfileInput struct {
	Name         *string   `json:"name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	Position     *Position `json:"position,omitempty"`
	Level        *int      `json:"level,omitempty"`
}

func (in *UpdateProfileInput) Trim() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		*in.Phone = strings.TrimSpace(*in.Phone)
	}
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalUsers    int `json:"totalUsers"`
	TotalMatches  int `json:"totalMatches"`
	TotalCourts   int `json:"totalCourts"`
	ActiveMatches int `json:"activeMatches"`
}
