package user

import (
	"context"
	"fmt"
	"time"

	"courtside/backend/internal/domain/court"
	"courtside/backend/internal/domain/match"
)

type Store interface {
	PutProfile(ctx context.Context, p Profile) error
	GetProfile(ctx context.Context, uid string) (*Profile, error)
	DeleteProfile(ctx context.Context, uid string) error
	ListProfiles(ctx context.Context) ([]Profile, error)
}

// MatchLister and CourtLister feed the admin stats summary.
type MatchLister interface {
	ListMatches(ctx context.Context) ([]match.Match, error)
}

type CourtLister interface {
	ListCourts(ctx context.Context) ([]court.Court, error)
}

type Service struct {
	store   Store
	matches MatchLister
	courts  CourtLister
}

func NewService(store Store, matches MatchLister, courts CourtLister) *Service {
	return &Service{store: store, matches: matches, courts: courts}
}

// Ensure upserts a minimal profile for an authenticated user on first
// contact. Existing profiles are returned untouched.
func (s *Service) Ensure(ctx context.Context, uid, email string) (*Profile, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrBadRequest)
	}

	if p, err := s.store.GetProfile(ctx, uid); err == nil {
		return p, nil
	}

	now := time.Now().UTC()
	p := Profile{
		UID:       uid,
		Email:     email,
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.PutProfile(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Get(ctx context.Context, uid string) (*Profile, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: uid is required", ErrBadRequest)
	}
	return s.store.GetProfile(ctx, uid)
}

// Update lets a user edit their own profile fields.
func (s *Service) Update(ctx context.Context, uid string, in UpdateProfileInput) (*Profile, error) {
	p, err := s.store.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.ProfileImage != nil {
		p.ProfileImage = *in.ProfileImage
	}
	if in.Position != nil {
		p.Position = *in.Position
	}
	if in.Level != nil {
		if *in.Level < 1000 || *in.Level > 3000 {
			return nil, fmt.Errorf("%w: level must be 1000-3000", ErrBadRequest)
		}
		p.Level = *in.Level
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.store.PutProfile(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// IsAdmin re-derives the actor's role from the store on every call. A missing
// profile counts as not-admin rather than an error.
func (s *Service) IsAdmin(ctx context.Context, uid string) (bool, error) {
	p, err := s.store.GetProfile(ctx, uid)
	if err != nil {
		if IsErrNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return p.IsAdmin(), nil
}

func (s *Service) IsSuperAdmin(ctx context.Context, uid string) (bool, error) {
	p, err := s.store.GetProfile(ctx, uid)
	if err != nil {
		if IsErrNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return p.IsSuperAdmin(), nil
}

// ListUsers returns all profiles. Admin only.
func (s *Service) ListUsers(ctx context.Context, actorID string) ([]Profile, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.store.ListProfiles(ctx)
}

// UpdateRole changes a user's role. Super-admin only.
func (s *Service) UpdateRole(ctx context.Context, uid string, role Role, actorID string) (*Profile, error) {
	switch role {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
	default:
		return nil, fmt.Errorf("%w: invalid role %q", ErrBadRequest, role)
	}

	ok, err := s.IsSuperAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: super admin role required", ErrUnauthorized)
	}

	p, err := s.store.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}
	p.Role = role
	p.UpdatedAt = time.Now().UTC()
	if err := s.store.PutProfile(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteUser removes a profile. Super-admin only.
func (s *Service) DeleteUser(ctx context.Context, uid, actorID string) error {
	ok, err := s.IsSuperAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: super admin role required", ErrUnauthorized)
	}
	if _, err := s.store.GetProfile(ctx, uid); err != nil {
		return err
	}
	return s.store.DeleteProfile(ctx, uid)
}

// PlatformStats summarizes users, matches and courts for the admin dashboard.
func (s *Service) PlatformStats(ctx context.Context, actorID string) (*Stats, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	users, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.matches.ListMatches(ctx)
	if err != nil {
		return nil, err
	}
	courts, err := s.courts.ListCourts(ctx)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, m := range matches {
		if m.Status == match.StatusOpen || m.Status == match.StatusFull {
			active++
		}
	}

	return &Stats{
		TotalUsers:    len(users),
		TotalMatches:  len(matches),
		TotalCourts:   len(courts),
		ActiveMatches: active,
	}, nil
}

func (s *Service) requireAdmin(ctx context.Context, actorID string) error {
	ok, err := s.IsAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: admin role required", ErrUnauthorized)
	}
	return nil
}
