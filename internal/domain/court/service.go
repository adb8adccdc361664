package court

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Store interface {
	PutCourt(ctx context.Context, c Court) error
	GetCourt(ctx context.Context, courtID string) (*Court, error)
	DeleteCourt(ctx context.Context, courtID string) error
	ListCourts(ctx context.Context) ([]Court, error)
}

// Roles answers whether an actor holds the admin role. Court mutations are
// admin-only; reads are open.
type Roles interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

type Service struct {
	store Store
	roles Roles
}

func NewService(store Store, roles Roles) *Service {
	return &Service{store: store, roles: roles}
}

func (s *Service) Create(ctx context.Context, actorID string, in CreateCourtInput) (*Court, error) {
	if in.Name == "" || in.Address == "" {
		return nil, fmt.Errorf("%w: name and address are required", ErrBadRequest)
	}
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := Court{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Address:      in.Address,
		Lat:          in.Lat,
		Lng:          in.Lng,
		CourtType:    in.CourtType,
		CourtSize:    in.CourtSize,
		Floor:        in.Floor,
		Facilities:   in.Facilities,
		PricePerHour: in.PricePerHour,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.PutCourt(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) Get(ctx context.Context, courtID string) (*Court, error) {
	if courtID == "" {
		return nil, fmt.Errorf("%w: courtId is required", ErrBadRequest)
	}
	return s.store.GetCourt(ctx, courtID)
}

func (s *Service) List(ctx context.Context) ([]Court, error) {
	return s.store.ListCourts(ctx)
}

func (s *Service) Update(ctx context.Context, courtID, actorID string, in UpdateCourtInput) (*Court, error) {
	if courtID == "" {
		return nil, fmt.Errorf("%w: courtId is required", ErrBadRequest)
	}
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	c, err := s.store.GetCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrBadRequest)
		}
		c.Name = *in.Name
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Lat != nil {
		c.Lat = *in.Lat
	}
	if in.Lng != nil {
		c.Lng = *in.Lng
	}
	if in.CourtType != nil {
		c.CourtType = *in.CourtType
	}
	if in.CourtSize != nil {
		c.CourtSize = *in.CourtSize
	}
	if in.Floor != nil {
		c.Floor = *in.Floor
	}
	if in.Facilities != nil {
		c.Facilities = *in.Facilities
	}
	if in.Images != nil {
		c.Images = *in.Images
	}
	if in.PricePerHour != nil {
		c.PricePerHour = *in.PricePerHour
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.store.PutCourt(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, courtID, actorID string) error {
	if courtID == "" {
		return fmt.Errorf("%w: courtId is required", ErrBadRequest)
	}
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if _, err := s.store.GetCourt(ctx, courtID); err != nil {
		return err
	}
	return s.store.DeleteCourt(ctx, courtID)
}

func (s *Service) requireAdmin(ctx context.Context, actorID string) error {
	ok, err := s.roles.IsAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: admin role required", ErrUnauthorized)
	}
	return nil
}
