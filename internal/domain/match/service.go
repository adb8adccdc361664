package match

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtside/backend/internal/keylock"
	"courtside/backend/internal/utils"
)

type Store interface {
	PutMatch(ctx context.Context, m Match) error
	GetMatch(ctx context.Context, matchID string) (*Match, error)
	DeleteMatch(ctx context.Context, matchID string) error
	ListMatches(ctx context.Context) ([]Match, error)
}

type Service struct {
	store Store
	locks *keylock.KeyedMutex
}

func NewService(store Store, locks *keylock.KeyedMutex) *Service {
	return &Service{store: store, locks: locks}
}

// Create opens a new pickup match with the caller as its first participant.
func (s *Service) Create(ctx context.Context, creatorID string, in CreateMatchInput) (*Match, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}
	if !utils.IsValidDate(in.Date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrBadRequest)
	}
	if !utils.IsValidHHMM(in.StartTime) {
		return nil, fmt.Errorf("%w: startTime must be HH:MM", ErrBadRequest)
	}
	if in.MaxPlayers < 2 {
		return nil, fmt.Errorf("%w: maxPlayers must be at least 2", ErrBadRequest)
	}
	if in.LevelMin > in.LevelMax {
		return nil, fmt.Errorf("%w: levelMin cannot exceed levelMax", ErrBadRequest)
	}

	now := time.Now().UTC()
	m := Match{
		ID:               uuid.NewString(),
		Title:            in.Title,
		CourtID:          in.CourtID,
		Date:             in.Date,
		StartTime:        in.StartTime,
		Duration:         in.Duration,
		GameType:         in.GameType,
		LevelMin:         in.LevelMin,
		LevelMax:         in.LevelMax,
		MaxPlayers:       in.MaxPlayers,
		CurrentPlayerIDs: []string{creatorID},
		GuardSlots:       in.GuardSlots,
		ForwardSlots:     in.ForwardSlots,
		CenterSlots:      in.CenterSlots,
		PricePerPerson:   in.PricePerPerson,
		Status:           StatusOpen,
		CreatedBy:        creatorID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.store.PutMatch(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Get(ctx context.Context, matchID string) (*Match, error) {
	if matchID == "" {
		return nil, fmt.Errorf("%w: matchId is required", ErrBadRequest)
	}
	return s.store.GetMatch(ctx, matchID)
}

// List retrieves all matches and applies the filter conjunction in memory.
func (s *Service) List(ctx context.Context, f Filters) ([]Match, error) {
	matches, err := s.store.ListMatches(ctx)
	if err != nil {
		return nil, err
	}

	out := matches[:0]
	for _, m := range matches {
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		if f.GameType != "" && m.GameType != f.GameType {
			continue
		}
		if f.Date != "" && m.Date != f.Date {
			continue
		}
		if f.CourtID != "" && m.CourtID != f.CourtID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// Join adds the caller to the match. The match flips OPEN -> FULL when the
// last slot fills. The whole read-check-write sequence holds the match lock.
func (s *Service) Join(ctx context.Context, matchID, userID string) (*Match, error) {
	if matchID == "" {
		return nil, fmt.Errorf("%w: matchId is required", ErrBadRequest)
	}

	s.locks.Lock(matchID)
	defer s.locks.Unlock(matchID)

	m, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.HasPlayer(userID) {
		return nil, fmt.Errorf("%w: user %s", ErrAlreadyJoined, userID)
	}
	if m.IsFull() {
		return nil, fmt.Errorf("%w: %d/%d players", ErrMatchFull, len(m.CurrentPlayerIDs), m.MaxPlayers)
	}

	m.CurrentPlayerIDs = append(m.CurrentPlayerIDs, userID)
	if m.IsFull() && m.Status == StatusOpen {
		m.Status = StatusFull
	}
	m.UpdatedAt = time.Now().UTC()

	if err := s.store.PutMatch(ctx, *m); err != nil {
		return nil, err
	}
	return m, nil
}

// Leave removes the caller from the match. A FULL match reopens when a slot
// frees up.
func (s *Service) Leave(ctx context.Context, matchID, userID string) (*Match, error) {
	if matchID == "" {
		return nil, fmt.Errorf("%w: matchId is required", ErrBadRequest)
	}

	s.locks.Lock(matchID)
	defer s.locks.Unlock(matchID)

	m, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.HasPlayer(userID) {
		return nil, fmt.Errorf("%w: user %s", ErrNotJoined, userID)
	}

	kept := m.CurrentPlayerIDs[:0]
	for _, id := range m.CurrentPlayerIDs {
		if id != userID {
			kept = append(kept, id)
		}
	}
	m.CurrentPlayerIDs = kept
	if m.Status == StatusFull && !m.IsFull() {
		m.Status = StatusOpen
	}
	m.UpdatedAt = time.Now().UTC()

	if err := s.store.PutMatch(ctx, *m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the match record. Creator only; admin deletion goes through
// the admin routes after a role check.
func (s *Service) Delete(ctx context.Context, matchID, actorID string, isAdmin bool) error {
	if matchID == "" {
		return fmt.Errorf("%w: matchId is required", ErrBadRequest)
	}

	m, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if m.CreatedBy != actorID && !isAdmin {
		return fmt.Errorf("%w: only the creator can delete the match", ErrUnauthorized)
	}
	return s.store.DeleteMatch(ctx, matchID)
}
