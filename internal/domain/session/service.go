package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"courtside/backend/internal/domain/team"
	"courtside/backend/internal/utils"
)

type Store interface {
	PutSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	ListSessions(ctx context.Context) ([]Session, error)
}

// Teams resolves the owning team for authorization and court derivation.
type Teams interface {
	GetTeam(ctx context.Context, teamID string) (*team.Team, error)
}

type Service struct {
	store Store
	teams Teams
}

func NewService(store Store, teams Teams) *Service {
	return &Service{store: store, teams: teams}
}

// Create builds a session from the owning team's home court and the given
// date/time. Initial status is RECRUITING when guests are needed, CONFIRMED
// otherwise; maxGuests defaults to neededGuests+2.
func (s *Service) Create(ctx context.Context, in CreateSessionInput) (*Session, error) {
	if in.TeamID == "" {
		return nil, fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}
	if !utils.IsValidDate(in.Date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrBadRequest)
	}
	if !utils.IsValidHHMM(in.StartTime) {
		return nil, fmt.Errorf("%w: startTime must be HH:MM", ErrBadRequest)
	}
	if in.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrBadRequest)
	}
	if in.NeededGuests < 0 {
		return nil, fmt.Errorf("%w: neededGuests cannot be negative", ErrBadRequest)
	}

	t, err := s.teams.GetTeam(ctx, in.TeamID)
	if err != nil {
		return nil, fmt.Errorf("%w: team not found", ErrNotFound)
	}

	maxGuests := in.MaxGuests
	if maxGuests <= 0 {
		maxGuests = in.NeededGuests + 2
	}
	status := StatusConfirmed
	if in.NeededGuests > 0 {
		status = StatusRecruiting
	}
	confirmed := in.ConfirmedMemberIDs
	if confirmed == nil {
		confirmed = []string{}
	}

	now := time.Now().UTC()
	sess := Session{
		ID:                 uuid.NewString(),
		TeamID:             in.TeamID,
		Date:               in.Date,
		StartTime:          in.StartTime,
		Duration:           in.Duration,
		CourtID:            t.HomeCourtID,
		ConfirmedMemberIDs: confirmed,
		GuestIDs:           []string{},
		PendingGuestIDs:    []string{},
		NeededGuests:       in.NeededGuests,
		MaxGuests:          maxGuests,
		GuestFee:           in.GuestFee,
		NeedGuard:          in.NeedGuard,
		NeedForward:        in.NeedForward,
		NeedCenter:         in.NeedCenter,
		Status:             status,
		Description:        in.Description,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.store.PutSession(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Service) Get(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrBadRequest)
	}
	return s.store.GetSession(ctx, sessionID)
}

// List retrieves all sessions and applies the filter conjunction in memory.
func (s *Service) List(ctx context.Context, f Filters) ([]Session, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	out := sessions[:0]
	for _, sess := range sessions {
		if f.TeamID != "" && sess.TeamID != f.TeamID {
			continue
		}
		if f.Status != "" && sess.Status != f.Status {
			continue
		}
		if f.Date != "" && sess.Date != f.Date {
			continue
		}
		if f.CourtID != "" && sess.CourtID != f.CourtID {
			continue
		}
		if f.HasOpenSlots && sess.GuestSlotsFull() {
			continue
		}
		out = append(out, sess)
	}
	return out, nil
}

// UpdateStatus sets the session status. Captain only. Any status is accepted
// from any prior status; there is no transition table.
func (s *Service) UpdateStatus(ctx context.Context, sessionID string, status Status, actorID string) (*Session, error) {
	if !IsValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrBadRequest, status)
	}

	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCaptain(ctx, sess.TeamID, actorID); err != nil {
		return nil, err
	}

	sess.Status = status
	sess.UpdatedAt = time.Now().UTC()
	if err := s.store.PutSession(ctx, *sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Update applies a partial update. Captain only.
func (s *Service) Update(ctx context.Context, sessionID string, in UpdateSessionInput, actorID string) (*Session, error) {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCaptain(ctx, sess.TeamID, actorID); err != nil {
		return nil, err
	}

	if in.Date != nil {
		if !utils.IsValidDate(*in.Date) {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrBadRequest)
		}
		sess.Date = *in.Date
	}
	if in.StartTime != nil {
		if !utils.IsValidHHMM(*in.StartTime) {
			return nil, fmt.Errorf("%w: startTime must be HH:MM", ErrBadRequest)
		}
		sess.StartTime = *in.StartTime
	}
	if in.Duration != nil {
		if *in.Duration <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", ErrBadRequest)
		}
		sess.Duration = *in.Duration
	}
	if in.CourtID != nil {
		sess.CourtID = *in.CourtID
	}
	if in.NeededGuests != nil {
		sess.NeededGuests = *in.NeededGuests
	}
	if in.MaxGuests != nil {
		sess.MaxGuests = *in.MaxGuests
	}
	if in.GuestFee != nil {
		sess.GuestFee = *in.GuestFee
	}
	if in.Description != nil {
		sess.Description = *in.Description
	}
	sess.UpdatedAt = time.Now().UTC()

	if err := s.store.PutSession(ctx, *sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Delete removes the session record. Captain only. Guest applications pointing
// at the session are left in place.
func (s *Service) Delete(ctx context.Context, sessionID, actorID string) error {
	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := s.requireCaptain(ctx, sess.TeamID, actorID); err != nil {
		return err
	}
	return s.store.DeleteSession(ctx, sessionID)
}

// requireCaptain walks to the owning team and compares captainId. The walk is
// repeated on every call; the captain id is never cached.
func (s *Service) requireCaptain(ctx context.Context, teamID, actorID string) error {
	t, err := s.teams.GetTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("%w: team not found", ErrNotFound)
	}
	if t.CaptainID != actorID {
		return fmt.Errorf("%w: only the team captain may do this", ErrUnauthorized)
	}
	return nil
}
