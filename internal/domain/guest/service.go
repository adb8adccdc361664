package guest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"courtside/backend/internal/domain/session"
	"courtside/backend/internal/domain/team"
	"courtside/backend/internal/keylock"
)

type Store interface {
	PutApplication(ctx context.Context, a Application) error
	GetApplication(ctx context.Context, applicationID string) (*Application, error)
	ListApplicationsBySession(ctx context.Context, sessionID string) ([]Application, error)
	ListApplicationsByUser(ctx context.Context, userID string) ([]Application, error)
}

// Sessions is the slice of the session store this service needs to keep the
// guest rosters consistent with application outcomes.
type Sessions interface {
	GetSession(ctx context.Context, sessionID string) (*session.Session, error)
	PutSession(ctx context.Context, s session.Session) error
}

// Teams resolves the owning team for captain authorization. Authorization is
// re-derived on every call by walking application -> session -> team; the
// captain id is never cached.
type Teams interface {
	GetTeam(ctx context.Context, teamID string) (*team.Team, error)
}

type Service struct {
	store    Store
	sessions Sessions
	teams    Teams
	locks    *keylock.KeyedMutex
	log      *zap.Logger
}

func NewService(store Store, sessions Sessions, teams Teams, locks *keylock.KeyedMutex, log *zap.Logger) *Service {
	return &Service{store: store, sessions: sessions, teams: teams, locks: locks, log: log}
}

// Apply creates a PENDING application and parks the caller in the session's
// pendingGuestIds. At most one PENDING application may exist per
// (session, user) pair. The session lock covers the duplicate check and both
// writes.
func (s *Service) Apply(ctx context.Context, userID string, in ApplyInput) (*Application, error) {
	if in.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrBadRequest)
	}

	s.locks.Lock(in.SessionID)
	defer s.locks.Unlock(in.SessionID)

	sess, err := s.sessions.GetSession(ctx, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: session not found", ErrNotFound)
	}

	existing, err := s.store.ListApplicationsBySession(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}
	for _, a := range existing {
		if a.UserID == userID && a.Status == StatusPending {
			return nil, ErrDuplicateApplication
		}
	}

	a := Application{
		ID:        uuid.NewString(),
		SessionID: in.SessionID,
		UserID:    userID,
		Position:  in.Position,
		Message:   in.Message,
		Status:    StatusPending,
		AppliedAt: time.Now().UTC(),
	}
	if err := s.store.PutApplication(ctx, a); err != nil {
		return nil, err
	}

	if !sess.HasPendingGuest(userID) {
		sess.PendingGuestIDs = append(sess.PendingGuestIDs, userID)
	}
	sess.UpdatedAt = time.Now().UTC()
	if err := s.sessions.PutSession(ctx, *sess); err != nil {
		s.log.Error("application created but session roster write failed",
			zap.String("applicationId", a.ID),
			zap.String("sessionId", sess.ID),
			zap.Error(err))
		return nil, err
	}
	return &a, nil
}

// Approve marks the application APPROVED and moves the applicant from
// pendingGuestIds to guestIds. Captain only. When the approved-guest count
// reaches maxGuests the session advances RECRUITING -> CONFIRMED; a session
// already past CONFIRMED is never downgraded.
func (s *Service) Approve(ctx context.Context, applicationID, actorID string) error {
	a, err := s.store.GetApplication(ctx, applicationID)
	if err != nil {
		return err
	}

	s.locks.Lock(a.SessionID)
	defer s.locks.Unlock(a.SessionID)

	// Re-read under the lock so a concurrent decision on the same
	// application cannot interleave.
	a, err = s.store.GetApplication(ctx, applicationID)
	if err != nil {
		return err
	}

	sess, err := s.sessions.GetSession(ctx, a.SessionID)
	if err != nil {
		return fmt.Errorf("%w: session not found", ErrNotFound)
	}
	t, err := s.teams.GetTeam(ctx, sess.TeamID)
	if err != nil {
		return fmt.Errorf("%w: team not found", ErrNotFound)
	}
	if t.CaptainID != actorID {
		return fmt.Errorf("%w: only the team captain can approve guests", ErrUnauthorized)
	}
	if !sess.HasGuest(a.UserID) && sess.GuestSlotsFull() {
		return fmt.Errorf("%w: %d/%d guests", ErrSessionFull, len(sess.GuestIDs), sess.MaxGuests)
	}

	now := time.Now().UTC()
	a.Status = StatusApproved
	a.RespondedAt = &now
	a.RespondedBy = actorID
	if err := s.store.PutApplication(ctx, *a); err != nil {
		return err
	}

	sess.PendingGuestIDs = remove(sess.PendingGuestIDs, a.UserID)
	if !sess.HasGuest(a.UserID) {
		sess.GuestIDs = append(sess.GuestIDs, a.UserID)
	}
	if sess.GuestSlotsFull() && sess.Status == session.StatusRecruiting {
		sess.Status = session.StatusConfirmed
		s.log.Info("session guest slots filled, auto-confirming",
			zap.String("sessionId", sess.ID))
	}
	sess.UpdatedAt = now
	if err := s.sessions.PutSession(ctx, *sess); err != nil {
		s.log.Error("application approved but session roster write failed",
			zap.String("applicationId", a.ID),
			zap.String("sessionId", sess.ID),
			zap.Error(err))
		return err
	}
	return nil
}

// Reject marks the application REJECTED and drops the applicant from
// pendingGuestIds. Captain only.
func (s *Service) Reject(ctx context.Context, applicationID, actorID string) error {
	a, err := s.store.GetApplication(ctx, applicationID)
	if err != nil {
		return err
	}

	s.locks.Lock(a.SessionID)
	defer s.locks.Unlock(a.SessionID)

	sess, err := s.sessions.GetSession(ctx, a.SessionID)
	if err != nil {
		return fmt.Errorf("%w: session not found", ErrNotFound)
	}
	t, err := s.teams.GetTeam(ctx, sess.TeamID)
	if err != nil {
		return fmt.Errorf("%w: team not found", ErrNotFound)
	}
	if t.CaptainID != actorID {
		return fmt.Errorf("%w: only the team captain can reject guests", ErrUnauthorized)
	}

	now := time.Now().UTC()
	a.Status = StatusRejected
	a.RespondedAt = &now
	a.RespondedBy = actorID
	if err := s.store.PutApplication(ctx, *a); err != nil {
		return err
	}

	sess.PendingGuestIDs = remove(sess.PendingGuestIDs, a.UserID)
	sess.UpdatedAt = now
	if err := s.sessions.PutSession(ctx, *sess); err != nil {
		s.log.Error("application rejected but session roster write failed",
			zap.String("applicationId", a.ID),
			zap.String("sessionId", sess.ID),
			zap.Error(err))
		return err
	}
	return nil
}

// Cancel withdraws the caller's own PENDING application. Terminal states
// cannot be cancelled; the error message carries the current status.
func (s *Service) Cancel(ctx context.Context, applicationID, userID string) error {
	a, err := s.store.GetApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	s.locks.Lock(a.SessionID)
	defer s.locks.Unlock(a.SessionID)

	a, err = s.store.GetApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	if a.UserID != userID {
		return fmt.Errorf("%w: you can only cancel your own application", ErrUnauthorized)
	}
	if a.Status != StatusPending {
		return fmt.Errorf("%w: cannot cancel application with status %s", ErrInvalidState, a.Status)
	}

	sess, err := s.sessions.GetSession(ctx, a.SessionID)
	if err != nil {
		return fmt.Errorf("%w: session not found", ErrNotFound)
	}

	now := time.Now().UTC()
	a.Status = StatusCancelled
	a.CancelledAt = &now
	if err := s.store.PutApplication(ctx, *a); err != nil {
		return err
	}

	sess.PendingGuestIDs = remove(sess.PendingGuestIDs, userID)
	sess.UpdatedAt = now
	if err := s.sessions.PutSession(ctx, *sess); err != nil {
		s.log.Error("application cancelled but session roster write failed",
			zap.String("applicationId", a.ID),
			zap.String("sessionId", sess.ID),
			zap.Error(err))
		return err
	}
	return nil
}

// ListForSession returns every application for a session.
func (s *Service) ListForSession(ctx context.Context, sessionID string) ([]Application, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrBadRequest)
	}
	return s.store.ListApplicationsBySession(ctx, sessionID)
}

// ListForUser returns every application a user has made.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Application, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrBadRequest)
	}
	return s.store.ListApplicationsByUser(ctx, userID)
}

func remove(ids []string, uid string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != uid {
			out = append(out, id)
		}
	}
	return out
}
