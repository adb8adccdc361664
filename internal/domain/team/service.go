package team

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"courtside/backend/internal/keylock"
	"courtside/backend/internal/utils"
)

// Store is the persistence boundary the service runs against. The Firestore
// Repo implements it in production; tests and STORE=memory use the in-memory
// store.
type Store interface {
	PutTeam(ctx context.Context, t Team) error
	GetTeam(ctx context.Context, teamID string) (*Team, error)
	DeleteTeam(ctx context.Context, teamID string) error
	ListTeams(ctx context.Context) ([]Team, error)
	SearchTeamsByNamePrefix(ctx context.Context, q string, limit int) ([]Team, error)

	PutJoinRequest(ctx context.Context, jr JoinRequest) error
	GetJoinRequest(ctx context.Context, requestID string) (*JoinRequest, error)
	ListJoinRequestsByTeam(ctx context.Context, teamID string) ([]JoinRequest, error)
}

type Service struct {
	store Store
	locks *keylock.KeyedMutex
	log   *zap.Logger
}

func NewService(store Store, locks *keylock.KeyedMutex, log *zap.Logger) *Service {
	return &Service{store: store, locks: locks, log: log}
}

// Create builds a new team with the caller as captain and sole member.
func (s *Service) Create(ctx context.Context, captainID string, in CreateTeamInput) (*Team, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Level < 1 || in.Level > 5 {
		return nil, fmt.Errorf("%w: level must be 1-5", ErrBadRequest)
	}
	if in.MaxMembers < 2 {
		return nil, fmt.Errorf("%w: maxMembers must be at least 2", ErrBadRequest)
	}
	if in.RegularSchedule.DayOfWeek < 0 || in.RegularSchedule.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: dayOfWeek must be 0-6", ErrBadRequest)
	}
	status := in.Status
	if status == "" {
		status = StatusRecruiting
	}
	if !IsValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrBadRequest, status)
	}

	now := time.Now().UTC()
	t := Team{
		ID:              uuid.NewString(),
		Name:            in.Name,
		NameLower:       utils.NormalizeNameLower(in.Name),
		Slug:            utils.Slugify(in.Name),
		Description:     in.Description,
		FoundedDate:     now.Format("2006-01-02"),
		HomeCourtID:     in.HomeCourtID,
		Level:           in.Level,
		Status:          status,
		CaptainID:       captainID,
		MemberIDs:       []string{captainID},
		MaxMembers:      in.MaxMembers,
		RegularSchedule: in.RegularSchedule,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.PutTeam(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) Get(ctx context.Context, teamID string) (*Team, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}
	return s.store.GetTeam(ctx, teamID)
}

// List retrieves all teams and applies the filter conjunction in memory.
func (s *Service) List(ctx context.Context, f Filters) ([]Team, error) {
	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	out := teams[:0]
	for _, t := range teams {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Level != 0 && t.Level != f.Level {
			continue
		}
		if f.DayOfWeek != nil && t.RegularSchedule.DayOfWeek != *f.DayOfWeek {
			continue
		}
		if f.CourtID != "" && t.HomeCourtID != f.CourtID {
			continue
		}
		if f.IsRecruiting && t.IsFull() {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Search finds teams by normalized name prefix.
func (s *Service) Search(ctx context.Context, q string, limit int) ([]Team, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.store.SearchTeamsByNamePrefix(ctx, utils.NormalizeNameLower(q), limit)
}

// Update applies a partial update. Captain only.
func (s *Service) Update(ctx context.Context, teamID, actorID string, in UpdateTeamInput) (*Team, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}

	s.locks.Lock(teamID)
	defer s.locks.Unlock(teamID)

	t, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if t.CaptainID != actorID {
		return nil, fmt.Errorf("%w: only the captain can update the team", ErrUnauthorized)
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrBadRequest)
		}
		t.Name = *in.Name
		t.NameLower = utils.NormalizeNameLower(*in.Name)
		t.Slug = utils.Slugify(*in.Name)
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.HomeCourtID != nil {
		t.HomeCourtID = *in.HomeCourtID
	}
	if in.Level != nil {
		if *in.Level < 1 || *in.Level > 5 {
			return nil, fmt.Errorf("%w: level must be 1-5", ErrBadRequest)
		}
		t.Level = *in.Level
	}
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: invalid status %q", ErrBadRequest, *in.Status)
		}
		t.Status = *in.Status
	}
	if in.MaxMembers != nil {
		if *in.MaxMembers < len(t.MemberIDs) {
			return nil, fmt.Errorf("%w: maxMembers cannot be below current roster size", ErrBadRequest)
		}
		t.MaxMembers = *in.MaxMembers
	}
	if in.RegularSchedule != nil {
		if in.RegularSchedule.DayOfWeek < 0 || in.RegularSchedule.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: dayOfWeek must be 0-6", ErrBadRequest)
		}
		t.RegularSchedule = *in.RegularSchedule
	}
	if in.LogoURL != nil {
		t.LogoURL = *in.LogoURL
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.store.PutTeam(ctx, *t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the team record. Captain only. Sessions and join requests
// referencing the team are left in place; dereferencing them later surfaces
// not-found.
func (s *Service) Delete(ctx context.Context, teamID, actorID string) error {
	if teamID == "" {
		return fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}

	t, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if t.CaptainID != actorID {
		return fmt.Errorf("%w: only the captain can delete the team", ErrUnauthorized)
	}

	return s.store.DeleteTeam(ctx, teamID)
}

// Apply creates a PENDING join request for the caller.
func (s *Service) Apply(ctx context.Context, userID string, in ApplyToTeamInput) (*JoinRequest, error) {
	if in.TeamID == "" {
		return nil, fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}

	t, err := s.store.GetTeam(ctx, in.TeamID)
	if err != nil {
		return nil, err
	}
	if t.HasMember(userID) {
		return nil, fmt.Errorf("%w: user %s", ErrAlreadyMember, userID)
	}
	if t.IsFull() {
		return nil, fmt.Errorf("%w: %d/%d members", ErrTeamFull, len(t.MemberIDs), t.MaxMembers)
	}
	if t.Status != StatusRecruiting {
		return nil, fmt.Errorf("%w: status is %s", ErrNotRecruiting, t.Status)
	}

	existing, err := s.store.ListJoinRequestsByTeam(ctx, in.TeamID)
	if err != nil {
		return nil, err
	}
	for _, jr := range existing {
		if jr.UserID == userID && jr.Status == RequestPending {
			return nil, ErrDuplicateRequest
		}
	}

	jr := JoinRequest{
		ID:        uuid.NewString(),
		TeamID:    in.TeamID,
		UserID:    userID,
		Position:  in.Position,
		Message:   in.Message,
		Status:    RequestPending,
		AppliedAt: time.Now().UTC(),
	}
	if err := s.store.PutJoinRequest(ctx, jr); err != nil {
		return nil, err
	}
	return &jr, nil
}

// JoinRequests lists the PENDING requests for a team.
func (s *Service) JoinRequests(ctx context.Context, teamID string) ([]JoinRequest, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%w: teamId is required", ErrBadRequest)
	}
	all, err := s.store.ListJoinRequestsByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, jr := range all {
		if jr.Status == RequestPending {
			out = append(out, jr)
		}
	}
	return out, nil
}

// ApproveJoinRequest marks the request APPROVED and adds the requester to the
// roster. Captain only. The whole read-check-write sequence holds the team
// lock so concurrent approvals cannot overfill the roster.
func (s *Service) ApproveJoinRequest(ctx context.Context, requestID, actorID string) error {
	jr, err := s.store.GetJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}

	s.locks.Lock(jr.TeamID)
	defer s.locks.Unlock(jr.TeamID)

	t, err := s.store.GetTeam(ctx, jr.TeamID)
	if err != nil {
		return err
	}
	if t.CaptainID != actorID {
		return fmt.Errorf("%w: only the captain can approve join requests", ErrUnauthorized)
	}
	if t.IsFull() {
		return fmt.Errorf("%w: %d/%d members", ErrTeamFull, len(t.MemberIDs), t.MaxMembers)
	}

	now := time.Now().UTC()
	jr.Status = RequestApproved
	jr.RespondedAt = &now
	jr.RespondedBy = actorID
	if err := s.store.PutJoinRequest(ctx, *jr); err != nil {
		return err
	}

	if !t.HasMember(jr.UserID) {
		t.MemberIDs = append(t.MemberIDs, jr.UserID)
	}
	t.UpdatedAt = now
	if err := s.store.PutTeam(ctx, *t); err != nil {
		s.log.Error("join request approved but roster write failed",
			zap.String("requestId", requestID),
			zap.String("teamId", t.ID),
			zap.Error(err))
		return err
	}
	return nil
}

// RejectJoinRequest marks the request REJECTED. Captain only. The roster is
// untouched.
func (s *Service) RejectJoinRequest(ctx context.Context, requestID, actorID string) error {
	jr, err := s.store.GetJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}

	t, err := s.store.GetTeam(ctx, jr.TeamID)
	if err != nil {
		return err
	}
	if t.CaptainID != actorID {
		return fmt.Errorf("%w: only the captain can reject join requests", ErrUnauthorized)
	}

	now := time.Now().UTC()
	jr.Status = RequestRejected
	jr.RespondedAt = &now
	jr.RespondedBy = actorID
	return s.store.PutJoinRequest(ctx, *jr)
}

// AddMember puts a user straight onto the roster, bypassing the request flow.
// Captain only.
func (s *Service) AddMember(ctx context.Context, teamID, userID, actorID string) error {
	if teamID == "" || userID == "" {
		return fmt.Errorf("%w: teamId and userId are required", ErrBadRequest)
	}

	s.locks.Lock(teamID)
	defer s.locks.Unlock(teamID)

	t, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if t.CaptainID != actorID {
		return fmt.Errorf("%w: only the captain can add members", ErrUnauthorized)
	}
	if t.HasMember(userID) {
		return fmt.Errorf("%w: user %s", ErrAlreadyMember, userID)
	}
	if t.IsFull() {
		return fmt.Errorf("%w: %d/%d members", ErrTeamFull, len(t.MemberIDs), t.MaxMembers)
	}

	t.MemberIDs = append(t.MemberIDs, userID)
	t.UpdatedAt = time.Now().UTC()
	return s.store.PutTeam(ctx, *t)
}

// RemoveMember takes a user off the roster. Captain only; the captain can
// never be removed.
func (s *Service) RemoveMember(ctx context.Context, teamID, userID, actorID string) error {
	if teamID == "" || userID == "" {
		return fmt.Errorf("%w: teamId and userId are required", ErrBadRequest)
	}

	s.locks.Lock(teamID)
	defer s.locks.Unlock(teamID)

	t, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if t.CaptainID != actorID {
		return fmt.Errorf("%w: only the captain can remove members", ErrUnauthorized)
	}
	if userID == t.CaptainID {
		return ErrCaptainRemoval
	}

	kept := t.MemberIDs[:0]
	for _, id := range t.MemberIDs {
		if id != userID {
			kept = append(kept, id)
		}
	}
	t.MemberIDs = kept
	t.UpdatedAt = time.Now().UTC()
	return s.store.PutTeam(ctx, *t)
}
