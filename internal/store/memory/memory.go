// Package memory is an in-process implementation of the domain store
// interfaces. It backs STORE=memory development mode and the service tests.
// Records are copied on the way in and out so callers never share slices with
// the store, mirroring the isolation of a remote document store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"courtside/backend/internal/domain/court"
	"courtside/backend/internal/domain/guest"
	"courtside/backend/internal/domain/match"
	"courtside/backend/internal/domain/session"
	"courtside/backend/internal/domain/team"
	"courtside/backend/internal/domain/user"
)

type Store struct {
	mu           sync.RWMutex
	teams        map[string]team.Team
	joinRequests map[string]team.JoinRequest
	sessions     map[string]session.Session
	applications map[string]guest.Application
	matches      map[string]match.Match
	courts       map[string]court.Court
	users        map[string]user.Profile

	// FailPuts forces every write to fail, for partial-write tests.
	FailPuts bool
}

func New() *Store {
	return &Store{
		teams:        map[string]team.Team{},
		joinRequests: map[string]team.JoinRequest{},
		sessions:     map[string]session.Session{},
		applications: map[string]guest.Application{},
		matches:      map[string]match.Match{},
		courts:       map[string]court.Court{},
		users:        map[string]user.Profile{},
	}
}

func (s *Store) failPut() error {
	if s.FailPuts {
		return fmt.Errorf("memory store: write refused")
	}
	return nil
}

// ---- team.Store ----

func (s *Store) PutTeam(_ context.Context, t team.Team) error {
	if err := s.failPut(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[t.ID] = cloneTeam(t)
	return nil
}

func (s *Store) GetTeam(_ context.Context, teamID string) (*team.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("%w: team not found", team.ErrNotFound)
	}
	c := cloneTeam(t)
	return &c, nil
}

func (s *Store) DeleteTeam(_ context.Context, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.teams, teamID)
	return nil
}

func (s *Store) ListTeams(_ context.Context) ([]team.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]team.Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, cloneTeam(t))
	}
	return out, nil
}

func (s *Store) SearchTeamsByNamePrefix(_ context.Context, q string, limit int) ([]team.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []team.Team{}
	for _, t := range s.teams {
		if len(out) >= limit {
			break
		}
		if q == "" || hasPrefix(t.NameLower, q) {
			out = append(out, cloneTeam(t))
		}
	}
	return out, nil
}

func (s *Store) PutJoinRequest(_ context.Context, jr team.JoinRequest) error {
	if err := s.failPut(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.joinRequests[jr.ID] = jr
	return nil
}

func (s *Store) GetJoinRequest(_ context.Context, requestID string) (*team.JoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	jr, ok := s.joinRequests[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: join request not found", team.ErrNotFound)
	}
	return &jr, nil
}

func (s *Store) ListJoinRequestsByTeam(_ context.Context, teamID string) ([]team.JoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []team.JoinRequest{}
	for _, jr := range s.joinRequests {
		if jr.TeamID == teamID {
			out = append(out, jr)
		}
	}
	return out, nil
}

// ---- session.Store ----

func (s *Store) PutSession(_ context.Context, sess session.Session) error {
	if err := s.failPut(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = cloneSession(sess)
	return nil
}

func (s *Store) GetSession(_ context.Context, sessionID string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: session not found", session.ErrNotFound)
	}
	c := cloneSession(sess)
	return &c, nil
}

func (s *Store) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *Store) ListSessions(_ context.Context) ([]session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]session.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, cloneSession(sess))
	}
	return out, nil
}

// ---- guest.Store ----

func (s *Store) PutApplication(_ context.Context, a guest.Application) error {
	if err := s.failPut(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[a.ID] = a
	return nil
}

func (s *Store) GetApplication(_ context.Context, applicationID string) (*guest.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.applications[applicationID]
	if !ok {
		return nil, fmt.Errorf("%w: application not found", guest.ErrNotFound)
	}
	return &a, nil
}

func (s *Store) ListApplicationsBySession(_ context.Context, sessionID string) ([]guest.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []guest.Application{}
	for _, a := range s.applications {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) ListApplicationsByUser(_ context.Context, userID string) ([]guest.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []guest.Application{}
	for _, a := range s.applications {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ---- match.Store ----

func (s *Store) PutMatch(_ context.Context, m match.Match) error {
	if err := s.failPut(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[m.ID] = cloneMatch(m)
	return nil
}

func (s *Store) GetMatch(_ context.Context, matchID string) (*match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: match not found", match.ErrNotFound)
	}
	c := cloneMatch(m)
	return &c, nil
}

func (s *Store) DeleteMatch(_ context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, matchID)
	return nil
}

func (s *Store) ListMatches(_ context.Context) ([]match.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]match.Match, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, cloneMatch(m))
	}
	return out, nil
}

// ---- court.Store ----

func (s *Store) PutCourt(_ context.Context, c court.Court) error {
	if err := s.failPut(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courts[c.ID] = cloneCourt(c)
	return nil
}

func (s *Store) GetCourt(_ context.Context, courtID string) (*court.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courts[courtID]
	if !ok {
		return nil, fmt.Errorf("%w: court not found", court.ErrNotFound)
	}
	cc := cloneCourt(c)
	return &cc, nil
}

func (s *Store) DeleteCourt(_ context.Context, courtID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.courts, courtID)
	return nil
}

func (s *Store) ListCourts(_ context.Context) ([]court.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]court.Court, 0, len(s.courts))
	for _, c := range s.courts {
		out = append(out, cloneCourt(c))
	}
	return out, nil
}

// ---- user.Store ----

func (s *Store) PutProfile(_ context.Context, p user.Profile) error {
	if err := s.failPut(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[p.UID] = p
	return nil
}

func (s *Store) GetProfile(_ context.Context, uid string) (*user.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.users[uid]
	if !ok {
		return nil, fmt.Errorf("%w: user not found", user.ErrNotFound)
	}
	return &p, nil
}

func (s *Store) DeleteProfile(_ context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, uid)
	return nil
}

func (s *Store) ListProfiles(_ context.Context) ([]user.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]user.Profile, 0, len(s.users))
	for _, p := range s.users {
		out = append(out, p)
	}
	return out, nil
}

// ---- helpers ----

func cloneTeam(t team.Team) team.Team {
	t.MemberIDs = append([]string(nil), t.MemberIDs...)
	t.RegularSchedule.Exceptions = append([]string(nil), t.RegularSchedule.Exceptions...)
	return t
}

func cloneSession(s session.Session) session.Session {
	s.ConfirmedMemberIDs = append([]string(nil), s.ConfirmedMemberIDs...)
	s.GuestIDs = append([]string(nil), s.GuestIDs...)
	s.PendingGuestIDs = append([]string(nil), s.PendingGuestIDs...)
	return s
}

func cloneMatch(m match.Match) match.Match {
	m.CurrentPlayerIDs = append([]string(nil), m.CurrentPlayerIDs...)
	return m
}

func cloneCourt(c court.Court) court.Court {
	c.Facilities = append([]string(nil), c.Facilities...)
	c.Images = append([]string(nil), c.Images...)
	return c
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
