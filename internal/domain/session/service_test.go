package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/backend/internal/domain/session"
	"courtside/backend/internal/domain/team"
	"courtside/backend/internal/store/memory"
)

func newSessionService(t *testing.T) (*session.Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return session.NewService(store, store), store
}

func seedTeam(t *testing.T, store *memory.Store, id, captain, homeCourt string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, store.PutTeam(context.Background(), team.Team{
		ID:          id,
		Name:        "Seed Team",
		CaptainID:   captain,
		MemberIDs:   []string{captain},
		MaxMembers:  10,
		HomeCourtID: homeCourt,
		Status:      team.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}))
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()
	svc, store := newSessionService(t)
	seedTeam(t, store, "team-1", "cap-1", "court-7")

	t.Run("defaults derived from input", func(t *testing.T) {
		out, err := svc.Create(ctx, session.CreateSessionInput{
			TeamID:       "team-1",
			Date:         "2026-09-12",
			StartTime:    "19:00",
			Duration:     120,
			NeededGuests: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, "court-7", out.CourtID)
		assert.Equal(t, 5, out.MaxGuests) // neededGuests+2
		assert.Equal(t, session.StatusRecruiting, out.Status)
		assert.Empty(t, out.GuestIDs)
		assert.Empty(t, out.PendingGuestIDs)
	})

	t.Run("no guests needed starts confirmed", func(t *testing.T) {
		out, err := svc.Create(ctx, session.CreateSessionInput{
			TeamID:    "team-1",
			Date:      "2026-09-13",
			StartTime: "09:30",
			Duration:  90,
		})
		require.NoError(t, err)
		assert.Equal(t, session.StatusConfirmed, out.Status)
	})

	t.Run("explicit maxGuests wins", func(t *testing.T) {
		out, err := svc.Create(ctx, session.CreateSessionInput{
			TeamID:       "team-1",
			Date:         "2026-09-14",
			StartTime:    "18:00",
			Duration:     60,
			NeededGuests: 2,
			MaxGuests:    2,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, out.MaxGuests)
	})

	t.Run("rejects malformed date and time", func(t *testing.T) {
		_, err := svc.Create(ctx, session.CreateSessionInput{
			TeamID: "team-1", Date: "12/09/2026", StartTime: "19:00", Duration: 60,
		})
		assert.True(t, session.IsErrBadRequest(err))

		_, err = svc.Create(ctx, session.CreateSessionInput{
			TeamID: "team-1", Date: "2026-09-12", StartTime: "7pm", Duration: 60,
		})
		assert.True(t, session.IsErrBadRequest(err))
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := svc.Create(ctx, session.CreateSessionInput{
			TeamID: "ghost", Date: "2026-09-12", StartTime: "19:00", Duration: 60,
		})
		assert.True(t, session.IsErrNotFound(err))
	})
}

func TestListSessions(t *testing.T) {
	ctx := context.Background()
	svc, store := newSessionService(t)
	seedTeam(t, store, "team-1", "cap-1", "court-1")
	seedTeam(t, store, "team-2", "cap-2", "court-2")

	_, err := svc.Create(ctx, session.CreateSessionInput{
		TeamID: "team-1", Date: "2026-09-12", StartTime: "19:00", Duration: 60, NeededGuests: 2,
	})
	require.NoError(t, err)
	full, err := svc.Create(ctx, session.CreateSessionInput{
		TeamID: "team-2", Date: "2026-09-12", StartTime: "20:00", Duration: 60, NeededGuests: 1, MaxGuests: 1,
	})
	require.NoError(t, err)

	// Fill team-2's session so the open-slots filter excludes it.
	full.GuestIDs = []string{"guest-1"}
	require.NoError(t, store.PutSession(ctx, *full))

	out, err := svc.List(ctx, session.Filters{TeamID: "team-1"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "court-1", out[0].CourtID)

	out, err = svc.List(ctx, session.Filters{Date: "2026-09-12"})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = svc.List(ctx, session.Filters{HasOpenSlots: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "team-1", out[0].TeamID)
}

func TestUpdateSessionStatus(t *testing.T) {
	ctx := context.Background()
	svc, store := newSessionService(t)
	seedTeam(t, store, "team-1", "cap-1", "court-1")

	sess, err := svc.Create(ctx, session.CreateSessionInput{
		TeamID: "team-1", Date: "2026-09-12", StartTime: "19:00", Duration: 60, NeededGuests: 1,
	})
	require.NoError(t, err)

	t.Run("captain only", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, sess.ID, session.StatusCancelled, "user-2")
		assert.True(t, session.IsErrUnauthorized(err))
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, sess.ID, "DONE", "cap-1")
		assert.True(t, session.IsErrBadRequest(err))
	})

	t.Run("any transition allowed for the captain", func(t *testing.T) {
		out, err := svc.UpdateStatus(ctx, sess.ID, session.StatusCompleted, "cap-1")
		require.NoError(t, err)
		assert.Equal(t, session.StatusCompleted, out.Status)

		// No transition table: moving back is fine.
		out, err = svc.UpdateStatus(ctx, sess.ID, session.StatusRecruiting, "cap-1")
		require.NoError(t, err)
		assert.Equal(t, session.StatusRecruiting, out.Status)
	})
}

func TestUpdateSession(t *testing.T) {
	ctx := context.Background()
	svc, store := newSessionService(t)
	seedTeam(t, store, "team-1", "cap-1", "court-1")

	sess, err := svc.Create(ctx, session.CreateSessionInput{
		TeamID: "team-1", Date: "2026-09-12", StartTime: "19:00", Duration: 60,
	})
	require.NoError(t, err)

	t.Run("captain only", func(t *testing.T) {
		d := 90
		_, err := svc.Update(ctx, sess.ID, session.UpdateSessionInput{Duration: &d}, "user-2")
		assert.True(t, session.IsErrUnauthorized(err))
	})

	t.Run("partial update", func(t *testing.T) {
		date := "2026-09-19"
		court := "court-9"
		out, err := svc.Update(ctx, sess.ID, session.UpdateSessionInput{Date: &date, CourtID: &court}, "cap-1")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-19", out.Date)
		assert.Equal(t, "court-9", out.CourtID)
		assert.Equal(t, "19:00", out.StartTime) // untouched
	})
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	svc, store := newSessionService(t)
	seedTeam(t, store, "team-1", "cap-1", "court-1")

	sess, err := svc.Create(ctx, session.CreateSessionInput{
		TeamID: "team-1", Date: "2026-09-12", StartTime: "19:00", Duration: 60,
	})
	require.NoError(t, err)

	assert.True(t, session.IsErrUnauthorized(svc.Delete(ctx, sess.ID, "user-2")))
	require.NoError(t, svc.Delete(ctx, sess.ID, "cap-1"))

	_, err = svc.Get(ctx, sess.ID)
	assert.True(t, session.IsErrNotFound(err))
}

func TestOrphanedTeam(t *testing.T) {
	ctx := context.Background()
	svc, store := newSessionService(t)
	seedTeam(t, store, "team-1", "cap-1", "court-1")

	sess, err := svc.Create(ctx, session.CreateSessionInput{
		TeamID: "team-1", Date: "2026-09-12", StartTime: "19:00", Duration: 60,
	})
	require.NoError(t, err)

	// Deleting the team does not cascade; captain checks then surface not-found.
	require.NoError(t, store.DeleteTeam(ctx, "team-1"))

	_, err = svc.UpdateStatus(ctx, sess.ID, session.StatusCancelled, "cap-1")
	assert.True(t, session.IsErrNotFound(err))
}
