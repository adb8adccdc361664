package guest_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"courtside/backend/internal/domain/guest"
	"courtside/backend/internal/domain/session"
	"courtside/backend/internal/domain/team"
	"courtside/backend/internal/keylock"
	"courtside/backend/internal/store/memory"
)

type fixture struct {
	svc   *guest.Service
	store *memory.Store
}

// newFixture seeds a team owned by cap-1 and a RECRUITING session with the
// given guest capacity.
func newFixture(t *testing.T, maxGuests int) (*fixture, string) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	now := time.Now().UTC()

	require.NoError(t, store.PutTeam(ctx, team.Team{
		ID:         "team-1",
		Name:       "Seed Team",
		CaptainID:  "cap-1",
		MemberIDs:  []string{"cap-1"},
		MaxMembers: 10,
		Status:     team.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}))
	require.NoError(t, store.PutSession(ctx, session.Session{
		ID:                 "sess-1",
		TeamID:             "team-1",
		Date:               "2026-09-12",
		StartTime:          "19:00",
		Duration:           120,
		ConfirmedMemberIDs: []string{},
		GuestIDs:           []string{},
		PendingGuestIDs:    []string{},
		NeededGuests:       maxGuests,
		MaxGuests:          maxGuests,
		Status:             session.StatusRecruiting,
		CreatedAt:          now,
		UpdatedAt:          now,
	}))

	svc := guest.NewService(store, store, store, keylock.New(), zap.NewNop())
	return &fixture{svc: svc, store: store}, "sess-1"
}

func (f *fixture) session(t *testing.T) *session.Session {
	t.Helper()
	sess, err := f.store.GetSession(context.Background(), "sess-1")
	require.NoError(t, err)
	return sess
}

func countOf(ids []string, uid string) int {
	n := 0
	for _, id := range ids {
		if id == uid {
			n++
		}
	}
	return n
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	f, sessID := newFixture(t, 3)

	a, err := f.svc.Apply(ctx, "guest-1", guest.ApplyInput{SessionID: sessID, Position: guest.PositionGuard})
	require.NoError(t, err)
	assert.Equal(t, guest.StatusPending, a.Status)

	sess := f.session(t)
	assert.Equal(t, 1, countOf(sess.PendingGuestIDs, "guest-1"))
	assert.Empty(t, sess.GuestIDs)

	t.Run("duplicate pending application rejected", func(t *testing.T) {
		_, err := f.svc.Apply(ctx, "guest-1", guest.ApplyInput{SessionID: sessID, Position: guest.PositionAny})
		assert.True(t, guest.IsErrDuplicateApplication(err))

		// Still exactly once in the pending roster.
		sess := f.session(t)
		assert.Equal(t, 1, countOf(sess.PendingGuestIDs, "guest-1"))
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := f.svc.Apply(ctx, "guest-2", guest.ApplyInput{SessionID: "ghost", Position: guest.PositionAny})
		assert.True(t, guest.IsErrNotFound(err))
	})
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	f, sessID := newFixture(t, 3)

	a, err := f.svc.Apply(ctx, "guest-1", guest.ApplyInput{SessionID: sessID, Position: guest.PositionGuard})
	require.NoError(t, err)

	t.Run("captain only", func(t *testing.T) {
		err := f.svc.Approve(ctx, a.ID, "guest-1")
		assert.True(t, guest.IsErrUnauthorized(err))

		got, err := f.store.GetApplication(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, guest.StatusPending, got.Status)
	})

	t.Run("approve moves applicant pending to guests", func(t *testing.T) {
		require.NoError(t, f.svc.Approve(ctx, a.ID, "cap-1"))

		got, err := f.store.GetApplication(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, guest.StatusApproved, got.Status)
		require.NotNil(t, got.RespondedAt)
		assert.Equal(t, "cap-1", got.RespondedBy)

		sess := f.session(t)
		assert.Equal(t, 0, countOf(sess.PendingGuestIDs, "guest-1"))
		assert.Equal(t, 1, countOf(sess.GuestIDs, "guest-1"))
		assert.Equal(t, session.StatusRecruiting, sess.Status) // 1/3 slots
	})
}

func TestApproveAutoConfirm(t *testing.T) {
	ctx := context.Background()
	f, sessID := newFixture(t, 2)

	a1, err := f.svc.Apply(ctx, "guest-1", guest.ApplyInput{SessionID: sessID, Position: guest.PositionGuard})
	require.NoError(t, err)
	a2, err := f.svc.Apply(ctx, "guest-2", guest.ApplyInput{SessionID: sessID, Position: guest.PositionCenter})
	require.NoError(t, err)

	require.NoError(t, f.svc.Approve(ctx, a1.ID, "cap-1"))
	assert.Equal(t, session.StatusRecruiting, f.session(t).Status)

	require.NoError(t, f.svc.Approve(ctx, a2.ID, "cap-1"))
	sess := f.session(t)
	assert.Equal(t, session.StatusConfirmed, sess.Status)
	assert.ElementsMatch(t, []string{"guest-1", "guest-2"}, sess.GuestIDs)
}

func TestApproveWhenFull(t *testing.T) {
	ctx := context.Background()
	f, sessID := newFixture(t, 1)

	a1, err := f.svc.Apply(ctx, "guest-1", guest.ApplyInput{SessionID: sessID, Position: guest.PositionGuard})
	require.NoError(t, err)
	a2, err := f.svc.Apply(ctx, "guest-2", guest.ApplyInput{SessionID: sessID, Position: guest.PositionCenter})
	require.NoError(t, err)

	require.NoError(t, f.svc.Approve(ctx, a1.ID, "cap-1"))

	err = f.svc.Approve(ctx, a2.ID, "cap-1")
	assert.True(t, guest.IsErrSessionFull(err))

	// The losing application is untouched and its user still pending.
	got, err := f.store.GetApplication(ctx, a2.ID)
	require.NoError(t, err)
	assert.Equal(t, guest.StatusPending, got.Status)

	sess := f.session(t)
	assert.Equal(t, []string{"guest-1"}, sess.GuestIDs)
	assert.Equal(t, 1, countOf(sess.PendingGuestIDs, "guest-2"))
}

func TestReject(t *testing.T) {
	ctx := context.Background()
	f, sessID := newFixture(t, 3)

	a, err := f.svc.Apply(ctx, "guest-1", guest.ApplyInput{SessionID: sessID, Position: guest.PositionGuard})
	require.NoError(t, err)

	t.Run("captain only", func(t *testing.T) {
		err := f.svc.Reject(ctx, a.ID, "guest-1")
		assert.True(t, guest.IsErrUnauthorized(err))
	})

	t.Run("reject drops applicant from pending", func(t *testing.T) {
		require.NoError(t, f.svc.Reject(ctx, a.ID, "cap-1"))

		got, err := f.store.GetApplication(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, guest.StatusRejected, got.Status)

		sess := f.session(t)
		assert.Empty(t, sess.PendingGuestIDs)
		assert.Empty(t, sess.GuestIDs)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	f, sessID := newFixture(t, 3)

	a, err := f.svc.Apply(ctx, "guest-1", guest.ApplyInput{SessionID: sessID, Position: guest.PositionGuard})
	require.NoError(t, err)

	t.Run("owner only", func(t *testing.T) {
		err := f.svc.Cancel(ctx, a.ID, "guest-2")
		assert.True(t, guest.IsErrUnauthorized(err))
	})

	t.Run("cancel withdraws a pending application", func(t *testing.T) {
		require.NoError(t, f.svc.Cancel(ctx, a.ID, "guest-1"))

		got, err := f.store.GetApplication(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, guest.StatusCancelled, got.Status)
		assert.NotNil(t, got.CancelledAt)

		sess := f.session(t)
		assert.Empty(t, sess.PendingGuestIDs)
	})

	t.Run("terminal states cannot be cancelled", func(t *testing.T) {
		err := f.svc.Cancel(ctx, a.ID, "guest-1")
		assert.True(t, guest.IsErrInvalidState(err))
		assert.Contains(t, err.Error(), "CANCELLED")
	})
}

func TestListApplications(t *testing.T) {
	ctx := context.Background()
	f, sessID := newFixture(t, 3)

	_, err := f.svc.Apply(ctx, "guest-1", guest.ApplyInput{SessionID: sessID, Position: guest.PositionGuard})
	require.NoError(t, err)
	_, err = f.svc.Apply(ctx, "guest-2", guest.ApplyInput{SessionID: sessID, Position: guest.PositionAny})
	require.NoError(t, err)

	bySession, err := f.svc.ListForSession(ctx, sessID)
	require.NoError(t, err)
	assert.Len(t, bySession, 2)

	byUser, err := f.svc.ListForUser(ctx, "guest-1")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, sessID, byUser[0].SessionID)
}
