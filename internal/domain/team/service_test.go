package team_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"courtside/backend/internal/domain/team"
	"courtside/backend/internal/keylock"
	"courtside/backend/internal/store/memory"
)

func newTeamService() (*team.Service, *memory.Store) {
	store := memory.New()
	return team.NewService(store, keylock.New(), zap.NewNop()), store
}

func createTeam(t *testing.T, svc *team.Service, captain string, maxMembers int) *team.Team {
	t.Helper()
	out, err := svc.Create(context.Background(), captain, team.CreateTeamInput{
		Name:       "Night Owls",
		Level:      3,
		MaxMembers: maxMembers,
	})
	require.NoError(t, err)
	return out
}

func TestCreateTeam(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamService()

	t.Run("captain is sole member", func(t *testing.T) {
		out, err := svc.Create(ctx, "cap-1", team.CreateTeamInput{
			Name:        "Shibuya Ballers",
			Level:       3,
			MaxMembers:  10,
			HomeCourtID: "court-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "cap-1", out.CaptainID)
		assert.Equal(t, []string{"cap-1"}, out.MemberIDs)
		assert.Equal(t, team.StatusRecruiting, out.Status)
		assert.Equal(t, "shibuya ballers", out.NameLower)
		assert.Equal(t, "shibuya-ballers", out.Slug)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := svc.Create(ctx, "cap-1", team.CreateTeamInput{Name: "", Level: 3, MaxMembers: 10})
		assert.True(t, team.IsErrBadRequest(err))

		_, err = svc.Create(ctx, "cap-1", team.CreateTeamInput{Name: "x", Level: 0, MaxMembers: 10})
		assert.True(t, team.IsErrBadRequest(err))

		_, err = svc.Create(ctx, "cap-1", team.CreateTeamInput{Name: "x", Level: 3, MaxMembers: 1})
		assert.True(t, team.IsErrBadRequest(err))
	})
}

func TestJoinRequestFlow(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamService()
	tm := createTeam(t, svc, "cap-1", 2)

	jr, err := svc.Apply(ctx, "user-2", team.ApplyToTeamInput{TeamID: tm.ID, Position: team.PositionGuard})
	require.NoError(t, err)
	assert.Equal(t, team.RequestPending, jr.Status)

	t.Run("duplicate pending request rejected", func(t *testing.T) {
		_, err := svc.Apply(ctx, "user-2", team.ApplyToTeamInput{TeamID: tm.ID, Position: team.PositionGuard})
		assert.True(t, team.IsErrDuplicateRequest(err))
	})

	t.Run("only the captain approves", func(t *testing.T) {
		err := svc.ApproveJoinRequest(ctx, jr.ID, "user-2")
		assert.True(t, team.IsErrUnauthorized(err))

		got, err := svc.Get(ctx, tm.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"cap-1"}, got.MemberIDs)
	})

	t.Run("approve adds requester to roster", func(t *testing.T) {
		require.NoError(t, svc.ApproveJoinRequest(ctx, jr.ID, "cap-1"))

		got, err := svc.Get(ctx, tm.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"cap-1", "user-2"}, got.MemberIDs)
		assert.Contains(t, got.MemberIDs, got.CaptainID)
	})

	t.Run("full team rejects further applicants", func(t *testing.T) {
		_, err := svc.Apply(ctx, "user-3", team.ApplyToTeamInput{TeamID: tm.ID, Position: team.PositionCenter})
		assert.True(t, team.IsErrTeamFull(err))
	})

	t.Run("member cannot re-apply", func(t *testing.T) {
		_, err := svc.Apply(ctx, "user-2", team.ApplyToTeamInput{TeamID: tm.ID, Position: team.PositionGuard})
		assert.True(t, team.IsErrAlreadyMember(err))
	})
}

func TestApproveWhenFull(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamService()
	tm := createTeam(t, svc, "cap-1", 2)

	jr2, err := svc.Apply(ctx, "user-2", team.ApplyToTeamInput{TeamID: tm.ID, Position: team.PositionGuard})
	require.NoError(t, err)
	jr3, err := svc.Apply(ctx, "user-3", team.ApplyToTeamInput{TeamID: tm.ID, Position: team.PositionForward})
	require.NoError(t, err)

	require.NoError(t, svc.ApproveJoinRequest(ctx, jr2.ID, "cap-1"))

	err = svc.ApproveJoinRequest(ctx, jr3.ID, "cap-1")
	assert.True(t, team.IsErrTeamFull(err))

	// Roster untouched and the losing request still pending.
	got, err := svc.Get(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"cap-1", "user-2"}, got.MemberIDs)

	pending, err := svc.JoinRequests(ctx, tm.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "user-3", pending[0].UserID)
}

func TestRejectJoinRequest(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamService()
	tm := createTeam(t, svc, "cap-1", 10)

	jr, err := svc.Apply(ctx, "user-2", team.ApplyToTeamInput{TeamID: tm.ID, Position: team.PositionGuard})
	require.NoError(t, err)

	require.NoError(t, svc.RejectJoinRequest(ctx, jr.ID, "cap-1"))

	got, err := svc.Get(ctx, tm.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"cap-1"}, got.MemberIDs)

	pending, err := svc.JoinRequests(ctx, tm.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestApplyNotRecruiting(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamService()
	tm := createTeam(t, svc, "cap-1", 10)

	status := team.StatusActive
	_, err := svc.Update(ctx, tm.ID, "cap-1", team.UpdateTeamInput{Status: &status})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, "user-2", team.ApplyToTeamInput{TeamID: tm.ID, Position: team.PositionGuard})
	assert.True(t, team.IsErrNotRecruiting(err))
}

func TestMemberManagement(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamService()
	tm := createTeam(t, svc, "cap-1", 10)

	require.NoError(t, svc.AddMember(ctx, tm.ID, "user-2", "cap-1"))

	t.Run("duplicate add rejected", func(t *testing.T) {
		err := svc.AddMember(ctx, tm.ID, "user-2", "cap-1")
		assert.True(t, team.IsErrAlreadyMember(err))
	})

	t.Run("captain cannot be removed", func(t *testing.T) {
		err := svc.RemoveMember(ctx, tm.ID, "cap-1", "cap-1")
		assert.True(t, team.IsErrCaptainRemoval(err))
	})

	t.Run("non-captain cannot mutate roster", func(t *testing.T) {
		err := svc.AddMember(ctx, tm.ID, "user-3", "user-2")
		assert.True(t, team.IsErrUnauthorized(err))
		err = svc.RemoveMember(ctx, tm.ID, "user-2", "user-2")
		assert.True(t, team.IsErrUnauthorized(err))
	})

	t.Run("remove drops exactly the target", func(t *testing.T) {
		require.NoError(t, svc.RemoveMember(ctx, tm.ID, "user-2", "cap-1"))
		got, err := svc.Get(ctx, tm.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"cap-1"}, got.MemberIDs)
	})
}

func TestUpdateTeam(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamService()
	tm := createTeam(t, svc, "cap-1", 10)
	require.NoError(t, svc.AddMember(ctx, tm.ID, "user-2", "cap-1"))

	t.Run("captain only", func(t *testing.T) {
		name := "Renamed"
		_, err := svc.Update(ctx, tm.ID, "user-2", team.UpdateTeamInput{Name: &name})
		assert.True(t, team.IsErrUnauthorized(err))
	})

	t.Run("maxMembers cannot undercut roster", func(t *testing.T) {
		one := 1
		_, err := svc.Update(ctx, tm.ID, "cap-1", team.UpdateTeamInput{MaxMembers: &one})
		assert.True(t, team.IsErrBadRequest(err))
	})

	t.Run("rename refreshes derived names", func(t *testing.T) {
		name := "Osaka Hoopers"
		out, err := svc.Update(ctx, tm.ID, "cap-1", team.UpdateTeamInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "osaka hoopers", out.NameLower)
		assert.Equal(t, "osaka-hoopers", out.Slug)
	})
}

func TestDeleteTeam(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamService()
	tm := createTeam(t, svc, "cap-1", 10)

	err := svc.Delete(ctx, tm.ID, "user-2")
	assert.True(t, team.IsErrUnauthorized(err))

	require.NoError(t, svc.Delete(ctx, tm.ID, "cap-1"))

	_, err = svc.Get(ctx, tm.ID)
	assert.True(t, team.IsErrNotFound(err))
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamService()

	_, err := svc.Create(ctx, "cap-1", team.CreateTeamInput{
		Name: "Alpha", Level: 2, MaxMembers: 5, HomeCourtID: "court-1",
		RegularSchedule: team.RegularSchedule{DayOfWeek: 3},
	})
	require.NoError(t, err)
	full, err := svc.Create(ctx, "cap-2", team.CreateTeamInput{
		Name: "Bravo", Level: 4, MaxMembers: 2, HomeCourtID: "court-2",
		RegularSchedule: team.RegularSchedule{DayOfWeek: 6},
	})
	require.NoError(t, err)
	require.NoError(t, svc.AddMember(ctx, full.ID, "user-9", "cap-2"))

	out, err := svc.List(ctx, team.Filters{Level: 4})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Bravo", out[0].Name)

	day := 3
	out, err = svc.List(ctx, team.Filters{DayOfWeek: &day})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Alpha", out[0].Name)

	// Bravo's roster is full, so recruiting filter hides it.
	out, err = svc.List(ctx, team.Filters{IsRecruiting: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Alpha", out[0].Name)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTeamService()

	_, err := svc.Create(ctx, "cap-1", team.CreateTeamInput{Name: "Shibuya Ballers", Level: 3, MaxMembers: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "cap-2", team.CreateTeamInput{Name: "Osaka Hoopers", Level: 3, MaxMembers: 5})
	require.NoError(t, err)

	out, err := svc.Search(ctx, "SHIBUYA", 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Shibuya Ballers", out[0].Name)
}
