package match_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/backend/internal/domain/match"
	"courtside/backend/internal/keylock"
	"courtside/backend/internal/store/memory"
)

func newMatchService() *match.Service {
	return match.NewService(memory.New(), keylock.New())
}

func createMatch(t *testing.T, svc *match.Service, creator string, maxPlayers int) *match.Match {
	t.Helper()
	out, err := svc.Create(context.Background(), creator, match.CreateMatchInput{
		Title:      "Friday Run",
		CourtID:    "court-1",
		Date:       "2026-09-18",
		StartTime:  "20:00",
		Duration:   90,
		GameType:   match.GameThreeVThree,
		MaxPlayers: maxPlayers,
	})
	require.NoError(t, err)
	return out
}

func TestCreateMatch(t *testing.T) {
	ctx := context.Background()
	svc := newMatchService()

	out := createMatch(t, svc, "user-1", 6)
	assert.Equal(t, match.StatusOpen, out.Status)
	assert.Equal(t, []string{"user-1"}, out.CurrentPlayerIDs)

	_, err := svc.Create(ctx, "user-1", match.CreateMatchInput{
		Title: "bad", CourtID: "c", Date: "tomorrow", StartTime: "20:00", Duration: 60,
		GameType: match.GameFiveVFive, MaxPlayers: 10,
	})
	assert.True(t, match.IsErrBadRequest(err))

	_, err = svc.Create(ctx, "user-1", match.CreateMatchInput{
		Title: "bad", CourtID: "c", Date: "2026-09-18", StartTime: "20:00", Duration: 60,
		GameType: match.GameFiveVFive, MaxPlayers: 10, LevelMin: 2000, LevelMax: 1500,
	})
	assert.True(t, match.IsErrBadRequest(err))
}

func TestJoinAndLeave(t *testing.T) {
	ctx := context.Background()
	svc := newMatchService()
	m := createMatch(t, svc, "user-1", 3)

	t.Run("creator cannot join twice", func(t *testing.T) {
		_, err := svc.Join(ctx, m.ID, "user-1")
		assert.True(t, match.IsErrAlreadyJoined(err))
	})

	t.Run("filling the last slot flips to FULL", func(t *testing.T) {
		_, err := svc.Join(ctx, m.ID, "user-2")
		require.NoError(t, err)

		out, err := svc.Join(ctx, m.ID, "user-3")
		require.NoError(t, err)
		assert.Equal(t, match.StatusFull, out.Status)
	})

	t.Run("full match rejects joins", func(t *testing.T) {
		_, err := svc.Join(ctx, m.ID, "user-4")
		assert.True(t, match.IsErrMatchFull(err))
	})

	t.Run("leaving reopens the match", func(t *testing.T) {
		out, err := svc.Leave(ctx, m.ID, "user-3")
		require.NoError(t, err)
		assert.Equal(t, match.StatusOpen, out.Status)
		assert.NotContains(t, out.CurrentPlayerIDs, "user-3")
	})

	t.Run("leave requires membership", func(t *testing.T) {
		_, err := svc.Leave(ctx, m.ID, "user-9")
		assert.True(t, match.IsErrNotJoined(err))
	})
}

func TestDeleteMatch(t *testing.T) {
	ctx := context.Background()
	svc := newMatchService()
	m := createMatch(t, svc, "user-1", 6)

	err := svc.Delete(ctx, m.ID, "user-2", false)
	assert.True(t, match.IsErrUnauthorized(err))

	// Admins may delete matches they did not create.
	require.NoError(t, svc.Delete(ctx, m.ID, "user-2", true))

	_, err = svc.Get(ctx, m.ID)
	assert.True(t, match.IsErrNotFound(err))
}

func TestListMatchFilters(t *testing.T) {
	ctx := context.Background()
	svc := newMatchService()

	_, err := svc.Create(ctx, "user-1", match.CreateMatchInput{
		Title: "Threes", CourtID: "court-1", Date: "2026-09-18", StartTime: "20:00",
		Duration: 60, GameType: match.GameThreeVThree, MaxPlayers: 6,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-2", match.CreateMatchInput{
		Title: "Fives", CourtID: "court-2", Date: "2026-09-19", StartTime: "18:00",
		Duration: 120, GameType: match.GameFiveVFive, MaxPlayers: 10,
	})
	require.NoError(t, err)

	out, err := svc.List(ctx, match.Filters{GameType: match.GameFiveVFive})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Fives", out[0].Title)

	out, err = svc.List(ctx, match.Filters{CourtID: "court-1", Date: "2026-09-18"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Threes", out[0].Title)
}
