package court_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/backend/internal/domain/court"
	"courtside/backend/internal/domain/user"
	"courtside/backend/internal/store/memory"
)

func newCourtService(t *testing.T) (*court.Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	require.NoError(t, store.PutProfile(context.Background(), user.Profile{
		UID:  "admin-1",
		Role: user.RoleAdmin,
	}))
	roles := user.NewService(store, store, store)
	return court.NewService(store, roles), store
}

func TestCourtCRUD(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCourtService(t)

	t.Run("create is admin only", func(t *testing.T) {
		_, err := svc.Create(ctx, "uid-1", court.CreateCourtInput{Name: "Yoyogi Park", Address: "Shibuya"})
		assert.True(t, court.IsErrUnauthorized(err))
	})

	c, err := svc.Create(ctx, "admin-1", court.CreateCourtInput{
		Name:         "Yoyogi Park",
		Address:      "2-1 Yoyogikamizonocho, Shibuya",
		PricePerHour: 0,
	})
	require.NoError(t, err)

	t.Run("reads are open", func(t *testing.T) {
		got, err := svc.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Yoyogi Park", got.Name)

		all, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("update is admin only", func(t *testing.T) {
		price := 1500
		_, err := svc.Update(ctx, c.ID, "uid-1", court.UpdateCourtInput{PricePerHour: &price})
		assert.True(t, court.IsErrUnauthorized(err))

		got, err := svc.Update(ctx, c.ID, "admin-1", court.UpdateCourtInput{PricePerHour: &price})
		require.NoError(t, err)
		assert.Equal(t, 1500, got.PricePerHour)
	})

	t.Run("delete is admin only", func(t *testing.T) {
		assert.True(t, court.IsErrUnauthorized(svc.Delete(ctx, c.ID, "uid-1")))
		require.NoError(t, svc.Delete(ctx, c.ID, "admin-1"))

		_, err := svc.Get(ctx, c.ID)
		assert.True(t, court.IsErrNotFound(err))
	})
}

func TestCreateCourtValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCourtService(t)

	_, err := svc.Create(ctx, "admin-1", court.CreateCourtInput{Name: "", Address: "x"})
	assert.True(t, court.IsErrBadRequest(err))
	_, err = svc.Create(ctx, "admin-1", court.CreateCourtInput{Name: "x", Address: ""})
	assert.True(t, court.IsErrBadRequest(err))
}
