package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yottalab/membership-system/internal/core/domain"
)

func TestBadgeRepository_CreateAndFind(t *testing.T) {
	db := setupDB(t)
	r := NewBadgeRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, domain.Badge{MemberID: "integlab", MissionName: "first mission", IconType: 3})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := r.Find(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "integlab", got.MemberID)
	assert.Equal(t, "first mission", got.MissionName)
	assert.Equal(t, 3, got.IconType)

	_, err = r.Find(ctx, id+99)
	assert.ErrorIs(t, err, domain.ErrBadgeNotFound)
}

func TestBadgeRepository_List_InsertionOrder(t *testing.T) {
	db := setupDB(t)
	r := NewBadgeRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, domain.Badge{MemberID: "integlab", MissionName: "one", IconType: 1})
	require.NoError(t, err)
	_, err = r.Create(ctx, domain.Badge{MemberID: "doddle", MissionName: "two", IconType: 2})
	require.NoError(t, err)

	badges, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, badges, 2)
	assert.Equal(t, "one", badges[0].MissionName)
	assert.Equal(t, "two", badges[1].MissionName)
}

func TestBadgeRepository_Update(t *testing.T) {
	db := setupDB(t)
	r := NewBadgeRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, domain.Badge{MemberID: "integlab", MissionName: "old", IconType: 1})
	require.NoError(t, err)

	require.NoError(t, r.Update(ctx, domain.Badge{ID: id, MissionName: "renamed", IconType: 7}))

	got, err := r.Find(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.MissionName)
	assert.Equal(t, 7, got.IconType)
	assert.Equal(t, "integlab", got.MemberID) // owner never changes

	err = r.Update(ctx, domain.Badge{ID: id + 99, MissionName: "x", IconType: 1})
	assert.ErrorIs(t, err, domain.ErrBadgeNotFound)
}

func TestBadgeRepository_Delete(t *testing.T) {
	db := setupDB(t)
	r := NewBadgeRepository(db)
	ctx := context.Background()

	id, err := r.Create(ctx, domain.Badge{MemberID: "integlab", MissionName: "temp", IconType: 1})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, id))
	assert.ErrorIs(t, r.Delete(ctx, id), domain.ErrBadgeNotFound)
}
