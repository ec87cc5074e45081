package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_service/domain"
	"hotel_service/errors"
)

func TestRoomServiceSave(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	saved, err := f.roomService.Save(ctx, f.doubleRoom())
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ID)
	assert.Equal(t, 2, saved.Capacity())
}

func TestRoomServiceSaveRejectsNilRoom(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	_, err := f.roomService.Save(ctx, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRoomServiceSaveRejectsEmptyCommodity(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	room := &domain.Room{Commodities: []domain.Commodity{
		f.factory.NewBed(domain.Double),
		{InventoryID: 99},
	}}

	_, err := f.roomService.Save(ctx, room)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRoomServiceSaveRejectsRoomWithoutCapacity(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	noCommodities := &domain.Room{}
	_, err := f.roomService.Save(ctx, noCommodities)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidState(err))

	bedless := &domain.Room{Commodities: []domain.Commodity{
		f.factory.NewToilet(),
		f.factory.NewShower(),
	}}
	_, err = f.roomService.Save(ctx, bedless)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidState(err))
}

func TestRoomServiceSaveAll(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	err := f.roomService.SaveAll(ctx, f.doubleRoom(), f.singleRoom())
	require.NoError(t, err)

	all, err := f.roomService.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].Capacity())
	assert.Equal(t, 1, all[1].Capacity())
}

func TestRoomServiceSaveAllRejectsBatchWithInvalidRoom(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	err := f.roomService.SaveAll(ctx, f.doubleRoom(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	// nothing from the batch is stored
	all, err := f.roomService.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRoomServiceUpdateReplacesCommodities(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	saved, err := f.roomService.Save(ctx, f.doubleRoom())
	require.NoError(t, err)

	saved.Commodities = []domain.Commodity{
		f.factory.NewBed(domain.KingSize),
		f.factory.NewBed(domain.Single),
		f.factory.NewToilet(),
	}
	updated, err := f.roomService.Update(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Capacity())

	found, err := f.roomService.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.Capacity())
}

func TestRoomServiceUpdateKeepsCapacityInvariant(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	saved, err := f.roomService.Save(ctx, f.doubleRoom())
	require.NoError(t, err)

	saved.Commodities = []domain.Commodity{f.factory.NewToilet()}
	_, err = f.roomService.Update(ctx, saved)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidState(err))

	// stored room keeps its old commodity set
	found, err := f.roomService.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.Capacity())
}

func TestRoomServiceUpdateUnknownRoom(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	room := f.doubleRoom()
	room.ID = 42
	_, err := f.roomService.Update(ctx, room)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRoomServiceDelete(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	saved, err := f.roomService.Save(ctx, f.doubleRoom())
	require.NoError(t, err)

	deleted, err := f.roomService.Delete(ctx, saved)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, f.roomService.DeleteByID(ctx, saved.ID))

	_, err = f.roomService.Delete(ctx, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRoomServiceGet(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()

	_, err := f.roomService.Get(ctx, -1)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = f.roomService.Get(ctx, 5)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
