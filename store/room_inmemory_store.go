package store

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hotel_service/domain"
)

type RoomInMemoryStore struct {
	repository *Repository[*domain.Room]
	tracer     trace.Tracer
}

func NewRoomInMemoryStore(tracer trace.Tracer) domain.RoomStore {
	return &RoomInMemoryStore{
		repository: NewRepository[*domain.Room](),
		tracer:     tracer,
	}
}

func (store *RoomInMemoryStore) Get(ctx context.Context, id int) (*domain.Room, error) {
	ctx, span := store.tracer.Start(ctx, "RoomInMemoryStore.Get")
	defer span.End()

	room, err := store.repository.FindByID(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return room, nil
}

func (store *RoomInMemoryStore) GetAll(ctx context.Context) ([]*domain.Room, error) {
	ctx, span := store.tracer.Start(ctx, "RoomInMemoryStore.GetAll")
	defer span.End()

	return store.repository.FindAll(), nil
}

func (store *RoomInMemoryStore) Exists(ctx context.Context, id int) bool {
	ctx, span := store.tracer.Start(ctx, "RoomInMemoryStore.Exists")
	defer span.End()

	return store.repository.ExistsByID(id)
}

func (store *RoomInMemoryStore) Save(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, span := store.tracer.Start(ctx, "RoomInMemoryStore.Save")
	defer span.End()

	return store.repository.Save(room), nil
}

func (store *RoomInMemoryStore) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, span := store.tracer.Start(ctx, "RoomInMemoryStore.Update")
	defer span.End()

	updated, err := store.repository.Update(room)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return updated, nil
}

func (store *RoomInMemoryStore) Delete(ctx context.Context, id int) bool {
	ctx, span := store.tracer.Start(ctx, "RoomInMemoryStore.Delete")
	defer span.End()

	return store.repository.DeleteByID(id)
}

func (store *RoomInMemoryStore) Count(ctx context.Context) int {
	ctx, span := store.tracer.Start(ctx, "RoomInMemoryStore.Count")
	defer span.End()

	return store.repository.Count()
}
