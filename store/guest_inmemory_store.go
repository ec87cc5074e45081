package store

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hotel_service/domain"
)

type GuestInMemoryStore struct {
	repository *Repository[*domain.Guest]
	tracer     trace.Tracer
}

func NewGuestInMemoryStore(tracer trace.Tracer) domain.GuestStore {
	return &GuestInMemoryStore{
		repository: NewRepository[*domain.Guest](),
		tracer:     tracer,
	}
}

func (store *GuestInMemoryStore) Get(ctx context.Context, id int) (*domain.Guest, error) {
	ctx, span := store.tracer.Start(ctx, "GuestInMemoryStore.Get")
	defer span.End()

	guest, err := store.repository.FindByID(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return guest, nil
}

func (store *GuestInMemoryStore) GetAll(ctx context.Context) ([]*domain.Guest, error) {
	ctx, span := store.tracer.Start(ctx, "GuestInMemoryStore.GetAll")
	defer span.End()

	return store.repository.FindAll(), nil
}

func (store *GuestInMemoryStore) Exists(ctx context.Context, id int) bool {
	ctx, span := store.tracer.Start(ctx, "GuestInMemoryStore.Exists")
	defer span.End()

	return store.repository.ExistsByID(id)
}

func (store *GuestInMemoryStore) Save(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	ctx, span := store.tracer.Start(ctx, "GuestInMemoryStore.Save")
	defer span.End()

	return store.repository.Save(guest), nil
}

func (store *GuestInMemoryStore) Insert(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	ctx, span := store.tracer.Start(ctx, "GuestInMemoryStore.Insert")
	defer span.End()

	inserted, err := store.repository.Insert(guest)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return inserted, nil
}

func (store *GuestInMemoryStore) Update(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	ctx, span := store.tracer.Start(ctx, "GuestInMemoryStore.Update")
	defer span.End()

	updated, err := store.repository.Update(guest)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return updated, nil
}

func (store *GuestInMemoryStore) Delete(ctx context.Context, id int) bool {
	ctx, span := store.tracer.Start(ctx, "GuestInMemoryStore.Delete")
	defer span.End()

	return store.repository.DeleteByID(id)
}

func (store *GuestInMemoryStore) Count(ctx context.Context) int {
	ctx, span := store.tracer.Start(ctx, "GuestInMemoryStore.Count")
	defer span.End()

	return store.repository.Count()
}
