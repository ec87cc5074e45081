package store

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hotel_service/domain"
)

type BookingInMemoryStore struct {
	repository *Repository[*domain.Booking]
	tracer     trace.Tracer
}

func NewBookingInMemoryStore(tracer trace.Tracer) domain.BookingStore {
	return &BookingInMemoryStore{
		repository: NewRepository[*domain.Booking](),
		tracer:     tracer,
	}
}

func (store *BookingInMemoryStore) Get(ctx context.Context, id int) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingInMemoryStore.Get")
	defer span.End()

	booking, err := store.repository.FindByID(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return booking, nil
}

func (store *BookingInMemoryStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingInMemoryStore.GetAll")
	defer span.End()

	return store.repository.FindAll(), nil
}

func (store *BookingInMemoryStore) Exists(ctx context.Context, id int) bool {
	ctx, span := store.tracer.Start(ctx, "BookingInMemoryStore.Exists")
	defer span.End()

	return store.repository.ExistsByID(id)
}

func (store *BookingInMemoryStore) Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingInMemoryStore.Save")
	defer span.End()

	return store.repository.Save(booking), nil
}

func (store *BookingInMemoryStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingInMemoryStore.Insert")
	defer span.End()

	inserted, err := store.repository.Insert(booking)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return inserted, nil
}

func (store *BookingInMemoryStore) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingInMemoryStore.Update")
	defer span.End()

	updated, err := store.repository.Update(booking)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return updated, nil
}

func (store *BookingInMemoryStore) Delete(ctx context.Context, id int) bool {
	ctx, span := store.tracer.Start(ctx, "BookingInMemoryStore.Delete")
	defer span.End()

	return store.repository.DeleteByID(id)
}

func (store *BookingInMemoryStore) Count(ctx context.Context) int {
	ctx, span := store.tracer.Start(ctx, "BookingInMemoryStore.Count")
	defer span.End()

	return store.repository.Count()
}
