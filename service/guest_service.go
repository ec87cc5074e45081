package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hotel_service/domain"
	"hotel_service/errors"
)

// GuestService is the validation and lookup facade over the guest store.
type GuestService struct {
	store  domain.GuestStore
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewGuestService(store domain.GuestStore, tracer trace.Tracer, logger *logrus.Logger) *GuestService {
	return &GuestService{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

// Create stores a new guest. An id of zero lets the store assign one; a
// positive id is used as given and must be free.
func (service *GuestService) Create(ctx context.Context, id int, firstName string, lastName string, gender domain.Gender) (*domain.Guest, error) {
	ctx, span := service.tracer.Start(ctx, "GuestService.Create")
	defer span.End()

	if id < 0 {
		span.SetStatus(codes.Error, "negative guest id")
		return nil, errors.Newf(errors.InvalidArgument, "guest id %d can not be a negative number", id)
	}

	guest := &domain.Guest{ID: id, FirstName: firstName, LastName: lastName, Gender: gender}
	if err := guest.Validate(); err != nil {
		service.logger.Errorln("GuestService.Create : guest validation failed")
		span.SetStatus(codes.Error, err.Error())
		return nil, errors.New(errors.InvalidArgument, errors.GuestNameInvalid)
	}

	var created *domain.Guest
	var err error
	if id == 0 {
		created, err = service.store.Save(ctx, guest)
	} else {
		created, err = service.store.Insert(ctx, guest)
	}
	if err != nil {
		service.logger.Errorln("GuestService.Create : creating guest failed")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	service.logger.Infoln("GuestService.Create : guest created")
	return created, nil
}

// Get fails with NotFound for a non-positive or unknown id.
func (service *GuestService) Get(ctx context.Context, id int) (*domain.Guest, error) {
	ctx, span := service.tracer.Start(ctx, "GuestService.Get")
	defer span.End()

	if id <= 0 {
		span.SetStatus(codes.Error, "invalid guest id")
		return nil, errors.Newf(errors.NotFound, "guest id %d has invalid value", id)
	}

	guest, err := service.store.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return guest, nil
}

func (service *GuestService) GetAll(ctx context.Context) ([]*domain.Guest, error) {
	ctx, span := service.tracer.Start(ctx, "GuestService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

func (service *GuestService) Exists(ctx context.Context, id int) bool {
	ctx, span := service.tracer.Start(ctx, "GuestService.Exists")
	defer span.End()

	if id <= 0 {
		return false
	}
	return service.store.Exists(ctx, id)
}

// Update replaces the names and gender of the guest with the given id and
// returns a copy of the updated record.
func (service *GuestService) Update(ctx context.Context, id int, firstName string, lastName string, gender domain.Gender) (*domain.Guest, error) {
	ctx, span := service.tracer.Start(ctx, "GuestService.Update")
	defer span.End()

	if id <= 0 {
		span.SetStatus(codes.Error, "invalid guest id")
		return nil, errors.Newf(errors.NotFound, "guest id %d has invalid value", id)
	}

	guest := &domain.Guest{ID: id, FirstName: firstName, LastName: lastName, Gender: gender}
	if err := guest.Validate(); err != nil {
		service.logger.Errorln("GuestService.Update : guest validation failed")
		span.SetStatus(codes.Error, err.Error())
		return nil, errors.New(errors.InvalidArgument, errors.GuestNameInvalid)
	}

	updated, err := service.store.Update(ctx, guest)
	if err != nil {
		service.logger.Errorln("GuestService.Update : updating guest failed")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	service.logger.Infoln("GuestService.Update : guest updated")
	return updated, nil
}

// Remove deletes the guest with the given id, failing with NotFound when
// there is no such guest.
func (service *GuestService) Remove(ctx context.Context, id int) error {
	ctx, span := service.tracer.Start(ctx, "GuestService.Remove")
	defer span.End()

	if id <= 0 || !service.store.Exists(ctx, id) {
		span.SetStatus(codes.Error, "guest not found")
		return errors.Newf(errors.NotFound, "guest with id %d does not exist", id)
	}

	service.store.Delete(ctx, id)
	service.logger.Infoln("GuestService.Remove : guest removed")
	return nil
}
