package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hotel_service/domain"
	"hotel_service/errors"
)

// RoomService manages the room store and owns the capacity invariant: a room
// must keep at least one bed, so its capacity is always above zero.
type RoomService struct {
	store  domain.RoomStore
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewRoomService(store domain.RoomStore, tracer trace.Tracer, logger *logrus.Logger) *RoomService {
	return &RoomService{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

// Get fails with NotFound for a non-positive or unknown id.
func (service *RoomService) Get(ctx context.Context, id int) (*domain.Room, error) {
	ctx, span := service.tracer.Start(ctx, "RoomService.Get")
	defer span.End()

	if id <= 0 {
		span.SetStatus(codes.Error, "invalid room id")
		return nil, errors.Newf(errors.NotFound, "room id %d has invalid value", id)
	}

	room, err := service.store.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return room, nil
}

func (service *RoomService) GetAll(ctx context.Context) ([]*domain.Room, error) {
	ctx, span := service.tracer.Start(ctx, "RoomService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

func (service *RoomService) Exists(ctx context.Context, id int) bool {
	ctx, span := service.tracer.Start(ctx, "RoomService.Exists")
	defer span.End()

	if id <= 0 {
		return false
	}
	return service.store.Exists(ctx, id)
}

// Save stores a new room under a store-assigned id.
func (service *RoomService) Save(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, span := service.tracer.Start(ctx, "RoomService.Save")
	defer span.End()

	if err := service.validateRoom(room); err != nil {
		service.logger.Errorln("RoomService.Save : room validation failed")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	saved, err := service.store.Save(ctx, room)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	service.logger.Infoln("RoomService.Save : room saved")
	return saved, nil
}

func (service *RoomService) SaveAll(ctx context.Context, rooms ...*domain.Room) error {
	ctx, span := service.tracer.Start(ctx, "RoomService.SaveAll")
	defer span.End()

	for _, room := range rooms {
		if err := service.validateRoom(room); err != nil {
			service.logger.Errorln("RoomService.SaveAll : room validation failed")
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	for _, room := range rooms {
		if _, err := service.store.Save(ctx, room); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	service.logger.Infoln("RoomService.SaveAll : rooms saved")
	return nil
}

// Update replaces the commodity set of the room with the given id. The
// resulting capacity is recomputed from the new set and must stay above zero.
func (service *RoomService) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, span := service.tracer.Start(ctx, "RoomService.Update")
	defer span.End()

	if err := service.validateRoom(room); err != nil {
		service.logger.Errorln("RoomService.Update : room validation failed")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if room.ID <= 0 {
		span.SetStatus(codes.Error, "invalid room id")
		return nil, errors.Newf(errors.NotFound, "room id %d has invalid value", room.ID)
	}

	updated, err := service.store.Update(ctx, room)
	if err != nil {
		service.logger.Errorln("RoomService.Update : updating room failed")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	service.logger.Infoln("RoomService.Update : room updated")
	return updated, nil
}

// Delete removes the given room, reporting false when there is no match.
func (service *RoomService) Delete(ctx context.Context, room *domain.Room) (bool, error) {
	ctx, span := service.tracer.Start(ctx, "RoomService.Delete")
	defer span.End()

	if room == nil {
		span.SetStatus(codes.Error, errors.RoomHasNilValue)
		return false, errors.New(errors.InvalidArgument, errors.RoomHasNilValue)
	}
	return service.DeleteByID(ctx, room.ID), nil
}

func (service *RoomService) DeleteByID(ctx context.Context, id int) bool {
	ctx, span := service.tracer.Start(ctx, "RoomService.DeleteByID")
	defer span.End()

	if id <= 0 {
		return false
	}
	return service.store.Delete(ctx, id)
}

func (service *RoomService) validateRoom(room *domain.Room) error {
	if room == nil {
		return errors.New(errors.InvalidArgument, errors.RoomHasNilValue)
	}
	for _, commodity := range room.Commodities {
		if commodity.Kind == "" {
			return errors.New(errors.InvalidArgument, errors.CommodityHasNilValue)
		}
	}
	if len(room.Commodities) == 0 {
		return errors.New(errors.InvalidState, errors.RoomHasNoCommodities)
	}
	if room.Capacity() == 0 {
		return errors.New(errors.InvalidState, errors.RoomCannotBeEmpty)
	}
	return nil
}
