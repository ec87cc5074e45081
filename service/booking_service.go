package application

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hotel_service/domain"
	"hotel_service/errors"
)

// BookingService is the booking core. It owns the booking store and leans on
// the guest and room services for referential checks; guest and room records
// are only ever read here, never mutated.
//
// The service mutex is held across the whole validate-then-write sequence of
// CreateBooking, BookFirstAvailableRoom and UpdateBookingDates, so two
// concurrent calls can not both pass the overlap scan against a stale
// snapshot.
type BookingService struct {
	mu              sync.Mutex
	store           domain.BookingStore
	roomService     *RoomService
	guestService    *GuestService
	rejectPastDates bool
	tracer          trace.Tracer
	logger          *logrus.Logger
}

func NewBookingService(store domain.BookingStore, roomService *RoomService, guestService *GuestService,
	rejectPastDates bool, tracer trace.Tracer, logger *logrus.Logger) *BookingService {
	return &BookingService{
		store:           store,
		roomService:     roomService,
		guestService:    guestService,
		rejectPastDates: rejectPastDates,
		tracer:          tracer,
		logger:          logger,
	}
}

// CreateBooking books the given room for the guest under an explicit booking
// id. NumberOfPeople must equal the room's capacity and the room must be
// free for the whole half-open [from, to) period.
func (service *BookingService) CreateBooking(ctx context.Context, bookingID int, guestID int, roomID int,
	numberOfPeople int, from time.Time, to time.Time) (*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.CreateBooking")
	defer span.End()

	service.mu.Lock()
	defer service.mu.Unlock()

	if bookingID <= 0 {
		span.SetStatus(codes.Error, "invalid booking id")
		return nil, errors.Newf(errors.InvalidArgument, "booking id %d can not be a negative number or zero", bookingID)
	}
	if service.store.Exists(ctx, bookingID) {
		service.logger.Errorln("BookingService.CreateBooking : booking id already taken")
		span.SetStatus(codes.Error, "booking already exists")
		return nil, errors.Newf(errors.AlreadyExists, "booking with id %d already exists", bookingID)
	}

	room, err := service.resolveReferences(ctx, guestID, roomID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if room.Capacity() != numberOfPeople {
		span.SetStatus(codes.Error, errors.PeopleCapacityMismatch)
		return nil, errors.New(errors.InvalidArgument, errors.PeopleCapacityMismatch)
	}

	if err := service.validateDates(from, to); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if service.isRoomBookedForPeriod(ctx, roomID, from, to, 0) {
		service.logger.Errorln("BookingService.CreateBooking : room already booked for that period")
		span.SetStatus(codes.Error, errors.RoomAlreadyBooked)
		return nil, errors.New(errors.Conflict, errors.RoomAlreadyBooked)
	}

	booking := &domain.Booking{
		ID:             bookingID,
		GuestID:        guestID,
		RoomID:         roomID,
		NumberOfPeople: numberOfPeople,
		From:           from,
		To:             to,
	}
	created, err := service.store.Insert(ctx, booking)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	service.logger.Infoln("BookingService.CreateBooking : booking created")
	return created, nil
}

// BookFirstAvailableRoom is the convenience variant: it walks the rooms in
// id order, picks the first one whose capacity matches and whose calendar is
// free for the period, and books it under a store-assigned id. It fails with
// NotFound when no room fits.
func (service *BookingService) BookFirstAvailableRoom(ctx context.Context, guestID int, numberOfPeople int,
	from time.Time, to time.Time) (*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.BookFirstAvailableRoom")
	defer span.End()

	service.mu.Lock()
	defer service.mu.Unlock()

	if numberOfPeople <= 0 {
		span.SetStatus(codes.Error, "invalid number of people")
		return nil, errors.Newf(errors.InvalidArgument, "number of people %d can not be a negative number or zero", numberOfPeople)
	}
	if guestID <= 0 {
		span.SetStatus(codes.Error, "invalid guest id")
		return nil, errors.Newf(errors.InvalidArgument, "guest id %d can not be a negative number or zero", guestID)
	}
	if !service.guestService.Exists(ctx, guestID) {
		span.SetStatus(codes.Error, "guest not found")
		return nil, errors.Newf(errors.NotFound, "guest with id %d does not exist", guestID)
	}
	if err := service.validateDates(from, to); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	rooms, err := service.roomService.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	for _, room := range rooms {
		if room.Capacity() != numberOfPeople {
			continue
		}
		if service.isRoomBookedForPeriod(ctx, room.ID, from, to, 0) {
			continue
		}

		booking := &domain.Booking{
			GuestID:        guestID,
			RoomID:         room.ID,
			NumberOfPeople: numberOfPeople,
			From:           from,
			To:             to,
		}
		created, err := service.store.Save(ctx, booking)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		service.logger.Infoln("BookingService.BookFirstAvailableRoom : booking created")
		return created, nil
	}

	service.logger.Errorln("BookingService.BookFirstAvailableRoom : no available room")
	span.SetStatus(codes.Error, errors.NoAvailableRoom)
	return nil, errors.New(errors.NotFound, errors.NoAvailableRoom)
}

// GetAllBookings returns a full snapshot of the booking store.
func (service *BookingService) GetAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.GetAllBookings")
	defer span.End()

	return service.store.GetAll(ctx)
}

// GetBookingByID fails with NotFound for a non-positive or unknown id.
func (service *BookingService) GetBookingByID(ctx context.Context, id int) (*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.GetBookingByID")
	defer span.End()

	if id <= 0 {
		span.SetStatus(codes.Error, "invalid booking id")
		return nil, errors.Newf(errors.NotFound, "booking id %d has invalid value", id)
	}

	booking, err := service.store.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return booking, nil
}

// UpdateBookingDates reschedules a booking. New dates overlapping the
// booking's own current period are always allowed, so a stay can be shrunk
// or shifted without a spurious conflict against itself; otherwise the room
// must be free of every other booking for the new period.
func (service *BookingService) UpdateBookingDates(ctx context.Context, id int, from time.Time, to time.Time) (*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.UpdateBookingDates")
	defer span.End()

	service.mu.Lock()
	defer service.mu.Unlock()

	if id <= 0 {
		span.SetStatus(codes.Error, "invalid booking id")
		return nil, errors.Newf(errors.NotFound, "booking id %d has invalid value", id)
	}
	booking, err := service.store.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := service.validateDates(from, to); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if !booking.Overlaps(from, to) {
		if service.isRoomBookedForPeriod(ctx, booking.RoomID, from, to, booking.ID) {
			service.logger.Errorln("BookingService.UpdateBookingDates : room already booked for that period")
			span.SetStatus(codes.Error, errors.RoomAlreadyBooked)
			return nil, errors.New(errors.Conflict, errors.RoomAlreadyBooked)
		}
	}

	booking.From = from
	booking.To = to
	updated, err := service.store.Update(ctx, booking)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	service.logger.Infoln("BookingService.UpdateBookingDates : booking dates updated")
	return updated, nil
}

// RemoveBookingByID deletes the booking permanently; there is no retained
// cancelled state.
func (service *BookingService) RemoveBookingByID(ctx context.Context, id int) error {
	ctx, span := service.tracer.Start(ctx, "BookingService.RemoveBookingByID")
	defer span.End()

	if id <= 0 || !service.store.Exists(ctx, id) {
		span.SetStatus(codes.Error, "booking not found")
		return errors.Newf(errors.NotFound, "booking with id %d does not exist", id)
	}

	service.store.Delete(ctx, id)
	service.logger.Infoln("BookingService.RemoveBookingByID : booking removed")
	return nil
}

func (service *BookingService) Exists(ctx context.Context, id int) bool {
	ctx, span := service.tracer.Start(ctx, "BookingService.Exists")
	defer span.End()

	if id <= 0 {
		return false
	}
	return service.store.Exists(ctx, id)
}

func (service *BookingService) resolveReferences(ctx context.Context, guestID int, roomID int) (*domain.Room, error) {
	if guestID <= 0 {
		return nil, errors.Newf(errors.InvalidArgument, "guest id %d can not be a negative number or zero", guestID)
	}
	if !service.guestService.Exists(ctx, guestID) {
		return nil, errors.Newf(errors.NotFound, "guest with id %d does not exist", guestID)
	}
	if roomID <= 0 {
		return nil, errors.Newf(errors.InvalidArgument, "room id %d can not be a negative number or zero", roomID)
	}
	room, err := service.roomService.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (service *BookingService) validateDates(from time.Time, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return errors.New(errors.InvalidArgument, errors.DatesNotSet)
	}
	if !from.Before(to) {
		return errors.New(errors.InvalidArgument, errors.InvalidDateRange)
	}
	if service.rejectPastDates && from.Before(today()) {
		return errors.New(errors.InvalidArgument, errors.FromDateInPast)
	}
	return nil
}

// isRoomBookedForPeriod scans every booking of the room for a half-open
// interval overlap, skipping the booking with excludeID (zero skips none).
func (service *BookingService) isRoomBookedForPeriod(ctx context.Context, roomID int, from time.Time, to time.Time, excludeID int) bool {
	bookings, err := service.store.GetAll(ctx)
	if err != nil {
		return false
	}
	for _, booking := range bookings {
		if booking.RoomID != roomID || booking.ID == excludeID {
			continue
		}
		if booking.Overlaps(from, to) {
			return true
		}
	}
	return false
}

func today() time.Time {
	year, month, day := time.Now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
