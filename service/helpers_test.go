package application

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"hotel_service/domain"
	"hotel_service/store"
)

type fixture struct {
	guestService   *GuestService
	roomService    *RoomService
	bookingService *BookingService
	factory        *domain.CommodityFactory
}

func newFixture(rejectPastDates bool) *fixture {
	tracer := trace.NewNoopTracerProvider().Tracer("test")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	guestService := NewGuestService(store.NewGuestInMemoryStore(tracer), tracer, logger)
	roomService := NewRoomService(store.NewRoomInMemoryStore(tracer), tracer, logger)
	bookingService := NewBookingService(store.NewBookingInMemoryStore(tracer), roomService, guestService,
		rejectPastDates, tracer, logger)

	return &fixture{
		guestService:   guestService,
		roomService:    roomService,
		bookingService: bookingService,
		factory:        domain.NewCommodityFactory(),
	}
}

func (f *fixture) doubleRoom() *domain.Room {
	return &domain.Room{Commodities: []domain.Commodity{
		f.factory.NewBed(domain.Double),
		f.factory.NewToilet(),
		f.factory.NewShower(),
	}}
}

func (f *fixture) singleRoom() *domain.Room {
	return &domain.Room{Commodities: []domain.Commodity{
		f.factory.NewBed(domain.Single),
		f.factory.NewToilet(),
		f.factory.NewShower(),
	}}
}

// day returns a calendar date n days past a fixed reference, far enough in
// the future to stay valid under the reject-past-dates policy.
func day(n int) time.Time {
	return time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}
