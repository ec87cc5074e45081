package startup

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"

	"hotel_service/domain"
	application "hotel_service/service"
	"hotel_service/startup/config"
	"hotel_service/store"
)

type Server struct {
	config *config.Config
}

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
	}
}

func (server *Server) initGuestStore(tracer trace.Tracer) domain.GuestStore {
	return store.NewGuestInMemoryStore(tracer)
}

func (server *Server) initRoomStore(tracer trace.Tracer) domain.RoomStore {
	return store.NewRoomInMemoryStore(tracer)
}

func (server *Server) initBookingStore(tracer trace.Tracer) domain.BookingStore {
	return store.NewBookingInMemoryStore(tracer)
}

func (server *Server) initGuestService(guestStore domain.GuestStore, tracer trace.Tracer, logger *logrus.Logger) *application.GuestService {
	return application.NewGuestService(guestStore, tracer, logger)
}

func (server *Server) initRoomService(roomStore domain.RoomStore, tracer trace.Tracer, logger *logrus.Logger) *application.RoomService {
	return application.NewRoomService(roomStore, tracer, logger)
}

func (server *Server) initBookingService(bookingStore domain.BookingStore, roomService *application.RoomService,
	guestService *application.GuestService, tracer trace.Tracer, logger *logrus.Logger) *application.BookingService {
	return application.NewBookingService(bookingStore, roomService, guestService,
		server.config.RejectPastBookings, tracer, logger)
}

func (server *Server) Start() {
	ctx := context.Background()

	exp, err := newExporter(server.config.JaegerAddress)
	if err != nil {
		log.Fatalf("Failed to Initialize Exporter: %v", err)
	}

	tp := newTraceProvider(exp)
	defer func() { _ = tp.Shutdown(ctx) }()
	otel.SetTracerProvider(tp)
	tracer := tp.Tracer("hotel_service")

	logger := logrus.New()

	guestStore := server.initGuestStore(tracer)
	roomStore := server.initRoomStore(tracer)
	bookingStore := server.initBookingStore(tracer)

	guestService := server.initGuestService(guestStore, tracer, logger)
	roomService := server.initRoomService(roomStore, tracer, logger)
	bookingService := server.initBookingService(bookingStore, roomService, guestService, tracer, logger)

	server.seedInventory(ctx, roomService, guestService, logger)

	bookings, err := bookingService.GetAllBookings(ctx)
	if err != nil {
		log.Fatal(err)
	}
	logger.Infof("hotel_service ready : %d bookings on record", len(bookings))

	c := make(chan os.Signal, 1)

	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	logger.Infoln("hotel_service stopped")
}

// seedInventory fills the hotel with the standard room set and a couple of
// guests so the service starts usable.
func (server *Server) seedInventory(ctx context.Context, roomService *application.RoomService,
	guestService *application.GuestService, logger *logrus.Logger) {
	factory := domain.NewCommodityFactory()

	doubleRoom := &domain.Room{Commodities: []domain.Commodity{
		factory.NewBed(domain.Double), factory.NewToilet(), factory.NewShower(),
	}}
	singleRoom := &domain.Room{Commodities: []domain.Commodity{
		factory.NewBed(domain.Single), factory.NewToilet(), factory.NewShower(),
	}}
	kingSizeRoom := &domain.Room{Commodities: []domain.Commodity{
		factory.NewBed(domain.KingSize), factory.NewToilet(), factory.NewShower(),
	}}
	threePeopleKingSizeRoom := &domain.Room{Commodities: []domain.Commodity{
		factory.NewBed(domain.KingSize), factory.NewBed(domain.Single), factory.NewToilet(), factory.NewShower(),
	}}
	fourPersonRoom := &domain.Room{Commodities: []domain.Commodity{
		factory.NewBed(domain.Double), factory.NewBed(domain.Double), factory.NewToilet(), factory.NewShower(),
	}}
	fivePersonRoom := &domain.Room{Commodities: []domain.Commodity{
		factory.NewBed(domain.KingSize), factory.NewBed(domain.Double), factory.NewBed(domain.Single),
		factory.NewToilet(), factory.NewToilet(), factory.NewShower(),
	}}

	err := roomService.SaveAll(ctx, doubleRoom, singleRoom, kingSizeRoom,
		threePeopleKingSizeRoom, fourPersonRoom, fivePersonRoom)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := guestService.Create(ctx, 0, "Taner", "Ilyazov", domain.Male); err != nil {
		log.Fatal(err)
	}
	if _, err := guestService.Create(ctx, 0, "Maria", "Petrova", domain.Female); err != nil {
		log.Fatal(err)
	}

	logger.Infoln("hotel_service : inventory seeded")
}

func newExporter(address string) (*jaeger.Exporter, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(address)))
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func newTraceProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("hotel_service"),
		),
	)

	if err != nil {
		panic(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}
