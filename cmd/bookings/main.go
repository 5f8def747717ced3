package main

import (
	"io"

	"hotelbooking/internal/bookings/events"
	"hotelbooking/internal/bookings/handler"
	"hotelbooking/internal/bookings/repository"
	"hotelbooking/internal/bookings/service"
	"hotelbooking/internal/bookings/validator"
	"hotelbooking/pkg/app"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/kafka"
	kafka_middleware "hotelbooking/pkg/kafka/middleware"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting hotel bookings service")
	publisher, closers := initPublisher(cfg)
	hotelService := initServices(cfg, publisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(cfg.Log),
		handler.NewHotelHandler(hotelService, cfg.Location, cfg.Log),
		closers...,
	)
	serverApp.Run()
}

// initPublisher also returns what must be closed on shutdown, in order.
func initPublisher(cfg *config.Config) (events.Publisher, []io.Closer) {
	if !cfg.EventsEnabled {
		cfg.Log.Info("Booking events disabled")
		return events.NopPublisher{}, nil
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.EventsTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	metrics := &kafka_middleware.PublishMetrics{}
	producer.Use(kafka_middleware.MetricsProducerMiddleware(metrics))
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))

	cfg.Log.Info("Booking events enabled", "topic", cfg.EventsTopic, "brokers", cfg.Kafka.Brokers)
	publisher := events.NewKafkaPublisher(producer, ServiceName)
	return publisher, []io.Closer{publisher, kafka_middleware.NewMetricsReporter(metrics, cfg.Log)}
}

func initServices(cfg *config.Config, publisher events.Publisher) service.HotelService {
	hotelService := service.NewHotelService(
		repository.NewMemoryEntityStore(),
		repository.NewMemoryLedger(),
		validator.NewEntityValidator(cfg.Log),
		cfg.Log,
		service.WithPublisher(publisher),
		service.WithPublishTimeout(cfg.PublishTimeout),
	)

	cfg.Log.Info("Hotel service initialized", "timezone", cfg.Timezone)
	return hotelService
}
