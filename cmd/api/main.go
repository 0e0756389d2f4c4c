package main

import (
	bookingsevents "tourenzo/internal/bookings/events"
	bookingshandler "tourenzo/internal/bookings/handler"
	bookingsrepository "tourenzo/internal/bookings/repository"
	bookingsservice "tourenzo/internal/bookings/service"
	bookingsvalidator "tourenzo/internal/bookings/validator"
	cataloghandler "tourenzo/internal/catalog/handler"
	catalogrepository "tourenzo/internal/catalog/repository"
	"tourenzo/internal/catalog/seed"
	catalogservice "tourenzo/internal/catalog/service"
	contactshandler "tourenzo/internal/contacts/handler"
	contactsrepository "tourenzo/internal/contacts/repository"
	contactsservice "tourenzo/internal/contacts/service"
	usershandler "tourenzo/internal/users/handler"
	usersrepository "tourenzo/internal/users/repository"
	usersservice "tourenzo/internal/users/service"
	usersvalidator "tourenzo/internal/users/validator"
	"tourenzo/pkg/app"
	"tourenzo/pkg/auth"
	"tourenzo/pkg/config"
	"tourenzo/pkg/kafka"
	kafka_config "tourenzo/pkg/kafka/config"
	kafka_middleware "tourenzo/pkg/kafka/middleware"
)

const ServiceName = "api"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.LogConfiguration()

	cfg.SetMongo()
	cfg.SetRedis()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	publisher := initPublisher(cfg)

	catalogService := catalogservice.NewCatalogService(
		catalogrepository.NewMongoPackageRepository(cfg),
		seed.Packages,
		cfg,
	)

	userService := usersservice.NewUserService(
		usersrepository.NewMongoUserRepository(cfg),
		usersvalidator.NewUserValidator(),
		auth.NewPasswordHasher(cfg.BcryptCost),
		tokens,
		cfg,
	)

	bookingService := bookingsservice.NewBookingService(
		bookingsrepository.NewMongoBookingRepository(cfg),
		bookingsvalidator.NewBookingValidator(cfg.MaxTravelers, cfg.BookingLocation),
		catalogService,
		publisher,
		cfg,
	)

	contactService := contactsservice.NewContactService(
		contactsrepository.NewMongoContactRepository(cfg),
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, cfg.Client.Mongo,
		usershandler.NewUserHandler(userService, cfg.Log),
		cataloghandler.NewCatalogHandler(catalogService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, tokens, cfg.Log),
		contactshandler.NewContactHandler(contactService, cfg.Log),
	)
	serverApp.AddCloser(publisher)
	serverApp.Run()
}

// initPublisher returns a Kafka-backed publisher when brokers are configured
// and a no-op one otherwise.
func initPublisher(cfg *config.Config) bookingsevents.Publisher {
	kafkaCfg := kafka_config.Load()
	if !kafkaCfg.Enabled() {
		cfg.Log.Info("KAFKA_BROKERS not set, booking events disabled")
		return bookingsevents.NoopPublisher{}
	}
	if err := kafkaCfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.BookingEventsTopic, kafkaCfg.DLQTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.MetricsProducerMiddleware())
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	}

	cfg.Log.Info("Booking events enabled", "topic", producer.Topic())
	return bookingsevents.NewKafkaPublisher(producer)
}
