package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/backend"
	appointmentBackend "medibook-service/internal/app/services/backend/appointments"
	authBackend "medibook-service/internal/app/services/backend/auth"
	doctorBackend "medibook-service/internal/app/services/backend/doctors"
	notificationBackend "medibook-service/internal/app/services/backend/notifications"
	userBackend "medibook-service/internal/app/services/backend/users"
	"medibook-service/internal/app/services/core/analytics"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/auth"
	"medibook-service/internal/app/services/core/booking"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/notifications"
	"medibook-service/internal/app/services/core/session"
	"medibook-service/internal/app/services/core/users"
	"medibook-service/internal/app/services/shared/bookingattempts"
	"medibook-service/internal/app/services/shared/events"
	"medibook-service/internal/app/services/shared/locker"
	"medibook-service/internal/app/services/shared/profiles"
	"medibook-service/internal/app/services/shared/redis"
	minioStorage "medibook-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoDB,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing app dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	zapLogger := bootstrap.Logger

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio)
	bookingAttemptRepository := bookingattempts.NewBookingAttemptMongoRepository(
		bootstrap.MongoDB,
		internalConfig.MongoDB.BookingAttemptCollection,
	)

	err := messaging.DeclareDurableQueue(bootstrap.RabbitMQ, internalConfig.RabbitMQ.BookingEventQueue)
	if err != nil {
		return err
	}
	eventPublisher, err := events.NewEventPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.BookingEventQueue, zapLogger)
	if err != nil {
		return err
	}

	profilePresenter := profiles.NewProfilePresenter(
		storageService,
		internalConfig.Minio.BucketName,
		time.Duration(internalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours)*time.Hour,
		zapLogger,
	)

	// Booking API clients
	backendClient := backend.NewClient(
		internalConfig.Backend.BaseUrl,
		time.Duration(internalConfig.Backend.RequestTimeoutSeconds)*time.Second,
	)
	authBackendClient := authBackend.NewAuthBackendClient(backendClient)
	userBackendClient := userBackend.NewUserBackendClient(backendClient)
	doctorBackendClient := doctorBackend.NewDoctorBackendClient(backendClient)
	appointmentBackendClient := appointmentBackend.NewAppointmentBackendClient(backendClient)
	notificationBackendClient := notificationBackend.NewNotificationBackendClient(backendClient)

	// Session
	sessionService := session.NewSessionService(redisRepository, internalConfig, zapLogger)

	// Usecases
	authUsecase := auth.NewAuthUsecase(authBackendClient, sessionService, profilePresenter, zapLogger)
	bookingUsecase := booking.NewBookingUsecase(
		appointmentBackendClient,
		doctorBackendClient,
		redisRepository,
		lockerService,
		eventPublisher,
		bookingAttemptRepository,
		internalConfig,
		zapLogger,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentBackendClient, zapLogger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorBackendClient, zapLogger)
	userUsecase := users.NewUserUsecase(userBackendClient, sessionService, storageService, profilePresenter, internalConfig, zapLogger)
	notificationUsecase := notifications.NewNotificationUsecase(notificationBackendClient, sessionService, profilePresenter, zapLogger)
	analyticsUsecase := analytics.NewAnalyticsUsecase(userBackendClient, doctorBackendClient, bookingAttemptRepository, redisRepository, internalConfig, zapLogger)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(zapLogger, sessionService, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewareInstance, &routers.Controllers{
		Auth:         controllers.NewAuthController(zapLogger, authUsecase),
		Booking:      controllers.NewBookingController(zapLogger, bookingUsecase),
		Appointment:  controllers.NewAppointmentController(zapLogger, appointmentUsecase),
		Doctor:       controllers.NewDoctorController(zapLogger, doctorUsecase),
		User:         controllers.NewUserController(zapLogger, userUsecase, internalConfig),
		Notification: controllers.NewNotificationController(zapLogger, notificationUsecase),
		Analytics:    controllers.NewAnalyticsController(zapLogger, analyticsUsecase),
	})

	return nil
}
