package main

import (
	"carebook-service/internal/app/clients"
	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/delivery/http/routers"
	"carebook-service/internal/app/drivers/database"
	"carebook-service/internal/app/drivers/logger"
	"carebook-service/internal/app/services/core/appointments"
	sharedredis "carebook-service/internal/app/services/shared/redis"
	"carebook-service/internal/app/services/shared/session"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logrus.New()
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	redisRepository := sharedredis.NewRedisRepository(redisClient)
	sessionService := session.NewSessionService(redisRepository, internalConfig)
	middlewares := middlewares.NewMiddlewares(zapLogger, redisRepository, internalConfig)

	upstreamTimeout := time.Duration(internalConfig.App.UpstreamTimeoutInSeconds) * time.Second
	userRestClient := clients.NewUserRestClient(internalConfig.Services.UserServiceBaseURL, upstreamTimeout, zapLogger)
	doctorRestClient := clients.NewDoctorRestClient(internalConfig.Services.DoctorServiceBaseURL, upstreamTimeout, zapLogger)
	notificationRestClient := clients.NewNotificationRestClient(internalConfig.Services.NotificationServiceBaseURL, upstreamTimeout, zapLogger)

	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		doctorRestClient,
		userRestClient,
		notificationRestClient,
		sessionService,
		zapLogger,
	)
	appointmentController := appointments.NewAppointmentController(zapLogger, appointmentUsecase)

	routers.SetupAppointmentServiceRoutes(chiRouter, internalConfig, middlewares, appointmentController)

	server := &http.Server{
		Addr:    internalConfig.Services.AppointmentServicePort,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
