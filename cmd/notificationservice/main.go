package main

import (
	"carebook-service/internal/app/clients"
	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/delivery/http/routers"
	"carebook-service/internal/app/drivers/database"
	"carebook-service/internal/app/drivers/logger"
	smtpdriver "carebook-service/internal/app/drivers/mailer"
	"carebook-service/internal/app/drivers/messaging"
	"carebook-service/internal/app/services/core/notifications"
	"carebook-service/internal/app/services/shared/mailer"
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
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig, log)
	smtpClient := smtpdriver.NewSMTPClient(driverConfig)
	chiRouter := chi.NewRouter()

	redisRepository := sharedredis.NewRedisRepository(redisClient)
	sessionService := session.NewSessionService(redisRepository, internalConfig)
	middlewares := middlewares.NewMiddlewares(zapLogger, redisRepository, internalConfig)

	upstreamTimeout := time.Duration(internalConfig.App.UpstreamTimeoutInSeconds) * time.Second
	userRestClient := clients.NewUserRestClient(internalConfig.Services.UserServiceBaseURL, upstreamTimeout, zapLogger)
	doctorRestClient := clients.NewDoctorRestClient(internalConfig.Services.DoctorServiceBaseURL, upstreamTimeout, zapLogger)
	appointmentRestClient := clients.NewAppointmentRestClient(internalConfig.Services.AppointmentServiceBaseURL, upstreamTimeout, zapLogger)

	mailerService, mailerChannel, err := mailer.NewMailerService(smtpClient, rabbitMQConnection, internalConfig.Mailer.Queue)
	if err != nil {
		log.Fatalf("Failed to set up mailer queue: %v", err)
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	mailerWorker := mailer.NewWorker(mailerChannel, smtpClient, internalConfig.Mailer.Queue, internalConfig.Mailer.SendsPerSecond, zapLogger)
	go func() {
		if err := mailerWorker.Run(workerCtx); err != nil && err != context.Canceled {
			zapLogger.Error("mailer worker stopped with error")
		}
	}()

	notificationMongoRepository := notifications.NewNotificationMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	notificationUsecase := notifications.NewNotificationUsecase(
		notificationMongoRepository,
		appointmentRestClient,
		doctorRestClient,
		userRestClient,
		mailerService,
		sessionService,
		zapLogger,
	)
	notificationController := notifications.NewNotificationController(zapLogger, notificationUsecase)

	routers.SetupNotificationServiceRoutes(chiRouter, internalConfig, middlewares, notificationController)

	server := &http.Server{
		Addr:    internalConfig.Services.NotificationServicePort,
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

	stopWorker()

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
