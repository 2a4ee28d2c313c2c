package main

import (
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"gmls/config"
	"gmls/services/gmls/delivery"
	"gmls/services/gmls/repository"
	"gmls/services/gmls/usecase"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	prefsDB, err := config.BootPreferencesDB()
	if err != nil {
		log.Fatalf("Failed to boot preferences DB: %v", err)
		return
	}

	timeOut := 10 * time.Second

	remote := repository.NewMemoryRemoteStore()
	auth := repository.NewSessionAuthService()

	userRepo := repository.NewUserRepository(db)
	disasterRepo := repository.NewDisasterRepository(db)
	prefRepo := repository.NewPreferenceRepository(prefsDB)

	userUC := usecase.NewUserUseCase(userRepo, remote, auth, timeOut)
	disasterUC := usecase.NewDisasterUseCase(disasterRepo, remote, timeOut)
	prefUC := usecase.NewPreferenceUseCase(prefRepo, timeOut)

	delivery.NewAuthDelivery(app, auth)
	delivery.NewUserDelivery(app, userUC)
	delivery.NewDisasterDelivery(app, disasterUC)
	delivery.NewPreferenceDelivery(app, prefUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
