package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"marketdz/internal/adapter/api"
	"marketdz/internal/adapter/api/handler"
	apimiddleware "marketdz/internal/adapter/api/middleware"
	"marketdz/internal/adapter/api/router"
	"marketdz/internal/adapter/repository"
	"marketdz/internal/domain/service"
	"marketdz/internal/infrastructure/auth"
	"marketdz/internal/infrastructure/email"
	"marketdz/internal/infrastructure/geocode"
	"marketdz/internal/infrastructure/storage"
	"marketdz/internal/infrastructure/treedb"
	"marketdz/internal/usecase"
	"marketdz/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := ""

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:   cfg.FirebaseProject,
		DatabaseURL: cfg.DatabaseURL,
	}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	dbClient, err := firebaseApp.Database(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Realtime Database client: %v", err)
	}

	db := treedb.NewClient(treedb.NewFirebaseTransport(dbClient))

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewRTDBUserRepository(db)
	itemRepo := repository.NewRTDBItemRepository(db, userRepo)
	photoRepo := repository.NewRTDBPhotoRepository(db)
	messageRepo := repository.NewRTDBMessageRepository(db)
	tokenRepo := repository.NewRTDBTokenRepository(db, userRepo)
	reportRepo := repository.NewRTDBReportRepository(db)
	blockRepo := repository.NewRTDBBlockRepository(db)

	hasher := auth.NewBcryptHasher()
	tokens, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}
	geoService := service.NewGeoService()
	geocoder := geocode.NewNominatimClient(cfg.GeocoderBaseURL)
	emailSender := email.NewLogSender()

	authUseCase := usecase.NewAuthUseCase(userRepo, itemRepo, hasher, tokens)
	verificationUseCase := usecase.NewVerificationUseCase(tokenRepo, userRepo, emailSender)
	itemUseCase := usecase.NewItemUseCase(itemRepo, userRepo)
	locationUseCase := usecase.NewLocationUseCase(itemRepo, geoService, geocoder)
	photoUseCase := usecase.NewPhotoUseCase(photoRepo, itemRepo, storageClient)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, userRepo, blockRepo)
	securityUseCase := usecase.NewSecurityUseCase(reportRepo, blockRepo, itemRepo, userRepo)

	handler.Setup(authUseCase, verificationUseCase, itemUseCase, locationUseCase, photoUseCase, messageUseCase, securityUseCase)
	handler.SetupHealthHandler(db)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokens)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
