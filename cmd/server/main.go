package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecobin-portal/internal/authz"
	"ecobin-portal/internal/cache"
	"ecobin-portal/internal/classifier"
	"ecobin-portal/internal/config"
	"ecobin-portal/internal/database"
	"ecobin-portal/internal/handler"
	"ecobin-portal/internal/metrics"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/queue"
	"ecobin-portal/internal/repository"
	"ecobin-portal/internal/router"
	"ecobin-portal/internal/service"
	"ecobin-portal/internal/storage"
	"ecobin-portal/internal/validator"
	"ecobin-portal/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title           EcoBin Portal API
// @version         1.0
// @description     Browser facing API for the smart waste bin network.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database (reward ledger)
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache (sessions, disposals, admin tables)
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage (item images)
	s3Client, err := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
	if err != nil {
		log.Fatalf("Failed to create S3 client: %v", err)
	}
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := s3Client.EnsureBucket(startupCtx); err != nil {
		log.Fatalf("Failed to prepare bucket %s: %v", cfg.S3Bucket, err)
	}

	// Session tokens
	sessionKey, err := auth.DeriveKey(cfg.SessionSecret, "session-token")
	if err != nil {
		log.Fatalf("Invalid SESSION_SECRET: %v", err)
	}
	jwtManager := auth.NewJWTManager(sessionKey, cfg.SessionTTL)

	// Repository layer
	backend := repository.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	authRepo := repository.NewAuthRepository(backend)
	userRepo := repository.NewUserRepository(backend)
	binRepo := repository.NewBinRepository(backend)
	depositRepo := repository.NewDepositRepository(backend)
	pointsRepo := repository.NewPointsRepository(backend)
	claimRepo := repository.NewRewardClaimRepository(mongoDB.Database)
	if err := claimRepo.EnsureIndexes(startupCtx); err != nil {
		log.Printf("Failed to ensure reward claim indexes: %v", err)
	}
	startupCancel()

	// State stores
	sessionStore := cache.NewSessionStore(redisCache)
	disposalStore := cache.NewDisposalStore(redisCache)
	userTable := cache.NewTableStore[models.User](redisCache, cache.TableUsers)
	binTable := cache.NewTableStore[models.Bin](redisCache, cache.TableBins)

	// Classifier
	var classifierService classifier.Service
	if cfg.ClassifierMode == "mock" {
		log.Println("Using mock classifier")
		classifierService = classifier.NewMockService()
	} else {
		classifierService = classifier.NewHTTPService(cfg.ClassifierURL, &http.Client{Timeout: cfg.BackendTimeout})
	}

	// Authorization
	authorizer := authz.NewRoleAuthorizer(cfg.AdminRoles)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	portalMetrics := metrics.New(registry)

	// Reward retry queue and processor
	rewardQueue := queue.NewMemoryQueue(cfg.RewardQueueSize)
	rewardProcessor := queue.NewProcessor(rewardQueue, pointsRepo, claimRepo, cfg.RewardWorkers, queue.WithObserver(portalMetrics))

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		AuthRepo:   authRepo,
		UserRepo:   userRepo,
		Sessions:   sessionStore,
		Tokens:     jwtManager,
		Authorizer: authorizer,
		SessionTTL: cfg.SessionTTL,
	})
	rewardService := service.NewRewardService(claimRepo, pointsRepo, rewardQueue, rewardProcessor, portalMetrics)
	disposalService := service.NewDisposalService(service.DisposalServiceConfig{
		Store:        disposalStore,
		BinRepo:      binRepo,
		DepositRepo:  depositRepo,
		Classifier:   classifierService,
		Storage:      s3Client,
		Rewards:      rewardService,
		Recorder:     portalMetrics,
		TTL:          cfg.DisposalTTL,
		Weight:       cfg.DepositWeight,
		Points:       cfg.RewardPoints,
		BinOpenFor:   cfg.BinOpenDuration,
		MaxImageSize: cfg.MaxImageSize,
	})
	profileService := service.NewProfileService(userRepo, authorizer)
	homeService := service.NewHomeService(authorizer)
	dashboardService := service.NewDashboardService(binRepo, depositRepo, cfg.Location())
	userAdminService := service.NewUserAdminService(userRepo, userTable, cfg.SessionTTL)
	binAdminService := service.NewBinAdminService(binRepo, binTable, cfg.SessionTTL)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:      handler.NewAuthHandler(authService),
		ProfileHandler:   handler.NewProfileHandler(profileService, homeService),
		DisposalHandler:  handler.NewDisposalHandler(disposalService, cfg.MaxImageSize),
		DashboardHandler: handler.NewDashboardHandler(dashboardService),
		UserAdminHandler: handler.NewUserAdminHandler(userAdminService),
		BinAdminHandler:  handler.NewBinAdminHandler(binAdminService),
		Tokens:           jwtManager,
		Sessions:         sessionStore,
		Authorizer:       authorizer,
		Metrics:          portalMetrics,
		MetricsHandler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		HealthChecks:     map[string]router.Pinger{"mongodb": mongoDB, "redis": redisCache},
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start reward processor, then requeue claims left pending by a previous run
	rewardProcessor.Start(ctx)
	if resumed, err := rewardService.ResumePending(ctx); err != nil {
		log.Printf("Failed to resume pending reward claims: %v", err)
	} else if resumed > 0 {
		log.Printf("Resumed %d pending reward claims", resumed)
	}

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop reward processor (waits for workers)
	log.Println("Stopping reward processor...")
	rewardProcessor.Stop()

	log.Println("Server shutdown complete")
}
