//go:build api

// Package testserver provides a fully wired portal for API integration tests.
package testserver

import (
	"context"
	"time"

	"ecobin-portal/internal/authz"
	"ecobin-portal/internal/cache"
	"ecobin-portal/internal/classifier"
	"ecobin-portal/internal/database"
	"ecobin-portal/internal/handler"
	"ecobin-portal/internal/metrics"
	"ecobin-portal/internal/models"
	"ecobin-portal/internal/queue"
	"ecobin-portal/internal/repository"
	"ecobin-portal/internal/router"
	"ecobin-portal/internal/service"
	"ecobin-portal/internal/storage"
	"ecobin-portal/pkg/auth"
	"ecobin-portal/test/api/testdb"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// TestSessionSecret seeds the session token key used in tests.
	TestSessionSecret = "test-secret-key-for-api-tests"
	// TestSessionTTL is the session lifetime used in tests.
	TestSessionTTL = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestDepositWeight is the weight recorded per deposit.
	TestDepositWeight = 100
	// TestRewardPoints is the reward per accepted item.
	TestRewardPoints = 10
	// TestMaxImageSize is the upload limit.
	TestMaxImageSize = 1 << 20
	// TestRetryDelay is the base backoff for reward retries.
	TestRetryDelay = 50 * time.Millisecond
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers and the fake backend
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer
	Backend *Backend

	// Classifier answers every image with its Label.
	Classifier *classifier.MockService

	// Reward retries
	RewardQueue     *queue.MemoryQueue
	RewardProcessor *queue.Processor
	RewardService   *service.RewardService

	cancel context.CancelFunc
}

// New starts the containers and the backend and wires the portal on top.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}
	ts := &TestServer{MongoDB: mongoDB}

	if ts.Redis, err = testdb.SetupRedis(ctx); err != nil {
		ts.Cleanup(ctx)
		return nil, err
	}
	if ts.MinIO, err = testdb.SetupMinIO(ctx); err != nil {
		ts.Cleanup(ctx)
		return nil, err
	}
	ts.Backend = NewBackend()

	s3Client, err := storage.NewS3Client(ts.MinIO.Endpoint, ts.MinIO.AccessKey, ts.MinIO.SecretKey, ts.MinIO.Bucket, false)
	if err == nil {
		err = s3Client.EnsureBucket(ctx)
	}
	if err != nil {
		ts.Cleanup(ctx)
		return nil, err
	}

	key, err := auth.DeriveKey(TestSessionSecret, "session-token")
	if err != nil {
		ts.Cleanup(ctx)
		return nil, err
	}
	tokens := auth.NewJWTManager(key, TestSessionTTL)

	redisCache := cache.NewRedis(ts.Redis.URI)
	sessions := cache.NewSessionStore(redisCache)

	backend := repository.NewClient(ts.Backend.URL(), 5*time.Second)
	userRepo := repository.NewUserRepository(backend)
	binRepo := repository.NewBinRepository(backend)
	depositRepo := repository.NewDepositRepository(backend)
	pointsRepo := repository.NewPointsRepository(backend)
	claimRepo := repository.NewRewardClaimRepository(mongoDB.Database)
	if err := claimRepo.EnsureIndexes(ctx); err != nil {
		ts.Cleanup(ctx)
		return nil, err
	}

	mongoPing := &database.MongoDB{Client: mongoDB.Client, Database: mongoDB.Database}
	authorizer := authz.NewRoleAuthorizer([]string{"admin"})
	registry := prometheus.NewRegistry()
	portalMetrics := metrics.New(registry)

	ts.Classifier = classifier.NewMockService()
	ts.Classifier.SimulatedDelay = 0

	ts.RewardQueue = queue.NewMemoryQueue(100)
	ts.RewardProcessor = queue.NewProcessor(ts.RewardQueue, pointsRepo, claimRepo, 2,
		queue.WithRetryDelay(TestRetryDelay), queue.WithObserver(portalMetrics))
	ts.RewardService = service.NewRewardService(claimRepo, pointsRepo, ts.RewardQueue, ts.RewardProcessor, portalMetrics)

	authService := service.NewAuthService(service.AuthServiceConfig{
		AuthRepo:   repository.NewAuthRepository(backend),
		UserRepo:   userRepo,
		Sessions:   sessions,
		Tokens:     tokens,
		Authorizer: authorizer,
		SessionTTL: TestSessionTTL,
	})
	disposalService := service.NewDisposalService(service.DisposalServiceConfig{
		Store:        cache.NewDisposalStore(redisCache),
		BinRepo:      binRepo,
		DepositRepo:  depositRepo,
		Classifier:   ts.Classifier,
		Storage:      s3Client,
		Rewards:      ts.RewardService,
		Recorder:     portalMetrics,
		TTL:          time.Hour,
		Weight:       TestDepositWeight,
		Points:       TestRewardPoints,
		BinOpenFor:   4 * time.Second,
		MaxImageSize: TestMaxImageSize,
	})

	ts.Router = router.Setup(&router.Config{
		AuthHandler:      handler.NewAuthHandler(authService),
		ProfileHandler:   handler.NewProfileHandler(service.NewProfileService(userRepo, authorizer), service.NewHomeService(authorizer)),
		DisposalHandler:  handler.NewDisposalHandler(disposalService, TestMaxImageSize),
		DashboardHandler: handler.NewDashboardHandler(service.NewDashboardService(binRepo, depositRepo, time.UTC)),
		UserAdminHandler: handler.NewUserAdminHandler(service.NewUserAdminService(userRepo, cache.NewTableStore[models.User](redisCache, cache.TableUsers), TestSessionTTL)),
		BinAdminHandler:  handler.NewBinAdminHandler(service.NewBinAdminService(binRepo, cache.NewTableStore[models.Bin](redisCache, cache.TableBins), TestSessionTTL)),
		Tokens:           tokens,
		Sessions:         sessions,
		Authorizer:       authorizer,
		Metrics:          portalMetrics,
		MetricsHandler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		HealthChecks:     map[string]router.Pinger{"mongodb": mongoPing, "redis": redisCache},
	})

	processorCtx, cancel := context.WithCancel(context.Background())
	ts.cancel = cancel
	ts.RewardProcessor.Start(processorCtx)

	return ts, nil
}

// Cleanup stops the processor and the backend and terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.cancel != nil {
		ts.cancel()
		ts.RewardProcessor.Stop()
	}
	if ts.Backend != nil {
		ts.Backend.Close()
	}
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
