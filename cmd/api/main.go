package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-interview-report-backend/config"
	_ "go-interview-report-backend/docs" // Important for Swagger
	v1 "go-interview-report-backend/internal/delivery/http/v1"
	"go-interview-report-backend/internal/domain"
	firestorerepo "go-interview-report-backend/internal/repository/firestore"
	"go-interview-report-backend/internal/repository/memory"
	"go-interview-report-backend/internal/repository/postgres"
	"go-interview-report-backend/internal/usecase"
	"go-interview-report-backend/pkg/auth"
	"go-interview-report-backend/pkg/database"
	"go-interview-report-backend/pkg/inflight"
	"go-interview-report-backend/pkg/logger"
	"go-interview-report-backend/pkg/redis"
	"go-interview-report-backend/pkg/storage"

	"go.uber.org/zap"
)

// @title           Interview Report API
// @version         1.0
// @description     Interview history, interview reports and the admin candidate roster.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	if err := logger.Init(cfg.Env); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	logger.Log.Info("Starting interview report backend",
		zap.String("port", cfg.Port),
		zap.String("store", cfg.StoreBackend),
	)

	ctx := context.Background()

	// 3. Setup Store
	repos, err := openStore(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to open document store", zap.Error(err))
	}
	defer repos.close()

	// 4. Setup Redis (optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory fallbacks", zap.Error(err))
	} else {
		defer redis.Close()
		repos.checks["redis"] = redis.HealthCheck
	}

	// 5. Setup Photo Storage
	var photos *storage.PhotoResolver
	if cfg.PhotoStorageConfigured() {
		photos, err = storage.NewS3PhotoResolver(ctx, storage.S3Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
			URLTTL:          time.Duration(cfg.PhotoURLTTLMin) * time.Minute,
		})
		if err != nil {
			logger.Log.Warn("Photo storage unavailable, stored photo keys will not resolve", zap.Error(err))
		}
	}

	// 6. Setup UseCases
	settings := domain.PresentationSettings{
		ExcellentThreshold: cfg.Report.ExcellentThreshold,
		GoodThreshold:      cfg.Report.GoodThreshold,
		CardRingRadius:     cfg.Report.CardRingRadius,
		ReportRingRadius:   cfg.Report.ReportRingRadius,
		ExportExtension:    cfg.Report.ExportExtension,
	}
	guard := inflight.NewGuard(redis.Client(), "toggle:account:", time.Duration(cfg.ToggleGuardTTLSeconds)*time.Second)

	authUC := usecase.NewAuthUsecase(repos.principals, photos)
	interviewUC := usecase.NewInterviewUsecase(repos.interviews, settings)
	reportUC := usecase.NewReportUsecase(repos.interviews, settings)
	rosterUC := usecase.NewRosterUsecase(repos.principals, guard, photos)
	healthUC := usecase.NewHealthUsecase(repos.checks)

	// 7. Setup Token Verification
	if cfg.AuthJWTSecret != "" && cfg.IsProduction() {
		logger.Log.Warn("AUTH_JWT_SECRET is set in production; HS256 tokens will be accepted")
	}
	verifier := auth.NewVerifier(auth.NewProvider(cfg.FirebaseJWKSURL), cfg.FirebaseProjectID, cfg.AuthJWTSecret)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		InterviewUC: interviewUC,
		ReportUC:    reportUC,
		RosterUC:    rosterUC,
		HealthUC:    healthUC,
		Verifier:    verifier,
		Redis:       redis.Client(),
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Listen failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Server exiting")
}

type stores struct {
	interviews domain.InterviewRepository
	principals domain.PrincipalRepository
	checks     map[string]usecase.HealthCheck
	close      func()
}

func openStore(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &stores{
			interviews: postgres.NewInterviewRepository(pool),
			principals: postgres.NewPrincipalRepository(pool),
			checks:     map[string]usecase.HealthCheck{"store": pool.Ping},
			close:      pool.Close,
		}, nil

	case config.StoreMemory:
		store := memory.NewStore(nil)
		if cfg.MemorySeedFile != "" {
			if err := store.LoadFile(cfg.MemorySeedFile); err != nil {
				return nil, err
			}
		}
		return &stores{
			interviews: memory.NewInterviewRepository(store),
			principals: memory.NewPrincipalRepository(store),
			checks:     map[string]usecase.HealthCheck{},
			close:      func() {},
		}, nil

	default:
		client, err := database.NewFirestoreClient(ctx, cfg.FirebaseProjectID, cfg.GoogleCredentialsFile)
		if err != nil {
			return nil, err
		}
		return &stores{
			interviews: firestorerepo.NewInterviewRepository(client),
			principals: firestorerepo.NewPrincipalRepository(client),
			checks: map[string]usecase.HealthCheck{"store": func(ctx context.Context) error {
				return firestorerepo.Ping(ctx, client)
			}},
			close: func() { _ = client.Close() },
		}, nil
	}
}
