package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tradeport.backend/internal/config"
	"tradeport.backend/internal/domain/entities"
	domainerrors "tradeport.backend/internal/domain/errors"
	domainRepos "tradeport.backend/internal/domain/repositories"
	"tradeport.backend/internal/infrastructure/jobs"
	"tradeport.backend/internal/infrastructure/repositories"
	"tradeport.backend/internal/infrastructure/storage"
	"tradeport.backend/internal/interfaces/http/handlers"
	"tradeport.backend/internal/interfaces/http/middleware"
	"tradeport.backend/internal/usecases"
	"tradeport.backend/pkg/crypto"
	"tradeport.backend/pkg/jwt"
	"tradeport.backend/pkg/logger"
	"tradeport.backend/pkg/metrics"
	"tradeport.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	sellerRepo := repositories.NewSellerProfileRepository(db)
	documentRepo := repositories.NewSellerDocumentRepository(db)
	approvalRepo := repositories.NewApprovalRequestRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	uow := repositories.NewUnitOfWork(db)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Object storage for logos and identity documents
	var store storage.ObjectStore
	if cfg.Storage.Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), storage.Config{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Endpoint:  cfg.Storage.Endpoint,
			BaseURL:   cfg.Storage.BaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
		store = s3Store
	} else {
		log.Println("S3_BUCKET not set, document uploads will be rejected")
		store = storage.Disabled()
	}

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, sellerRepo, uow, jwtService, sessionStore, cfg.JWT.RefreshExpiry)
	onboardingUsecase := usecases.NewOnboardingUsecase(sellerRepo, documentRepo, approvalRepo, uow, store)
	verificationUsecase := usecases.NewVerificationUsecase(userRepo, documentRepo, uow, store)
	approvalUsecase := usecases.NewApprovalUsecase(approvalRepo, sellerRepo, documentRepo, userRepo, uow)
	catalogUsecase := usecases.NewCatalogUsecase(productRepo, sellerRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, productRepo, uow, cfg.Checkout.TaxPercent, cfg.Checkout.ShippingFlat)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	adminHandler := handlers.NewAdminHandler(approvalUsecase)
	productHandler := handlers.NewProductHandler(catalogUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	if err := seedAdmin(context.Background(), userRepo, cfg.Admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reminderJob := jobs.NewApprovalReminderJob(approvalRepo, cfg.Approval.ReminderInterval, cfg.Approval.MaxPendingAge)
	go reminderJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(metrics.Middleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		onboardingHandler:   onboardingHandler,
		verificationHandler: verificationHandler,
		adminHandler:        adminHandler,
		productHandler:      productHandler,
		orderHandler:        orderHandler,
		authMiddleware:      authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down server...")
		reminderJob.Stop()
		cancel()
	}()

	log.Printf("Tradeport backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// seedAdmin ensures the bootstrap ADMIN account exists. Admin accounts are
// never created through the public registration endpoint.
func seedAdmin(ctx context.Context, userRepo domainRepos.UserRepository, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	_, err := userRepo.GetByEmail(ctx, cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := &entities.User{
		Email:        cfg.Email,
		Name:         "Administrator",
		Phone:        "0000000000",
		PasswordHash: hash,
		Role:         entities.UserRoleAdmin,
		IsVerified:   true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("seeded admin account %s", cfg.Email)
	return nil
}
