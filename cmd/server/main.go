package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/tabledash/backend/internal/application/catalog"
	directoryapp "github.com/tabledash/backend/internal/application/directory"
	identityapp "github.com/tabledash/backend/internal/application/identity"
	"github.com/tabledash/backend/internal/infrastructure/auth"
	"github.com/tabledash/backend/internal/infrastructure/config"
	"github.com/tabledash/backend/internal/infrastructure/logger"
	"github.com/tabledash/backend/internal/infrastructure/mail"
	"github.com/tabledash/backend/internal/infrastructure/persistence"
	"github.com/tabledash/backend/internal/infrastructure/storage"
	"github.com/tabledash/backend/internal/interfaces/http/handler"
	"github.com/tabledash/backend/internal/interfaces/http/middleware"
	"github.com/tabledash/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting TableDash backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	localProductRepo := persistence.NewGormLocalProductRepository(db.DB)

	// Token service and blacklist
	tokens, err := auth.NewTokenService(cfg.JWT)
	if err != nil {
		log.Fatal("Failed to initialize token service", zap.Error(err))
	}

	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewMemoryTokenBlacklist()
		log.Info("In-memory token blacklist enabled")
	}

	// Object storage for profile images
	var objectStorage directoryapp.ObjectStorage
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			cancel()
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
		objectStorage = s3Storage
		log.Info("Object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Info("Object storage disabled, using stub")
	}

	// Credential mail
	var mailer identityapp.Mailer
	if cfg.Mail.Enabled {
		smtpMailer, err := mail.NewSMTPMailer(&cfg.Mail, log)
		if err != nil {
			log.Fatal("Failed to initialize mailer", zap.Error(err))
		}
		mailer = smtpMailer
		log.Info("Credential mail enabled", zap.String("host", cfg.Mail.Host))
	}

	// Application services
	authService := identityapp.NewAuthService(accountRepo, tokens, blacklist, mailer, log)
	accountService := identityapp.NewAccountService(accountRepo, log)
	userService := directoryapp.NewUserService(userRepo, objectStorage, log)
	productService := catalogapp.NewProductService(productRepo, log)
	localProductService := catalogapp.NewLocalProductService(localProductRepo, log)

	// HTTP layer
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.MaxMultipartMemory = cfg.Storage.MaxUploadSize

	router.Setup(engine, router.Config{
		Logger: log,
		Session: middleware.SessionConfig{
			Tokens:     tokens,
			Blacklist:  blacklist,
			CookieName: cfg.Cookie.Name,
			Logger:     log,
		},
		CORS:          middleware.DefaultCORSConfig(cfg.HTTP.CORSAllowOrigins),
		Auth:          handler.NewAuthHandler(authService, cfg.Cookie),
		Users:         handler.NewUserHandler(userService, cfg.Storage.MaxUploadSize),
		Products:      handler.NewProductHandler(productService),
		LocalProducts: handler.NewLocalProductHandler(localProductService),
		Admins:        handler.NewAdminHandler(accountService),
		System:        handler.NewSystemHandler(db),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
