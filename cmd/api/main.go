package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/velmora/pos-backoffice/config"
	"github.com/velmora/pos-backoffice/internal/auth"
	"github.com/velmora/pos-backoffice/pkg/broker"
	"github.com/velmora/pos-backoffice/pkg/cache"
	"github.com/velmora/pos-backoffice/pkg/database/postgres"
	"github.com/velmora/pos-backoffice/pkg/logger"

	cashH "github.com/velmora/pos-backoffice/internal/cashregister/handler"
	cashRepoPkg "github.com/velmora/pos-backoffice/internal/cashregister/repository"
	cashUCPkg "github.com/velmora/pos-backoffice/internal/cashregister/usecase"

	catH "github.com/velmora/pos-backoffice/internal/catalog/handler"
	catRepoPkg "github.com/velmora/pos-backoffice/internal/catalog/repository"
	catUCPkg "github.com/velmora/pos-backoffice/internal/catalog/usecase"

	invH "github.com/velmora/pos-backoffice/internal/inventory/handler"
	invListenerPkg "github.com/velmora/pos-backoffice/internal/inventory/listener"
	invRepoPkg "github.com/velmora/pos-backoffice/internal/inventory/repository"
	invUCPkg "github.com/velmora/pos-backoffice/internal/inventory/usecase"

	orderH "github.com/velmora/pos-backoffice/internal/order/handler"
	orderRepoPkg "github.com/velmora/pos-backoffice/internal/order/repository"
	orderUCPkg "github.com/velmora/pos-backoffice/internal/order/usecase"

	partyH "github.com/velmora/pos-backoffice/internal/party/handler"
	partyRepoPkg "github.com/velmora/pos-backoffice/internal/party/repository"
	partyUCPkg "github.com/velmora/pos-backoffice/internal/party/usecase"

	seqRepoPkg "github.com/velmora/pos-backoffice/internal/sequence/repository"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	pgConfig := &postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	}
	db, err := postgres.NewPostgres(pgConfig)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 3.5 Run Migrations
	if err := postgres.RunMigrations("file://migrations", pgConfig.DSN()); err != nil {
		appLogger.Fatal("Could not run migrations", zap.Error(err))
	}

	// 4. Initialize Repositories
	txManager := postgres.NewTxManager(db)
	seqRepo := seqRepoPkg.NewPGRepository(db)
	catRepo := catRepoPkg.NewPGRepository(db)
	partyRepo := partyRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)
	cashRepo := cashRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis (catalog cache disabled)", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5.5 Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCatalogUseCase(catRepo, redisClient, appLogger)
	partyUC := partyUCPkg.NewPartyUseCase(partyRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, txManager, appLogger)
	var sessionLocker cashUCPkg.Locker
	if redisClient != nil {
		sessionLocker = redisClient
	}
	cashUC := cashUCPkg.NewCashRegisterUseCase(cashRepo, sessionLocker, appLogger)
	verifier := auth.NewPGCredentialVerifier(db)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, partyRepo, catRepo, invUC, seqRepo, cashUC, verifier, txManager, appLogger)

	// 6.5 Initialize Listeners
	stockListener := invListenerPkg.NewStockListener(kafkaConsumer, invUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go stockListener.Start(ctx)

	// 7. Initialize Handlers and Routes
	if !logConfig.IsDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(auth.Middleware())

	api := engine.Group("/api/v1")
	catH.NewCatalogHandler(catUC, appLogger).RegisterRoutes(api)
	partyH.NewPartyHandler(partyUC, appLogger).RegisterRoutes(api)
	cashH.NewCashRegisterHandler(cashUC, appLogger).RegisterRoutes(api)
	orderH.NewOrderHandler(orderUC, appLogger).RegisterRoutes(api)
	invH.NewInventoryHandler(invUC, appLogger).RegisterRoutes(api)

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: engine,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
