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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/bookfeed/audit"
	"github.com/dev-mohitbeniwal/bookfeed/config"
	"github.com/dev-mohitbeniwal/bookfeed/controller"
	"github.com/dev-mohitbeniwal/bookfeed/dao"
	"github.com/dev-mohitbeniwal/bookfeed/db"
	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/middleware"
	"github.com/dev-mohitbeniwal/bookfeed/router"
	"github.com/dev-mohitbeniwal/bookfeed/service"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Neo4j
	driver, err := db.InitNeo4j(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
	}
	defer db.CloseNeo4j(driver)

	if err := dao.EnsureSchema(ctx, driver); err != nil {
		logger.Fatal("Failed to ensure Neo4j schema", zap.Error(err))
	}

	// Redis connects lazily; an unreachable cache only slows feeds down
	redisStore := db.NewRedisStore(db.RedisOptionsFromConfig())
	defer redisStore.Close()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	var auditService audit.Service
	if cfg.Elasticsearch.URL != "" {
		auditRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL, cfg.Elasticsearch.Index)
		if err != nil {
			logger.Error("Failed to initialize audit repository, invalidation audit disabled", zap.Error(err))
		} else {
			auditService = audit.NewService(auditRepository)
		}
	}

	// Initialize services
	services, err := service.InitializeServices(
		driver,
		auditService,
		util.NewValidationUtil(),
		util.NewCacheService(redisStore, cfg.Feed.CacheTTL),
		eventBus,
		cfg.Feed,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	services.Feed.Start(ctx)

	if cfg.Feed.WarmOnBoot {
		go func() {
			if err := services.Feed.WarmAll(ctx); err != nil {
				logger.Error("Feed warm-up failed", zap.Error(err))
			}
		}()
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(
		services,
		cfg.Feed.DefaultLimit,
		func(ctx context.Context) string { return db.Neo4jStatus(ctx, driver) },
		redisStore.Status,
	)

	jwtSecret := config.GetString("auth.jwtSecret")
	if jwtSecret == "" {
		logger.Fatal("auth.jwtSecret must be set")
	}

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	r := router.SetupRouter(
		controllers,
		middleware.Authenticate(jwtSecret, services.Users),
		middleware.RateLimiter(redisStore, config.GetInt("ratelimit.requests"), config.GetDuration("ratelimit.per")),
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Stop background recomputation; queued jobs are dropped
	cancel()
	services.Feed.Stop()

	logger.Info("Server exiting")
}
