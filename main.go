package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"game-store-service/controllers"
	"game-store-service/repository"
	"game-store-service/routes"
	"game-store-service/services"
	"game-store-service/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func main() {
	cfg := LoadConfig()

	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// --- Persistent store ---
	redisClient, err := store.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logger.Fatal("Redis connection failed", zap.Error(err))
	}
	kv := store.NewRedisKV(redisClient)
	bus := store.NewBus()

	registerValidators()

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Structured HTTP request logging
	r.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		switch {
		case status >= 500:
			logger.Error("http_request", fields...)
		case status >= 400:
			logger.Warn("http_request", fields...)
		default:
			logger.Info("http_request", fields...)
		}
	})

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- Repositories ---
	productRepo := repository.NewKVProductRepository(kv, bus)
	categoryRepo := repository.NewKVCategoryRepository(kv, bus)
	campaignRepo := repository.NewKVCampaignRepository(kv, bus)
	ledgerRepo := repository.NewKVStockImportRepository(kv, bus)
	orderRepo := repository.NewKVOrderRepository(kv, bus)
	userRepo := repository.NewKVUserRepository(kv, bus)
	otpRepo := repository.NewKVOTPRepository(kv)
	voucherRepo := repository.NewKVVoucherRepository(kv, bus)
	contentRepo := repository.NewKVContentRepository(kv, bus)

	// --- Services ---
	pricing := services.NewPricingEngine()
	tokens := services.NewTokenService(cfg.JWTSecret)
	campaignSvc := services.NewCampaignService(campaignRepo, logger)
	inventorySvc := services.NewInventoryService(productRepo, ledgerRepo, logger)
	catalogSvc := services.NewCatalogService(productRepo, categoryRepo, campaignSvc, inventorySvc, pricing, logger)
	voucherSvc := services.NewVoucherService(voucherRepo, logger)
	orderSvc := services.NewOrderService(orderRepo, productRepo, campaignSvc, pricing, voucherSvc, logger)
	authSvc := services.NewAuthService(userRepo, otpRepo, tokens, logger)
	contentSvc := services.NewContentService(contentRepo, logger)

	// --- Controllers & routes ---
	routes.Register(r, routes.Controllers{
		Products:   controllers.NewProductController(catalogSvc),
		Categories: controllers.NewCategoryController(catalogSvc),
		Campaigns:  controllers.NewCampaignController(campaignSvc),
		Inventory:  controllers.NewInventoryController(inventorySvc),
		Orders:     controllers.NewOrderController(orderSvc),
		Auth:       controllers.NewAuthController(authSvc, voucherSvc),
		Content:    controllers.NewContentController(contentSvc),
	}, tokens)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "game-store-service"})
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Game Store Service started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("Redis close error", zap.Error(err))
	}

	log.Println("Game Store Service stopped gracefully")
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// registerValidators adds the custom binding validators used by request
// payloads. "slug" constrains category slugs to lowercase-hyphen form, since
// products reference categories by slug in URLs.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
	}
}
