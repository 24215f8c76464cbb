package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "storefront_checkout/docs" // swagger spec
	"storefront_checkout/internal/adapter/http/handlers"
	"storefront_checkout/internal/adapter/http/middleware"
	"storefront_checkout/internal/adapter/persistence/repository"
	"storefront_checkout/internal/infrastructure/config"
	"storefront_checkout/internal/infrastructure/database"
	"storefront_checkout/internal/infrastructure/payments"
	"storefront_checkout/internal/infrastructure/storefront"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/internal/usecase/interfaces"
	"storefront_checkout/internal/usecase/validation"
	"storefront_checkout/pkg"
	"storefront_checkout/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var router = gin.New()

// Run will start the server
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg); err != nil {
		logger.Log.Fatal("Failed to wire the application", zap.Error(err))
	}

	logger.Log.Info("[checkout][http] listening", zap.Int("port", cfg.Port), zap.String("session_store", cfg.SessionStore))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Log.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(ctx context.Context, cfg config.Config) error {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return err
	}

	sessions, err := newSessionRepository(ctx, cfg)
	if err != nil {
		return err
	}
	attempts := repository.NewPaymentAttemptDynamoRepository(ddb)

	var widget interfaces.IPaymentWidget
	mpWidget, err := payments.NewMercadoPagoWidget(cfg.WidgetClientKey)
	if err != nil {
		logger.Log.Warn("Payment widget not configured", zap.Error(err))
	} else {
		widget = mpWidget
	}

	gateway := storefront.NewClient(cfg.StorefrontBaseURL, cfg.StorefrontTimeout)
	locks := usecase.NewSessionLocker()

	checkoutUseCase := usecase.NewCheckoutUseCase(sessions, locks, validation.NewFormValidator(), cfg.CouponDelay)
	orchestrator := usecase.NewPaymentOrchestrator(sessions, attempts, gateway, widget, locks)
	orderUseCase := usecase.NewOrderUseCase(gateway)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, orchestrator)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	submitLimiter := middleware.NewRateLimiter(rate.Limit(cfg.SubmitRateLimit), cfg.SubmitRateBurst, 10*time.Minute)

	// Rotas publicas
	v1 := router.Group("/v1")
	v1.Use(middleware.StorefrontCredentials())
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler, middleware.SubmitRateLimit(submitLimiter))
	addOrderRoutes(v1, orderHandler)
	return nil
}

func newSessionRepository(ctx context.Context, cfg config.Config) (interfaces.ISessionRepository, error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		client, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return repository.NewSessionRedisRepository(client, cfg.SessionTTL), nil
	case config.SessionStoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		return repository.NewSessionDynamoRepository(ddb, cfg.SessionTTL), nil
	case config.SessionStoreMemory:
		return repository.NewSessionMemoryRepository(cfg.SessionTTL), nil
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.SessionStore)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(logger.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error(c.Request.Context(), "Recovered from panic", fmt.Errorf("%v", recovered))
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
}
