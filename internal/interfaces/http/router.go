package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	productuc "trackd/internal/application/product/usecases"
	resourceuc "trackd/internal/application/resource/usecases"
	ticketuc "trackd/internal/application/ticket/usecases"
	"trackd/internal/domain/resource"
	"trackd/internal/infrastructure/config"
	"trackd/internal/infrastructure/ratelimit"
	"trackd/internal/infrastructure/repository"
	producthandler "trackd/internal/interfaces/http/handlers/product"
	resourcehandler "trackd/internal/interfaces/http/handlers/resource"
	tickethandler "trackd/internal/interfaces/http/handlers/ticket"
	"trackd/internal/interfaces/http/middleware"
	"trackd/internal/interfaces/http/routes"
	"trackd/internal/shared/db"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/services/markdown"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine      *gin.Engine
	routeConfig *routes.ProductRouteConfig
	cfg         *config.Config
	rateLimiter ratelimit.RateLimiter
}

// NewRouter creates a new HTTP router with all dependencies.
// redisClient may be nil when rate limiting is disabled.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	engine := gin.New()

	txManager := db.NewTransactionManager(gormDB)

	productRepo := repository.NewProductRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	changeRepo := repository.NewTicketChangeRepository(gormDB)
	sequenceRepo := repository.NewTicketSequenceRepository(gormDB)
	componentRepo := repository.NewComponentRepository(gormDB)
	milestoneRepo := repository.NewMilestoneRepository(gormDB)
	versionRepo := repository.NewVersionRepository(gormDB)
	enumRepo := repository.NewEnumRepository(gormDB)

	markdownSvc := markdown.NewService()

	productHandler := producthandler.NewHandler(
		productuc.NewCreateProductUseCase(productRepo, log),
		productuc.NewUpdateProductUseCase(productRepo, log),
		productuc.NewDeleteProductUseCase(productRepo, txManager, log),
		productuc.NewGetProductUseCase(productRepo, log),
		productuc.NewListProductsUseCase(productRepo, log),
	)

	ticketHandler := tickethandler.NewHandler(
		ticketuc.NewCreateTicketUseCase(ticketRepo, productRepo, sequenceRepo, componentRepo, milestoneRepo, versionRepo, enumRepo, txManager, log),
		ticketuc.NewUpdateTicketUseCase(ticketRepo, changeRepo, productRepo, componentRepo, milestoneRepo, versionRepo, enumRepo, txManager, log),
		ticketuc.NewDeleteTicketUseCase(ticketRepo, changeRepo, productRepo, txManager, log),
		ticketuc.NewGetTicketUseCase(ticketRepo, productRepo, log),
		ticketuc.NewListTicketsUseCase(ticketRepo, productRepo, log),
		ticketuc.NewListTicketChangesUseCase(ticketRepo, changeRepo, productRepo, log),
		ticketuc.NewListChangesUseCase(changeRepo, productRepo, log),
		ticketuc.NewGetChangeUseCase(changeRepo, productRepo, log),
		ticketuc.NewRenderTicketUseCase(ticketRepo, productRepo, markdownSvc, log),
	)

	componentHandler := resourcehandler.NewComponentHandler(
		resourceuc.NewScopedCRUD[*resource.Component](componentRepo, productRepo, ticketRepo, "component", "component", txManager, log),
	)
	milestoneHandler := resourcehandler.NewMilestoneHandler(
		resourceuc.NewScopedCRUD[*resource.Milestone](milestoneRepo, productRepo, ticketRepo, "milestone", "milestone", txManager, log),
	)
	versionHandler := resourcehandler.NewVersionHandler(
		resourceuc.NewScopedCRUD[*resource.Version](versionRepo, productRepo, ticketRepo, "version", "version", txManager, log),
	)
	enumHandler := resourcehandler.NewEnumHandler(
		resourceuc.NewEnumCRUD(enumRepo, productRepo, ticketRepo, txManager, log),
	)

	var limiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	return &Router{
		engine: engine,
		routeConfig: &routes.ProductRouteConfig{
			ProductHandler:   productHandler,
			TicketHandler:    ticketHandler,
			ComponentHandler: componentHandler,
			MilestoneHandler: milestoneHandler,
			VersionHandler:   versionHandler,
			EnumHandler:      enumHandler,
		},
		cfg:         cfg,
		rateLimiter: limiter,
	}
}

// SetupRoutes configures the middleware chain and all HTTP routes.
func (r *Router) SetupRoutes() {
	log := logger.NewLogger().Named("http")

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	if r.rateLimiter != nil {
		window := time.Duration(r.cfg.RateLimit.WindowSeconds) * time.Second
		r.engine.Use(middleware.RateLimit(r.rateLimiter, r.cfg.RateLimit.Requests, window))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")
	routes.SetupProductRoutes(api, r.routeConfig)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
