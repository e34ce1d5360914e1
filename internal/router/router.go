package router

import (
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/config"
	"github.com/Tiny-Clowns/FridgeNaut/internal/handler"
	"github.com/Tiny-Clowns/FridgeNaut/internal/middleware"
	"github.com/Tiny-Clowns/FridgeNaut/internal/repository"
	"github.com/Tiny-Clowns/FridgeNaut/internal/service"
	"github.com/Tiny-Clowns/FridgeNaut/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	itemRepo := repository.NewItemRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	itemSvc := service.NewItemService(itemRepo)
	ledgerSvc := service.NewLedgerService(eventRepo, itemRepo)
	alertSvc := service.NewAlertService(itemRepo)
	reportSvc := service.NewReportService(eventRepo)

	dispatcher := worker.NewDispatcher(rdb)
	recountSvc := service.NewRecountService(dispatcher, rdb, time.Duration(cfg.RecountTTLHours)*time.Hour)

	// ── Handlers ─────────────────────────────────────────────────────────────
	itemsH := handler.NewItemsHandler(itemSvc, alertSvc)
	eventsH := handler.NewEventsHandler(ledgerSvc, reportSvc)
	adminH := handler.NewAdminHandler(recountSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		items := v1.Group("/items")
		{
			items.GET("", itemsH.List)
			items.POST("", itemsH.Create)
			items.GET("/alerts", itemsH.Alerts)
			items.GET("/shopping-list/pdf", itemsH.ShoppingListPDF)
			items.GET("/since/:timestamp", itemsH.Since)
			items.GET("/:id", itemsH.Get)
			items.PUT("/:id", itemsH.Update)
			items.DELETE("/:id", itemsH.Delete)
		}

		events := v1.Group("/events")
		{
			events.POST("", eventsH.Record)
			events.GET("", eventsH.List)
			events.GET("/summary", eventsH.Summary)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/recount", adminH.Recount)
			admin.GET("/recount/:id", adminH.RecountReport)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
