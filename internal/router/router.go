package router

import (
	"time"

	"github.com/engrjeff/kapenatinph/internal/config"
	"github.com/engrjeff/kapenatinph/internal/handler"
	"github.com/engrjeff/kapenatinph/internal/middleware"
	"github.com/engrjeff/kapenatinph/internal/repository"
	"github.com/engrjeff/kapenatinph/internal/service"
	"github.com/engrjeff/kapenatinph/internal/worker"

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
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	storeRepo := repository.NewStoreRepository(db)

	// Job queue — injected into services that enqueue async work
	queue := worker.NewQueue(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo, categoryRepo, rdb)
	inventorySvc := service.NewInventoryService(inventoryRepo, categoryRepo, storeRepo, queue, cfg.ReportStoragePath)
	recipeSvc := service.NewRecipeService(recipeRepo, productRepo, inventoryRepo)
	storeSvc := service.NewStoreService(storeRepo, categoryRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	recipesH := handler.NewRecipesHandler(recipeSvc)
	storeH := handler.NewStoreHandler(storeSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.AuthJWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		store := v1.Group("/store")
		{
			store.POST("/onboard", storeH.Onboard)
			store.GET("", storeH.Get)
			store.PUT("", storeH.Update)
		}

		categories := v1.Group("/categories")
		{
			categories.POST("", categoriesH.Create)
			categories.GET("", categoriesH.List)
			categories.GET("/:id", categoriesH.GetByID)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.GetByID)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.POST("", inventoryH.Create)
			inventory.GET("", inventoryH.List)
			inventory.GET("/stats", inventoryH.Stats)
			inventory.GET("/report", inventoryH.Report)
			inventory.GET("/:id", inventoryH.GetByID)
			inventory.PUT("/:id", inventoryH.Update)
			inventory.DELETE("/:id", inventoryH.Delete)
		}

		recipes := v1.Group("/recipes")
		{
			recipes.POST("", recipesH.Create)
			recipes.GET("", recipesH.List)
			recipes.GET("/by-product/:id", recipesH.ByProduct)
			recipes.GET("/by-variant/:id", recipesH.ByVariant)
			recipes.GET("/:id", recipesH.GetByID)
			recipes.PUT("/:id", recipesH.Update)
			recipes.DELETE("/:id", recipesH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
