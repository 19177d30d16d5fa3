package router

import (
	"github.com/matheuseschaves/supermarket-tracker/internal/config"
	"github.com/matheuseschaves/supermarket-tracker/internal/handler"
	"github.com/matheuseschaves/supermarket-tracker/internal/middleware"
	"github.com/matheuseschaves/supermarket-tracker/internal/repository"
	"github.com/matheuseschaves/supermarket-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	categoryRepo := repository.NewCategoryRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	productRepo := repository.NewProductRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categorySvc := service.NewCategoryService(categoryRepo)
	storeSvc := service.NewStoreService(storeRepo)
	productSvc := service.NewProductService(productRepo, categoryRepo, cfg.SearchLimit)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, productRepo, storeRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	storesH := handler.NewStoresHandler(storeSvc)
	productsH := handler.NewProductsHandler(productSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	backupH := handler.NewBackupHandler(cfg.DatabasePath, cfg.BackupDir)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	v1 := r.Group("/v1")
	{
		v1.GET("/categories", categoriesH.Listar)
		v1.POST("/categories", categoriesH.Criar)

		v1.GET("/stores", storesH.Listar)

		prods := v1.Group("/products")
		{
			prods.GET("", productsH.Listar)
			prods.POST("", productsH.Criar)
			prods.GET("/search", productsH.Buscar)
			prods.GET("/:id", productsH.Obter)
			prods.PUT("/:id", productsH.Atualizar)
			prods.DELETE("/:id", productsH.Excluir)
			prods.GET("/:id/purchases/count", productsH.ContarCompras)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.GET("", purchasesH.Listar)
			purchases.POST("", purchasesH.Registrar)
			purchases.GET("/recent", purchasesH.Recentes)
		}

		v1.GET("/stats", purchasesH.Estatisticas)
		v1.GET("/history", purchasesH.Historico)
		v1.GET("/chart", purchasesH.Grafico)
		v1.GET("/payers", purchasesH.Pagadores)

		v1.GET("/backup", backupH.Listar)
		v1.POST("/backup", backupH.Criar)
	}

	return r
}
