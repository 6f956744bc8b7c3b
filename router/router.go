package router

import (
	"productlib/config"
	"productlib/controllers"
	dbpkg "productlib/db"
	"productlib/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

// New builds a gin engine with every route wired.
func New(cfg config.Configuration, database *gorm.DB, log *zap.Logger) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	Initialize(r, cfg, database, log)
	return r
}

// Initialize wires all routes and middlewares.
func Initialize(r *gin.Engine, cfg config.Configuration, database *gorm.DB, log *zap.Logger) {
	h := controllers.NewHandler(cfg)

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(log))
	r.Use(Logger())
	r.Use(middleware.CORSMiddleware(cfg.CorsOrigins))

	r.GET("/", h.GetRoot)
	r.GET("/health", h.GetHealth)

	// Static assets (read-only)
	r.Static(cfg.StaticRoute(), cfg.StaticDir)

	api := r.Group("/api")
	api.Use(dbpkg.SetDBtoContext(database))

	// Catalog
	api.GET("/products", h.GetProducts)
	api.GET("/products/:id", h.GetProductByID)
	api.GET("/industries", h.GetIndustries)
	api.GET("/modules", h.GetModules)
	api.GET("/cases", h.GetCases)
	api.GET("/partners", h.GetPartners)

	// Fixed payloads
	api.GET("/banner", h.GetBanner)
	api.GET("/footer", h.GetFooter)

	// Bulk data
	api.POST("/import", h.ImportData)
	api.GET("/export", h.ExportData)

	log.Info("routes initialized")
}
