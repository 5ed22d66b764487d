package router

import (
	"github.com/DadoBotGaming/voluntary-association/internal/config"
	"github.com/DadoBotGaming/voluntary-association/internal/handler"
	"github.com/DadoBotGaming/voluntary-association/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the full API surface.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")
	api.Use(middleware.Audit(db))

	cookie := cfg.Session.CookieName
	loginRequired := middleware.RequireLogin(db, cookie)
	adminRequired := middleware.RequireAdmin(db, cookie)

	authHandler := handler.NewAuthHandler(db, cfg)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/check_session", authHandler.CheckSession)

	familyHandler := handler.NewFamilyHandler(db)
	api.POST("/famiglie", loginRequired, familyHandler.Create)
	api.GET("/famiglie", loginRequired, familyHandler.List)
	api.GET("/famiglie/:id", loginRequired, familyHandler.Get)
	api.PUT("/famiglie/:id", loginRequired, familyHandler.Update)
	api.DELETE("/famiglie/:id", adminRequired, familyHandler.Delete)

	productHandler := handler.NewProductHandler(db)
	api.POST("/prodotti", adminRequired, productHandler.Create)
	api.GET("/prodotti", loginRequired, productHandler.List)

	inventoryHandler := handler.NewInventoryHandler(db)
	api.POST("/inventario", adminRequired, inventoryHandler.CreateEntry)
	api.GET("/inventario", loginRequired, inventoryHandler.List)
	api.PUT("/inventario/:id", adminRequired, inventoryHandler.UpdateEntry)
	api.DELETE("/inventario/:id", adminRequired, inventoryHandler.DeleteEntry)
	api.POST("/inventario/carichi", adminRequired, inventoryHandler.CreateLoad)
	api.GET("/inventario/export", adminRequired, inventoryHandler.Export)

	projectHandler := handler.NewProjectHandler(db)
	api.POST("/progetti", adminRequired, projectHandler.Create)
	api.GET("/progetti", projectHandler.List) // public

	activityHandler := handler.NewActivityHandler(db)
	api.POST("/attivita", adminRequired, activityHandler.Create)
	api.GET("/attivita", activityHandler.List) // public

	newsHandler := handler.NewNewsHandler(db, cfg.App.NewsPageSize)
	api.POST("/notizie", adminRequired, newsHandler.Create)
	api.GET("/notizie", newsHandler.List)    // public
	api.GET("/notizie/:id", newsHandler.Get) // public

	distributionHandler := handler.NewDistributionHandler(db)
	api.POST("/distribuzioni", loginRequired, distributionHandler.Create)
	api.GET("/distribuzioni", loginRequired, distributionHandler.List)

	appointmentHandler := handler.NewAppointmentHandler(db)
	api.POST("/appuntamenti", loginRequired, appointmentHandler.Create)
	api.GET("/appuntamenti", loginRequired, appointmentHandler.List)

	return r
}
