package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"weddy/internal/api/controllers"
	"weddy/pkg/middleware"
	"weddy/pkg/utils"
)

type routeControllers struct {
	catalog    *controllers.CatalogController
	wizard     *controllers.WizardController
	search     *controllers.SearchController
	selections *controllers.SelectionController
	places     *controllers.PlaceController
	events     *controllers.EventController
}

func ProvideRouter(
	db *gorm.DB,
	issuer *utils.TokenIssuer,
	catalogController *controllers.CatalogController,
	wizardController *controllers.WizardController,
	searchController *controllers.SearchController,
	selectionController *controllers.SelectionController,
	placeController *controllers.PlaceController,
	eventController *controllers.EventController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/healthz", healthz(db))

	RegisterRoutes(r, issuer, routeControllers{
		catalog:    catalogController,
		wizard:     wizardController,
		search:     searchController,
		selections: selectionController,
		places:     placeController,
		events:     eventController,
	})
	return r
}

func RegisterRoutes(r *gin.Engine, issuer *utils.TokenIssuer, c routeControllers) {
	api := r.Group("/api/v1", middleware.JWTAuthMiddleware(issuer))

	api.GET("/categories", c.catalog.ListCategories)
	api.GET("/regions", c.catalog.ListRegions)

	wizardGroup := api.Group("/wizard")
	wizardGroup.POST("", c.wizard.Start)
	wizardGroup.GET("/:id", c.wizard.Get)
	wizardGroup.POST("/:id/answer", c.wizard.Answer)
	wizardGroup.POST("/:id/skip", c.wizard.Skip)
	wizardGroup.POST("/:id/back", c.wizard.Back)
	wizardGroup.POST("/:id/goto", c.wizard.GoTo)
	wizardGroup.GET("/:id/request", c.wizard.Build)
	wizardGroup.POST("/:id/search", c.wizard.Search)

	api.POST("/search", c.search.Search)
	api.POST("/detail", c.search.Detail)
	api.GET("/enrichment", c.search.Enrichment)

	selectionGroup := api.Group("/selections")
	selectionGroup.GET("", c.selections.ListSelections)
	selectionGroup.POST("", c.selections.AddSelection)
	selectionGroup.PATCH("/:id", c.selections.UpdateSelection)
	selectionGroup.POST("/:id/confirm", c.selections.ToggleConfirmed)
	selectionGroup.DELETE("/:id", c.selections.RemoveSelection)

	api.GET("/places", c.places.ListPlaces)
	api.GET("/places/:id", c.places.GetPlace)
	api.GET("/featured", c.places.ListFeatured)

	eventGroup := api.Group("/events")
	eventGroup.GET("", c.events.ListEvents)
	eventGroup.POST("", c.events.AppendEvent)

	admin := api.Group("/admin", middleware.RoleMiddleware(middleware.RoleAdmin))
	admin.POST("/places", c.places.CreatePlace)
	admin.PUT("/places/:id", c.places.UpdatePlace)
	admin.DELETE("/places/:id", c.places.DeletePlace)
	admin.PUT("/featured/:slot", c.places.SetFeaturedSlot)
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			utils.RespondError(c, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	}
}
