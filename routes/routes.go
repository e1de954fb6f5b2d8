package routes

import (
	"net/http"

	"dukicks/config"
	"dukicks/controllers"
	"dukicks/middleware"
	"dukicks/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, catalog *services.Catalog, carts *services.CartService) {
	productCtrl := controllers.NewProductController(catalog,
		config.AppConfig.FeaturedLimit,
		config.AppConfig.SuggestionLimit,
		config.AppConfig.SearchDebounce)
	cartCtrl := controllers.NewCartController(carts)
	sessionCtrl := controllers.NewSessionController(carts)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "products": catalog.Len()})
	})

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/featured", productCtrl.GetFeatured)
	router.GET("/products/new", productCtrl.GetNew)
	router.GET("/products/price-range", productCtrl.GetPriceRange)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/categories", productCtrl.GetCategories)
	router.GET("/brands", productCtrl.GetBrands)
	router.GET("/sort-options", productCtrl.GetSortOptions)
	router.GET("/search", productCtrl.Search)
	router.GET("/search/suggestions", productCtrl.GetSuggestions)
	router.GET("/search/live", productCtrl.LiveSearch)

	router.POST("/session", sessionCtrl.CreateSession)

	cart := router.Group("/cart")
	cart.Use(middleware.SessionMiddleware())
	{
		cart.GET("", cartCtrl.GetCart)
		cart.DELETE("", cartCtrl.ClearCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateItem)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
	}
}
