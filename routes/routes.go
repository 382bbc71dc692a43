package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nexus-storefront/cart"
	"nexus-storefront/config"
	"nexus-storefront/controllers"
	"nexus-storefront/middleware"
	"nexus-storefront/models"
	"nexus-storefront/repositories"
	"nexus-storefront/services"
)

func SetupRoutes(router *gin.Engine) {
	client := repositories.NewAPIClient()
	itemRepo := repositories.NewItemRepository(client)
	orderRepo := repositories.NewOrderRepository(client)

	var persister cart.Persister
	if models.RedisClient != nil {
		persister = repositories.NewCartRepository(models.RedisClient, config.AppConfig.CartTTL)
	}
	carts := cart.NewManager(persister)

	catalogSvc := services.NewCatalogService(itemRepo, config.AppConfig.CatalogTTL)
	checkoutSvc := services.NewCheckoutService(orderRepo)

	authCtrl := &controllers.AuthController{}
	itemCtrl := &controllers.ItemController{Catalog: catalogSvc}
	cartCtrl := &controllers.CartController{Carts: carts, Checkout: checkoutSvc}
	orderCtrl := &controllers.OrderController{Orders: orderRepo}
	adminCtrl := &controllers.AdminController{Items: itemRepo, Catalog: catalogSvc}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/items", itemCtrl.GetItems)

	router.GET("/auth/session", authCtrl.GetSession)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware())
	{
		session.GET("/cart", cartCtrl.GetCart)
		session.DELETE("/cart", cartCtrl.ClearCart)
		session.POST("/cart/items", cartCtrl.AddItem)
		session.POST("/cart/items/:id/increase", cartCtrl.IncreaseQuantity)
		session.POST("/cart/items/:id/decrease", cartCtrl.DecreaseQuantity)
		session.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		session.POST("/cart/checkout", cartCtrl.CheckoutCart)

		session.GET("/orders", orderCtrl.GetOrders)
		session.GET("/orders/:id", orderCtrl.GetOrderByID)
		session.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AdminGateMiddleware())
	{
		admin.POST("/items", adminCtrl.AddItem)
		admin.PATCH("/items", adminCtrl.UpdateItem)
	}
}
