package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"nexus-storefront/config"
	_ "nexus-storefront/docs"
	"nexus-storefront/middleware"
	"nexus-storefront/models"
	"nexus-storefront/routes"
)

// @title Nexus Local Storefront
// @description Storefront BFF for the Nexus Local marketplace: session carts, checkout, and proxied catalog/order/admin calls.
// @version 1.0
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
