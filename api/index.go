package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"nexus-storefront/config"
	"nexus-storefront/middleware"
	"nexus-storefront/models"
	"nexus-storefront/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
