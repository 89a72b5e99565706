package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	api := app.router.Group("/api/v1")
	{
		// Page bootstrap: anti-forgery token and station directory
		api.GET("/session", app.handleGetSession)
		api.GET("/stations", app.handleGetStations)

		// Weather endpoint; nonce-guarded because it can trigger calls
		// to the rate-limited upstream API
		api.GET("/weather-station/:id", app.requireNonce(), app.handleGetWeatherStation)
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
