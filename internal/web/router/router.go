package router

import (
	"net/http"

	"github.com/cuongbtq/workopia-be/internal/web/handler"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes.
// templatesGlob points at the HTML view files.
func SetupRouter(deps *handler.Dependencies, templatesGlob string) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(SessionMiddleware(deps.Sessions))

	r.LoadHTMLGlob(templatesGlob)
	r.Static("/public", "./public")

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "workopia-web-service",
		})
	})

	listingHandler := handler.NewListingHandler(deps)
	sessionHandler := handler.NewSessionHandler(deps)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/listings")
	})

	r.GET("/login", sessionHandler.ShowLogin)
	r.POST("/login", sessionHandler.Login)
	r.POST("/logout", sessionHandler.Logout)

	listings := r.Group("/listings")
	{
		// GET /listings - all listings, newest first
		listings.GET("", listingHandler.Index)

		// GET /listings/create - empty create form (signed-in only)
		listings.GET("/create", RequireAuth(), listingHandler.New)

		// POST /listings - create a listing owned by the session user
		listings.POST("", RequireAuth(), listingHandler.Create)

		// GET /listings/:id - listing detail page
		listings.GET("/:id", listingHandler.Show)

		// GET /listings/:id/edit - edit form, owner only.
		// Existence is checked before ownership inside the handler, so
		// these three are not behind RequireAuth: a missing row must
		// 404 before any authorization response.
		listings.GET("/:id/edit", listingHandler.Edit)

		// PUT /listings/:id - update, owner only (POST + _method tunnel)
		listings.PUT("/:id", listingHandler.Update)

		// DELETE /listings/:id - delete, owner only (POST + _method tunnel)
		listings.DELETE("/:id", listingHandler.Destroy)
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Status":  http.StatusNotFound,
			"Message": "Page not found",
		})
	})

	return r
}
