package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/petitspas/backend/internal/handler"
)

// SetupRouter wires the Gin engine: cookie sessions, the public JSON
// API, and the session-gated admin API.
func SetupRouter(api *handler.API, sessionSecret, uploadDir, uploadURLPath string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("petitspas_session", store))

	// Uploaded objects are served straight from the local buckets.
	if uploadDir != "" && uploadURLPath != "" {
		r.Static(uploadURLPath, uploadDir)
	}

	r.GET("/healthz", api.HealthCheck)

	// Public, read-only API consumed by the site pages plus the
	// checkout entry point.
	public := r.Group("/api")
	{
		public.GET("/content", api.PublicContent)
		public.GET("/media", api.PublicMedia)
		public.GET("/children", api.PublicChildren)
		public.GET("/stories", api.PublicStories)
		public.POST("/checkout", api.CreateCheckout)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/register", api.Register)
		admin.GET("/logout", api.Logout)
		admin.GET("/api/session", api.Session)

		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/stats", api.Stats)

			auth.GET("/content", api.ListContent)
			auth.PUT("/content/:key", api.UpdateContent)

			auth.GET("/media", api.ListMedia)
			auth.POST("/media", api.UploadMedia)
			auth.DELETE("/media/:id", api.DeleteMedia)
			auth.PUT("/media/:id/caption", api.UpdateMediaCaption)

			auth.GET("/children", api.ListChildren)
			auth.POST("/children", api.CreateChild)
			auth.PUT("/children/:id", api.UpdateChild)
			auth.DELETE("/children/:id", api.DeleteChild)
			auth.POST("/children/photo", api.UploadChildPhoto)

			auth.GET("/stories", api.ListStories)
			auth.POST("/stories", api.CreateStory)
			auth.PUT("/stories/:id", api.UpdateStory)
			auth.DELETE("/stories/:id", api.DeleteStory)
		}
	}

	return r
}
