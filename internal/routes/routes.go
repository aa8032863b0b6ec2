package routes

import (
	"net/http"

	"notake_backend/internal/handlers"
	"notake_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public API under /api/v1.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), h.Auth.Me)
	}

	notes := api.Group("/notes", middleware.AuthMiddleware())
	{
		notes.POST("", h.Note.Create)
		notes.GET("", h.Note.List)
		notes.GET("/:noteId", h.Note.Get)
		notes.PUT("/:noteId", h.Note.Update)
		notes.DELETE("/:noteId", h.Note.Delete)
	}

	links := api.Group("/note-links", middleware.AuthMiddleware())
	{
		links.POST("", h.NoteLink.Create)
		links.GET("", h.NoteLink.List)
		links.DELETE("/:linkId", h.NoteLink.Delete)
	}

	files := api.Group("/files")
	{
		// Profile images are public; everything else needs a token.
		files.GET("/profile/:fileName", h.File.ProfileImage)

		authed := files.Group("", middleware.AuthMiddleware())
		authed.POST("/upload", h.File.Upload)
		authed.POST("/upload-multiple", h.File.UploadMultiple)
		authed.GET("", h.File.List)
		authed.GET("/download/:fileId", h.File.Download)
		authed.DELETE("/:fileId", h.File.Delete)
	}

	profile := api.Group("/profile", middleware.AuthMiddleware())
	{
		profile.GET("", h.Profile.Get)
		profile.PUT("", h.Profile.Update)
		profile.POST("/image", h.Profile.UploadImage)
	}
}
