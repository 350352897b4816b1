package router

import (
	"github.com/labstack/echo/v4"

	"mediavault/internal/adapter/api/handler"
	"mediavault/internal/adapter/api/middleware"
)

func SetupMediaRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	mediaHandler := handler.GetMediaHandler()

	media := e.Group("/v1/media")
	media.Use(authMiddleware.Authenticate)

	media.POST("/upload", mediaHandler.UploadMedia)
	media.GET("/list", mediaHandler.ListMedia)
	media.GET("/list/:id", mediaHandler.GetMedia)
	media.GET("/mine", mediaHandler.ListMyMedia)
	media.GET("/stream/:id", mediaHandler.StreamMedia)
	media.POST("/:id/like", mediaHandler.LikeMedia)
	media.POST("/:id/unlike", mediaHandler.UnlikeMedia)
}
