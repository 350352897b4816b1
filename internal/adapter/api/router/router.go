package router

import (
	"github.com/labstack/echo/v4"

	"mediavault/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupMediaRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
