package handler

import "github.com/labstack/echo/v4"

func Register(e *echo.Echo, h *FareHandler) {
	api := e.Group("/api/v1")
	api.GET("/variants", h.Variants)
	api.POST("/variants", h.Variants)
	api.GET("/variants/best", h.Best)
	api.POST("/variants/best", h.Best)
	api.GET("/compare", h.Compare)
	api.POST("/compare/options", h.CompareOptions)
	e.GET("/health", HealthHandler)
}
