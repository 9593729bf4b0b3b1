package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/ns-platform/notification-service/internal/api/handlers/notification"
	"github.com/ns-platform/notification-service/internal/middlewares"
)

func New(handler *notification.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health", handler.Health)

	api := e.Group("/api")
	{
		api.POST("/notifications", handler.Create)
		api.GET("/users/:id/notifications", handler.ListByUser)
	}

	return e
}
