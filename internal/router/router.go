package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	InitEvent(c *ginext.Context)
	Reserve(c *ginext.Context)
	Release(c *ginext.Context)
	Confirm(c *ginext.Context)
	Cancel(c *ginext.Context)
	Status(c *ginext.Context)
	Watch(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/events/:id/init", h.InitEvent)
		api.POST("/events/:id/reserve", h.Reserve)
		api.POST("/events/:id/release", h.Release)
		api.POST("/events/:id/confirm", h.Confirm)
		api.POST("/events/:id/cancel", h.Cancel)
		api.GET("/events/:id/status", h.Status)
		api.GET("/events/:id/ws", h.Watch)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
