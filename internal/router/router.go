package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
	AddFeedback(c *ginext.Context)
	ListRegistrantEvents(c *ginext.Context)
	SignUp(c *ginext.Context)
	SignUpFirstAdmin(c *ginext.Context)
	Login(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		// Registration & feedback
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.POST("/events/:id/feedback", h.AddFeedback)

		// Registrant view
		api.GET("/user/events", h.ListRegistrantEvents)

		// Accounts
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.SignUp)
			auth.POST("/login", h.Login)
			auth.POST("/first-admin", h.SignUpFirstAdmin)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
