package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)

	CreateCard(c *ginext.Context)
	ListCards(c *ginext.Context)
	GetCard(c *ginext.Context)
	UpdateCard(c *ginext.Context)
	DeleteCard(c *ginext.Context)

	CreateCompanion(c *ginext.Context)
	ListCompanions(c *ginext.Context)
	GetCompanion(c *ginext.Context)
	UpdateCompanion(c *ginext.Context)
	DeleteCompanion(c *ginext.Context)

	BookTicket(c *ginext.Context)
	ListTickets(c *ginext.Context)
	GetTicket(c *ginext.Context)
	CancelTicket(c *ginext.Context)

	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
}

// InitRouter wires the route table. Everything touching owned resources
// sits behind the auth middleware; registration, login and the event
// catalogue are public.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
	}

	private := api.Group("")
	private.Use(auth)
	{
		private.POST("/events", h.CreateEvent)

		private.POST("/cards", h.CreateCard)
		private.GET("/cards", h.ListCards)
		private.GET("/cards/:id", h.GetCard)
		private.PUT("/cards/:id", h.UpdateCard)
		private.DELETE("/cards/:id", h.DeleteCard)

		private.POST("/companions", h.CreateCompanion)
		private.GET("/companions", h.ListCompanions)
		private.GET("/companions/:id", h.GetCompanion)
		private.PUT("/companions/:id", h.UpdateCompanion)
		private.DELETE("/companions/:id", h.DeleteCompanion)

		private.POST("/tickets", h.BookTicket)
		private.GET("/tickets", h.ListTickets)
		private.GET("/tickets/:id", h.GetTicket)
		private.DELETE("/tickets/:id", h.CancelTicket)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
