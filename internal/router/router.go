package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	MoveReservation(c *ginext.Context)
	EditParticipants(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	CheckSlot(c *ginext.Context)
	Occupancy(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	UserStats(c *ginext.Context)
}

func InitRouter(mode string, h Handler, metricsHandler http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.POST("/reservations/:id/move", h.MoveReservation)
		api.PUT("/reservations/:id/participants", h.EditParticipants)
		api.DELETE("/reservations/:id", h.CancelReservation)

		// Slots
		api.GET("/slots/check", h.CheckSlot)
		api.GET("/occupancy", h.Occupancy)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/stats", h.UserStats)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
