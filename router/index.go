package router

import (
	"reservation_manager/handler"
	"reservation_manager/middleware"
	"reservation_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)

	event := v1.Group("/event", logger.New())
	event.Get("/", handler.GetEvents)
	event.Get("/:eventId", validate.GetById("eventId"), handler.GetEventById)
	event.Get("/slug/:slug", handler.GetEventBySlug)
	event.Post("/", middleware.Protected(), validate.CreateEvent(), handler.CreateEvent)

	reservation := v1.Group("/reservation", logger.New())
	reservation.Post("/", middleware.Protected(), validate.CreateReservation(), handler.CreateReservation)
	reservation.Get("/:reservationId", handler.GetReservation)
	reservation.Post("/:reservationId/pay", middleware.Protected(), validate.PayReservation(), handler.PayReservation)

	statistics := v1.Group("/statistics", logger.New())
	statistics.Get("/events", handler.GetGlobalStatistics)
	statistics.Get("/event/:eventId", validate.GetById("eventId"), handler.GetEventStatistics)
	statistics.Get("/tickets/:ticketType", handler.GetTicketTypeStatistics)

	ws := v1.Group("/ws")
	ws.Get("/event/:eventId", websocket.New(handler.AvailabilityWebsocket))
}
