package handler

import (
	"errors"
	"time"

	"reservation_manager/constants"
	"reservation_manager/database"
	"reservation_manager/model"
	"reservation_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Rollup chỉ đọc trên tập reservation hiện tại. Reservation ACTIVE đã quá
// expire_at được đếm là expired tại thời điểm đọc dù job chưa kịp chạy.
type TicketTypeStats struct {
	Total    int64             `json:"total"`
	Explicit TicketTypeDetails `json:"explicit"`
}

type TicketTypeDetails struct {
	Paid    int64        `json:"paid"`
	NotPaid NotPaidStats `json:"not_paid"`
}

type NotPaidStats struct {
	Expired    int64 `json:"expired"`
	NotExpired int64 `json:"not_expired"`
}

func countReservations(eventId *uint, ticketType string, now time.Time) TicketTypeStats {
	db := database.DB

	scope := func() *gorm.DB {
		q := db.Model(&model.Reservation{}).Where("ticket_type = ?", ticketType)
		if eventId != nil {
			q = q.Where("event_id = ?", *eventId)
		}
		return q
	}

	var stats TicketTypeStats
	scope().Count(&stats.Total)
	scope().Where("status = ?", constants.ReservationPaid).Count(&stats.Explicit.Paid)
	scope().Where("status = ? OR (status = ? AND expire_at <= ?)",
		constants.ReservationExpired, constants.ReservationActive, now).
		Count(&stats.Explicit.NotPaid.Expired)
	scope().Where("status = ? AND expire_at > ?", constants.ReservationActive, now).
		Count(&stats.Explicit.NotPaid.NotExpired)

	return stats
}

func buildEventStatistics(event *model.Event, now time.Time) fiber.Map {
	var total int64
	database.DB.Model(&model.Reservation{}).Where("event_id = ?", event.ID).Count(&total)

	details := fiber.Map{}
	for _, ticketType := range constants.TicketTypes {
		details[ticketType] = countReservations(&event.ID, ticketType, now)
	}

	return fiber.Map{
		"reservations": fiber.Map{
			"total":   total,
			"details": details,
		},
	}
}

func GetEventStatistics(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var event model.Event
	if err := database.DB.First(&event, "id = ?", eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, buildEventStatistics(&event, time.Now()))
}

func GetTicketTypeStatistics(c *fiber.Ctx) error {
	ticketType := c.Params("ticketType")
	if !utils.ValidTicketType(ticketType, constants.TicketTypes) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TICKET_TYPE, errors.New("unknown ticket type"))
	}
	ticketType = utils.ConvertTicketType(ticketType)

	stats := countReservations(nil, ticketType, time.Now())
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{ticketType: stats})
}

func GetGlobalStatistics(c *fiber.Ctx) error {
	var events []model.Event
	if err := database.DB.Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now()
	response := []fiber.Map{}
	for _, event := range events {
		response = append(response, fiber.Map{
			event.Name: fiber.Map{
				"id":    event.ID,
				"stats": buildEventStatistics(&event, now),
			},
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"events": response})
}
