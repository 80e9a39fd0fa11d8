package handler

import (
	"errors"
	"time"

	"reservation_manager/constants"
	"reservation_manager/database"
	"reservation_manager/model"
	"reservation_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateEventInput)

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_DATE", err)
	}

	var newEvent model.Event
	copier.Copy(&newEvent, &input)
	newEvent.Date = date
	newEvent.Slug = slug.Make(input.Name)

	// Tạo đúng một Ticket cho từng loại vé ngay lúc tạo event, về sau không thêm bớt
	for _, ticketType := range constants.TicketTypes {
		newEvent.Tickets = append(newEvent.Tickets, model.Ticket{
			TicketType:      ticketType,
			NumberAvailable: constants.TicketNumbers[ticketType],
			Capacity:        constants.TicketNumbers[ticketType],
		})
	}

	if err := database.DB.Create(&newEvent).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newEvent)
}

func GetEvents(c *fiber.Ctx) error {
	var events []model.Event
	if err := database.DB.
		Preload("Tickets").
		Order("date asc").
		Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"events": events})
}

func GetEventById(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var event model.Event
	if err := database.DB.Preload("Tickets").First(&event, "id = ?", eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func GetEventBySlug(c *fiber.Ctx) error {
	eventSlug := c.Params("slug")

	var event model.Event
	if err := database.DB.Preload("Tickets").Where("slug = ?", eventSlug).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}
