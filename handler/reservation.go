package handler

import (
	"errors"

	"reservation_manager/constants"
	"reservation_manager/database"
	"reservation_manager/helper"
	"reservation_manager/model"
	"reservation_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateReservation(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateReservationInput)

	claim, err := helper.GetUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err)
	}

	reservation, err := helper.CreateReservation(claim.UserId, input.EventId, input.TicketType)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrInvalidTicketType):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TICKET_TYPE, err)
		case errors.Is(err, helper.ErrEventNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		case errors.Is(err, helper.ErrSoldOut):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKETS_SOLD_OUT, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message":     "Your reservation was successful.",
		"reservation": reservation,
	})
}

func GetReservation(c *fiber.Ctx) error {
	reservationId := c.Params("reservationId")

	view, err := helper.GetReservation(reservationId)
	if err != nil {
		if errors.Is(err, helper.ErrReservationNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RESERVATION_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, view)
}

func PayReservation(c *fiber.Ctx) error {
	reservationId := c.Params("reservationId")
	input := c.Locals("input").(model.PayReservationInput)

	receipt, err := helper.Pay(reservationId, input.Token, input.Amount, input.Currency)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrReservationNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RESERVATION_NOT_FOUND, err)
		case errors.Is(err, helper.ErrReservationExpired):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.RESERVATION_EXPIRED, err)
		case errors.Is(err, helper.ErrAlreadyPaid):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.RESERVATION_ALREADY_PAID, err)
		case errors.Is(err, helper.ErrClaimConflict):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.RESERVATION_CONFLICT, err)
		// Lỗi gateway trả nguyên văn cho user, state không bị đụng tới
		case errors.Is(err, helper.ErrCardDeclined):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_DECLINED, err)
		case errors.Is(err, helper.ErrPaymentFailed):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_FAILED, err)
		case errors.Is(err, helper.ErrCurrencyNotSupported):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CURRENCY_NOT_SUPPORTED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Gửi email biên nhận async nếu client để lại địa chỉ
	if input.Email != "" {
		var reservation model.Reservation
		if err := database.DB.Preload("Event").First(&reservation, "id = ?", reservationId).Error; err == nil {
			go helper.SendReceiptEmail(input.Email, helper.ReceiptEmailData{
				ReservationId: reservation.Id,
				EventName:     reservation.Event.Name,
				TicketType:    reservation.TicketType,
				Amount:        receipt.Amount,
				Currency:      receipt.Currency,
			})
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, receipt)
}
