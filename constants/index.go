package constants

import "time"

// Loại vé cố định, mỗi event có đúng một Ticket cho từng loại
const (
	TICKET_VIP     = "VIP"
	TICKET_PREMIUM = "Premium"
	TICKET_REGULAR = "Regular"
)

var TicketTypes = []string{TICKET_VIP, TICKET_PREMIUM, TICKET_REGULAR}

// Số lượng vé khởi tạo cho từng loại
var TicketNumbers = map[string]int{
	TICKET_VIP:     10,
	TICKET_PREMIUM: 50,
	TICKET_REGULAR: 100,
}

// Trạng thái reservation
const (
	ReservationActive  = "ACTIVE"
	ReservationPaid    = "PAID"
	ReservationExpired = "EXPIRED"
)

// Giữ chỗ mặc định 15 phút
const DefaultHoldWindow = 15 * time.Minute

// Marker hiển thị thời gian còn lại
const (
	RemainingExpired = "Expired"
	RemainingPaid    = "N/A"
)

var SupportedCurrencies = []string{"EUR", "PLN"}

const (
	ERROR_INTERNAL_ERROR     = "ERROR_INTERNAL_ERROR"
	DATA_INPUT_IS_NOT_NUMBER = "DATA_INPUT_IS_NOT_NUMBER"
	MISSING_LOGIN_INPUT      = "MISSING_LOGIN_INPUT"
	INVALID_USERNAME         = "INVALID_USERNAME"
	INVALID_PASSWORD         = "INVALID_PASSWORD"
	USERNAME_ALREADY_EXISTS  = "USERNAME_ALREADY_EXISTS"

	EVENT_NOT_FOUND          = "EVENT_NOT_FOUND"
	RESERVATION_NOT_FOUND    = "RESERVATION_NOT_FOUND"
	INVALID_TICKET_TYPE      = "INVALID_TICKET_TYPE"
	TICKETS_SOLD_OUT         = "TICKETS_SOLD_OUT"
	RESERVATION_EXPIRED      = "RESERVATION_EXPIRED"
	RESERVATION_ALREADY_PAID = "RESERVATION_ALREADY_PAID"
	RESERVATION_CONFLICT     = "RESERVATION_CONFLICT"
	PAYMENT_DECLINED         = "PAYMENT_DECLINED"
	PAYMENT_FAILED           = "PAYMENT_FAILED"
	CURRENCY_NOT_SUPPORTED   = "CURRENCY_NOT_SUPPORTED"
)
