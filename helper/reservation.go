package helper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"reservation_manager/config"
	"reservation_manager/constants"
	"reservation_manager/database"
	"reservation_manager/model"
	"reservation_manager/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidTicketType   = errors.New("invalid ticket type")
	ErrSoldOut             = errors.New("tickets sold out")
	ErrReservationExpired  = errors.New("reservation expired")
	ErrAlreadyPaid         = errors.New("reservation already paid")
	ErrClaimConflict       = errors.New("lost the reservation claim race")
)

// Cửa sổ giữ chỗ, mặc định 15 phút
var HoldWindow = config.ConfigMinutes("HOLD_WINDOW_MINUTES", constants.DefaultHoldWindow)

func newReservationId() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// CreateReservation trừ kho và tạo reservation ACTIVE trong cùng một transaction,
// kèm luôn bản ghi job expire để scheduler nhặt sau này.
func CreateReservation(userId uint, eventId uint, ticketType string) (*model.Reservation, error) {
	if !utils.ValidTicketType(ticketType, constants.TicketTypes) {
		return nil, ErrInvalidTicketType
	}
	ticketType = utils.ConvertTicketType(ticketType)

	db := database.DB
	var event model.Event
	if err := db.First(&event, "id = ?", eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	now := time.Now()
	reservation := model.Reservation{
		Id:         newReservationId(),
		UserId:     userId,
		EventId:    eventId,
		TicketType: ticketType,
		ExpireAt:   now.Add(HoldWindow),
		Paid:       false,
		Status:     constants.ReservationActive,
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	ok, err := DecrementAvailable(tx, eventId, ticketType)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if !ok {
		tx.Rollback()
		return nil, ErrSoldOut
	}

	if err := tx.Create(&reservation).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := ScheduleExpiration(tx, reservation.Id, reservation.ExpireAt); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	BroadcastAvailability(eventId, ticketType)
	return &reservation, nil
}

// ExpireReservation chuyển ACTIVE -> EXPIRED và trả vé về kho.
// Claim bằng update có guard nên gọi lại trên reservation đã Paid/Expired là no-op.
func ExpireReservation(reservationId string) error {
	db := database.DB

	var reservation model.Reservation
	if err := db.First(&reservation, "id = ?", reservationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		return err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	result := tx.Model(&model.Reservation{}).
		Where("id = ? AND status = ? AND expire_at <= ?",
			reservationId, constants.ReservationActive, time.Now()).
		Update("status", constants.ReservationExpired)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Đã Paid hoặc đã Expired trước đó
		tx.Rollback()
		return nil
	}

	if err := IncrementAvailable(tx, reservation.EventId, reservation.TicketType); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	BroadcastAvailability(reservation.EventId, reservation.TicketType)
	return nil
}

// Pay gọi gateway trước rồi mới claim ACTIVE -> PAID, gateway lỗi thì state giữ nguyên.
// Claim thua race với scheduler thì trả ErrClaimConflict, đúng một bên thắng.
func Pay(reservationId string, token string, amount int64, currency string) (*model.Receipt, error) {
	db := database.DB

	var reservation model.Reservation
	if err := db.First(&reservation, "id = ?", reservationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	switch reservation.Status {
	case constants.ReservationPaid:
		return nil, ErrAlreadyPaid
	case constants.ReservationExpired:
		return nil, ErrReservationExpired
	}

	if !time.Now().Before(reservation.ExpireAt) {
		// Quá hạn nhưng job chưa chạy: tự expire luôn, không chạm gateway
		if err := ExpireReservation(reservationId); err != nil {
			return nil, err
		}
		return nil, ErrReservationExpired
	}

	result, err := Gateway.Charge(context.Background(), amount, token, currency)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	claim := db.Model(&model.Reservation{}).
		Where("id = ? AND status = ? AND expire_at > ?",
			reservationId, constants.ReservationActive, now).
		Updates(map[string]any{
			"status":  constants.ReservationPaid,
			"paid":    true,
			"paid_at": now,
		})
	if claim.Error != nil {
		return nil, claim.Error
	}
	if claim.RowsAffected == 0 {
		return nil, ErrClaimConflict
	}

	return &model.Receipt{
		ReservationId: reservationId,
		Amount:        result.Amount,
		Currency:      result.Currency,
	}, nil
}

// GetReservation trả view kèm countdown. Đọc qua mốc hết hạn thì tự persist
// trạng thái EXPIRED một lần (self-heal cho record cũ sau restart).
func GetReservation(reservationId string) (*model.ReservationView, error) {
	db := database.DB

	var reservation model.Reservation
	if err := db.First(&reservation, "id = ?", reservationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	now := time.Now()
	if reservation.Status == constants.ReservationActive && !now.Before(reservation.ExpireAt) {
		if err := ExpireReservation(reservationId); err != nil {
			return nil, err
		}
		reservation.Status = constants.ReservationExpired
	}

	return &model.ReservationView{
		Id:            reservation.Id,
		EventId:       reservation.EventId,
		TicketType:    reservation.TicketType,
		Status:        reservation.Status,
		Paid:          reservation.Paid,
		RemainingTime: RemainingTime(&reservation, now),
	}, nil
}

// RemainingTime format HH:MM:SS, "Expired" khi quá hạn, "N/A" khi đã thanh toán
func RemainingTime(reservation *model.Reservation, now time.Time) string {
	if reservation.Paid || reservation.Status == constants.ReservationPaid {
		return constants.RemainingPaid
	}
	if reservation.Status == constants.ReservationExpired || !now.Before(reservation.ExpireAt) {
		return constants.RemainingExpired
	}
	total := int(reservation.ExpireAt.Sub(now).Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
