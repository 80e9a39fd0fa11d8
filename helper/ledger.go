package helper

import (
	"errors"

	"reservation_manager/database"
	"reservation_manager/model"

	"gorm.io/gorm"
)

// DecrementAvailable trừ một vé nếu còn hàng. Update có guard number_available > 0
// nên hai request tranh nhau vé cuối cùng chỉ có đúng một bên thành công.
func DecrementAvailable(db *gorm.DB, eventId uint, ticketType string) (bool, error) {
	result := db.Model(&model.Ticket{}).
		Where("event_id = ? AND ticket_type = ? AND number_available > 0", eventId, ticketType).
		Update("number_available", gorm.Expr("number_available - 1"))

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// IncrementAvailable trả một vé về kho, chỉ gọi khi reservation hết hạn.
// Guard theo capacity để không bao giờ vượt quá số vé cấu hình.
func IncrementAvailable(db *gorm.DB, eventId uint, ticketType string) error {
	result := db.Model(&model.Ticket{}).
		Where("event_id = ? AND ticket_type = ? AND number_available < capacity", eventId, ticketType).
		Update("number_available", gorm.Expr("number_available + 1"))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("ticket already at capacity")
	}
	return nil
}

func CurrentAvailable(eventId uint, ticketType string) (int, error) {
	var ticket model.Ticket
	if err := database.DB.
		Where("event_id = ? AND ticket_type = ?", eventId, ticketType).
		First(&ticket).Error; err != nil {
		return 0, err
	}
	return ticket.NumberAvailable, nil
}
