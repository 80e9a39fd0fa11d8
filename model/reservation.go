package model

import "time"

type Reservation struct {
	Id         string     `gorm:"primaryKey;size:50" json:"id"`
	UserId     uint       `gorm:"not null;index" json:"userId"`
	EventId    uint       `gorm:"not null;index" json:"eventId"`
	TicketType string     `gorm:"size:10;not null;index" json:"ticketType"`
	ExpireAt   time.Time  `gorm:"not null" json:"-"`
	Paid       bool       `gorm:"not null" json:"paid"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`
	Status     string     `gorm:"size:10;not null;index" json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`

	User  User  `gorm:"foreignKey:UserId" json:"-"`
	Event Event `gorm:"foreignKey:EventId" json:"-"`
}

type CreateReservationInput struct {
	EventId    uint   `json:"eventId" validate:"required,gt=0"`
	TicketType string `json:"ticketType" validate:"required"`
}

type PayReservationInput struct {
	Token    string `json:"token" validate:"required"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required,len=3"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// View trả về cho client, remaining time tính lại mỗi lần đọc
type ReservationView struct {
	Id            string `json:"id"`
	EventId       uint   `json:"eventId"`
	TicketType    string `json:"ticketType"`
	Status        string `json:"status"`
	Paid          bool   `json:"paid"`
	RemainingTime string `json:"remainingTime"`
}

type Receipt struct {
	ReservationId string `json:"reservationId"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
}
