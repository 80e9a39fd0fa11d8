package model

import "time"

type Event struct {
	DTO
	Name string    `gorm:"not null" validate:"required" json:"name"`
	Slug string    `gorm:"size:120;uniqueIndex" json:"slug"`
	Date time.Time `gorm:"not null" json:"date"`
	Time string    `gorm:"size:8;not null" json:"time"`

	// Mỗi event có đúng một Ticket cho từng loại vé, tạo cùng lúc với event
	Tickets []Ticket `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE" json:"tickets"`
}

type CreateEventInput struct {
	Name string `json:"name" validate:"required,min=2"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04"`
}
