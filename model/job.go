package model

import "time"

// ExpirationJob là bản ghi job bền cho scheduler, key theo reservation id.
// Job phải sống sót qua restart, payload idempotent.
type ExpirationJob struct {
	ReservationId string     `gorm:"primaryKey;size:50" json:"reservationId"`
	FiresAt       time.Time  `gorm:"not null;index" json:"firesAt"`
	Attempts      int        `gorm:"not null" json:"attempts"`
	PickedAt      *time.Time `json:"-"`
	LastError     string     `json:"-"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
