package model

type User struct {
	DTO
	Username string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:200;not null" json:"-"`

	Reservations []Reservation `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
