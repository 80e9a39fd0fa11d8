package model

// Ticket là bản ghi tồn kho cho một loại vé của một event
type Ticket struct {
	DTO
	EventId         uint   `gorm:"not null;index:idx_event_ticket_type,unique" json:"eventId"`
	TicketType      string `gorm:"size:10;not null;index:idx_event_ticket_type,unique" json:"ticketType"`
	NumberAvailable int    `gorm:"not null;check:number_available >= 0" json:"numberAvailable"`
	Capacity        int    `gorm:"not null" json:"capacity"`

	Event Event `gorm:"foreignKey:EventId" json:"-"`
}
