package database

import (
	"log"
	"time"

	"reservation_manager/constants"
	"reservation_manager/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456cn"
	}
	users := []model.User{
		{Username: "Administration", Password: HashPassword},
	}

	for _, user := range users {
		if err := db.Where(model.User{Username: user.Username}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed data for user:", user.Username, "error:", err)
		}
	}

	events := []model.Event{
		{Name: "Summer Music Festival", Date: parseDate("2026-09-12"), Time: "19:00"},
		{Name: "Tech Conference Warsaw", Date: parseDate("2026-10-03"), Time: "09:30"},
	}

	for _, event := range events {
		event.Slug = slug.Make(event.Name)
		// Tạo luôn một Ticket cho từng loại vé khi tạo event
		for _, ticketType := range constants.TicketTypes {
			event.Tickets = append(event.Tickets, model.Ticket{
				TicketType:      ticketType,
				NumberAvailable: constants.TicketNumbers[ticketType],
				Capacity:        constants.TicketNumbers[ticketType],
			})
		}
		if err := db.Where(model.Event{Slug: event.Slug}).FirstOrCreate(&event).Error; err != nil {
			log.Println("failed to seed data for event:", event.Name, "error:", err)
		}
	}
}
