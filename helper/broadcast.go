package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

type AvailabilityUpdate struct {
	EventId         uint   `json:"eventId"`
	TicketType      string `json:"ticketType"`
	NumberAvailable int    `json:"numberAvailable"`
}

func AvailabilityChannel(eventId uint) string {
	return fmt.Sprintf("event:%d", eventId)
}

// Publish số vé còn lại lên kênh redis của event, websocket handler forward cho client
func BroadcastAvailability(eventId uint, ticketType string) {
	available, err := CurrentAvailable(eventId, ticketType)
	if err != nil {
		log.Printf("Lỗi đọc số vé còn lại event %d: %v", eventId, err)
		return
	}

	payload, _ := json.Marshal(AvailabilityUpdate{
		EventId:         eventId,
		TicketType:      ticketType,
		NumberAvailable: available,
	})
	if err := RedisClient.Publish(context.Background(), AvailabilityChannel(eventId), payload).Err(); err != nil {
		log.Printf("Lỗi publish availability event %d: %v", eventId, err)
	}
}
