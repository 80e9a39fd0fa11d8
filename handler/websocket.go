package handler

import (
	"context"
	"log"
	"strconv"
	"sync"

	"reservation_manager/database"
	"reservation_manager/helper"
	"reservation_manager/model"

	"github.com/gofiber/contrib/websocket"
)

var (
	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

// WS theo dõi số vé còn lại của một event, dữ liệu đẩy qua kênh redis
func AvailabilityWebsocket(c *websocket.Conn) {
	eventIdStr := c.Params("eventId")
	id64, err := strconv.ParseUint(eventIdStr, 10, 64)
	if err != nil {
		log.Printf("Invalid eventId: %s", eventIdStr)
		c.Close()
		return
	}
	eventId := uint(id64)

	defer func() {
		mu.Lock()
		if clients[eventId] != nil {
			delete(clients[eventId], c)
			if len(clients[eventId]) == 0 {
				delete(clients, eventId)
			}
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[eventId] == nil {
		clients[eventId] = make(map[*websocket.Conn]bool)
	}
	clients[eventId][c] = true
	mu.Unlock()

	// Gửi snapshot hiện tại cho client mới connect
	var tickets []model.Ticket
	if err := database.DB.Where("event_id = ?", eventId).Find(&tickets).Error; err == nil {
		c.WriteJSON(tickets)
	}

	pubsub := helper.RedisClient.Subscribe(
		context.Background(),
		helper.AvailabilityChannel(eventId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[eventId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[eventId], conn)
			}
		}
		mu.Unlock()
	}
}
