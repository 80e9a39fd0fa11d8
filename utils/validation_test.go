package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var ticketTypes = []string{"VIP", "Premium", "Regular"}

func TestValidTicketType(t *testing.T) {
	assert.True(t, ValidTicketType("VIP", ticketTypes))
	assert.True(t, ValidTicketType("vip", ticketTypes))
	assert.True(t, ValidTicketType("PREMIUM", ticketTypes))
	assert.True(t, ValidTicketType("regular", ticketTypes))

	assert.False(t, ValidTicketType("Balcony", ticketTypes))
	assert.False(t, ValidTicketType("", ticketTypes))
}

func TestConvertTicketType(t *testing.T) {
	assert.Equal(t, "VIP", ConvertTicketType("vip"))
	assert.Equal(t, "VIP", ConvertTicketType("VIP"))
	assert.Equal(t, "Premium", ConvertTicketType("PREMIUM"))
	assert.Equal(t, "Regular", ConvertTicketType("regular"))
}
