package utils

import "strings"

// Loại vé nhập từ client không phân biệt hoa thường
func ValidTicketType(ticketType string, ticketTypes []string) bool {
	for _, t := range ticketTypes {
		if strings.EqualFold(t, ticketType) {
			return true
		}
	}
	return false
}

// Chuẩn hoá về dạng lưu trong DB: "vip" -> "VIP", "premium" -> "Premium"
func ConvertTicketType(ticketType string) string {
	lower := strings.ToLower(ticketType)
	if lower == "vip" {
		return "VIP"
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
