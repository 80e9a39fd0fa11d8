package utils

import qrcode "github.com/skip2/go-qrcode"

// Sinh QR code PNG cho mã reservation, nhúng vào email biên nhận
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
