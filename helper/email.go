package helper

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"

	"reservation_manager/utils"

	"gopkg.in/gomail.v2"
)

type ReceiptEmailData struct {
	ReservationId string
	EventName     string
	TicketType    string
	Amount        int64
	Currency      string
}

// Gửi email biên nhận sau khi thanh toán thành công, chạy async từ handler
func SendReceiptEmail(to string, data ReceiptEmailData) {
	tmplPath := "templates/reservation_receipt.html"
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("Lỗi load template: %v", err)
		return
	}

	var htmlBody bytes.Buffer
	if err := tmpl.Execute(&htmlBody, data); err != nil {
		log.Printf("Lỗi render template: %v", err)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "TicketHub <tickets@tickethub.example>")
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Biên nhận đặt vé - Mã: "+data.ReservationId)
	m.SetBody("text/html", htmlBody.String())

	// QR chứa mã reservation để check-in tại cổng
	qrBytes, err := utils.GenerateQRCode(data.ReservationId, 400)
	if err != nil {
		log.Printf("Lỗi tạo QR: %v", err)
	} else {
		m.Embed("qr_checkin.png",
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<qr_checkin_code>"},
				"Content-Disposition": {"inline"},
			}),
		)
	}

	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), 587, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Lỗi gửi email: %v", err)
	} else {
		log.Printf("Email biên nhận + QR đã gửi đến %s", to)
	}
}
