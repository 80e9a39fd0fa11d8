package helper

import (
	"context"
	"errors"
	"time"

	"reservation_manager/config"
	"reservation_manager/constants"
	"reservation_manager/utils"
)

var (
	ErrCardDeclined         = errors.New("your card has been declined")
	ErrPaymentFailed        = errors.New("something went wrong with your transaction")
	ErrCurrencyNotSupported = errors.New("currency not supported")
)

type PaymentResult struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Charger interface {
	Charge(ctx context.Context, amount int64, token string, currency string) (*PaymentResult, error)
}

// SandboxGateway mô phỏng cổng thanh toán bên ngoài, token đặc biệt để test lỗi
type SandboxGateway struct {
	Timeout time.Duration
}

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{
		Timeout: config.ConfigMinutes("PAYMENT_TIMEOUT_MINUTES", time.Minute),
	}
}

func (g *SandboxGateway) Charge(ctx context.Context, amount int64, token string, currency string) (*PaymentResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	switch token {
	case "card_error":
		return nil, ErrCardDeclined
	case "payment_error":
		return nil, ErrPaymentFailed
	}
	if !utils.IsValidValueOfConstant(currency, constants.SupportedCurrencies) {
		return nil, ErrCurrencyNotSupported
	}
	return &PaymentResult{Amount: amount, Currency: currency}, nil
}

// Gateway là collaborator bên ngoài, swap được trong test
var Gateway Charger = NewSandboxGateway()
