package payment

import (
	"context"
	"time"
)

// Charge is an issued PIX charge: a copy-paste code plus a QR payload.
type Charge struct {
	PixCode       string
	QRCode        string
	TransactionID string
	ExpiresAt     time.Time
}

type ChargeRequest struct {
	OrderID     string
	Amount      float64
	Description string
	ExpiresIn   time.Duration
}

// Provider issues and settles PIX charges. The mock implementation stands in
// for a real payment gateway; a production provider would call the gateway's
// verify endpoint instead.
type Provider interface {
	GenerateCharge(ctx context.Context, req ChargeRequest) (*Charge, error)
	VerifyPayment(ctx context.Context, transactionID string) (bool, error)
}
