package payment

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// MockProvider fakes a PIX gateway for development: the generated code
// follows the BR-code template shape and verification flips a weighted coin.
type MockProvider struct {
	MerchantName string
	MerchantCity string
	// PaidProbability is the chance VerifyPayment reports settlement.
	PaidProbability float64
}

func NewMockProvider(merchantName, merchantCity string) *MockProvider {
	return &MockProvider{
		MerchantName:    merchantName,
		MerchantCity:    merchantCity,
		PaidProbability: 0.7,
	}
}

func (p *MockProvider) GenerateCharge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	now := time.Now()
	pixCode := p.buildPixCode(req.Amount, now)
	return &Charge{
		PixCode:       pixCode,
		QRCode:        encodeQRCode(pixCode),
		TransactionID: fmt.Sprintf("txn_%d_%s", now.UnixNano(), randomID(8)),
		ExpiresAt:     now.Add(req.ExpiresIn),
	}, nil
}

// VerifyPayment pretends to poll the gateway. Real providers replace the coin
// flip; the expiry handling stays with the caller.
func (p *MockProvider) VerifyPayment(ctx context.Context, transactionID string) (bool, error) {
	return rand.Float64() < p.PaidProbability, nil
}

func (p *MockProvider) buildPixCode(amount float64, now time.Time) string {
	ts := fmt.Sprintf("%d", now.UnixMilli())
	return fmt.Sprintf(
		"00020126580014br.gov.bcb.pix0136%s520400005303986540%.2f5802BR5913%s6008%s62070503***6304%s",
		randomID(13), amount, p.MerchantName, p.MerchantCity, ts[len(ts)-4:],
	)
}

func encodeQRCode(pixCode string) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(pixCode))
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomID(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return b.String()
}
