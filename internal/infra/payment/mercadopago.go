package payment

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type CheckoutRequest struct {
	BookingID   uint
	Title       string
	Amount      float64
	PayerEmail  string
	ExternalRef string
}

type CheckoutLink struct {
	PreferenceID string `json:"preference_id"`
	URL          string `json:"checkout_url"`
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error)
}

type MercadoPago struct {
	client   preference.Client
	currency string
}

func NewMercadoPago(accessToken, currency string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		client:   preference.NewClient(cfg),
		currency: currency,
	}, nil
}

func (m *MercadoPago) CreateCheckout(
	ctx context.Context,
	req CheckoutRequest,
) (*CheckoutLink, error) {

	res, err := m.client.Create(ctx, preference.Request{
		ExternalReference: req.ExternalRef,
		Payer: &preference.PayerRequest{
			Email: req.PayerEmail,
		},
		Items: []preference.ItemRequest{
			{
				ID:         fmt.Sprintf("booking-%d", req.BookingID),
				Title:      req.Title,
				Quantity:   1,
				UnitPrice:  req.Amount,
				CurrencyID: m.currency,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago preference: %w", err)
	}

	return &CheckoutLink{
		PreferenceID: res.ID,
		URL:          res.InitPoint,
	}, nil
}
