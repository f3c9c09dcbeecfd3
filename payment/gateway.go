package payment

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// IntentCreator creates a payment intent with the processor and returns the
// opaque client secret the frontend needs to confirm the charge.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

// StripeGateway implements IntentCreator against the Stripe API.
type StripeGateway struct {
	client *client.API
}

func NewStripeGateway(apiKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return &StripeGateway{client: sc}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
