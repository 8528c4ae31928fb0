package stripeintent

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/bistroboss/bistro-be/internal/processor"
)

var _ processor.IntentCreator = (*Client)(nil)

// Client creates card payment intents through Stripe.
type Client struct {
	api *client.API
}

// New builds a Stripe-backed intent creator from the secret key.
func New(secretKey string) *Client {
	return &Client{api: client.New(secretKey, nil)}
}

// CreateIntent creates a card payment intent for the given amount in minor
// units and returns its client secret.
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (processor.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return processor.Intent{}, fmt.Errorf("create payment intent: %w", err)
	}
	return processor.Intent{ClientSecret: pi.ClientSecret}, nil
}
