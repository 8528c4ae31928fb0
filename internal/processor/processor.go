package processor

import "context"

// Intent is the subset of a processor payment intent the frontend needs to
// confirm a card payment.
type Intent struct {
	ClientSecret string
}

// IntentCreator creates payment intents with the external processor. Amounts
// are in minor units (cents for USD).
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (Intent, error)
}
