package usecase

import (
	"context"

	"adrelay/internal/core/domain"
)

// FixedPricer charges a flat configured rate per served impression. It is
// the default port.Pricer; deployments with a real rating system replace it.
type FixedPricer struct {
	price domain.Money
}

// NewFixedPricer creates a pricer charging amount minor units of currency
// per impression.
func NewFixedPricer(amount int64, currency string) *FixedPricer {
	return &FixedPricer{price: domain.Money{Amount: amount, Currency: currency}}
}

func (p *FixedPricer) PriceFor(_ context.Context, _ domain.ContentRequest) (domain.Money, error) {
	return p.price, nil
}
