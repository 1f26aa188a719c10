package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrCurrencyMismatch is returned when the items of one bill would be
// priced in more than one currency. The affected campaign's aggregation
// fails cleanly; nothing is stamped or persisted for it.
var ErrCurrencyMismatch = errors.New("bill items priced in different currencies")

// Money is an amount in integer minor units (cents) of a currency.
type Money struct {
	Amount   int64
	Currency string
}

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// BillItem charges one ContentRequest. Items belong exclusively to their
// bill.
type BillItem struct {
	ID               int64
	BillID           int64
	ContentRequestID int64
	Price            Money
}

// Bill is the itemized invoice produced by one aggregation run for one
// campaign. The total is derived from the items and is never settable on
// its own. Bills are immutable once assembled.
type Bill struct {
	ID         int64
	CampaignID int64
	Interval   PaymentInterval
	Items      []BillItem
	Total      Money
	CreatedAt  time.Time
}

// PriceFunc determines the charge for a single served impression. Pricing
// is an external collaborator; the assembly only requires that all prices
// for one bill share a currency.
type PriceFunc func(ContentRequest) (Money, error)

// AssembleBill prices every request and builds the campaign's bill in one
// shot: one item per request, total equal to the sum of item prices. It
// returns nil with no error when there is nothing to bill, and
// ErrCurrencyMismatch when the prices do not share a single currency.
func AssembleBill(campaign Campaign, requests []ContentRequest, price PriceFunc) (*Bill, error) {
	if len(requests) == 0 {
		return nil, nil
	}
	bill := &Bill{
		CampaignID: campaign.ID,
		Interval:   campaign.Interval,
		Items:      make([]BillItem, 0, len(requests)),
	}
	for i, req := range requests {
		p, err := price(req)
		if err != nil {
			return nil, fmt.Errorf("price request %d: %w", req.ID, err)
		}
		if i == 0 {
			bill.Total = Money{Currency: p.Currency}
		}
		if bill.Total, err = bill.Total.Add(p); err != nil {
			return nil, err
		}
		bill.Items = append(bill.Items, BillItem{
			ContentRequestID: req.ID,
			Price:            p,
		})
	}
	return bill, nil
}
