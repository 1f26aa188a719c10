package domain

import (
	"errors"
	"time"
)

// ErrInvalidInterval is returned when an aggregation trigger names a payment
// interval outside the closed set.
var ErrInvalidInterval = errors.New("invalid payment interval")

// PaymentInterval is the billing cycle granularity configured on a campaign.
type PaymentInterval string

const (
	IntervalMonthly   PaymentInterval = "monthly"
	IntervalQuarterly PaymentInterval = "quarterly"
	IntervalYearly    PaymentInterval = "yearly"
)

func (i PaymentInterval) Valid() bool {
	switch i {
	case IntervalMonthly, IntervalQuarterly, IntervalYearly:
		return true
	}
	return false
}

// Intervals lists every payment interval, in scheduling order.
func Intervals() []PaymentInterval {
	return []PaymentInterval{IntervalMonthly, IntervalQuarterly, IntervalYearly}
}

// Campaign is an advertising campaign owning content items. The serving and
// billing core only reads campaigns; their lifecycle is managed elsewhere.
type Campaign struct {
	ID        int64
	Name      string
	Interval  PaymentInterval
	Status    string // active, paused, ended
	CreatedAt time.Time
}

const CampaignStatusActive = "active"
