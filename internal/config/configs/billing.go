package configs

// Billing configures the periodic aggregation scheduler and the default
// impression pricing. Cron specs use the standard five-field format. The
// defaults bill each interval shortly after it rolls over.
type Billing struct {
	// ScheduleEnabled controls whether the cron scheduler is started. The
	// administrative HTTP trigger works either way.
	ScheduleEnabled bool `env:"SCHEDULE_ENABLED" envDefault:"true"`

	// MonthlyCron fires aggregation of monthly campaigns. Defaults to the
	// first of every month at 02:00.
	MonthlyCron string `env:"MONTHLY_CRON" envDefault:"0 2 1 * *"`

	// QuarterlyCron fires aggregation of quarterly campaigns. Defaults to
	// the first of January, April, July and October at 02:00.
	QuarterlyCron string `env:"QUARTERLY_CRON" envDefault:"0 2 1 1,4,7,10 *"`

	// YearlyCron fires aggregation of yearly campaigns. Defaults to the
	// first of January at 02:00.
	YearlyCron string `env:"YEARLY_CRON" envDefault:"0 2 1 1 *"`

	// ImpressionPrice is the flat charge per served impression in minor
	// currency units (cents).
	ImpressionPrice int64 `env:"IMPRESSION_PRICE" envDefault:"10"`

	// Currency is the ISO 4217 code impressions are priced in.
	Currency string `env:"CURRENCY" envDefault:"EUR"`
}
