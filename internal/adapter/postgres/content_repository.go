package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adrelay/internal/core/domain"
)

// ContentRepository implements port.ContentRepository and
// port.BillingRepository using pgxpool for PostgreSQL.
type ContentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository returns a new repository instance.
func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

// FindContentByFormat returns the active catalog entries in the given format.
func (r *ContentRepository) FindContentByFormat(ctx context.Context, format domain.ContentFormat) ([]domain.Content, error) {
	query := `
        SELECT
            ct.id,
            ct.campaign_id,
            ct.format,
            ct.content_type,
            ct.value,
            ct.criteria,
            ct.created_at
        FROM content ct
        JOIN campaigns c ON ct.campaign_id = c.id
        WHERE c.status = 'active'
          AND ct.format = $1`
	rows, err := r.pool.Query(ctx, query, string(format))
	if err != nil {
		return nil, err
	}
	type rawContent struct {
		Content     domain.Content
		CriteriaRaw []byte
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rawContent, error) {
		var rc rawContent
		err := row.Scan(
			&rc.Content.ID,
			&rc.Content.CampaignID,
			&rc.Content.Format,
			&rc.Content.Type,
			&rc.Content.Value,
			&rc.CriteriaRaw,
			&rc.Content.CreatedAt,
		)
		return rc, err
	})
	if err != nil {
		return nil, err
	}
	content := make([]domain.Content, 0, len(raw))
	for _, rc := range raw {
		if err = json.Unmarshal(rc.CriteriaRaw, &rc.Content.Criteria); err != nil {
			// skip malformed criteria
			continue
		}
		content = append(content, rc.Content)
	}
	return content, nil
}

// CreateContentRequest inserts the impression record and fills in its id
// and creation timestamp.
func (r *ContentRepository) CreateContentRequest(ctx context.Context, req *domain.ContentRequest) error {
	req.CreatedAt = time.Now().UTC()
	return r.pool.QueryRow(ctx,
		`INSERT INTO content_requests (token, content_id, campaign_id, source, created_at)
         VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		req.Token, req.ContentID, req.CampaignID, req.Source, req.CreatedAt,
	).Scan(&req.ID)
}

// CampaignsWithInterval returns the active campaigns billed on the interval.
func (r *ContentRepository) CampaignsWithInterval(ctx context.Context, interval domain.PaymentInterval) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, payment_interval, status, created_at
         FROM campaigns
         WHERE payment_interval = $1 AND status = 'active'
         ORDER BY id`,
		string(interval))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Name, &c.Interval, &c.Status, &c.CreatedAt)
		return c, err
	})
}

// AggregateCampaign selects the campaign's unbilled requests created before
// cutoff, assembles their bill and stamps them, all in one serializable
// transaction. The campaign row is locked FOR UPDATE first, which serializes
// concurrent aggregation runs over the same campaign. It returns nil when
// nothing is eligible, so re-running a fully billed interval is a no-op.
func (r *ContentRepository) AggregateCampaign(ctx context.Context, campaign domain.Campaign, cutoff time.Time, price domain.PriceFunc) (bill *domain.Bill, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// lock campaign
	var campaignID int64
	err = tx.QueryRow(ctx, `SELECT id FROM campaigns WHERE id = $1 FOR UPDATE`, campaign.ID).Scan(&campaignID)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx,
		`SELECT id, token, content_id, campaign_id, source, bill_id, created_at
         FROM content_requests
         WHERE campaign_id = $1 AND bill_id IS NULL AND created_at < $2
         ORDER BY id
         FOR UPDATE`,
		campaign.ID, cutoff)
	if err != nil {
		return nil, err
	}
	requests, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ContentRequest, error) {
		var req domain.ContentRequest
		err := row.Scan(&req.ID, &req.Token, &req.ContentID, &req.CampaignID, &req.Source, &req.BillID, &req.CreatedAt)
		return req, err
	})
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, nil
	}

	bill, err = domain.AssembleBill(campaign, requests, price)
	if err != nil {
		return nil, err
	}
	bill.CreatedAt = time.Now().UTC()
	err = tx.QueryRow(ctx,
		`INSERT INTO bills (campaign_id, payment_interval, total_amount, currency, created_at)
         VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		bill.CampaignID, string(bill.Interval), bill.Total.Amount, bill.Total.Currency, bill.CreatedAt,
	).Scan(&bill.ID)
	if err != nil {
		return nil, err
	}

	requestIDs := make([]int64, 0, len(requests))
	for i := range bill.Items {
		item := &bill.Items[i]
		item.BillID = bill.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO bill_items (bill_id, content_request_id, amount, currency)
             VALUES ($1,$2,$3,$4) RETURNING id`,
			item.BillID, item.ContentRequestID, item.Price.Amount, item.Price.Currency,
		).Scan(&item.ID)
		if err != nil {
			return nil, err
		}
		requestIDs = append(requestIDs, item.ContentRequestID)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE content_requests SET bill_id = $1 WHERE id = ANY($2)`,
		bill.ID, requestIDs)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() != int64(len(requestIDs)) {
		return nil, errors.New("stamped row count does not match selected requests")
	}
	return bill, nil
}
