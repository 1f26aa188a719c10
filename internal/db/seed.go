package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns, content and unbilled content requests.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	intervals := []string{"monthly", "monthly", "quarterly", "monthly", "yearly"}
	formats := []string{"image", "text", "video"}
	contentTypes := map[string]string{
		"image": "image/png",
		"text":  "text/plain",
		"video": "video/mp4",
	}
	ages := []string{"under-18", "18-24", "25-34", "35-49", "50-plus"}
	genders := []string{"female", "male"}
	maritals := []string{"single", "married", "divorced", "widowed"}
	purposes := []string{"private", "business"}

	// create campaigns
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("Campaign %d", i)
		_, err := db.Exec(ctx, `INSERT INTO campaigns (id, name, payment_interval, status, created_at)
VALUES ($1,$2,$3,'active',now()) ON CONFLICT DO NOTHING`,
			i, name, intervals[i-1])
		if err != nil {
			return err
		}
		// create content for campaign: one untargeted item per format plus
		// a few targeted ones
		for j := 1; j <= 8; j++ {
			ctID := (i-1)*8 + j
			format := formats[r.Intn(len(formats))]
			value := fmt.Sprintf("https://example.com/asset/%d", ctID)
			if format == "text" {
				value = fmt.Sprintf("Try product %d today", ctID)
			}
			criteria := map[string][]string{
				"ages":             {},
				"genders":          {},
				"marital_statuses": {},
				"purposes_of_use":  {},
			}
			if j > 3 {
				criteria["ages"] = []string{ages[r.Intn(len(ages))]}
				if r.Intn(2) == 0 {
					criteria["genders"] = []string{genders[r.Intn(len(genders))]}
				}
				if r.Intn(3) == 0 {
					criteria["marital_statuses"] = []string{maritals[r.Intn(len(maritals))]}
				}
				if r.Intn(3) == 0 {
					criteria["purposes_of_use"] = []string{purposes[r.Intn(len(purposes))]}
				}
			}
			criteriaJSON, _ := json.Marshal(criteria)
			_, err = db.Exec(ctx, `INSERT INTO content
(id, campaign_id, format, content_type, value, criteria, created_at)
VALUES ($1,$2,$3,$4,$5,$6,now()) ON CONFLICT DO NOTHING`,
				ctID, i, format, contentTypes[format], value, criteriaJSON)
			if err != nil {
				return err
			}
		}
	}

	// generate unbilled content requests against random content
	reqCount := 500
	for i := 0; i < reqCount; i++ {
		contentID := int64(r.Intn(40) + 1)
		campaignID := (contentID-1)/8 + 1
		token := uuid.NewString()
		source := fmt.Sprintf("demo-caller-%d", r.Intn(20)+1)
		_, err := db.Exec(ctx, `INSERT INTO content_requests
(token, content_id, campaign_id, source, created_at)
VALUES ($1,$2,$3,$4,now()) ON CONFLICT DO NOTHING`,
			token, contentID, campaignID, source)
		if err != nil {
			return err
		}
	}
	return nil
}
