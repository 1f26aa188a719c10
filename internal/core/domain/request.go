package domain

import "time"

// ContentRequest is the record of one served impression. It is written
// exactly once, synchronously with the response that served the content,
// and is never deleted. BillID starts nil and is stamped exactly once when
// a billing aggregation includes the record in a bill; it is never cleared.
type ContentRequest struct {
	ID         int64
	Token      string // server-generated uuid, unique per serve
	ContentID  int64
	CampaignID int64
	Source     string // free-text identifier of the caller
	BillID     *int64
	CreatedAt  time.Time
}

// Billed reports whether the record has been included in a bill.
func (r ContentRequest) Billed() bool { return r.BillID != nil }
