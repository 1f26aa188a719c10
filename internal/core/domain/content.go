package domain

import (
	"errors"
	"time"
)

// ErrInvalidFormat is returned when a request names a content format outside
// the closed set.
var ErrInvalidFormat = errors.New("invalid content format")

// ContentFormat is the delivery format of an advertisement asset.
type ContentFormat string

const (
	FormatImage ContentFormat = "image"
	FormatText  ContentFormat = "text"
	FormatVideo ContentFormat = "video"
)

func (f ContentFormat) Valid() bool {
	switch f {
	case FormatImage, FormatText, FormatVideo:
		return true
	}
	return false
}

// Criteria is the target-criteria set of a content item, one set per
// demographic dimension. Dimensions left empty are unconstrained.
type Criteria struct {
	Ages     TargetSet[TargetAge]           `json:"ages"`
	Genders  TargetSet[TargetGender]        `json:"genders"`
	Marital  TargetSet[TargetMaritalStatus] `json:"marital_statuses"`
	Purposes TargetSet[TargetPurposeOfUse]  `json:"purposes_of_use"`
}

// Untargeted reports whether the criteria restrict nothing at all. Such
// content is eligible only for random selection, never for matching.
func (c Criteria) Untargeted() bool {
	return c.Ages.Unconstrained() &&
		c.Genders.Unconstrained() &&
		c.Marital.Unconstrained() &&
		c.Purposes.Unconstrained()
}

// Constrained returns the number of dimensions that carry a restriction.
func (c Criteria) Constrained() int {
	n := 0
	if !c.Ages.Unconstrained() {
		n++
	}
	if !c.Genders.Unconstrained() {
		n++
	}
	if !c.Marital.Unconstrained() {
		n++
	}
	if !c.Purposes.Unconstrained() {
		n++
	}
	return n
}

// Admits reports whether the criteria accept the given context: every
// dimension must be unconstrained on the content side or share at least one
// value with the context's set.
func (c Criteria) Admits(ctx TargetContext) bool {
	return c.Ages.Admits(ctx.Ages) &&
		c.Genders.Admits(ctx.Genders) &&
		c.Marital.Admits(ctx.Marital) &&
		c.Purposes.Admits(ctx.Purposes)
}

// Overlap returns the number of dimensions constrained on both the content
// and the context side. It ranks how specific a match is with respect to
// the dimensions the caller actually cares about.
func (c Criteria) Overlap(ctx TargetContext) int {
	n := 0
	if !c.Ages.Unconstrained() && !ctx.Ages.Unconstrained() {
		n++
	}
	if !c.Genders.Unconstrained() && !ctx.Genders.Unconstrained() {
		n++
	}
	if !c.Marital.Unconstrained() && !ctx.Marital.Unconstrained() {
		n++
	}
	if !c.Purposes.Unconstrained() && !ctx.Purposes.Unconstrained() {
		n++
	}
	return n
}

// Content is a single advertisement asset owned by a campaign. The value
// payload is a URL for image and video formats and the literal text for the
// text format. Content is never mutated after creation.
type Content struct {
	ID         int64
	CampaignID int64
	Format     ContentFormat
	Type       string // media type of the payload, e.g. image/png
	Value      string
	Criteria   Criteria
	CreatedAt  time.Time
}

// Untargeted reports whether the content carries no targeting at all.
func (c Content) Untargeted() bool { return c.Criteria.Untargeted() }
