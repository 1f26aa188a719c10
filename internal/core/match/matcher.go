// Package match holds the pure content-selection functions: targeted
// matching with a deterministic tie-break and uniform random selection over
// untargeted content. Neither function has side effects; recording the
// impression is the caller's job.
package match

import (
	"adrelay/internal/core/domain"
)

// Best selects the single content item whose criteria admit the context.
// Untargeted content is never eligible here. When several candidates admit
// the context the tie-break is total and stable, so repeated calls with the
// same inputs return the same item:
//
//  1. more dimensions constrained on both the content and the context side
//  2. more constrained dimensions overall (most specific content)
//  3. most recently created content
//  4. lowest id
//
// The second return value is false when no candidate matches.
func Best(candidates []domain.Content, ctx domain.TargetContext) (domain.Content, bool) {
	var (
		best  domain.Content
		found bool
	)
	for _, c := range candidates {
		if c.Untargeted() || !c.Criteria.Admits(ctx) {
			continue
		}
		if !found || preferred(c, best, ctx) {
			best = c
			found = true
		}
	}
	return best, found
}

// preferred reports whether a ranks before b under the tie-break order.
func preferred(a, b domain.Content, ctx domain.TargetContext) bool {
	ao, bo := a.Criteria.Overlap(ctx), b.Criteria.Overlap(ctx)
	if ao != bo {
		return ao > bo
	}
	ac, bc := a.Criteria.Constrained(), b.Criteria.Constrained()
	if ac != bc {
		return ac > bc
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}
