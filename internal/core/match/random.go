package match

import (
	"adrelay/internal/core/domain"
)

// Random picks uniformly from the candidates that carry no targeting at
// all. Content with any constrained dimension is never returned. The intn
// argument must behave like math/rand.Intn; injecting it keeps the
// uniformity contract testable. The second return value is false when no
// candidate is eligible.
func Random(candidates []domain.Content, intn func(n int) int) (domain.Content, bool) {
	eligible := make([]domain.Content, 0, len(candidates))
	for _, c := range candidates {
		if c.Untargeted() {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return domain.Content{}, false
	}
	return eligible[intn(len(eligible))], true
}
