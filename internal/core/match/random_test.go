package match

import (
	"math/rand"
	"testing"

	"adrelay/internal/core/domain"
)

func TestRandomOnlyUntargeted(t *testing.T) {
	untargeted := domain.Content{ID: 1}
	targeted := domain.Content{
		ID:       2,
		Criteria: domain.Criteria{Ages: domain.NewTargetSet(domain.Age25To34)},
	}
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		got, ok := Random([]domain.Content{untargeted, targeted}, r.Intn)
		if !ok {
			t.Fatal("expected a selection")
		}
		if got.ID != untargeted.ID {
			t.Fatalf("selected targeted content %d", got.ID)
		}
	}
}

func TestRandomEmptyEligibleSet(t *testing.T) {
	targeted := domain.Content{
		ID:       1,
		Criteria: domain.Criteria{Genders: domain.NewTargetSet(domain.GenderFemale)},
	}
	if _, ok := Random([]domain.Content{targeted}, rand.Intn); ok {
		t.Fatal("expected no selection when every candidate is targeted")
	}
	if _, ok := Random(nil, rand.Intn); ok {
		t.Fatal("expected no selection on empty candidate set")
	}
}

// TestRandomUniform draws many times over three eligible items and checks
// the counts stay near even. The tolerance is generous enough to keep the
// seeded run stable.
func TestRandomUniform(t *testing.T) {
	candidates := []domain.Content{{ID: 1}, {ID: 2}, {ID: 3}}
	r := rand.New(rand.NewSource(42))

	const draws = 3000
	counts := make(map[int64]int, len(candidates))
	for i := 0; i < draws; i++ {
		got, ok := Random(candidates, r.Intn)
		if !ok {
			t.Fatal("expected a selection")
		}
		counts[got.ID]++
	}

	expected := draws / len(candidates)
	for id, n := range counts {
		if n < expected*8/10 || n > expected*12/10 {
			t.Fatalf("content %d selected %d times, want within 20%% of %d", id, n, expected)
		}
	}
	if len(counts) != len(candidates) {
		t.Fatalf("only %d of %d candidates ever selected", len(counts), len(candidates))
	}
}
