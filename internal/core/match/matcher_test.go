package match

import (
	"testing"
	"time"

	"adrelay/internal/core/domain"
)

func targetCtx(t *testing.T, ages []domain.TargetAge, genders []domain.TargetGender) domain.TargetContext {
	t.Helper()
	ctx, err := domain.NewTargetContext(ages, genders, nil, nil)
	if err != nil {
		t.Fatalf("NewTargetContext: %v", err)
	}
	return ctx
}

func TestBestSingleCandidate(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		criteria domain.Criteria
		ages     []domain.TargetAge
		genders  []domain.TargetGender
		want     bool
	}{
		{
			name:     "intersecting dimension matches",
			criteria: domain.Criteria{Ages: domain.NewTargetSet(domain.Age18To24)},
			ages:     []domain.TargetAge{domain.Age18To24},
			want:     true,
		},
		{
			name:     "disjoint dimension rejects",
			criteria: domain.Criteria{Ages: domain.NewTargetSet(domain.Age50Plus)},
			ages:     []domain.TargetAge{domain.Age18To24},
			want:     false,
		},
		{
			name: "unconstrained content dimension passes",
			criteria: domain.Criteria{
				Genders: domain.NewTargetSet(domain.GenderFemale),
			},
			ages:    []domain.TargetAge{domain.Age18To24},
			genders: []domain.TargetGender{domain.GenderFemale},
			want:    true,
		},
		{
			name: "one failing dimension rejects despite another passing",
			criteria: domain.Criteria{
				Ages:    domain.NewTargetSet(domain.Age18To24),
				Genders: domain.NewTargetSet(domain.GenderMale),
			},
			ages:    []domain.TargetAge{domain.Age18To24},
			genders: []domain.TargetGender{domain.GenderFemale},
			want:    false,
		},
		{
			name:     "untargeted content never matches",
			criteria: domain.Criteria{},
			ages:     []domain.TargetAge{domain.Age18To24},
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := domain.Content{ID: 1, Criteria: tt.criteria, CreatedAt: base}
			got, ok := Best([]domain.Content{candidate}, targetCtx(t, tt.ages, tt.genders))
			if ok != tt.want {
				t.Fatalf("Best matched = %v, want %v", ok, tt.want)
			}
			if ok && got.ID != candidate.ID {
				t.Fatalf("Best returned content %d, want %d", got.ID, candidate.ID)
			}
		})
	}
}

// TestBestPrefersRelevantSpecificity checks that content constrained on a
// dimension the context also constrains beats content constrained only on
// a dimension the context leaves open.
func TestBestPrefersRelevantSpecificity(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := domain.Content{
		ID:        1,
		Criteria:  domain.Criteria{Ages: domain.NewTargetSet(domain.Age18To24)},
		CreatedAt: base,
	}
	b := domain.Content{
		ID:        2,
		Criteria:  domain.Criteria{Genders: domain.NewTargetSet(domain.GenderFemale)},
		CreatedAt: base.Add(time.Hour), // newer, but less relevant
	}
	ctx := targetCtx(t, []domain.TargetAge{domain.Age18To24}, nil)

	got, ok := Best([]domain.Content{b, a}, ctx)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.ID != a.ID {
		t.Fatalf("Best returned content %d, want %d", got.ID, a.ID)
	}
}

func TestBestPrefersMoreConstrained(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	broad := domain.Content{
		ID:        1,
		Criteria:  domain.Criteria{Ages: domain.NewTargetSet(domain.Age18To24)},
		CreatedAt: base,
	}
	narrow := domain.Content{
		ID: 2,
		Criteria: domain.Criteria{
			Ages:    domain.NewTargetSet(domain.Age18To24),
			Genders: domain.NewTargetSet(domain.GenderFemale),
		},
		CreatedAt: base,
	}
	ctx := targetCtx(t,
		[]domain.TargetAge{domain.Age18To24},
		[]domain.TargetGender{domain.GenderFemale},
	)

	got, ok := Best([]domain.Content{broad, narrow}, ctx)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.ID != narrow.ID {
		t.Fatalf("Best returned content %d, want %d", got.ID, narrow.ID)
	}
}

func TestBestTieBreakNewestThenLowestID(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	criteria := domain.Criteria{Ages: domain.NewTargetSet(domain.Age18To24)}
	older := domain.Content{ID: 1, Criteria: criteria, CreatedAt: base}
	newer := domain.Content{ID: 2, Criteria: criteria, CreatedAt: base.Add(time.Hour)}
	ctx := targetCtx(t, []domain.TargetAge{domain.Age18To24}, nil)

	got, ok := Best([]domain.Content{older, newer}, ctx)
	if !ok || got.ID != newer.ID {
		t.Fatalf("Best returned content %d, want newest %d", got.ID, newer.ID)
	}

	twin := domain.Content{ID: 9, Criteria: criteria, CreatedAt: newer.CreatedAt}
	got, ok = Best([]domain.Content{twin, newer}, ctx)
	if !ok || got.ID != newer.ID {
		t.Fatalf("Best returned content %d, want lowest id %d", got.ID, newer.ID)
	}
}

func TestBestDeterministic(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	candidates := []domain.Content{
		{ID: 3, Criteria: domain.Criteria{Ages: domain.NewTargetSet(domain.Age18To24)}, CreatedAt: base},
		{ID: 1, Criteria: domain.Criteria{Ages: domain.NewTargetSet(domain.Age18To24, domain.Age25To34)}, CreatedAt: base},
		{ID: 2, Criteria: domain.Criteria{Ages: domain.NewTargetSet(domain.Age18To24)}, CreatedAt: base.Add(time.Minute)},
	}
	ctx := targetCtx(t, []domain.TargetAge{domain.Age18To24}, nil)

	first, ok := Best(candidates, ctx)
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 50; i++ {
		got, ok := Best(candidates, ctx)
		if !ok || got.ID != first.ID {
			t.Fatalf("run %d returned content %d, want %d", i, got.ID, first.ID)
		}
	}
}

func TestBestNoCandidates(t *testing.T) {
	ctx := targetCtx(t, []domain.TargetAge{domain.Age18To24}, nil)
	if _, ok := Best(nil, ctx); ok {
		t.Fatal("expected no match on empty candidate set")
	}
}
