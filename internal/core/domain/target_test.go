package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTargetContextUntargeted(t *testing.T) {
	ctx, err := NewTargetContext(nil, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, ctx.Untargeted())

	ctx, err = NewTargetContext([]TargetAge{Age18To24}, nil, nil, nil)
	require.NoError(t, err)
	require.False(t, ctx.Untargeted())

	ctx, err = NewTargetContext(nil, nil, nil, []TargetPurposeOfUse{PurposeBusiness})
	require.NoError(t, err)
	require.False(t, ctx.Untargeted())
}

func TestTargetContextValidation(t *testing.T) {
	_, err := NewTargetContext([]TargetAge{"toddler"}, nil, nil, nil)
	require.ErrorIs(t, err, ErrInvalidTarget)

	_, err = NewTargetContext(nil, []TargetGender{"unknown"}, nil, nil)
	require.ErrorIs(t, err, ErrInvalidTarget)

	_, err = NewTargetContext(nil, nil, []TargetMaritalStatus{"engaged"}, nil)
	require.ErrorIs(t, err, ErrInvalidTarget)

	_, err = NewTargetContext(nil, nil, nil, []TargetPurposeOfUse{"charity"})
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestTargetSetDeduplicates(t *testing.T) {
	s := NewTargetSet(Age18To24, Age18To24, Age25To34)
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains(Age18To24))
	require.True(t, s.Contains(Age25To34))
}

func TestTargetSetAdmits(t *testing.T) {
	constrained := NewTargetSet(GenderFemale)
	other := NewTargetSet(GenderMale)
	both := NewTargetSet(GenderFemale, GenderMale)
	var unconstrained TargetSet[TargetGender]

	require.True(t, unconstrained.Admits(constrained))
	require.True(t, constrained.Admits(unconstrained))
	require.True(t, constrained.Admits(both))
	require.False(t, constrained.Admits(other))
}

func TestCriteriaAdmitsAllDimensions(t *testing.T) {
	criteria := Criteria{
		Ages:    NewTargetSet(Age18To24),
		Genders: NewTargetSet(GenderFemale),
	}
	ctx, err := NewTargetContext(
		[]TargetAge{Age18To24},
		[]TargetGender{GenderFemale},
		nil, nil,
	)
	require.NoError(t, err)
	require.True(t, criteria.Admits(ctx))

	// a single failing dimension rejects the whole candidate
	ctx, err = NewTargetContext(
		[]TargetAge{Age18To24},
		[]TargetGender{GenderMale},
		nil, nil,
	)
	require.NoError(t, err)
	require.False(t, criteria.Admits(ctx))
}
