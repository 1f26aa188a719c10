package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidTarget is returned when a target attribute is not a member of
// its dimension's closed value set.
var ErrInvalidTarget = errors.New("invalid target attribute")

// TargetAge is an age bracket a content item may be restricted to.
type TargetAge string

const (
	AgeUnder18 TargetAge = "under-18"
	Age18To24  TargetAge = "18-24"
	Age25To34  TargetAge = "25-34"
	Age35To49  TargetAge = "35-49"
	Age50Plus  TargetAge = "50-plus"
)

func (a TargetAge) Valid() bool {
	switch a {
	case AgeUnder18, Age18To24, Age25To34, Age35To49, Age50Plus:
		return true
	}
	return false
}

// TargetGender restricts content to viewers of a gender.
type TargetGender string

const (
	GenderFemale TargetGender = "female"
	GenderMale   TargetGender = "male"
)

func (g TargetGender) Valid() bool {
	switch g {
	case GenderFemale, GenderMale:
		return true
	}
	return false
}

// TargetMaritalStatus restricts content by marital status.
type TargetMaritalStatus string

const (
	MaritalSingle   TargetMaritalStatus = "single"
	MaritalMarried  TargetMaritalStatus = "married"
	MaritalDivorced TargetMaritalStatus = "divorced"
	MaritalWidowed  TargetMaritalStatus = "widowed"
)

func (m TargetMaritalStatus) Valid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	}
	return false
}

// TargetPurposeOfUse restricts content by the viewer's purpose of use.
type TargetPurposeOfUse string

const (
	PurposePrivate  TargetPurposeOfUse = "private"
	PurposeBusiness TargetPurposeOfUse = "business"
)

func (p TargetPurposeOfUse) Valid() bool {
	switch p {
	case PurposePrivate, PurposeBusiness:
		return true
	}
	return false
}

// TargetSet is a set of values for one targeting dimension. An empty set
// means the dimension is unconstrained, i.e. every value is acceptable.
// Values are deduplicated on construction and the set is treated as
// immutable afterwards.
type TargetSet[T ~string] struct {
	members []T
}

// NewTargetSet builds a set from the given values, dropping duplicates.
func NewTargetSet[T ~string](values ...T) TargetSet[T] {
	if len(values) == 0 {
		return TargetSet[T]{}
	}
	seen := make(map[T]struct{}, len(values))
	members := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		members = append(members, v)
	}
	return TargetSet[T]{members: members}
}

// Unconstrained reports whether the set places no restriction on its
// dimension.
func (s TargetSet[T]) Unconstrained() bool { return len(s.members) == 0 }

func (s TargetSet[T]) Len() int { return len(s.members) }

func (s TargetSet[T]) Contains(v T) bool {
	for _, m := range s.members {
		if m == v {
			return true
		}
	}
	return false
}

// Values returns a copy of the set's members.
func (s TargetSet[T]) Values() []T {
	out := make([]T, len(s.members))
	copy(out, s.members)
	return out
}

// Intersects reports whether the two sets share at least one member. Both
// sets must be constrained for this to be meaningful; callers handle the
// unconstrained cases separately.
func (s TargetSet[T]) Intersects(other TargetSet[T]) bool {
	for _, m := range s.members {
		if other.Contains(m) {
			return true
		}
	}
	return false
}

// Admits reports whether criteria set s accepts the requested set: an
// unconstrained side accepts anything, otherwise the sets must overlap.
func (s TargetSet[T]) Admits(requested TargetSet[T]) bool {
	if s.Unconstrained() || requested.Unconstrained() {
		return true
	}
	return s.Intersects(requested)
}

func (s TargetSet[T]) MarshalJSON() ([]byte, error) {
	if s.members == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.members)
}

func (s *TargetSet[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewTargetSet(values...)
	return nil
}

type validated interface {
	~string
	Valid() bool
}

func newValidatedSet[T validated](values []T) (TargetSet[T], error) {
	for _, v := range values {
		if !v.Valid() {
			return TargetSet[T]{}, fmt.Errorf("%w: %q", ErrInvalidTarget, string(v))
		}
	}
	return NewTargetSet(values...), nil
}

// TargetContext describes the demographic attributes a caller wants content
// matched against. It is built once per request and treated as immutable.
// A dimension left empty is unconstrained; a context with all four
// dimensions unconstrained is untargeted and takes the random-selection
// path instead of matching.
type TargetContext struct {
	Ages     TargetSet[TargetAge]
	Genders  TargetSet[TargetGender]
	Marital  TargetSet[TargetMaritalStatus]
	Purposes TargetSet[TargetPurposeOfUse]
}

// NewTargetContext validates every attribute against its closed value set
// and returns ErrInvalidTarget on the first unknown value.
func NewTargetContext(
	ages []TargetAge,
	genders []TargetGender,
	marital []TargetMaritalStatus,
	purposes []TargetPurposeOfUse,
) (TargetContext, error) {
	var (
		ctx TargetContext
		err error
	)
	if ctx.Ages, err = newValidatedSet(ages); err != nil {
		return TargetContext{}, err
	}
	if ctx.Genders, err = newValidatedSet(genders); err != nil {
		return TargetContext{}, err
	}
	if ctx.Marital, err = newValidatedSet(marital); err != nil {
		return TargetContext{}, err
	}
	if ctx.Purposes, err = newValidatedSet(purposes); err != nil {
		return TargetContext{}, err
	}
	return ctx, nil
}

// Untargeted reports whether no dimension carries a restriction.
func (c TargetContext) Untargeted() bool {
	return c.Ages.Unconstrained() &&
		c.Genders.Unconstrained() &&
		c.Marital.Unconstrained() &&
		c.Purposes.Unconstrained()
}
