package mise_db

import (
	"testing"

	"mise/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicateBuilder_PositionalBinding(t *testing.T) {
	b := newPredicateBuilder()

	b.add("r.spice_level >= $%d", 2)
	b.add("r.average_rating >= $%d", 3.5)

	assert.Equal(t, []string{"r.spice_level >= $1", "r.average_rating >= $2"}, b.clauses)
	assert.Equal(t, []any{2, 3.5}, b.args)
}

func TestPredicateBuilder_BindReturnsRunningIndex(t *testing.T) {
	b := newPredicateBuilder()

	assert.Equal(t, 1, b.bind("first"))
	assert.Equal(t, 2, b.bind("second"))
	assert.Len(t, b.args, 2)
}

func TestPredicateBuilder_WhereClause(t *testing.T) {
	b := newPredicateBuilder()
	assert.Equal(t, "", b.whereClause(), "no predicates means no WHERE")

	b.add("LOWER(r.difficulty) = $%d", "easy")
	b.add("r.spice_level <= $%d", 3)
	assert.Equal(t, " WHERE LOWER(r.difficulty) = $1 AND r.spice_level <= $2", b.whereClause())
}

func TestPredicateBuilder_SnapshotArgsIsACopy(t *testing.T) {
	b := newPredicateBuilder()
	b.bind("one")

	snapshot := b.snapshotArgs()
	b.bind("two")

	assert.Equal(t, []any{"one"}, snapshot)
	assert.Equal(t, []any{"one", "two"}, b.args)
}

func TestCompileRecipeFilters_AllKinds(t *testing.T) {
	minRating := 3.5
	maxTime := 45.0

	spec := domain.FilterSpec{
		"cuisine":            domain.Set{Values: []string{"Italian", "thai"}},
		"difficulty":         domain.Equality{Value: "Easy"},
		"minRating":          domain.Range{Min: &minRating},
		"maxCookingTime":     domain.Range{Max: &maxTime},
		"excludeIngredients": domain.Exclusion{Values: []string{"shellfish"}},
	}

	b := newPredicateBuilder()
	err := compileRecipeFilters(b, spec)
	require.NoError(t, err)

	// Dimensions compile in sorted name order so identical specs always
	// produce identical SQL.
	require.Len(t, b.clauses, 5)
	assert.Equal(t, "LOWER(r.cuisine) = ANY($1)", b.clauses[0])
	assert.Equal(t, "LOWER(r.difficulty) = $2", b.clauses[1])
	assert.Contains(t, b.clauses[2], "NOT EXISTS")
	assert.Contains(t, b.clauses[2], "i.name ILIKE ANY($3)")
	assert.Equal(t, "r.cooking_time_minutes <= $4", b.clauses[3])
	assert.Equal(t, "r.average_rating >= $5", b.clauses[4])

	assert.Equal(t, []any{
		[]string{"italian", "thai"},
		"easy",
		[]string{"%shellfish%"},
		45.0,
		3.5,
	}, b.args)
}

func TestCompileRecipeFilters_MonotonicNarrowing(t *testing.T) {
	min := 4.0

	narrow := domain.FilterSpec{"minRating": domain.Range{Min: &min}}
	narrower := domain.FilterSpec{
		"minRating": domain.Range{Min: &min},
		"cuisine":   domain.Set{Values: []string{"italian"}},
	}

	first := newPredicateBuilder()
	require.NoError(t, compileRecipeFilters(first, narrow))
	second := newPredicateBuilder()
	require.NoError(t, compileRecipeFilters(second, narrower))

	// Adding a dimension only appends AND predicates, so the match set
	// can only shrink.
	assert.Greater(t, len(second.clauses), len(first.clauses))
	assert.Subset(t, second.clauses, first.clauses)
}

func TestCompileRecipeFilters_TagsMatchAll(t *testing.T) {
	spec := domain.FilterSpec{
		"tags": domain.Set{Values: []string{"Vegan", "quick"}, MatchAll: true},
	}

	b := newPredicateBuilder()
	require.NoError(t, compileRecipeFilters(b, spec))

	// One EXISTS per requested tag: every tag must be present.
	require.Len(t, b.clauses, 2)
	assert.Contains(t, b.clauses[0], "LOWER(rt.tag) = $1")
	assert.Contains(t, b.clauses[1], "LOWER(rt.tag) = $2")
	assert.Equal(t, []any{"vegan", "quick"}, b.args)
}

func TestCompileRecipeFilters_TagsMatchAny(t *testing.T) {
	spec := domain.FilterSpec{
		"tags": domain.Set{Values: []string{"vegan", "quick"}},
	}

	b := newPredicateBuilder()
	require.NoError(t, compileRecipeFilters(b, spec))

	require.Len(t, b.clauses, 1)
	assert.Contains(t, b.clauses[0], "LOWER(rt.tag) = ANY($1)")
}

func TestCompileRecipeFilters_PartialSetWildcardsEachElement(t *testing.T) {
	spec := domain.FilterSpec{
		"ingredients": domain.Set{Values: []string{"tomato", "basil"}, Partial: true},
	}

	b := newPredicateBuilder()
	require.NoError(t, compileRecipeFilters(b, spec))

	require.Len(t, b.args, 1)
	assert.Equal(t, []string{"%tomato%", "%basil%"}, b.args[0])
}

func TestCompileRecipeFilters_RangeBothBounds(t *testing.T) {
	min := 1.0
	max := 4.0
	spec := domain.FilterSpec{
		"spiceLevel": domain.Range{Min: &min, Max: &max},
	}

	b := newPredicateBuilder()
	require.NoError(t, compileRecipeFilters(b, spec))

	assert.Equal(t, []string{"r.spice_level >= $1", "r.spice_level <= $2"}, b.clauses)
}

func TestCompileRecipeFilters_EmptySetAddsNothing(t *testing.T) {
	spec := domain.FilterSpec{
		"cuisine":            domain.Set{},
		"excludeIngredients": domain.Exclusion{},
	}

	b := newPredicateBuilder()
	require.NoError(t, compileRecipeFilters(b, spec))

	assert.Empty(t, b.clauses)
	assert.Empty(t, b.args)
}

func TestCompileRecipeFilters_DeterministicOrder(t *testing.T) {
	min := 2.0
	spec := domain.FilterSpec{
		"tags":      domain.Set{Values: []string{"vegan"}},
		"cuisine":   domain.Set{Values: []string{"thai"}},
		"minRating": domain.Range{Min: &min},
	}

	first := newPredicateBuilder()
	require.NoError(t, compileRecipeFilters(first, spec))

	for i := 0; i < 10; i++ {
		next := newPredicateBuilder()
		require.NoError(t, compileRecipeFilters(next, spec))
		assert.Equal(t, first.clauses, next.clauses)
		assert.Equal(t, first.args, next.args)
	}
}
