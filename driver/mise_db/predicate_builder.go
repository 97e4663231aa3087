package mise_db

import (
	"fmt"
	"sort"
	"strings"

	"mise/domain"
)

// predicateBuilder accumulates WHERE clauses with strictly positional
// parameter binding. Clause templates use %d placeholders that are
// rendered from the running argument index, so a value can never be
// concatenated into the query text and placeholder numbering cannot
// drift from the argument list.
type predicateBuilder struct {
	clauses []string
	args    []any
}

func newPredicateBuilder() *predicateBuilder {
	return &predicateBuilder{}
}

// bind appends a value and returns its positional index.
func (b *predicateBuilder) bind(value any) int {
	b.args = append(b.args, value)
	return len(b.args)
}

// add renders a clause template whose %d placeholders correspond, in
// order, to the given values, binding each value positionally.
func (b *predicateBuilder) add(template string, values ...any) {
	indices := make([]any, len(values))
	for i, v := range values {
		indices[i] = b.bind(v)
	}
	b.clauses = append(b.clauses, fmt.Sprintf(template, indices...))
}

// addClause appends an already-rendered clause. Callers must have bound
// every parameter the clause references via bind.
func (b *predicateBuilder) addClause(clause string) {
	b.clauses = append(b.clauses, clause)
}

// whereClause joins all predicates with AND. Returns "" when no
// dimension contributed a predicate.
func (b *predicateBuilder) whereClause() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

// snapshotArgs copies the current argument list, so a count query can be
// issued before further parameters (score expression, limit, offset) are
// bound for the page query.
func (b *predicateBuilder) snapshotArgs() []any {
	snapshot := make([]any, len(b.args))
	copy(snapshot, b.args)
	return snapshot
}

// compileRecipeFilters translates a validated FilterSpec into predicates
// over the recipes table. Dimensions are compiled in sorted name order so
// identical specs always produce identical SQL.
func compileRecipeFilters(b *predicateBuilder, spec domain.FilterSpec) error {
	dimensions := make([]string, 0, len(spec))
	for dimension := range spec {
		dimensions = append(dimensions, dimension)
	}
	sort.Strings(dimensions)

	for _, dimension := range dimensions {
		if err := compileRecipeDimension(b, dimension, spec[dimension]); err != nil {
			return err
		}
	}
	return nil
}

func compileRecipeDimension(b *predicateBuilder, dimension string, constraint domain.FilterConstraint) error {
	switch c := constraint.(type) {
	case domain.Equality:
		return compileEquality(b, dimension, c)
	case domain.Range:
		return compileRange(b, dimension, c)
	case domain.Set:
		return compileSet(b, dimension, c)
	case domain.Exclusion:
		return compileExclusion(b, dimension, c)
	default:
		return fmt.Errorf("unsupported constraint for dimension %s", dimension)
	}
}

func compileEquality(b *predicateBuilder, dimension string, c domain.Equality) error {
	switch dimension {
	case "difficulty":
		b.add("LOWER(r.difficulty) = $%d", strings.ToLower(c.Value))
		return nil
	default:
		return fmt.Errorf("no equality mapping for dimension %s", dimension)
	}
}

func compileRange(b *predicateBuilder, dimension string, c domain.Range) error {
	var column string
	switch dimension {
	case "spiceLevel":
		column = "r.spice_level"
	case "maxCookingTime":
		column = "r.cooking_time_minutes"
	case "maxPrepTime":
		column = "r.prep_time_minutes"
	case "minRating":
		column = "r.average_rating"
	default:
		return fmt.Errorf("no range mapping for dimension %s", dimension)
	}

	// Each bound is independently optional.
	if c.Min != nil {
		b.add(column+" >= $%d", *c.Min)
	}
	if c.Max != nil {
		b.add(column+" <= $%d", *c.Max)
	}
	return nil
}

func compileSet(b *predicateBuilder, dimension string, c domain.Set) error {
	if len(c.Values) == 0 {
		return nil
	}

	switch dimension {
	case "cuisine":
		if c.Partial {
			b.add("r.cuisine ILIKE ANY($%d)", wildcardEach(c.Values))
		} else {
			b.add("LOWER(r.cuisine) = ANY($%d)", lowerEach(c.Values))
		}
		return nil
	case "tags":
		if c.MatchAll {
			// Advanced search requires every requested tag; the fuzzy
			// federated path requires any. The asymmetry is intentional
			// and preserved from the catalogue's established behavior.
			for _, tag := range c.Values {
				b.add("EXISTS (SELECT 1 FROM recipe_tags rt WHERE rt.recipe_id = r.id AND LOWER(rt.tag) = $%d)", strings.ToLower(tag))
			}
			return nil
		}
		if c.Partial {
			b.add("EXISTS (SELECT 1 FROM recipe_tags rt WHERE rt.recipe_id = r.id AND rt.tag ILIKE ANY($%d))", wildcardEach(c.Values))
		} else {
			b.add("EXISTS (SELECT 1 FROM recipe_tags rt WHERE rt.recipe_id = r.id AND LOWER(rt.tag) = ANY($%d))", lowerEach(c.Values))
		}
		return nil
	case "ingredients":
		if c.Partial {
			b.add(ingredientExists+" AND i.name ILIKE ANY($%d))", wildcardEach(c.Values))
		} else {
			b.add(ingredientExists+" AND LOWER(i.name) = ANY($%d))", lowerEach(c.Values))
		}
		return nil
	default:
		return fmt.Errorf("no set mapping for dimension %s", dimension)
	}
}

func compileExclusion(b *predicateBuilder, dimension string, c domain.Exclusion) error {
	if len(c.Values) == 0 {
		return nil
	}

	switch dimension {
	case "excludeIngredients":
		b.add("NOT "+ingredientExists+" AND i.name ILIKE ANY($%d))", wildcardEach(c.Values))
		return nil
	default:
		return fmt.Errorf("no exclusion mapping for dimension %s", dimension)
	}
}

const ingredientExists = "EXISTS (SELECT 1 FROM recipe_ingredients ri JOIN ingredients i ON i.id = ri.ingredient_id WHERE ri.recipe_id = r.id"

func lowerEach(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}

func wildcardEach(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = "%" + strings.TrimSpace(v) + "%"
	}
	return out
}
