package domain

import "fmt"

// FilterConstraint is the sealed variant type for one filter dimension.
// Each kind carries exactly the data its predicate needs, so the query
// compiler can switch exhaustively instead of inspecting loose values.
type FilterConstraint interface {
	isFilterConstraint()
}

// Equality matches a single exact value (enum dimensions).
type Equality struct {
	Value string
}

// Range constrains a numeric dimension; either bound may be absent.
type Range struct {
	Min *float64
	Max *float64
}

// Set matches any of the given values. With Partial set, each element is
// matched as a substring instead of exactly. MatchAll switches the
// semantics to "every value must be present", which the advanced tag
// filter uses.
type Set struct {
	Values   []string
	Partial  bool
	MatchAll bool
}

// Exclusion rejects records associated with any of the given values.
type Exclusion struct {
	Values []string
}

func (Equality) isFilterConstraint()  {}
func (Range) isFilterConstraint()     {}
func (Set) isFilterConstraint()       {}
func (Exclusion) isFilterConstraint() {}

// FilterSpec maps dimension names to their constraints. All present
// dimensions combine with logical AND; absent dimensions contribute no
// predicate.
type FilterSpec map[string]FilterConstraint

// DimensionKind classifies what constraint kinds a dimension accepts.
type DimensionKind int

const (
	KindEnum DimensionKind = iota
	KindRange
	KindSet
	KindExclusion
)

// recipeDimensions is the schema of valid recipe filter dimensions.
var recipeDimensions = map[string]DimensionKind{
	"cuisine":            KindSet,
	"difficulty":         KindEnum,
	"spiceLevel":         KindRange,
	"maxCookingTime":     KindRange,
	"maxPrepTime":        KindRange,
	"minRating":          KindRange,
	"tags":               KindSet,
	"ingredients":        KindSet,
	"excludeIngredients": KindExclusion,
}

// ValidateRecipeFilters rejects unknown dimensions and kind mismatches.
// Unknown dimensions are an input error, never silently dropped.
func ValidateRecipeFilters(spec FilterSpec) error {
	for dimension, constraint := range spec {
		kind, ok := recipeDimensions[dimension]
		if !ok {
			return fmt.Errorf("unknown filter dimension: %s", dimension)
		}
		if err := checkConstraintKind(dimension, kind, constraint); err != nil {
			return err
		}
	}
	return nil
}

func checkConstraintKind(dimension string, kind DimensionKind, constraint FilterConstraint) error {
	switch constraint.(type) {
	case Equality:
		if kind != KindEnum {
			return fmt.Errorf("dimension %s does not accept an equality constraint", dimension)
		}
	case Range:
		if kind != KindRange {
			return fmt.Errorf("dimension %s does not accept a range constraint", dimension)
		}
	case Set:
		if kind != KindSet {
			return fmt.Errorf("dimension %s does not accept a set constraint", dimension)
		}
	case Exclusion:
		if kind != KindExclusion {
			return fmt.Errorf("dimension %s does not accept an exclusion constraint", dimension)
		}
	default:
		return fmt.Errorf("dimension %s has an unsupported constraint", dimension)
	}
	return nil
}
