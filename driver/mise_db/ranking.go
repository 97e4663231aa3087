package mise_db

import (
	"fmt"

	"mise/domain"
)

// Indexed text expression shared by the gate predicate and the score
// expression. Description is coalesced so unset descriptions rank, not
// error.
const recipeDocument = "to_tsvector('english', r.title || ' ' || COALESCE(r.description, ''))"

// neutralScoreExpr selects the neutral relevance constant as float8 so
// result scanning sees one column type in every mode.
var neutralScoreExpr = fmt.Sprintf("%.1f::float8", domain.NeutralRelevance)

// compileRecipeTextGate adds the inclusion predicate for a text query.
// Exact mode requires an FTS match or a literal substring match. Fuzzy
// mode admits a record when the title clears 0.3 trigram similarity, the
// description clears 0.2, or the FTS query matches; titles are gated more
// permissively than descriptions on purpose.
func compileRecipeTextGate(b *predicateBuilder, query string, fuzzy bool) {
	if query == "" {
		return
	}

	q := b.bind(query)
	if fuzzy {
		b.addClause(fmt.Sprintf(
			"(similarity(r.title, $%d) > %g OR similarity(COALESCE(r.description, ''), $%d) > %g OR %s @@ plainto_tsquery('english', $%d))",
			q, domain.FuzzyTitleThreshold, q, domain.FuzzyDescriptionThreshold, recipeDocument, q,
		))
		return
	}

	sub := b.bind("%" + query + "%")
	b.addClause(fmt.Sprintf(
		"(%s @@ plainto_tsquery('english', $%d) OR r.title ILIKE $%d OR r.description ILIKE $%d)",
		recipeDocument, q, sub, sub,
	))
}

// recipeScoreExpr returns the SELECT expression computing the relevance
// score. Scores lie in [0,1]; without a text query the neutral constant
// is selected so downstream ordering stays total.
func recipeScoreExpr(b *predicateBuilder, query string, fuzzy bool) string {
	if query == "" {
		return neutralScoreExpr
	}

	q := b.bind(query)
	rank := fmt.Sprintf("LEAST(ts_rank(%s, plainto_tsquery('english', $%d)), 1.0)", recipeDocument, q)
	if !fuzzy {
		return rank
	}
	return fmt.Sprintf(
		"GREATEST(similarity(r.title, $%d), similarity(COALESCE(r.description, ''), $%d), %s)",
		q, q, rank,
	)
}

// nullTimeSentinel sorts recipes with unset time fields as worst.
const nullTimeSentinel = 100000

// recipeOrderBy builds the ORDER BY clause for the requested sort. The
// trailing created_at/id keys make repeated identical queries return
// identical ordering.
func recipeOrderBy(sortBy domain.SortField, order domain.SortOrder, hasQuery bool) string {
	if !hasQuery && sortBy == domain.SortRelevance {
		// Relevance is the neutral constant without a query.
		sortBy = domain.SortRecent
	}

	switch sortBy {
	case domain.SortRating:
		return fmt.Sprintf(" ORDER BY r.average_rating %s, relevance DESC, r.created_at DESC, r.id DESC", directionOr(order, domain.SortDesc))
	case domain.SortPopular:
		return fmt.Sprintf(" ORDER BY r.save_count %s, relevance DESC, r.created_at DESC, r.id DESC", directionOr(order, domain.SortDesc))
	case domain.SortCookingTime:
		return fmt.Sprintf(" ORDER BY COALESCE(r.cooking_time_minutes, %d) %s, relevance DESC, r.created_at DESC, r.id DESC", nullTimeSentinel, directionOr(order, domain.SortAsc))
	case domain.SortPrepTime:
		return fmt.Sprintf(" ORDER BY COALESCE(r.prep_time_minutes, %d) %s, relevance DESC, r.created_at DESC, r.id DESC", nullTimeSentinel, directionOr(order, domain.SortAsc))
	case domain.SortRecent:
		return fmt.Sprintf(" ORDER BY r.created_at %s, r.id DESC", directionOr(order, domain.SortDesc))
	default:
		return " ORDER BY relevance DESC, r.created_at DESC, r.id DESC"
	}
}

func directionOr(order domain.SortOrder, fallback domain.SortOrder) string {
	switch order {
	case domain.SortAsc:
		return "ASC"
	case domain.SortDesc:
		return "DESC"
	default:
		if fallback == domain.SortAsc {
			return "ASC"
		}
		return "DESC"
	}
}
