package validation

import (
	"context"
	"fmt"
	"strings"
)

// MaxQueryLength bounds free-text queries before they reach the
// tsquery parser and the analytics log.
const MaxQueryLength = 512

type SearchQueryValidator struct{}

func (v *SearchQueryValidator) Validate(ctx context.Context, value interface{}) ValidationResult {
	result := ValidationResult{Valid: true}

	inputMap, ok := value.(map[string]interface{})
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "body",
			Message: "Request body must be a valid object",
		})
		return result
	}

	queryField, exists := inputMap["query"]
	if !exists {
		// A missing query is a browse request; filters or sort alone
		// are enough.
		return result
	}

	queryStr, ok := queryField.(string)
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "query",
			Message: "Query must be a string",
		})
		return result
	}

	if len(queryStr) > MaxQueryLength {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "query",
			Message: fmt.Sprintf("Search query too long (maximum %d characters)", MaxQueryLength),
		})
		return result
	}

	return result
}

type SuggestionPartialValidator struct{}

func (v *SuggestionPartialValidator) Validate(ctx context.Context, value interface{}) ValidationResult {
	result := ValidationResult{Valid: true}

	partial, ok := value.(string)
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "q",
			Message: "Partial query must be a string",
		})
		return result
	}

	if len(partial) > MaxQueryLength {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "q",
			Message: fmt.Sprintf("Partial query too long (maximum %d characters)", MaxQueryLength),
		})
		return result
	}

	return result
}

// ValidateSearchQuery validates a free-text search query. Empty and
// whitespace-only queries are allowed; they degrade to filter-only
// matching with neutral relevance.
func ValidateSearchQuery(ctx context.Context, query string) error {
	validator := &SearchQueryValidator{}
	inputMap := map[string]interface{}{"query": query}
	result := validator.Validate(ctx, inputMap)

	if !result.Valid {
		return &ValidationErrorType{
			Type:   "search_query_validation",
			Fields: map[string]interface{}{"query": query, "validation_type": "search_query"},
			Errors: result.Errors,
		}
	}
	return nil
}

// ValidateSuggestionPartial validates an autocomplete prefix.
func ValidateSuggestionPartial(ctx context.Context, partial string) error {
	validator := &SuggestionPartialValidator{}
	result := validator.Validate(ctx, partial)

	if !result.Valid {
		return &ValidationErrorType{
			Type:   "suggestion_partial_validation",
			Fields: map[string]interface{}{"q": partial, "validation_type": "suggestion_partial"},
			Errors: result.Errors,
		}
	}
	return nil
}

// NormalizeQuery trims and whitespace-collapses a query, preserving
// case for display while matching stays case-insensitive downstream.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(query)), " ")
}
