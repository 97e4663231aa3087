package validation

import (
	"context"
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Validator interface {
	Validate(ctx context.Context, value interface{}) ValidationResult
}

// ValidationErrorType represents a typed validation error
type ValidationErrorType struct {
	Type   string                 `json:"type"`
	Fields map[string]interface{} `json:"fields"`
	Errors []ValidationError      `json:"errors"`
}

func (e *ValidationErrorType) Error() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Message
	}
	return fmt.Sprintf("validation failed: %s", e.Type)
}

// AsValidationError attempts to convert an error to a ValidationErrorType
func AsValidationError(err error) (*ValidationErrorType, bool) {
	if verr, ok := err.(*ValidationErrorType); ok {
		return verr, true
	}
	return nil, false
}

// SanitizeInput strips HTML tags from user input and normalizes
// whitespace. Queries pass through the database as bind parameters, so
// this guards the analytics log and response echoes, not SQL.
func SanitizeInput(ctx context.Context, input string) string {
	for {
		start := strings.Index(strings.ToLower(input), "<script")
		if start == -1 {
			break
		}
		end := strings.Index(strings.ToLower(input[start:]), "</script>")
		if end == -1 {
			input = input[:start]
			break
		}
		end += start + len("</script>")
		input = input[:start] + input[end:]
	}

	for {
		start := strings.Index(input, "<")
		if start == -1 {
			break
		}
		end := strings.Index(input[start:], ">")
		if end == -1 {
			input = input[:start]
			break
		}
		end += start + 1
		input = input[:start] + input[end:]
	}

	input = strings.TrimSpace(input)
	input = strings.Join(strings.Fields(input), " ")

	return input
}
