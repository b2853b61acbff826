package application

import (
	"fmt"
	"strings"

	"pokeio/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "typeName" -> "type name")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"query":      "query",
		"reference":  "reference",
		"typeName":   "type name",
		"generation": "generation",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateGeneration checks that number is 0 (all) or a known band
func ValidateGeneration(fieldName string, number int) error {
	if number == 0 {
		return nil
	}
	if _, ok := domain.LookupGeneration(number); !ok {
		return &ValidationError{
			Field: fieldName,
			Message: fmt.Sprintf("unknown %s %d (expected 1-%d)",
				formatFieldName(fieldName), number, len(domain.Generations)),
		}
	}
	return nil
}
