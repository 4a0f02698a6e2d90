package errors

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// ValidationBuilder collects per-field problems and builds nil or a single
// InvalidArgument error. The field map travels as "validation_errors" meta.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records message against field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf is Field with a format string
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns nil when nothing was recorded. The message lists fields in
// name order so it is stable across runs.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	parts := make([]string, 0, len(vb.fields))
	for _, field := range slices.Sorted(maps.Keys(vb.fields)) {
		parts = append(parts, field+": "+strings.Join(vb.fields[field], ", "))
	}
	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta("validation_errors", vb.fields)
}

// ValidateRequired flags blank strings
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidatePositive flags sizes and distances that are not finite and
// strictly positive
func ValidatePositive(field string, value float64, vb *ValidationBuilder) {
	if !finite(value) || value <= 0 {
		vb.Fieldf(field, "must be greater than 0, got %v", value)
	}
}

// ValidateNonNegative flags values that are not finite or below zero
func ValidateNonNegative(field string, value float64, vb *ValidationBuilder) {
	if !finite(value) || value < 0 {
		vb.Fieldf(field, "must not be negative, got %v", value)
	}
}

// ValidateMinInt flags integers below minValue
func ValidateMinInt(field string, value, minValue int, vb *ValidationBuilder) {
	if value < minValue {
		vb.Fieldf(field, "must be at least %d", minValue)
	}
}
