// Package schema converts between the wire representation (camelCase JSON,
// string identifiers) and the storage entities in domain. Inbound functions
// validate the whole input and report every violated field at once; the
// Present functions build output types that have no password field.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

var validate = validation.New()

const (
	msgRequired       = "Missing data for required field."
	msgPasswordsMatch = "Passwords must match"
	msgEndAfterStart  = "End date must be after start date."
)

// check validates input's tags into errs. Non-validation errors are
// returned as-is.
func check(input any, errs validation.Errors) error {
	err := validate.Struct(input)
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return apperror.Internal(err)
	}
	return errs.Merge(err)
}

// notBlank rejects a supplied but empty value in a partial update.
func notBlank(errs validation.Errors, field string, v *string) {
	if v != nil && strings.TrimSpace(*v) == "" {
		errs.Add(field, "Must not be empty.")
	}
}

// parseDate parses an optional date that has already passed the "date" rule.
func parseDate(v *string) *time.Time {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	t, err := validation.ParseDate(*v)
	if err != nil {
		return nil
	}
	return &t
}

func checkDateOrder(errs validation.Errors, field string, start, end *time.Time) {
	if start != nil && end != nil && !end.After(*start) {
		errs.Add(field, msgEndAfterStart)
	}
}

func parseInt(errs validation.Errors, field, raw string) (*int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs.Add(field, "Not a valid integer.")
		return nil, false
	}
	return &n, true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeEmailPtr(email *string) *string {
	if email == nil {
		return nil
	}
	e := normalizeEmail(*email)
	return &e
}

// DecodeError maps a JSON body decoding failure to the error taxonomy: a
// wrongly typed field is a ValidationFailure keyed by its wire path,
// anything else a BadRequest.
func DecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperror.FieldError(typeErr.Field, fmt.Sprintf("Not a valid %s.", jsonKind(typeErr.Type.Kind().String())))
	}
	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return apperror.BadRequest("Invalid date format")
	}
	return apperror.BadRequest("Invalid request body")
}

func jsonKind(kind string) string {
	switch {
	case strings.HasPrefix(kind, "int"), strings.HasPrefix(kind, "uint"):
		return "integer"
	case strings.HasPrefix(kind, "float"):
		return "number"
	case kind == "slice", kind == "array":
		return "list"
	case kind == "struct", kind == "map":
		return "object"
	case kind == "bool":
		return "boolean"
	}
	return kind
}
