package validation

import (
	"errors"
	"fmt"
	"strings"

	"go-jobsearch-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// Errors collects field-keyed messages so every violation is reported at once.
// Keys are wire field paths such as "salary.max" or "requirements[2]".
type Errors map[string]string

// Add records msg for field unless the field already has a message.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Merge adds the messages of a validator or validation AppError result.
// Other errors are returned unchanged.
func (e Errors) Merge(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for field, msg := range FormatValidationErrors(verrs) {
			e.Add(field, msg)
		}
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Kind == apperror.KindValidation {
		for field, msg := range appErr.Fields {
			e.Add(field, msg)
		}
		return nil
	}
	return err
}

// Err returns a ValidationFailure for the collected messages, or nil.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return apperror.Validation(e)
}

// FormatValidationErrors converts validator.ValidationErrors to field-keyed messages
func FormatValidationErrors(err error) map[string]string {
	messages := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		messages["_schema"] = err.Error()
		return messages
	}

	for _, e := range validationErrors {
		field := fieldPath(e)
		if _, ok := messages[field]; !ok {
			messages[field] = formatSingleError(e)
		}
	}
	return messages
}

// fieldPath drops the struct name from the namespace, leaving the json path.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func formatSingleError(e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required", "required_with", "required_without":
		return "Missing data for required field."
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Must be at least %s characters.", param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("Must contain at least %s items.", param)
		}
		return fmt.Sprintf("Must be greater than or equal to %s.", param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Must be at most %s characters.", param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("Must contain at most %s items.", param)
		}
		return fmt.Sprintf("Must be less than or equal to %s.", param)
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s.", param)
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s.", param)
	case "len":
		return fmt.Sprintf("Must be exactly %s characters.", param)
	case "oneof":
		return EnumMessage(strings.Fields(param))
	case "email":
		return "Not a valid email address."
	case "url":
		return "Not a valid URL."
	case "valid_name":
		return "Only letters, digits, spaces and . ' - / & ( ) , are allowed."
	case "valid_phone":
		return "Phone number must contain at least 10 digits."
	case "no_emoji":
		return "Must not contain emoji or special symbols."
	case "currency":
		return "Must be a 3-letter currency code."
	case "objectid":
		return "Must be a valid identifier."
	case "date":
		return "Not a valid date."
	case "eqfield":
		return fmt.Sprintf("Must match %s.", param)
	default:
		return fmt.Sprintf("Validation failed (%s).", e.Tag())
	}
}

// EnumMessage lists every allowed value.
func EnumMessage(allowed []string) string {
	return "Must be one of: " + strings.Join(allowed, ", ") + "."
}

// Enum checks value against a fixed set, failing with a field-keyed
// ValidationFailure that names every allowed value.
func Enum(field, value string, allowed []string) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return apperror.FieldError(field, fmt.Sprintf("Invalid %s. %s", field, EnumMessage(allowed)))
}
