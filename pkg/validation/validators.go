package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Date layouts accepted for client-supplied dates.
var DateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	phoneCharsRegex = regexp.MustCompile(`^\+?[0-9 ()./-]+$`)
	currencyRegex   = regexp.MustCompile(`^[A-Za-z]{3}$`)
	objectIDRegex   = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

// New returns a validator that reports fields by their json name and has the
// custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("currency", Currency)
	_ = v.RegisterValidation("objectid", ObjectID)
	_ = v.RegisterValidation("date", Date)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

// ValidPhone accepts common phone punctuation and requires at least 10 digits.
func ValidPhone(fl validator.FieldLevel) bool {
	val := strings.TrimSpace(fl.Field().String())
	if val == "" {
		return true
	}
	return phoneCharsRegex.MatchString(val) && CountDigits(val) >= 10
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// Currency validates a three-letter currency code in any case.
func Currency(fl validator.FieldLevel) bool {
	return currencyRegex.MatchString(fl.Field().String())
}

// ObjectID validates the hex rendering of a document identifier.
func ObjectID(fl validator.FieldLevel) bool {
	return objectIDRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}

// Date validates a string accepted by ParseDate.
func Date(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	_, err := ParseDate(val)
	return err == nil
}

// ParseDate parses an RFC3339 timestamp or a plain YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range DateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
