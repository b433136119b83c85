// Package docid converts external identifiers into the document store's
// native ObjectID, rejecting malformed input before it reaches a query.
package docid

import (
	"fmt"
	"strings"

	"go-jobsearch-backend/pkg/apperror"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Parse accepts an ObjectID (passed through) or its 24-char hex rendering.
func Parse(v any) (primitive.ObjectID, error) {
	switch id := v.(type) {
	case primitive.ObjectID:
		if id.IsZero() {
			return primitive.NilObjectID, apperror.InvalidIdentifier("ID cannot be empty")
		}
		return id, nil
	case *primitive.ObjectID:
		if id == nil {
			return primitive.NilObjectID, apperror.InvalidIdentifier("ID cannot be empty")
		}
		return Parse(*id)
	case string:
		s := strings.TrimSpace(id)
		if s == "" {
			return primitive.NilObjectID, apperror.InvalidIdentifier("ID cannot be empty")
		}
		oid, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return primitive.NilObjectID, apperror.InvalidIdentifier(fmt.Sprintf("Invalid ID format: %s", s))
		}
		return oid, nil
	case nil:
		return primitive.NilObjectID, apperror.InvalidIdentifier("ID cannot be empty")
	default:
		return primitive.NilObjectID, apperror.InvalidIdentifier(fmt.Sprintf("Invalid ID type: %T", v))
	}
}

// ParseField is Parse for foreign-key fields in client input: failures are
// reported as a validation error keyed by the wire field name.
func ParseField(field string, v any) (primitive.ObjectID, error) {
	oid, err := Parse(v)
	if err != nil {
		return primitive.NilObjectID, apperror.FieldError(field, "Invalid "+field+": must be a valid identifier")
	}
	return oid, nil
}

func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func Hex(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

// HexAll renders a reference list; the result is never nil.
func HexAll(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

// Equal compares two identifiers by their string rendering so that a
// native id and its hex form are treated as the same reference.
func Equal(a, b any) bool {
	return render(a) != "" && render(a) == render(b)
}

func render(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return Hex(id)
	case *primitive.ObjectID:
		if id == nil {
			return ""
		}
		return Hex(*id)
	case string:
		return strings.TrimSpace(id)
	default:
		return ""
	}
}
