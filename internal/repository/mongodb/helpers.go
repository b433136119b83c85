package mongodb

import (
	"strings"

	"go-jobsearch-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
)

var newestFirst = domain.SortField{Field: fieldCreatedAt, Direction: domain.Descending}

// withoutPassword excludes the stored hash from list reads.
var withoutPassword = bson.D{{Key: "password", Value: 0}}

// NormalizeEmail is the canonical form emails are stored and matched in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
