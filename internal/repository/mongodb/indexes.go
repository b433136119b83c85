package mongodb

import (
	"context"

	"go-jobsearch-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
)

type indexSpec struct {
	coll   string
	keys   bson.D
	unique bool
}

// The unique indexes back the repositories' check-then-insert uniqueness
// rules against concurrent writers.
var indexes = []indexSpec{
	{domain.CollectionUsers, bson.D{{Key: "email", Value: 1}}, true},
	{domain.CollectionCompanies, bson.D{{Key: "email", Value: 1}}, true},
	{domain.CollectionApplications, bson.D{{Key: "user_id", Value: 1}, {Key: "job_id", Value: 1}}, true},
	{domain.CollectionApplications, bson.D{{Key: "job_id", Value: 1}}, false},
	{domain.CollectionJobs, bson.D{{Key: "company_id", Value: 1}}, false},
	{domain.CollectionJobs, bson.D{{Key: "created_at", Value: -1}}, false},
}

// EnsureIndexes creates the indexes the repositories rely on. It is
// idempotent.
func EnsureIndexes(ctx context.Context, store domain.DocumentStore) error {
	for _, idx := range indexes {
		if _, err := store.CreateIndex(ctx, idx.coll, idx.keys, idx.unique); err != nil {
			return err
		}
	}
	return nil
}
