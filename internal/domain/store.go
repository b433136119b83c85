package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sort directions.
const (
	Ascending  = 1
	Descending = -1
)

type SortField struct {
	Field     string
	Direction int
}

// FindOptions shapes a multi-document read. A zero Limit means unbounded.
type FindOptions struct {
	Sort       []SortField
	Limit      int64
	Skip       int64
	Projection bson.D
}

// PageOptions converts a page request into skip/limit options.
func PageOptions(page Page, sort ...SortField) FindOptions {
	return FindOptions{
		Sort:  sort,
		Limit: int64(page.Limit),
		Skip:  int64(page.Skip()),
	}
}

// DocumentStore is the generic collection access used by the repositories.
// Identifiers may be an ObjectID or its hex string; malformed ones fail with
// an InvalidIdentifier error before any query runs.
type DocumentStore interface {
	Insert(ctx context.Context, coll string, doc any) (primitive.ObjectID, error)
	InsertMany(ctx context.Context, coll string, docs []any) ([]primitive.ObjectID, error)
	FindOne(ctx context.Context, coll string, filter any, out any, opts FindOptions) (bool, error)
	FindByID(ctx context.Context, coll string, id any, out any) (bool, error)
	FindMany(ctx context.Context, coll string, filter any, out any, opts FindOptions) error
	UpdateOne(ctx context.Context, coll string, id any, set bson.D) (int64, error)
	UpdateMany(ctx context.Context, coll string, filter any, set bson.D) (int64, error)
	DeleteOne(ctx context.Context, coll string, id any) (int64, error)
	DeleteMany(ctx context.Context, coll string, filter any) (int64, error)
	Count(ctx context.Context, coll string, filter any) (int64, error)
	EnsureExists(ctx context.Context, coll string, id any, out any) error
	Push(ctx context.Context, coll string, id any, field string, value any) error
	AppendUnique(ctx context.Context, coll string, id any, field string, value primitive.ObjectID) (bool, error)
	Pull(ctx context.Context, coll string, id any, field string, value primitive.ObjectID) (int64, error)
	CreateIndex(ctx context.Context, coll string, keys bson.D, unique bool) (string, error)
}
