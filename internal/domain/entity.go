package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names.
const (
	CollectionUsers        = "users"
	CollectionCompanies    = "companies"
	CollectionJobs         = "jobs"
	CollectionApplications = "applications"
)

// Timestamps is embedded inline in every stored document.
type Timestamps struct {
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Stamp sets created_at when it is still unset and always moves updated_at.
func (t *Timestamps) Stamp(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// Stamper is implemented by documents the gateway timestamps on insert.
type Stamper interface {
	Stamp(now time.Time)
}

// Identified is implemented by documents whose generated id the gateway
// writes back after insert.
type Identified interface {
	SetID(id primitive.ObjectID)
}

// Page is a validated page request.
type Page struct {
	Number int
	Limit  int
}

func (p Page) Skip() int {
	if p.Number < 1 || p.Limit < 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// Unbounded requests every matching document.
var Unbounded = Page{Number: 1, Limit: 0}

// appendSet adds key to a $set document only when the field was supplied.
func appendSet[T any](set bson.D, key string, v *T) bson.D {
	if v == nil {
		return set
	}
	return append(set, bson.E{Key: key, Value: *v})
}
