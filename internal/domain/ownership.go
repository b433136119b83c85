package domain

import (
	"go-jobsearch-backend/pkg/docid"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner reference fields.
const (
	OwnerCompany = "company_id"
	OwnerUser    = "user_id"
	OwnerJob     = "job_id"
)

// Owned is a resource exposing the identifiers it references by field name.
type Owned interface {
	OwnerRef(field string) (primitive.ObjectID, bool)
}

// Owns reports whether requesterID matches the resource's ownerField.
// Identifiers are compared by their string form, so native ids and hex
// strings are interchangeable. Unknown fields never match.
func Owns(resource Owned, requesterID any, ownerField string) bool {
	if resource == nil {
		return false
	}
	ref, ok := resource.OwnerRef(ownerField)
	if !ok || ref.IsZero() {
		return false
	}
	return docid.Equal(ref, requesterID)
}

func (j *Job) OwnerRef(field string) (primitive.ObjectID, bool) {
	if field == OwnerCompany {
		return j.CompanyID, true
	}
	return primitive.NilObjectID, false
}

func (a *Application) OwnerRef(field string) (primitive.ObjectID, bool) {
	switch field {
	case OwnerUser:
		return a.UserID, true
	case OwnerJob:
		return a.JobID, true
	}
	return primitive.NilObjectID, false
}
