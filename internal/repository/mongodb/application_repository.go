package mongodb

import (
	"context"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/docid"
	"go-jobsearch-backend/pkg/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type applicationRepo struct {
	store domain.DocumentStore
}

func NewApplicationRepository(store domain.DocumentStore) domain.ApplicationRepository {
	return &applicationRepo{store: store}
}

// Create checks for an existing application by the same user to the same job
// before inserting. The check and the insert are separate operations; the
// unique (user_id, job_id) index rejects a concurrent duplicate.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) (primitive.ObjectID, error) {
	errs := validation.Errors{}
	if _, err := docid.ParseField("jobId", app.JobID); err != nil {
		_ = errs.Merge(err)
	}
	if _, err := docid.ParseField("userId", app.UserID); err != nil {
		_ = errs.Merge(err)
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	if err := validation.Enum("status", string(app.Status), domain.ApplicationStatuses()); err != nil {
		_ = errs.Merge(err)
	}
	if err := errs.Err(); err != nil {
		return primitive.NilObjectID, err
	}

	existing, err := r.FindByUserAndJob(ctx, app.UserID.Hex(), app.JobID.Hex())
	if err != nil {
		return primitive.NilObjectID, err
	}
	if existing != nil {
		return primitive.NilObjectID, apperror.Duplicate("User has already applied for this job")
	}

	app.ID = primitive.NilObjectID
	id, err := r.store.Insert(ctx, domain.CollectionApplications, app)
	if apperror.Is(err, apperror.KindDuplicate) {
		return primitive.NilObjectID, apperror.Duplicate("User has already applied for this job")
	}
	return id, err
}

func (r *applicationRepo) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	var app domain.Application
	found, err := r.store.FindByID(ctx, domain.CollectionApplications, id, &app)
	if err != nil || !found {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) FindByUser(ctx context.Context, userID string, page domain.Page) ([]domain.Application, error) {
	filter, err := refFilter(domain.OwnerUser, userID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, filter, page)
}

func (r *applicationRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	filter, err := refFilter(domain.OwnerUser, userID)
	if err != nil {
		return 0, err
	}
	return r.store.Count(ctx, domain.CollectionApplications, filter)
}

func (r *applicationRepo) FindByJob(ctx context.Context, jobID string, page domain.Page) ([]domain.Application, error) {
	filter, err := refFilter(domain.OwnerJob, jobID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, filter, page)
}

func (r *applicationRepo) CountByJob(ctx context.Context, jobID string) (int64, error) {
	filter, err := refFilter(domain.OwnerJob, jobID)
	if err != nil {
		return 0, err
	}
	return r.store.Count(ctx, domain.CollectionApplications, filter)
}

func (r *applicationRepo) FindByUserAndJob(ctx context.Context, userID, jobID string) (*domain.Application, error) {
	uid, err := docid.Parse(userID)
	if err != nil {
		return nil, err
	}
	jid, err := docid.Parse(jobID)
	if err != nil {
		return nil, err
	}

	var app domain.Application
	filter := bson.D{{Key: domain.OwnerUser, Value: uid}, {Key: domain.OwnerJob, Value: jid}}
	found, err := r.store.FindOne(ctx, domain.CollectionApplications, filter, &app, domain.FindOptions{})
	if err != nil || !found {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) FindByStatus(ctx context.Context, status domain.ApplicationStatus, page domain.Page) ([]domain.Application, error) {
	if err := validation.Enum("status", string(status), domain.ApplicationStatuses()); err != nil {
		return nil, err
	}
	return r.find(ctx, bson.D{{Key: "status", Value: status}}, page)
}

// UpdateStatus is the targeted status write; it validates the new value
// itself and reports whether a document was updated.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (bool, error) {
	if err := validation.Enum("status", string(status), domain.ApplicationStatuses()); err != nil {
		return false, err
	}
	n, err := r.store.UpdateOne(ctx, domain.CollectionApplications, id, bson.D{{Key: "status", Value: status}})
	return n > 0, err
}

func (r *applicationRepo) find(ctx context.Context, filter bson.D, page domain.Page) ([]domain.Application, error) {
	var apps []domain.Application
	if err := r.store.FindMany(ctx, domain.CollectionApplications, filter, &apps, domain.PageOptions(page, newestFirst)); err != nil {
		return nil, err
	}
	return emptyIfNil(apps), nil
}

func refFilter(field, id string) (bson.D, error) {
	oid, err := docid.Parse(id)
	if err != nil {
		return nil, err
	}
	return bson.D{{Key: field, Value: oid}}, nil
}
