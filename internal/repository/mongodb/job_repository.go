package mongodb

import (
	"context"
	"time"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/docid"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type jobRepo struct {
	store domain.DocumentStore
	now   func() time.Time
}

func NewJobRepository(store domain.DocumentStore) domain.JobRepository {
	return &jobRepo{store: store, now: func() time.Time { return time.Now().UTC() }}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) (primitive.ObjectID, error) {
	if _, err := docid.ParseField("companyId", job.CompanyID); err != nil {
		return primitive.NilObjectID, err
	}

	job.ID = primitive.NilObjectID
	if job.Type == "" {
		job.Type = domain.JobTypeFullTime
	}
	if job.StartDate == nil {
		start := r.now()
		job.StartDate = &start
	}
	job.Requirements = emptyIfNil(job.Requirements)
	job.Applications = emptyIfNil(job.Applications)

	return r.store.Insert(ctx, domain.CollectionJobs, job)
}

func (r *jobRepo) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	found, err := r.store.FindByID(ctx, domain.CollectionJobs, id, &job)
	if err != nil || !found {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) FindByCompany(ctx context.Context, companyID string, page domain.Page) ([]domain.Job, error) {
	cid, err := docid.Parse(companyID)
	if err != nil {
		return nil, err
	}
	return r.Search(ctx, domain.JobFilters{CompanyID: &cid}, page)
}

func (r *jobRepo) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	cid, err := docid.Parse(companyID)
	if err != nil {
		return 0, err
	}
	return r.Count(ctx, domain.JobFilters{CompanyID: &cid})
}

func (r *jobRepo) Search(ctx context.Context, filters domain.JobFilters, page domain.Page) ([]domain.Job, error) {
	var jobs []domain.Job
	opts := domain.PageOptions(page, newestFirst)
	if err := r.store.FindMany(ctx, domain.CollectionJobs, BuildJobFilter(filters), &jobs, opts); err != nil {
		return nil, err
	}
	return emptyIfNil(jobs), nil
}

func (r *jobRepo) Count(ctx context.Context, filters domain.JobFilters) (int64, error) {
	return r.store.Count(ctx, domain.CollectionJobs, BuildJobFilter(filters))
}

func (r *jobRepo) Update(ctx context.Context, id string, upd domain.JobUpdate) (int64, error) {
	return r.store.UpdateOne(ctx, domain.CollectionJobs, id, upd.SetDoc())
}

func (r *jobRepo) Delete(ctx context.Context, id string) (int64, error) {
	return r.store.DeleteOne(ctx, domain.CollectionJobs, id)
}

// AddApplication appends applicationID to the job's references; re-adding is
// a no-op reported as false.
func (r *jobRepo) AddApplication(ctx context.Context, jobID, applicationID string) (bool, error) {
	aid, err := docid.Parse(applicationID)
	if err != nil {
		return false, err
	}
	return r.store.AppendUnique(ctx, domain.CollectionJobs, jobID, "applications", aid)
}

