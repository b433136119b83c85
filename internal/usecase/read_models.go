package usecase

import (
	"context"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/docid"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// readModels assembles the nested views returned to clients. A missing
// referenced entity leaves its slot nil.
type readModels struct {
	jobs      domain.JobRepository
	companies domain.CompanyRepository
	users     domain.UserRepository
}

func (r readModels) company(ctx context.Context, id primitive.ObjectID) (*domain.Company, error) {
	if id.IsZero() {
		return nil, nil
	}
	company, err := r.companies.FindByID(ctx, id.Hex())
	if err != nil || company == nil {
		return nil, err
	}
	company.Password = ""
	return company, nil
}

func (r readModels) user(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if id.IsZero() {
		return nil, nil
	}
	user, err := r.users.FindByID(ctx, id.Hex())
	if err != nil || user == nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (r readModels) jobWithCompany(ctx context.Context, job *domain.Job) (*domain.JobWithCompany, error) {
	company, err := r.company(ctx, job.CompanyID)
	if err != nil {
		return nil, err
	}
	return &domain.JobWithCompany{Job: *job, Company: company}, nil
}

func (r readModels) jobsWithCompany(ctx context.Context, jobs []domain.Job) ([]domain.JobWithCompany, error) {
	cache := map[primitive.ObjectID]*domain.Company{}
	out := make([]domain.JobWithCompany, 0, len(jobs))
	for _, job := range jobs {
		company, ok := cache[job.CompanyID]
		if !ok {
			var err error
			if company, err = r.company(ctx, job.CompanyID); err != nil {
				return nil, err
			}
			cache[job.CompanyID] = company
		}
		out = append(out, domain.JobWithCompany{Job: job, Company: company})
	}
	return out, nil
}

func (r readModels) applicationDetail(ctx context.Context, app *domain.Application) (*domain.ApplicationDetail, error) {
	detail := &domain.ApplicationDetail{Application: *app}

	if !app.JobID.IsZero() {
		job, err := r.jobs.FindByID(ctx, docid.Hex(app.JobID))
		if err != nil {
			return nil, err
		}
		if job != nil {
			if detail.Job, err = r.jobWithCompany(ctx, job); err != nil {
				return nil, err
			}
		}
	}

	user, err := r.user(ctx, app.UserID)
	if err != nil {
		return nil, err
	}
	detail.User = user
	return detail, nil
}

func (r readModels) applicationDetails(ctx context.Context, apps []domain.Application) ([]domain.ApplicationDetail, error) {
	out := make([]domain.ApplicationDetail, 0, len(apps))
	for i := range apps {
		detail, err := r.applicationDetail(ctx, &apps[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *detail)
	}
	return out, nil
}
