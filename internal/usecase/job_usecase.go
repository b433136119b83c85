package usecase

import (
	"context"
	"log/slog"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/security"
)

type jobUsecase struct {
	jobs      domain.JobRepository
	companies domain.CompanyRepository
	users     domain.UserRepository
	apps      domain.ApplicationRepository
	reads     readModels
	audit     *security.SecurityLogger
	logger    *slog.Logger
}

func NewJobUsecase(
	jobs domain.JobRepository,
	companies domain.CompanyRepository,
	users domain.UserRepository,
	apps domain.ApplicationRepository,
	audit *security.SecurityLogger,
	logger *slog.Logger,
) domain.JobUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobUsecase{
		jobs:      jobs,
		companies: companies,
		users:     users,
		apps:      apps,
		reads:     readModels{jobs: jobs, companies: companies, users: users},
		audit:     audit,
		logger:    logger,
	}
}

func (u *jobUsecase) Search(ctx context.Context, filters domain.JobFilters, page domain.Page) ([]domain.JobWithCompany, int64, error) {
	jobs, err := u.jobs.Search(ctx, filters, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := u.jobs.Count(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	withCompany, err := u.reads.jobsWithCompany(ctx, jobs)
	if err != nil {
		return nil, 0, err
	}
	return withCompany, total, nil
}

func (u *jobUsecase) Get(ctx context.Context, jobID string) (*domain.JobWithCompany, error) {
	job, err := u.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return u.reads.jobWithCompany(ctx, job)
}

// Create stores the job and links it to the company. When the link fails
// the job is deleted again.
func (u *jobUsecase) Create(ctx context.Context, companyID string, job *domain.Job) (*domain.JobWithCompany, error) {
	company, err := u.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NotFound("Company not found")
	}

	job.CompanyID = company.ID
	id, err := u.jobs.Create(ctx, job)
	if err != nil {
		return nil, err
	}
	job.ID = id

	if _, err := u.companies.AddJob(ctx, companyID, id.Hex()); err != nil {
		if _, delErr := u.jobs.Delete(ctx, id.Hex()); delErr != nil {
			u.logger.ErrorContext(ctx, "failed to remove unlinked job", "job_id", id.Hex(), "company_id", companyID, "error", delErr)
		}
		return nil, err
	}

	company.Password = ""
	company.Jobs = append(company.Jobs, id)
	return &domain.JobWithCompany{Job: *job, Company: company}, nil
}

func (u *jobUsecase) Update(ctx context.Context, companyID, jobID string, upd domain.JobUpdate) (*domain.JobWithCompany, error) {
	job, err := u.ownedJob(ctx, companyID, jobID, "You do not have permission to update this job")
	if err != nil {
		return nil, err
	}
	if !upd.DatesOrdered(job) {
		return nil, apperror.FieldError("endDate", "End date must be after start date.")
	}
	if _, err := u.jobs.Update(ctx, jobID, upd); err != nil {
		return nil, err
	}
	return u.Get(ctx, jobID)
}

// Delete removes the job and its company back-reference. Applications to
// the job are kept.
func (u *jobUsecase) Delete(ctx context.Context, companyID, jobID string) error {
	if _, err := u.ownedJob(ctx, companyID, jobID, "You do not have permission to delete this job"); err != nil {
		return err
	}
	n, err := u.jobs.Delete(ctx, jobID)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound("Job not found")
	}
	if _, err := u.companies.RemoveJob(ctx, companyID, jobID); err != nil {
		u.logger.WarnContext(ctx, "failed to remove job reference from company", "job_id", jobID, "company_id", companyID, "error", err)
	}
	return nil
}

// Apply creates a PENDING application and links it to the job. A failed
// link is logged; Application.JobID remains the authoritative reference.
func (u *jobUsecase) Apply(ctx context.Context, userID, jobID string, app *domain.Application) (*domain.ApplicationDetail, error) {
	job, err := u.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	user.Password = ""

	app.UserID = user.ID
	app.JobID = job.ID
	app.Status = domain.ApplicationStatusPending
	id, err := u.apps.Create(ctx, app)
	if err != nil {
		return nil, err
	}
	app.ID = id

	if _, err := u.jobs.AddApplication(ctx, jobID, id.Hex()); err != nil {
		u.logger.WarnContext(ctx, "failed to link application to job", "job_id", jobID, "application_id", id.Hex(), "error", err)
	} else {
		job.Applications = append(job.Applications, id)
	}

	withCompany, err := u.reads.jobWithCompany(ctx, job)
	if err != nil {
		return nil, err
	}
	return &domain.ApplicationDetail{Application: *app, Job: withCompany, User: user}, nil
}

func (u *jobUsecase) ListApplications(ctx context.Context, companyID, jobID string, page domain.Page) ([]domain.ApplicationDetail, int64, error) {
	if _, err := u.ownedJob(ctx, companyID, jobID, "You do not have permission to view this job's applications"); err != nil {
		return nil, 0, err
	}
	apps, err := u.apps.FindByJob(ctx, jobID, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := u.apps.CountByJob(ctx, jobID)
	if err != nil {
		return nil, 0, err
	}
	details, err := u.reads.applicationDetails(ctx, apps)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

func (u *jobUsecase) job(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ownedJob(ctx context.Context, companyID, jobID, message string) (*domain.Job, error) {
	job, err := u.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !domain.Owns(job, companyID, domain.OwnerCompany) {
		return nil, denied(ctx, u.audit, domain.ActorCompany, companyID, domain.CollectionJobs, jobID, message)
	}
	return job, nil
}
