package usecase

import (
	"context"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/security"
)

type applicationUsecase struct {
	apps  domain.ApplicationRepository
	jobs  domain.JobRepository
	reads readModels
	audit *security.SecurityLogger
}

func NewApplicationUsecase(
	apps domain.ApplicationRepository,
	jobs domain.JobRepository,
	companies domain.CompanyRepository,
	users domain.UserRepository,
	audit *security.SecurityLogger,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		apps:  apps,
		jobs:  jobs,
		reads: readModels{jobs: jobs, companies: companies, users: users},
		audit: audit,
	}
}

// Get returns the application to the user who submitted it.
func (u *applicationUsecase) Get(ctx context.Context, userID, applicationID string) (*domain.ApplicationDetail, error) {
	app, err := u.application(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !domain.Owns(app, userID, domain.OwnerUser) {
		return nil, denied(ctx, u.audit, domain.ActorUser, userID, domain.CollectionApplications, applicationID,
			"You do not have permission to view this application")
	}
	return u.reads.applicationDetail(ctx, app)
}

// UpdateStatus is allowed only to the company owning the application's job.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, companyID, applicationID string, status domain.ApplicationStatus) (*domain.ApplicationDetail, error) {
	app, err := u.application(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	job, err := u.jobs.FindByID(ctx, app.JobID.Hex())
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("Job not found")
	}
	if !domain.Owns(job, companyID, domain.OwnerCompany) {
		return nil, denied(ctx, u.audit, domain.ActorCompany, companyID, domain.CollectionApplications, applicationID,
			"You do not have permission to update this application")
	}
	if !domain.ValidateStatusTransition(app.Status, status) {
		return nil, apperror.BadRequest("Invalid status transition from " + string(app.Status) + " to " + string(status))
	}

	updated, err := u.apps.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.Store("Failed to update application status", nil)
	}

	app, err = u.application(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return u.reads.applicationDetail(ctx, app)
}

func (u *applicationUsecase) application(ctx context.Context, applicationID string) (*domain.Application, error) {
	app, err := u.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, apperror.NotFound("Application not found")
	}
	return app, nil
}
