package usecase

import (
	"context"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
)

type companyUsecase struct {
	companies domain.CompanyRepository
	jobs      domain.JobRepository
}

func NewCompanyUsecase(companies domain.CompanyRepository, jobs domain.JobRepository) domain.CompanyUsecase {
	return &companyUsecase{companies: companies, jobs: jobs}
}

func (u *companyUsecase) List(ctx context.Context, page domain.Page) ([]domain.Company, int64, error) {
	companies, err := u.companies.FindAll(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := u.companies.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (u *companyUsecase) Get(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := u.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NotFound("Company not found")
	}
	company.Password = ""
	return company, nil
}

func (u *companyUsecase) UpdateProfile(ctx context.Context, companyID string, upd domain.CompanyUpdate) (*domain.Company, error) {
	if _, err := u.companies.Update(ctx, companyID, upd); err != nil {
		return nil, err
	}
	return u.Get(ctx, companyID)
}

func (u *companyUsecase) ChangePassword(ctx context.Context, companyID, currentPassword, newPassword string) error {
	company, err := u.Get(ctx, companyID)
	if err != nil {
		return err
	}
	verified, err := u.companies.Authenticate(ctx, company.Email, currentPassword)
	if err != nil {
		return err
	}
	if verified == nil {
		return apperror.FieldError("currentPassword", "Current password is incorrect")
	}
	_, err = u.companies.UpdatePassword(ctx, companyID, newPassword)
	return err
}

func (u *companyUsecase) ListJobs(ctx context.Context, companyID string, page domain.Page) ([]domain.Job, int64, error) {
	if _, err := u.Get(ctx, companyID); err != nil {
		return nil, 0, err
	}
	jobs, err := u.jobs.FindByCompany(ctx, companyID, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := u.jobs.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}
