package v1_test

import (
	"context"

	"go-jobsearch-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, user *domain.User) (*domain.Session, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthUsecase) RegisterCompany(ctx context.Context, company *domain.Company) (*domain.Session, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthUsecase) LoginCompany(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID string, upd domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockUserUsecase) AddExperience(ctx context.Context, userID string, exp domain.Experience) (*domain.User, error) {
	args := m.Called(ctx, userID, exp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUsecase) AddEducation(ctx context.Context, userID string, edu domain.Education) (*domain.User, error) {
	args := m.Called(ctx, userID, edu)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUsecase) ListApplications(ctx context.Context, userID string, page domain.Page) ([]domain.ApplicationDetail, int64, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ApplicationDetail), args.Get(1).(int64), args.Error(2)
}

type MockCompanyUsecase struct {
	mock.Mock
}

func (m *MockCompanyUsecase) List(ctx context.Context, page domain.Page) ([]domain.Company, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Company), args.Get(1).(int64), args.Error(2)
}

func (m *MockCompanyUsecase) Get(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyUsecase) UpdateProfile(ctx context.Context, companyID string, upd domain.CompanyUpdate) (*domain.Company, error) {
	args := m.Called(ctx, companyID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyUsecase) ChangePassword(ctx context.Context, companyID, currentPassword, newPassword string) error {
	args := m.Called(ctx, companyID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockCompanyUsecase) ListJobs(ctx context.Context, companyID string, page domain.Page) ([]domain.Job, int64, error) {
	args := m.Called(ctx, companyID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

type MockJobUsecase struct {
	mock.Mock
}

func (m *MockJobUsecase) Search(ctx context.Context, filters domain.JobFilters, page domain.Page) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, filters, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobUsecase) Get(ctx context.Context, jobID string) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}

func (m *MockJobUsecase) Create(ctx context.Context, companyID string, job *domain.Job) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, companyID, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}

func (m *MockJobUsecase) Update(ctx context.Context, companyID, jobID string, upd domain.JobUpdate) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, companyID, jobID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}

func (m *MockJobUsecase) Delete(ctx context.Context, companyID, jobID string) error {
	args := m.Called(ctx, companyID, jobID)
	return args.Error(0)
}

func (m *MockJobUsecase) Apply(ctx context.Context, userID, jobID string, app *domain.Application) (*domain.ApplicationDetail, error) {
	args := m.Called(ctx, userID, jobID, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationDetail), args.Error(1)
}

func (m *MockJobUsecase) ListApplications(ctx context.Context, companyID, jobID string, page domain.Page) ([]domain.ApplicationDetail, int64, error) {
	args := m.Called(ctx, companyID, jobID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ApplicationDetail), args.Get(1).(int64), args.Error(2)
}

type MockApplicationUsecase struct {
	mock.Mock
}

func (m *MockApplicationUsecase) Get(ctx context.Context, userID, applicationID string) (*domain.ApplicationDetail, error) {
	args := m.Called(ctx, userID, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationDetail), args.Error(1)
}

func (m *MockApplicationUsecase) UpdateStatus(ctx context.Context, companyID, applicationID string, status domain.ApplicationStatus) (*domain.ApplicationDetail, error) {
	args := m.Called(ctx, companyID, applicationID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationDetail), args.Error(1)
}
