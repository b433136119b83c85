package usecase_test

import (
	"context"
	"time"

	"go-jobsearch-backend/internal/domain"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, id string, upd domain.UserUpdate) (int64, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id, password string) (int64, error) {
	args := m.Called(ctx, id, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) AddExperience(ctx context.Context, userID string, exp domain.Experience) (string, error) {
	args := m.Called(ctx, userID, exp)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepo) AddEducation(ctx context.Context, userID string, edu domain.Education) (string, error) {
	args := m.Called(ctx, userID, edu)
	return args.String(0), args.Error(1)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) (primitive.ObjectID, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockCompanyRepo) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) FindAll(ctx context.Context, page domain.Page) ([]domain.Company, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepo) Update(ctx context.Context, id string, upd domain.CompanyUpdate) (int64, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepo) UpdatePassword(ctx context.Context, id, password string) (int64, error) {
	args := m.Called(ctx, id, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepo) Authenticate(ctx context.Context, email, password string) (*domain.Company, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) AddJob(ctx context.Context, companyID, jobID string) (bool, error) {
	args := m.Called(ctx, companyID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepo) RemoveJob(ctx context.Context, companyID, jobID string) (bool, error) {
	args := m.Called(ctx, companyID, jobID)
	return args.Bool(0), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) (primitive.ObjectID, error) {
	args := m.Called(ctx, job)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockJobRepo) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) FindByCompany(ctx context.Context, companyID string, page domain.Page) ([]domain.Job, error) {
	args := m.Called(ctx, companyID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepo) Search(ctx context.Context, filters domain.JobFilters, page domain.Page) ([]domain.Job, error) {
	args := m.Called(ctx, filters, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) Count(ctx context.Context, filters domain.JobFilters) (int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, id string, upd domain.JobUpdate) (int64, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepo) AddApplication(ctx context.Context, jobID, applicationID string) (bool, error) {
	args := m.Called(ctx, jobID, applicationID)
	return args.Bool(0), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) (primitive.ObjectID, error) {
	args := m.Called(ctx, app)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockApplicationRepo) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) FindByUser(ctx context.Context, userID string, page domain.Page) ([]domain.Application, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) FindByJob(ctx context.Context, jobID string, page domain.Page) ([]domain.Application, error) {
	args := m.Called(ctx, jobID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) CountByJob(ctx context.Context, jobID string) (int64, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) FindByUserAndJob(ctx context.Context, userID, jobID string) (*domain.Application, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) FindByStatus(ctx context.Context, status domain.ApplicationStatus, page domain.Page) ([]domain.Application, error) {
	args := m.Called(ctx, status, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(subject, email, userType string) (string, time.Time, error) {
	args := m.Called(subject, email, userType)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type MockThrottle struct {
	mock.Mock
}

func (m *MockThrottle) IsBlocked(ctx context.Context, actorType, email string) (bool, error) {
	args := m.Called(ctx, actorType, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockThrottle) RecordFailure(ctx context.Context, actorType, email string) (bool, error) {
	args := m.Called(ctx, actorType, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockThrottle) Clear(ctx context.Context, actorType, email string) error {
	return m.Called(ctx, actorType, email).Error(0)
}
