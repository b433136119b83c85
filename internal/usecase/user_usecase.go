package usecase

import (
	"context"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
)

type userUsecase struct {
	users domain.UserRepository
	apps  domain.ApplicationRepository
	reads readModels
}

func NewUserUsecase(
	users domain.UserRepository,
	companies domain.CompanyRepository,
	jobs domain.JobRepository,
	apps domain.ApplicationRepository,
) domain.UserUsecase {
	return &userUsecase{
		users: users,
		apps:  apps,
		reads: readModels{jobs: jobs, companies: companies, users: users},
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	user.Password = ""
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID string, upd domain.UserUpdate) (*domain.User, error) {
	if _, err := u.users.Update(ctx, userID, upd); err != nil {
		return nil, err
	}
	return u.GetProfile(ctx, userID)
}

func (u *userUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := u.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	verified, err := u.users.Authenticate(ctx, user.Email, currentPassword)
	if err != nil {
		return err
	}
	if verified == nil {
		return apperror.FieldError("currentPassword", "Current password is incorrect")
	}
	_, err = u.users.UpdatePassword(ctx, userID, newPassword)
	return err
}

func (u *userUsecase) AddExperience(ctx context.Context, userID string, exp domain.Experience) (*domain.User, error) {
	if _, err := u.users.AddExperience(ctx, userID, exp); err != nil {
		return nil, err
	}
	return u.GetProfile(ctx, userID)
}

func (u *userUsecase) AddEducation(ctx context.Context, userID string, edu domain.Education) (*domain.User, error) {
	if _, err := u.users.AddEducation(ctx, userID, edu); err != nil {
		return nil, err
	}
	return u.GetProfile(ctx, userID)
}

func (u *userUsecase) ListApplications(ctx context.Context, userID string, page domain.Page) ([]domain.ApplicationDetail, int64, error) {
	apps, err := u.apps.FindByUser(ctx, userID, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := u.apps.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	details, err := u.reads.applicationDetails(ctx, apps)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}
