package schema

import (
	"time"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/validation"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Credentials returns the normalized email and the password.
func Credentials(in LoginInput) (string, string, error) {
	in.Email = normalizeEmail(in.Email)
	errs := validation.Errors{}
	if err := check(in, errs); err != nil {
		return "", "", err
	}
	if err := errs.Err(); err != nil {
		return "", "", err
	}
	return in.Email, in.Password, nil
}

type PasswordChangeInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// NewPassword returns the current and new password of a change request.
func NewPassword(in PasswordChangeInput) (string, string, error) {
	errs := validation.Errors{}
	if err := check(in, errs); err != nil {
		return "", "", err
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.NewPassword {
		errs.Add("confirmPassword", msgPasswordsMatch)
	}
	if err := errs.Err(); err != nil {
		return "", "", err
	}
	return in.CurrentPassword, in.NewPassword, nil
}

type SessionOutput struct {
	Token     string         `json:"token"`
	TokenType string         `json:"tokenType"`
	ExpiresAt time.Time      `json:"expiresAt"`
	UserType  string         `json:"userType"`
	User      *UserOutput    `json:"user,omitempty"`
	Company   *CompanyOutput `json:"company,omitempty"`
}

func PresentSession(s *domain.Session) *SessionOutput {
	if s == nil {
		return nil
	}
	out := &SessionOutput{
		Token:     s.Token,
		TokenType: "Bearer",
		ExpiresAt: s.ExpiresAt,
		User:      PresentUser(s.User),
		Company:   PresentCompany(s.Company),
	}
	if s.Company != nil {
		out.UserType = domain.ActorCompany
	} else {
		out.UserType = domain.ActorUser
	}
	return out
}
