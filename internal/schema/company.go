package schema

import (
	"time"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/docid"
	"go-jobsearch-backend/pkg/validation"
)

type CompanyRegisterInput struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	Industry        string `json:"industry" validate:"required,min=1,max=100"`
	Description     string `json:"description" validate:"required,min=1,max=5000"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Website         string `json:"website" validate:"omitempty,max=500"`
	Phone           string `json:"phone" validate:"omitempty,max=20,valid_phone"`
	Address         string `json:"address" validate:"omitempty,max=200"`
	City            string `json:"city" validate:"omitempty,max=100"`
	Country         string `json:"country" validate:"omitempty,max=100"`
	Logo            string `json:"logo" validate:"omitempty,max=500"`
}

func NewCompany(in CompanyRegisterInput) (*domain.Company, error) {
	in.Email = normalizeEmail(in.Email)

	errs := validation.Errors{}
	if err := check(in, errs); err != nil {
		return nil, err
	}
	if in.ConfirmPassword != "" && in.ConfirmPassword != in.Password {
		errs.Add("confirmPassword", msgPasswordsMatch)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &domain.Company{
		Name:        in.Name,
		Industry:    in.Industry,
		Description: in.Description,
		Email:       in.Email,
		Password:    in.Password,
		Website:     in.Website,
		Phone:       in.Phone,
		Address:     in.Address,
		City:        in.City,
		Country:     in.Country,
		Logo:        in.Logo,
	}, nil
}

type CompanyUpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Email       *string `json:"email" validate:"omitempty,email,max=254"`
	Website     *string `json:"website" validate:"omitempty,max=500"`
	Phone       *string `json:"phone" validate:"omitempty,max=20,valid_phone"`
	Address     *string `json:"address" validate:"omitempty,max=200"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	Logo        *string `json:"logo" validate:"omitempty,max=500"`
}

func CompanyUpdate(in CompanyUpdateInput) (domain.CompanyUpdate, error) {
	in.Email = normalizeEmailPtr(in.Email)

	errs := validation.Errors{}
	if err := check(in, errs); err != nil {
		return domain.CompanyUpdate{}, err
	}
	notBlank(errs, "name", in.Name)
	notBlank(errs, "industry", in.Industry)
	notBlank(errs, "description", in.Description)
	notBlank(errs, "email", in.Email)
	if err := errs.Err(); err != nil {
		return domain.CompanyUpdate{}, err
	}

	return domain.CompanyUpdate{
		Name:        in.Name,
		Industry:    in.Industry,
		Description: in.Description,
		Email:       in.Email,
		Website:     in.Website,
		Phone:       in.Phone,
		Address:     in.Address,
		City:        in.City,
		Country:     in.Country,
		Logo:        in.Logo,
	}, nil
}

type CompanyOutput struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Website     string    `json:"website,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	Jobs        []string  `json:"jobs"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func PresentCompany(c *domain.Company) *CompanyOutput {
	if c == nil {
		return nil
	}
	return &CompanyOutput{
		ID:          docid.Hex(c.ID),
		Name:        c.Name,
		Industry:    c.Industry,
		Description: c.Description,
		Email:       c.Email,
		Website:     c.Website,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		Country:     c.Country,
		Logo:        c.Logo,
		Jobs:        docid.HexAll(c.Jobs),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func PresentCompanies(companies []domain.Company) []CompanyOutput {
	out := make([]CompanyOutput, 0, len(companies))
	for i := range companies {
		out = append(out, *PresentCompany(&companies[i]))
	}
	return out
}
