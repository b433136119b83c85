package schema

import (
	"time"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/docid"
	"go-jobsearch-backend/pkg/validation"
)

type UserRegisterInput struct {
	FirstName       string   `json:"firstName" validate:"required,min=1,max=100,valid_name"`
	LastName        string   `json:"lastName" validate:"required,min=1,max=100,valid_name"`
	Email           string   `json:"email" validate:"required,email,max=254"`
	Password        string   `json:"password" validate:"required,min=6,max=128"`
	ConfirmPassword string   `json:"confirmPassword" validate:"required"`
	Phone           string   `json:"phone" validate:"omitempty,max=20,valid_phone"`
	Address         string   `json:"address" validate:"omitempty,max=200"`
	City            string   `json:"city" validate:"omitempty,max=100"`
	Country         string   `json:"country" validate:"omitempty,max=100"`
	ProfilePicture  string   `json:"profilePicture" validate:"omitempty,max=500"`
	Resume          string   `json:"resume" validate:"omitempty,max=500"`
	Skills          []string `json:"skills" validate:"omitempty,max=50,dive,min=1,max=100"`
}

// NewUser validates a registration. The returned user still carries the
// plaintext password; the repository hashes it.
func NewUser(in UserRegisterInput) (*domain.User, error) {
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

	return &domain.User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Password:       in.Password,
		Phone:          in.Phone,
		Address:        in.Address,
		City:           in.City,
		Country:        in.Country,
		ProfilePicture: in.ProfilePicture,
		Resume:         in.Resume,
		Skills:         in.Skills,
	}, nil
}

// UserUpdateInput is a partial profile update. Email and password are not
// part of it.
type UserUpdateInput struct {
	FirstName      *string   `json:"firstName" validate:"omitempty,max=100,valid_name"`
	LastName       *string   `json:"lastName" validate:"omitempty,max=100,valid_name"`
	Phone          *string   `json:"phone" validate:"omitempty,max=20,valid_phone"`
	Address        *string   `json:"address" validate:"omitempty,max=200"`
	City           *string   `json:"city" validate:"omitempty,max=100"`
	Country        *string   `json:"country" validate:"omitempty,max=100"`
	ProfilePicture *string   `json:"profilePicture" validate:"omitempty,max=500"`
	Resume         *string   `json:"resume" validate:"omitempty,max=500"`
	Skills         *[]string `json:"skills" validate:"omitempty,max=50,dive,min=1,max=100"`
}

func UserUpdate(in UserUpdateInput) (domain.UserUpdate, error) {
	errs := validation.Errors{}
	if err := check(in, errs); err != nil {
		return domain.UserUpdate{}, err
	}
	notBlank(errs, "firstName", in.FirstName)
	notBlank(errs, "lastName", in.LastName)
	if err := errs.Err(); err != nil {
		return domain.UserUpdate{}, err
	}

	return domain.UserUpdate{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Phone:          in.Phone,
		Address:        in.Address,
		City:           in.City,
		Country:        in.Country,
		ProfilePicture: in.ProfilePicture,
		Resume:         in.Resume,
		Skills:         in.Skills,
	}, nil
}

type ExperienceInput struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Company     string  `json:"company" validate:"required,min=1,max=200"`
	Location    string  `json:"location" validate:"omitempty,max=200"`
	StartDate   string  `json:"startDate" validate:"required,date"`
	EndDate     *string `json:"endDate" validate:"omitempty,date"`
	Current     bool    `json:"current"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
}

func NewExperience(in ExperienceInput) (domain.Experience, error) {
	errs := validation.Errors{}
	if err := check(in, errs); err != nil {
		return domain.Experience{}, err
	}
	start, end := period(errs, in.StartDate, in.EndDate)
	if err := errs.Err(); err != nil {
		return domain.Experience{}, err
	}

	return domain.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		StartDate:   start,
		EndDate:     end,
		Current:     in.Current,
		Description: in.Description,
	}, nil
}

type EducationInput struct {
	Institution string  `json:"institution" validate:"required,min=1,max=200"`
	Degree      string  `json:"degree" validate:"required,min=1,max=200"`
	Field       string  `json:"field" validate:"required,min=1,max=200"`
	StartDate   string  `json:"startDate" validate:"required,date"`
	EndDate     *string `json:"endDate" validate:"omitempty,date"`
	Current     bool    `json:"current"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
}

func NewEducation(in EducationInput) (domain.Education, error) {
	errs := validation.Errors{}
	if err := check(in, errs); err != nil {
		return domain.Education{}, err
	}
	start, end := period(errs, in.StartDate, in.EndDate)
	if err := errs.Err(); err != nil {
		return domain.Education{}, err
	}

	return domain.Education{
		Institution: in.Institution,
		Degree:      in.Degree,
		Field:       in.Field,
		StartDate:   start,
		EndDate:     end,
		Current:     in.Current,
		Description: in.Description,
	}, nil
}

func period(errs validation.Errors, startRaw string, endRaw *string) (time.Time, *time.Time) {
	start := parseDate(&startRaw)
	end := parseDate(endRaw)
	checkDateOrder(errs, "endDate", start, end)
	if start == nil {
		return time.Time{}, end
	}
	return *start, end
}

type ExperienceOutput struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type EducationOutput struct {
	ID          string     `json:"id"`
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type UserOutput struct {
	ID             string             `json:"id"`
	FirstName      string             `json:"firstName"`
	LastName       string             `json:"lastName"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone,omitempty"`
	Address        string             `json:"address,omitempty"`
	City           string             `json:"city,omitempty"`
	Country        string             `json:"country,omitempty"`
	ProfilePicture string             `json:"profilePicture,omitempty"`
	Resume         string             `json:"resume,omitempty"`
	Skills         []string           `json:"skills"`
	Experience     []ExperienceOutput `json:"experience"`
	Education      []EducationOutput  `json:"education"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func PresentUser(u *domain.User) *UserOutput {
	if u == nil {
		return nil
	}
	out := &UserOutput{
		ID:             docid.Hex(u.ID),
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Phone:          u.Phone,
		Address:        u.Address,
		City:           u.City,
		Country:        u.Country,
		ProfilePicture: u.ProfilePicture,
		Resume:         u.Resume,
		Skills:         emptyIfNil(u.Skills),
		Experience:     make([]ExperienceOutput, 0, len(u.Experience)),
		Education:      make([]EducationOutput, 0, len(u.Education)),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
	for _, e := range u.Experience {
		out.Experience = append(out.Experience, ExperienceOutput{
			ID:          e.ID,
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			Description: e.Description,
		})
	}
	for _, e := range u.Education {
		out.Education = append(out.Education, EducationOutput{
			ID:          e.ID,
			Institution: e.Institution,
			Degree:      e.Degree,
			Field:       e.Field,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			Description: e.Description,
		})
	}
	return out
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
