package schema

import (
	"strings"
	"time"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/docid"
	"go-jobsearch-backend/pkg/validation"
)

const msgSalaryRange = "Maximum salary must be greater than or equal to minimum salary"

type SalaryInput struct {
	Min      *int64 `json:"min" validate:"required,gte=0"`
	Max      *int64 `json:"max" validate:"required,gte=0"`
	Currency string `json:"currency" validate:"required,currency"`
}

type JobInput struct {
	Title        string       `json:"title" validate:"required,min=1,max=200"`
	Description  string       `json:"description" validate:"required,min=1,max=10000"`
	Location     string       `json:"location" validate:"required,min=1,max=200"`
	Requirements []string     `json:"requirements" validate:"required,min=1,max=20,dive,min=1,max=500"`
	Type         string       `json:"type"`
	Salary       *SalaryInput `json:"salary"`
	StartDate    *string      `json:"startDate" validate:"omitempty,date"`
	EndDate      *string      `json:"endDate" validate:"omitempty,date"`
}

// NewJob validates a posting for companyID, which normally comes from the
// caller's token. Type defaults to FULL_TIME.
func NewJob(in JobInput, companyID string) (*domain.Job, error) {
	errs := validation.Errors{}
	if err := check(in, errs); err != nil {
		return nil, err
	}
	cid, err := docid.ParseField("companyId", companyID)
	if err := errs.Merge(err); err != nil {
		return nil, err
	}
	jobType := domain.JobTypeFullTime
	if in.Type != "" {
		jobType = jobTypeOf(errs, in.Type)
	}
	salary := salaryOf(errs, in.Salary)
	start, end := parseDate(in.StartDate), parseDate(in.EndDate)
	checkDateOrder(errs, "endDate", start, end)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &domain.Job{
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		CompanyID:    cid,
		Requirements: in.Requirements,
		Type:         jobType,
		Salary:       salary,
		StartDate:    start,
		EndDate:      end,
	}, nil
}

type JobUpdateInput struct {
	Title        *string      `json:"title" validate:"omitempty,max=200"`
	Description  *string      `json:"description" validate:"omitempty,max=10000"`
	Location     *string      `json:"location" validate:"omitempty,max=200"`
	Requirements *[]string    `json:"requirements" validate:"omitempty,min=1,max=20,dive,min=1,max=500"`
	Type         *string      `json:"type"`
	Salary       *SalaryInput `json:"salary"`
	StartDate    *string      `json:"startDate" validate:"omitempty,date"`
	EndDate      *string      `json:"endDate" validate:"omitempty,date"`
}

func JobUpdate(in JobUpdateInput) (domain.JobUpdate, error) {
	errs := validation.Errors{}
	if err := check(in, errs); err != nil {
		return domain.JobUpdate{}, err
	}
	notBlank(errs, "title", in.Title)
	notBlank(errs, "description", in.Description)
	notBlank(errs, "location", in.Location)
	if in.Requirements != nil && len(*in.Requirements) == 0 {
		errs.Add("requirements", "Must contain at least 1 items.")
	}

	upd := domain.JobUpdate{
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		Requirements: in.Requirements,
		Salary:       salaryOf(errs, in.Salary),
		StartDate:    parseDate(in.StartDate),
		EndDate:      parseDate(in.EndDate),
	}
	if in.Type != nil {
		t := jobTypeOf(errs, *in.Type)
		upd.Type = &t
	}
	checkDateOrder(errs, "endDate", upd.StartDate, upd.EndDate)
	if err := errs.Err(); err != nil {
		return domain.JobUpdate{}, err
	}
	return upd, nil
}

func jobTypeOf(errs validation.Errors, raw string) domain.JobType {
	_ = errs.Merge(validation.Enum("type", raw, domain.JobTypes()))
	return domain.JobType(raw)
}

func salaryOf(errs validation.Errors, in *SalaryInput) *domain.Salary {
	if in == nil || in.Min == nil || in.Max == nil {
		return nil
	}
	if *in.Max < *in.Min {
		errs.Add("salary", msgSalaryRange)
	}
	return &domain.Salary{
		Min:      *in.Min,
		Max:      *in.Max,
		Currency: strings.ToUpper(in.Currency),
	}
}

// JobSearchInput is read from the query string.
type JobSearchInput struct {
	Keyword   string `form:"keyword"`
	Location  string `form:"location"`
	Type      string `form:"type"`
	CompanyID string `form:"companyId"`
	MinSalary string `form:"minSalary"`
	MaxSalary string `form:"maxSalary"`
	PaginationInput
}

// JobFilters validates search parameters. The page limit defaults to 10.
func JobFilters(in JobSearchInput) (domain.JobFilters, domain.Page, error) {
	errs := validation.Errors{}
	filters := domain.JobFilters{
		Keyword:  strings.TrimSpace(in.Keyword),
		Location: strings.TrimSpace(in.Location),
	}
	if t := strings.TrimSpace(in.Type); t != "" {
		filters.Type = jobTypeOf(errs, t)
	}
	if c := strings.TrimSpace(in.CompanyID); c != "" {
		cid, err := docid.ParseField("companyId", c)
		if err == nil {
			filters.CompanyID = &cid
		}
		_ = errs.Merge(err)
	}
	filters.MinSalary = nonNegative(errs, "minSalary", in.MinSalary)
	filters.MaxSalary = nonNegative(errs, "maxSalary", in.MaxSalary)
	page := pageFrom(errs, in.PaginationInput, DefaultSearchLimit)

	if err := errs.Err(); err != nil {
		return domain.JobFilters{}, domain.Page{}, err
	}
	return filters, page, nil
}

func nonNegative(errs validation.Errors, field, raw string) *int64 {
	n, ok := parseInt(errs, field, raw)
	if !ok || n == nil {
		return nil
	}
	if *n < 0 {
		errs.Add(field, "Must be greater than or equal to 0.")
		return nil
	}
	return n
}

type SalaryOutput struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

type JobOutput struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Location     string         `json:"location"`
	CompanyID    string         `json:"companyId"`
	Requirements []string       `json:"requirements"`
	Type         string         `json:"type"`
	Salary       *SalaryOutput  `json:"salary,omitempty"`
	StartDate    *time.Time     `json:"startDate,omitempty"`
	EndDate      *time.Time     `json:"endDate,omitempty"`
	Applications []string       `json:"applications"`
	Company      *CompanyOutput `json:"company,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func PresentJob(j *domain.Job) *JobOutput {
	if j == nil {
		return nil
	}
	out := &JobOutput{
		ID:           docid.Hex(j.ID),
		Title:        j.Title,
		Description:  j.Description,
		Location:     j.Location,
		CompanyID:    docid.Hex(j.CompanyID),
		Requirements: emptyIfNil(j.Requirements),
		Type:         string(j.Type),
		StartDate:    j.StartDate,
		EndDate:      j.EndDate,
		Applications: docid.HexAll(j.Applications),
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
	if j.Salary != nil {
		out.Salary = &SalaryOutput{Min: j.Salary.Min, Max: j.Salary.Max, Currency: j.Salary.Currency}
	}
	return out
}

func PresentJobs(jobs []domain.Job) []JobOutput {
	out := make([]JobOutput, 0, len(jobs))
	for i := range jobs {
		out = append(out, *PresentJob(&jobs[i]))
	}
	return out
}

// PresentJobWithCompany nests the employer under "company".
func PresentJobWithCompany(j *domain.JobWithCompany) *JobOutput {
	if j == nil {
		return nil
	}
	out := PresentJob(&j.Job)
	out.Company = PresentCompany(j.Company)
	return out
}

func PresentJobsWithCompany(jobs []domain.JobWithCompany) []JobOutput {
	out := make([]JobOutput, 0, len(jobs))
	for i := range jobs {
		out = append(out, *PresentJobWithCompany(&jobs[i]))
	}
	return out
}
