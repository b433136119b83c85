package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Salary struct {
	Min      int64  `bson:"min" json:"min"`
	Max      int64  `bson:"max" json:"max"`
	Currency string `bson:"currency" json:"currency"`
}

// Job is a posting as stored in the jobs collection. Applications is a
// denormalized back-reference; Application.JobID is authoritative.
type Job struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title        string               `bson:"title" json:"title"`
	Description  string               `bson:"description" json:"description"`
	Location     string               `bson:"location" json:"location"`
	CompanyID    primitive.ObjectID   `bson:"company_id" json:"company_id"`
	Requirements []string             `bson:"requirements" json:"requirements"`
	Type         JobType              `bson:"type" json:"type"`
	Salary       *Salary              `bson:"salary,omitempty" json:"salary,omitempty"`
	StartDate    *time.Time           `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate      *time.Time           `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Applications []primitive.ObjectID `bson:"applications" json:"applications"`
	Timestamps   `bson:",inline"`
}

func (j *Job) SetID(id primitive.ObjectID) { j.ID = id }

// JobWithCompany is the read model for a job shown with its employer.
// Company is nil when the referenced company no longer exists.
type JobWithCompany struct {
	Job     Job
	Company *Company
}

// JobUpdate is a partial job update; nil fields are left untouched.
type JobUpdate struct {
	Title        *string
	Description  *string
	Location     *string
	Requirements *[]string
	Type         *JobType
	Salary       *Salary
	StartDate    *time.Time
	EndDate      *time.Time
}

// DatesOrdered reports whether applying u to job keeps end_date after
// start_date. Unset dates fall back to the stored ones.
func (u JobUpdate) DatesOrdered(job *Job) bool {
	start, end := job.StartDate, job.EndDate
	if u.StartDate != nil {
		start = u.StartDate
	}
	if u.EndDate != nil {
		end = u.EndDate
	}
	return start == nil || end == nil || end.After(*start)
}

func (u JobUpdate) SetDoc() bson.D {
	var set bson.D
	set = appendSet(set, "title", u.Title)
	set = appendSet(set, "description", u.Description)
	set = appendSet(set, "location", u.Location)
	set = appendSet(set, "requirements", u.Requirements)
	set = appendSet(set, "type", u.Type)
	set = appendSet(set, "salary", u.Salary)
	set = appendSet(set, "start_date", u.StartDate)
	set = appendSet(set, "end_date", u.EndDate)
	return set
}

// JobFilters are the optional search clauses; set clauses are ANDed.
type JobFilters struct {
	Keyword   string
	Location  string
	Type      JobType
	CompanyID *primitive.ObjectID
	MinSalary *int64
	MaxSalary *int64
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id string) (*Job, error)
	FindByCompany(ctx context.Context, companyID string, page Page) ([]Job, error)
	CountByCompany(ctx context.Context, companyID string) (int64, error)
	Search(ctx context.Context, filters JobFilters, page Page) ([]Job, error)
	Count(ctx context.Context, filters JobFilters) (int64, error)
	Update(ctx context.Context, id string, upd JobUpdate) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	// AddApplication reports false when the reference was already present.
	AddApplication(ctx context.Context, jobID, applicationID string) (bool, error)
}

type JobUsecase interface {
	Search(ctx context.Context, filters JobFilters, page Page) ([]JobWithCompany, int64, error)
	Get(ctx context.Context, jobID string) (*JobWithCompany, error)
	Create(ctx context.Context, companyID string, job *Job) (*JobWithCompany, error)
	Update(ctx context.Context, companyID, jobID string, upd JobUpdate) (*JobWithCompany, error)
	Delete(ctx context.Context, companyID, jobID string) error
	Apply(ctx context.Context, userID, jobID string, app *Application) (*ApplicationDetail, error)
	ListApplications(ctx context.Context, companyID, jobID string, page Page) ([]ApplicationDetail, int64, error)
}
