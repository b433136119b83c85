package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is a hiring organisation as stored in the companies collection.
// Jobs is a denormalized back-reference; Job.CompanyID is authoritative.
type Company struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Industry    string               `bson:"industry" json:"industry"`
	Description string               `bson:"description" json:"description"`
	Email       string               `bson:"email" json:"email"`
	Password    string               `bson:"password,omitempty" json:"-"`
	Website     string               `bson:"website,omitempty" json:"website,omitempty"`
	Phone       string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string               `bson:"address,omitempty" json:"address,omitempty"`
	City        string               `bson:"city,omitempty" json:"city,omitempty"`
	Country     string               `bson:"country,omitempty" json:"country,omitempty"`
	Logo        string               `bson:"logo,omitempty" json:"logo,omitempty"`
	Jobs        []primitive.ObjectID `bson:"jobs" json:"jobs"`
	Timestamps  `bson:",inline"`
}

func (c *Company) SetID(id primitive.ObjectID) { c.ID = id }

// CompanyUpdate is a partial profile update; nil fields are left untouched.
type CompanyUpdate struct {
	Name        *string
	Industry    *string
	Description *string
	Email       *string
	Website     *string
	Phone       *string
	Address     *string
	City        *string
	Country     *string
	Logo        *string
}

func (u CompanyUpdate) SetDoc() bson.D {
	var set bson.D
	set = appendSet(set, "name", u.Name)
	set = appendSet(set, "industry", u.Industry)
	set = appendSet(set, "description", u.Description)
	set = appendSet(set, "email", u.Email)
	set = appendSet(set, "website", u.Website)
	set = appendSet(set, "phone", u.Phone)
	set = appendSet(set, "address", u.Address)
	set = appendSet(set, "city", u.City)
	set = appendSet(set, "country", u.Country)
	set = appendSet(set, "logo", u.Logo)
	return set
}

type CompanyRepository interface {
	// Create hashes company.Password, applies defaults and rejects a taken email.
	Create(ctx context.Context, company *Company) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id string) (*Company, error)
	FindByEmail(ctx context.Context, email string) (*Company, error)
	FindAll(ctx context.Context, page Page) ([]Company, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, upd CompanyUpdate) (int64, error)
	UpdatePassword(ctx context.Context, id, password string) (int64, error)
	Authenticate(ctx context.Context, email, password string) (*Company, error)
	// AddJob reports false when the reference was already present.
	AddJob(ctx context.Context, companyID, jobID string) (bool, error)
	RemoveJob(ctx context.Context, companyID, jobID string) (bool, error)
}

type CompanyUsecase interface {
	List(ctx context.Context, page Page) ([]Company, int64, error)
	Get(ctx context.Context, companyID string) (*Company, error)
	UpdateProfile(ctx context.Context, companyID string, upd CompanyUpdate) (*Company, error)
	ChangePassword(ctx context.Context, companyID, currentPassword, newPassword string) error
	ListJobs(ctx context.Context, companyID string, page Page) ([]Job, int64, error)
}
