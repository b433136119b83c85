package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application is a user's application to a job. At most one exists per
// (user_id, job_id) pair.
type Application struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID       primitive.ObjectID `bson:"job_id" json:"job_id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	Status      ApplicationStatus  `bson:"status" json:"status"`
	CoverLetter string             `bson:"cover_letter,omitempty" json:"cover_letter,omitempty"`
	Resume      string             `bson:"resume,omitempty" json:"resume,omitempty"`
	Timestamps  `bson:",inline"`
}

func (a *Application) SetID(id primitive.ObjectID) { a.ID = id }

// ApplicationDetail is the read model for an application shown with its
// job (and employer) and applicant. Either side is nil when missing.
type ApplicationDetail struct {
	Application Application
	Job         *JobWithCompany
	User        *User
}

type ApplicationRepository interface {
	// Create rejects a second application for the same user and job.
	Create(ctx context.Context, app *Application) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id string) (*Application, error)
	FindByUser(ctx context.Context, userID string, page Page) ([]Application, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	FindByJob(ctx context.Context, jobID string, page Page) ([]Application, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
	FindByUserAndJob(ctx context.Context, userID, jobID string) (*Application, error)
	FindByStatus(ctx context.Context, status ApplicationStatus, page Page) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) (bool, error)
}

type ApplicationUsecase interface {
	Get(ctx context.Context, userID, applicationID string) (*ApplicationDetail, error)
	UpdateStatus(ctx context.Context, companyID, applicationID string, status ApplicationStatus) (*ApplicationDetail, error)
}
