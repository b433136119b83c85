package schema

import (
	"strings"
	"time"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/docid"
	"go-jobsearch-backend/pkg/validation"
)

type ApplicationInput struct {
	CoverLetter string `json:"coverLetter" validate:"omitempty,max=5000"`
	Resume      string `json:"resume" validate:"omitempty,max=500"`
}

// NewApplication validates an application by userID for jobID. New
// applications always start as PENDING.
func NewApplication(in ApplicationInput, userID, jobID string) (*domain.Application, error) {
	errs := validation.Errors{}
	if err := check(in, errs); err != nil {
		return nil, err
	}
	jid, err := docid.ParseField("jobId", jobID)
	if err := errs.Merge(err); err != nil {
		return nil, err
	}
	uid, err := docid.ParseField("userId", userID)
	if err := errs.Merge(err); err != nil {
		return nil, err
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &domain.Application{
		JobID:       jid,
		UserID:      uid,
		Status:      domain.ApplicationStatusPending,
		CoverLetter: in.CoverLetter,
		Resume:      in.Resume,
	}, nil
}

type StatusUpdateInput struct {
	Status string `json:"status"`
}

func StatusUpdate(in StatusUpdateInput) (domain.ApplicationStatus, error) {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		return "", apperror.FieldError("status", msgRequired)
	}
	if err := validation.Enum("status", status, domain.ApplicationStatuses()); err != nil {
		return "", err
	}
	return domain.ApplicationStatus(status), nil
}

type ApplicationOutput struct {
	ID          string      `json:"id"`
	JobID       string      `json:"jobId"`
	UserID      string      `json:"userId"`
	Status      string      `json:"status"`
	CoverLetter string      `json:"coverLetter,omitempty"`
	Resume      string      `json:"resume,omitempty"`
	Job         *JobOutput  `json:"job,omitempty"`
	User        *UserOutput `json:"user,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func PresentApplication(a *domain.Application) *ApplicationOutput {
	if a == nil {
		return nil
	}
	return &ApplicationOutput{
		ID:          docid.Hex(a.ID),
		JobID:       docid.Hex(a.JobID),
		UserID:      docid.Hex(a.UserID),
		Status:      string(a.Status),
		CoverLetter: a.CoverLetter,
		Resume:      a.Resume,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// PresentApplicationDetail nests the job (with its company) and the
// applicant when they are loaded.
func PresentApplicationDetail(d *domain.ApplicationDetail) *ApplicationOutput {
	if d == nil {
		return nil
	}
	out := PresentApplication(&d.Application)
	out.Job = PresentJobWithCompany(d.Job)
	out.User = PresentUser(d.User)
	return out
}

func PresentApplicationDetails(details []domain.ApplicationDetail) []ApplicationOutput {
	out := make([]ApplicationOutput, 0, len(details))
	for i := range details {
		out = append(out, *PresentApplicationDetail(&details[i]))
	}
	return out
}
