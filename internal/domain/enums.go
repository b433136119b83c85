package domain

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeTemporary  JobType = "TEMPORARY"
	JobTypeInternship JobType = "INTERNSHIP"
)

func JobTypes() []string {
	return []string{
		string(JobTypeFullTime),
		string(JobTypePartTime),
		string(JobTypeContract),
		string(JobTypeTemporary),
		string(JobTypeInternship),
	}
}

func (t JobType) IsValid() bool {
	return contains(JobTypes(), string(t))
}

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusReviewing ApplicationStatus = "REVIEWING"
	ApplicationStatusInterview ApplicationStatus = "INTERVIEW"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
)

func ApplicationStatuses() []string {
	return []string{
		string(ApplicationStatusPending),
		string(ApplicationStatusReviewing),
		string(ApplicationStatusInterview),
		string(ApplicationStatusRejected),
		string(ApplicationStatusAccepted),
	}
}

func (s ApplicationStatus) IsValid() bool {
	return contains(ApplicationStatuses(), string(s))
}

// ValidateStatusTransition is the single place application status moves are
// checked. Every status is currently reachable from every other one.
func ValidateStatusTransition(from, to ApplicationStatus) bool {
	return to.IsValid()
}

// Actor types carried in access tokens.
const (
	ActorUser    = "user"
	ActorCompany = "company"
)

func contains(values []string, v string) bool {
	for _, allowed := range values {
		if allowed == v {
			return true
		}
	}
	return false
}
