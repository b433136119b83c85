package schema_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/internal/schema"
	"go-jobsearch-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ptr[T any](v T) *T { return &v }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperror.KindValidation, appErr.Kind)
	return appErr.Fields
}

func validUserInput() schema.UserRegisterInput {
	return schema.UserRegisterInput{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           " Ada@Example.COM ",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Phone:           "+1 (555) 123-4567",
		City:            "London",
		Skills:          []string{"go", "mongodb"},
	}
}

func validJobInput() schema.JobInput {
	return schema.JobInput{
		Title:        "Backend Engineer",
		Description:  "Build APIs",
		Location:     "Remote",
		Requirements: []string{"Go", "MongoDB"},
		Type:         "CONTRACT",
		Salary:       &schema.SalaryInput{Min: ptr[int64](50000), Max: ptr[int64](80000), Currency: "usd"},
		StartDate:    ptr("2024-01-01"),
		EndDate:      ptr("2024-12-31"),
	}
}

func TestNewUser(t *testing.T) {
	t.Run("Should normalize email and keep every field", func(t *testing.T) {
		user, err := schema.NewUser(validUserInput())

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "secret123", user.Password)
		assert.Equal(t, "+1 (555) 123-4567", user.Phone)
		assert.Equal(t, []string{"go", "mongodb"}, user.Skills)
	})

	t.Run("Should report every violated field at once", func(t *testing.T) {
		in := validUserInput()
		in.FirstName = ""
		in.Email = "not-an-email"
		in.Password = "123"
		in.Phone = "12345"

		fields := fieldsOf(t, func() error { _, err := schema.NewUser(in); return err }())

		assert.Equal(t, "Missing data for required field.", fields["firstName"])
		assert.Equal(t, "Not a valid email address.", fields["email"])
		assert.Equal(t, "Must be at least 6 characters.", fields["password"])
		assert.Contains(t, fields, "phone")
	})

	t.Run("Should reject mismatched confirmation", func(t *testing.T) {
		in := validUserInput()
		in.ConfirmPassword = "different"

		_, err := schema.NewUser(in)

		assert.Equal(t, "Passwords must match", fieldsOf(t, err)["confirmPassword"])
	})
}

func TestUserUpdate(t *testing.T) {
	t.Run("Should leave unsupplied fields out of the update", func(t *testing.T) {
		upd, err := schema.UserUpdate(schema.UserUpdateInput{City: ptr("Paris")})

		require.NoError(t, err)
		assert.Equal(t, "Paris", *upd.City)
		assert.Nil(t, upd.FirstName)
		assert.Nil(t, upd.Skills)
		assert.Len(t, upd.SetDoc(), 1)
	})

	t.Run("Should reject a blank required field", func(t *testing.T) {
		_, err := schema.UserUpdate(schema.UserUpdateInput{FirstName: ptr("  ")})

		assert.Contains(t, fieldsOf(t, err), "firstName")
	})
}

func TestNewExperience(t *testing.T) {
	t.Run("Should parse dates in UTC", func(t *testing.T) {
		exp, err := schema.NewExperience(schema.ExperienceInput{
			Title:     "Engineer",
			Company:   "Acme",
			StartDate: "2020-01-15",
			EndDate:   ptr("2021-06-30"),
		})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC), exp.StartDate)
		require.NotNil(t, exp.EndDate)
		assert.Equal(t, time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC), *exp.EndDate)
	})

	t.Run("Should reject an end date before the start date", func(t *testing.T) {
		_, err := schema.NewExperience(schema.ExperienceInput{
			Title:     "Engineer",
			Company:   "Acme",
			StartDate: "2021-01-01",
			EndDate:   ptr("2020-01-01"),
		})

		assert.Contains(t, fieldsOf(t, err), "endDate")
	})

	t.Run("Should reject an unparseable date", func(t *testing.T) {
		_, err := schema.NewEducation(schema.EducationInput{
			Institution: "MIT",
			Degree:      "BSc",
			Field:       "CS",
			StartDate:   "yesterday",
		})

		assert.Equal(t, "Not a valid date.", fieldsOf(t, err)["startDate"])
	})
}

func TestNewJob(t *testing.T) {
	companyID := primitive.NewObjectID()

	t.Run("Should round trip through the outbound schema", func(t *testing.T) {
		job, err := schema.NewJob(validJobInput(), companyID.Hex())
		require.NoError(t, err)

		out := schema.PresentJob(job)

		assert.Equal(t, "Backend Engineer", out.Title)
		assert.Equal(t, "Build APIs", out.Description)
		assert.Equal(t, "Remote", out.Location)
		assert.Equal(t, companyID.Hex(), out.CompanyID)
		assert.Equal(t, []string{"Go", "MongoDB"}, out.Requirements)
		assert.Equal(t, "CONTRACT", out.Type)
		assert.Equal(t, &schema.SalaryOutput{Min: 50000, Max: 80000, Currency: "USD"}, out.Salary)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *out.StartDate)
		assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), *out.EndDate)
		assert.Equal(t, []string{}, out.Applications)
	})

	t.Run("Should default the type to FULL_TIME", func(t *testing.T) {
		in := validJobInput()
		in.Type = ""

		job, err := schema.NewJob(in, companyID.Hex())

		require.NoError(t, err)
		assert.Equal(t, domain.JobTypeFullTime, job.Type)
	})

	t.Run("Should list every allowed type for an unknown one", func(t *testing.T) {
		in := validJobInput()
		in.Type = "FREELANCE"

		_, err := schema.NewJob(in, companyID.Hex())

		msg := fieldsOf(t, err)["type"]
		for _, allowed := range domain.JobTypes() {
			assert.Contains(t, msg, allowed)
		}
	})

	t.Run("Should reject a maximum salary below the minimum", func(t *testing.T) {
		in := validJobInput()
		in.Salary = &schema.SalaryInput{Min: ptr[int64](80000), Max: ptr[int64](50000), Currency: "USD"}

		_, err := schema.NewJob(in, companyID.Hex())

		assert.Equal(t, "Maximum salary must be greater than or equal to minimum salary", fieldsOf(t, err)["salary"])
	})

	t.Run("Should key nested salary errors by path", func(t *testing.T) {
		in := validJobInput()
		in.Salary = &schema.SalaryInput{Min: ptr[int64](-1), Currency: "US"}

		fields := fieldsOf(t, func() error { _, err := schema.NewJob(in, companyID.Hex()); return err }())

		assert.Contains(t, fields, "salary.min")
		assert.Contains(t, fields, "salary.max")
		assert.Contains(t, fields, "salary.currency")
	})

	t.Run("Should report a malformed company id as a field error", func(t *testing.T) {
		in := validJobInput()
		in.Title = ""

		fields := fieldsOf(t, func() error { _, err := schema.NewJob(in, "nope"); return err }())

		assert.Contains(t, fields, "companyId")
		assert.Contains(t, fields, "title")
	})

	t.Run("Should require at least one requirement", func(t *testing.T) {
		in := validJobInput()
		in.Requirements = []string{}

		_, err := schema.NewJob(in, companyID.Hex())

		assert.Contains(t, fieldsOf(t, err), "requirements")
	})
}

func TestJobUpdate(t *testing.T) {
	t.Run("Should only set supplied fields", func(t *testing.T) {
		upd, err := schema.JobUpdate(schema.JobUpdateInput{Type: ptr("INTERNSHIP")})

		require.NoError(t, err)
		assert.Equal(t, domain.JobTypeInternship, *upd.Type)
		assert.Nil(t, upd.Title)
		assert.Nil(t, upd.Salary)
		assert.Len(t, upd.SetDoc(), 1)
	})

	t.Run("Should reject an unknown type", func(t *testing.T) {
		_, err := schema.JobUpdate(schema.JobUpdateInput{Type: ptr("FREELANCE")})

		assert.Contains(t, fieldsOf(t, err), "type")
	})
}

func TestJobFilters(t *testing.T) {
	t.Run("Should default to the first page of ten", func(t *testing.T) {
		filters, page, err := schema.JobFilters(schema.JobSearchInput{Keyword: " go "})

		require.NoError(t, err)
		assert.Equal(t, "go", filters.Keyword)
		assert.Equal(t, domain.Page{Number: 1, Limit: 10}, page)
	})

	t.Run("Should parse salary bounds and company id", func(t *testing.T) {
		id := primitive.NewObjectID()

		filters, _, err := schema.JobFilters(schema.JobSearchInput{
			CompanyID: id.Hex(),
			MinSalary: "40000",
			MaxSalary: "90000",
			Type:      "PART_TIME",
		})

		require.NoError(t, err)
		assert.Equal(t, id, *filters.CompanyID)
		assert.Equal(t, int64(40000), *filters.MinSalary)
		assert.Equal(t, int64(90000), *filters.MaxSalary)
		assert.Equal(t, domain.JobTypePartTime, filters.Type)
	})

	t.Run("Should report every bad parameter", func(t *testing.T) {
		_, _, err := schema.JobFilters(schema.JobSearchInput{
			CompanyID:       "bad",
			MinSalary:       "abc",
			Type:            "FREELANCE",
			PaginationInput: schema.PaginationInput{Page: "0", Limit: "101"},
		})

		fields := fieldsOf(t, err)
		assert.Contains(t, fields, "companyId")
		assert.Equal(t, "Not a valid integer.", fields["minSalary"])
		assert.Contains(t, fields, "type")
		assert.Contains(t, fields, "page")
		assert.Contains(t, fields, "limit")
	})
}

func TestPage(t *testing.T) {
	page, err := schema.Page(schema.PaginationInput{Page: "3", Limit: "100"}, schema.DefaultPageLimit)
	require.NoError(t, err)
	assert.Equal(t, domain.Page{Number: 3, Limit: 100}, page)

	page, err = schema.Page(schema.PaginationInput{}, schema.DefaultPageLimit)
	require.NoError(t, err)
	assert.Equal(t, domain.Page{Number: 1, Limit: 20}, page)

	_, err = schema.Page(schema.PaginationInput{Limit: "0"}, schema.DefaultPageLimit)
	assert.Contains(t, fieldsOf(t, err), "limit")
}

func TestNewPagination(t *testing.T) {
	p := schema.NewPagination(domain.Page{Number: 2, Limit: 10}, 25)

	assert.Equal(t, schema.Pagination{
		CurrentPage: 2,
		TotalPages:  3,
		TotalCount:  25,
		Limit:       10,
		HasNext:     true,
		HasPrev:     true,
	}, p)

	empty := schema.NewPagination(domain.Page{Number: 1, Limit: 10}, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestNewApplication(t *testing.T) {
	userID, jobID := primitive.NewObjectID(), primitive.NewObjectID()

	t.Run("Should start as pending", func(t *testing.T) {
		app, err := schema.NewApplication(schema.ApplicationInput{CoverLetter: "Hi"}, userID.Hex(), jobID.Hex())

		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, userID, app.UserID)
		assert.Equal(t, jobID, app.JobID)
	})

	t.Run("Should key bad references by field", func(t *testing.T) {
		_, err := schema.NewApplication(schema.ApplicationInput{}, "x", "y")

		fields := fieldsOf(t, err)
		assert.Equal(t, "Invalid jobId: must be a valid identifier", fields["jobId"])
		assert.Equal(t, "Invalid userId: must be a valid identifier", fields["userId"])
	})
}

func TestStatusUpdate(t *testing.T) {
	status, err := schema.StatusUpdate(schema.StatusUpdateInput{Status: "INTERVIEW"})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusInterview, status)

	_, err = schema.StatusUpdate(schema.StatusUpdateInput{Status: "HIRED"})
	assert.Contains(t, fieldsOf(t, err)["status"], "ACCEPTED")

	_, err = schema.StatusUpdate(schema.StatusUpdateInput{})
	assert.Equal(t, "Missing data for required field.", fieldsOf(t, err)["status"])
}

func TestNewPassword(t *testing.T) {
	current, next, err := schema.NewPassword(schema.PasswordChangeInput{
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret",
		ConfirmPassword: "new-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "old-secret", current)
	assert.Equal(t, "new-secret", next)

	_, _, err = schema.NewPassword(schema.PasswordChangeInput{
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret",
		ConfirmPassword: "other",
	})
	assert.Equal(t, "Passwords must match", fieldsOf(t, err)["confirmPassword"])
}

func TestPresentersNeverExposePasswords(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Email: "a@b.co", Password: "$2a$hash"}
	company := &domain.Company{ID: primitive.NewObjectID(), Email: "c@d.co", Password: "$2a$hash"}
	detail := &domain.ApplicationDetail{
		Application: domain.Application{ID: primitive.NewObjectID(), Status: domain.ApplicationStatusPending},
		Job:         &domain.JobWithCompany{Job: domain.Job{ID: primitive.NewObjectID()}, Company: company},
		User:        user,
	}

	for name, v := range map[string]any{
		"user":        schema.PresentUser(user),
		"company":     schema.PresentCompany(company),
		"application": schema.PresentApplicationDetail(detail),
		"session":     schema.PresentSession(&domain.Session{Token: "t", User: user}),
	} {
		t.Run("Should omit the password from "+name, func(t *testing.T) {
			raw, err := json.Marshal(v)

			require.NoError(t, err)
			assert.NotContains(t, string(raw), "password")
			assert.NotContains(t, string(raw), "$2a$hash")
		})
	}
}

func TestPresentApplicationDetail(t *testing.T) {
	companyID := primitive.NewObjectID()
	detail := &domain.ApplicationDetail{
		Application: domain.Application{ID: primitive.NewObjectID(), Status: domain.ApplicationStatusReviewing},
		Job: &domain.JobWithCompany{
			Job:     domain.Job{ID: primitive.NewObjectID(), Title: "Go Dev", CompanyID: companyID},
			Company: &domain.Company{ID: companyID, Name: "Acme"},
		},
	}

	out := schema.PresentApplicationDetail(detail)

	assert.Equal(t, "REVIEWING", out.Status)
	require.NotNil(t, out.Job)
	assert.Equal(t, "Go Dev", out.Job.Title)
	require.NotNil(t, out.Job.Company)
	assert.Equal(t, "Acme", out.Job.Company.Name)
	assert.Nil(t, out.User)
}

func TestDecodeError(t *testing.T) {
	var in schema.JobInput
	err := json.Unmarshal([]byte(`{"salary":{"min":"lots"}}`), &in)
	require.Error(t, err)

	assert.Equal(t, "Not a valid integer.", fieldsOf(t, schema.DecodeError(err))["salary.min"])

	err = json.Unmarshal([]byte(`{`), &in)
	require.Error(t, err)
	assert.True(t, apperror.Is(schema.DecodeError(err), apperror.KindBadRequest))
}
