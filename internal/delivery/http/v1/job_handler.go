package v1

import (
	"net/http"

	"go-jobsearch-backend/internal/delivery/http/middleware"
	"go-jobsearch-backend/internal/delivery/http/response"
	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - no authentication required
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.Search)
		publicJobs.GET("/:id", handler.Get)
	}

	asCompany := middleware.RequireUserType(domain.ActorCompany)
	asUser := middleware.RequireUserType(domain.ActorUser)

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", asCompany, handler.Create)
		protectedJobs.PUT("/:id", asCompany, handler.Update)
		protectedJobs.DELETE("/:id", asCompany, handler.Delete)
		protectedJobs.GET("/:id/applications", asCompany, handler.ListApplications)
		protectedJobs.POST("/:id/apply", asUser, handler.Apply)
	}
}

// Search lists jobs matching the query filters, newest first.
func (h *JobHandler) Search(c *gin.Context) {
	var in schema.JobSearchInput
	if err := c.ShouldBindQuery(&in); err != nil {
		_ = c.Error(schema.DecodeError(err))
		return
	}
	filters, page, err := schema.JobFilters(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	jobs, total, err := h.jobUC.Search(c.Request.Context(), filters, page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved successfully",
		schema.NewPageOutput(schema.PresentJobsWithCompany(jobs), page, total))
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved successfully", schema.PresentJobWithCompany(job))
}

func (h *JobHandler) Create(c *gin.Context) {
	var in schema.JobInput
	if !bindJSON(c, &in) {
		return
	}
	companyID := actorID(c)
	job, err := schema.NewJob(in, companyID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	created, err := h.jobUC.Create(c.Request.Context(), companyID, job)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created successfully", schema.PresentJobWithCompany(created))
}

func (h *JobHandler) Update(c *gin.Context) {
	var in schema.JobUpdateInput
	if !bindJSON(c, &in) {
		return
	}
	upd, err := schema.JobUpdate(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	job, err := h.jobUC.Update(c.Request.Context(), actorID(c), c.Param("id"), upd)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated successfully", schema.PresentJobWithCompany(job))
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.Delete(c.Request.Context(), actorID(c), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

func (h *JobHandler) Apply(c *gin.Context) {
	var in schema.ApplicationInput
	if !bindJSON(c, &in) {
		return
	}
	userID, jobID := actorID(c), c.Param("id")
	app, err := schema.NewApplication(in, userID, jobID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	detail, err := h.jobUC.Apply(c.Request.Context(), userID, jobID, app)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted successfully", schema.PresentApplicationDetail(detail))
}

// ListApplications is restricted to the company that posted the job.
func (h *JobHandler) ListApplications(c *gin.Context) {
	page, ok := pageQuery(c, schema.DefaultPageLimit)
	if !ok {
		return
	}

	details, total, err := h.jobUC.ListApplications(c.Request.Context(), actorID(c), c.Param("id"), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved successfully",
		schema.NewPageOutput(schema.PresentApplicationDetails(details), page, total))
}
