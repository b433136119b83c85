package v1

import (
	"net/http"

	"go-jobsearch-backend/internal/delivery/http/middleware"
	"go-jobsearch-backend/internal/delivery/http/response"
	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

// NewCompanyHandler registers the public company directory and the
// company's own account routes.
func NewCompanyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	publicCompanies := public.Group("/companies")
	{
		publicCompanies.GET("", handler.List)
		publicCompanies.GET("/:id", handler.Get)
		publicCompanies.GET("/:id/jobs", handler.ListJobs)
	}

	// Static segments take precedence over /:id.
	own := protected.Group("/companies", middleware.RequireUserType(domain.ActorCompany))
	{
		own.GET("/profile", handler.GetProfile)
		own.PUT("/profile", handler.UpdateProfile)
		own.GET("/jobs", handler.ListOwnJobs)
		own.PUT("/password", handler.ChangePassword)
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	page, ok := pageQuery(c, schema.DefaultPageLimit)
	if !ok {
		return
	}

	companies, total, err := h.companyUC.List(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies retrieved successfully",
		schema.NewPageOutput(schema.PresentCompanies(companies), page, total))
}

func (h *CompanyHandler) Get(c *gin.Context) {
	h.respondCompany(c, c.Param("id"))
}

func (h *CompanyHandler) GetProfile(c *gin.Context) {
	h.respondCompany(c, actorID(c))
}

func (h *CompanyHandler) respondCompany(c *gin.Context, companyID string) {
	company, err := h.companyUC.Get(c.Request.Context(), companyID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company retrieved successfully", schema.PresentCompany(company))
}

func (h *CompanyHandler) ListJobs(c *gin.Context) {
	h.respondJobs(c, c.Param("id"))
}

func (h *CompanyHandler) ListOwnJobs(c *gin.Context) {
	h.respondJobs(c, actorID(c))
}

func (h *CompanyHandler) respondJobs(c *gin.Context, companyID string) {
	page, ok := pageQuery(c, schema.DefaultPageLimit)
	if !ok {
		return
	}

	jobs, total, err := h.companyUC.ListJobs(c.Request.Context(), companyID, page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved successfully",
		schema.NewPageOutput(schema.PresentJobs(jobs), page, total))
}

func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	var in schema.CompanyUpdateInput
	if !bindJSON(c, &in) {
		return
	}
	upd, err := schema.CompanyUpdate(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	company, err := h.companyUC.UpdateProfile(c.Request.Context(), actorID(c), upd)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", schema.PresentCompany(company))
}

func (h *CompanyHandler) ChangePassword(c *gin.Context) {
	var in schema.PasswordChangeInput
	if !bindJSON(c, &in) {
		return
	}
	current, next, err := schema.NewPassword(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.companyUC.ChangePassword(c.Request.Context(), actorID(c), current, next); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password updated successfully", nil)
}
