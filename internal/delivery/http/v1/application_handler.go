package v1

import (
	"net/http"

	"go-jobsearch-backend/internal/delivery/http/middleware"
	"go-jobsearch-backend/internal/delivery/http/response"
	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/applications")
	{
		applications.GET("/:id", middleware.RequireUserType(domain.ActorUser), handler.Get)
		applications.PUT("/:id/status", middleware.RequireUserType(domain.ActorCompany), handler.UpdateStatus)
	}
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	detail, err := h.applicationUC.Get(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application retrieved successfully", schema.PresentApplicationDetail(detail))
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var in schema.StatusUpdateInput
	if !bindJSON(c, &in) {
		return
	}
	status, err := schema.StatusUpdate(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	detail, err := h.applicationUC.UpdateStatus(c.Request.Context(), actorID(c), c.Param("id"), status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated successfully", schema.PresentApplicationDetail(detail))
}
