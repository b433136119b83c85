package v1

import (
	"net/http"

	"go-jobsearch-backend/internal/delivery/http/middleware"
	"go-jobsearch-backend/internal/delivery/http/response"
	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

// NewUserHandler registers the job seeker's own profile routes.
func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := protected.Group("/users", middleware.RequireUserType(domain.ActorUser))
	{
		users.GET("/profile", handler.GetProfile)
		users.PUT("/profile", handler.UpdateProfile)
		users.GET("/applications", handler.ListApplications)
		users.POST("/experience", handler.AddExperience)
		users.POST("/education", handler.AddEducation)
		users.PUT("/password", handler.ChangePassword)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userUC.GetProfile(c.Request.Context(), actorID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved successfully", schema.PresentUser(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var in schema.UserUpdateInput
	if !bindJSON(c, &in) {
		return
	}
	upd, err := schema.UserUpdate(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userUC.UpdateProfile(c.Request.Context(), actorID(c), upd)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", schema.PresentUser(user))
}

func (h *UserHandler) ListApplications(c *gin.Context) {
	page, ok := pageQuery(c, schema.DefaultPageLimit)
	if !ok {
		return
	}

	details, total, err := h.userUC.ListApplications(c.Request.Context(), actorID(c), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved successfully",
		schema.NewPageOutput(schema.PresentApplicationDetails(details), page, total))
}

func (h *UserHandler) AddExperience(c *gin.Context) {
	var in schema.ExperienceInput
	if !bindJSON(c, &in) {
		return
	}
	exp, err := schema.NewExperience(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userUC.AddExperience(c.Request.Context(), actorID(c), exp)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience added successfully", schema.PresentUser(user))
}

func (h *UserHandler) AddEducation(c *gin.Context) {
	var in schema.EducationInput
	if !bindJSON(c, &in) {
		return
	}
	edu, err := schema.NewEducation(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userUC.AddEducation(c.Request.Context(), actorID(c), edu)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education added successfully", schema.PresentUser(user))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var in schema.PasswordChangeInput
	if !bindJSON(c, &in) {
		return
	}
	current, next, err := schema.NewPassword(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.userUC.ChangePassword(c.Request.Context(), actorID(c), current, next); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password updated successfully", nil)
}
