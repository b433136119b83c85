package v1

import (
	"context"
	"net/http"

	"go-jobsearch-backend/internal/delivery/http/response"
	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/internal/schema"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the public registration and login routes. limits
// run before every auth handler.
func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, limits ...gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	authGroup := public.Group("/auth", limits...)
	{
		authGroup.POST("/register/user", handler.RegisterUser)
		authGroup.POST("/register/company", handler.RegisterCompany)
		authGroup.POST("/login/user", handler.LoginUser)
		authGroup.POST("/login/company", handler.LoginCompany)
	}
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var in schema.UserRegisterInput
	if !bindJSON(c, &in) {
		return
	}
	user, err := schema.NewUser(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	session, err := h.authUC.RegisterUser(c.Request.Context(), user)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User registered successfully", schema.PresentSession(session))
}

func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var in schema.CompanyRegisterInput
	if !bindJSON(c, &in) {
		return
	}
	company, err := schema.NewCompany(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	session, err := h.authUC.RegisterCompany(c.Request.Context(), company)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company registered successfully", schema.PresentSession(session))
}

func (h *AuthHandler) LoginUser(c *gin.Context) {
	h.login(c, h.authUC.LoginUser)
}

func (h *AuthHandler) LoginCompany(c *gin.Context) {
	h.login(c, h.authUC.LoginCompany)
}

func (h *AuthHandler) login(c *gin.Context, login func(ctx context.Context, email, password string) (*domain.Session, error)) {
	var in schema.LoginInput
	if !bindJSON(c, &in) {
		return
	}
	email, password, err := schema.Credentials(in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	session, err := login(c.Request.Context(), email, password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", schema.PresentSession(session))
}
