package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pagetalk/comment-api/domain"
	"github.com/pagetalk/comment-api/internal/rest/request"
	"github.com/pagetalk/comment-api/internal/rest/response"
)

// AuthHandler represents the http handler for accounts
type AuthHandler struct {
	Service domain.AuthUsecase
}

func NewAuthHandler(svc domain.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		Service: svc,
	}
}

// Register will create a new account by given request body
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	ctx := c.Request.Context()
	res, err := h.Service.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.OKWithMessage("User registered successfully", response.NewAuthFromDomain(res)))
}

// Login verifies credentials and returns a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	ctx := c.Request.Context()
	res, err := h.Service.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OKWithMessage("Login successful", response.NewAuthFromDomain(res)))
}

// Profile returns the public profile of the authenticated user
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, response.Err("User not authenticated"))
		return
	}
	uid := userID.(int64)

	ctx := c.Request.Context()
	profile, err := h.Service.Profile(ctx, uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK(response.NewUserFromProfile(profile)))
}
