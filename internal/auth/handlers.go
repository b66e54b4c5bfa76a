package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller handles authentication-related HTTP endpoints.
type Controller struct {
	service *Service
}

// NewController creates a new authentication controller.
func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/register/", ac.Register)
	router.POST("/token", ac.Token)
	router.GET("/users/me", RequireToken(ac.service), ac.Me)
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new account.
// POST /register/
func (ac *Controller) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.service.Register(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Token exchanges form-encoded credentials for a bearer token. The username
// field carries the email, matching the password-grant form shape.
// POST /token
func (ac *Controller) Token(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	token, err := ac.service.Login(email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the user resolved from the presented bearer token.
// GET /users/me
func (ac *Controller) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		challenge(c, "not authenticated")
		return
	}
	c.JSON(http.StatusOK, user)
}
