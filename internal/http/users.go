package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aosadchuk/library-catalog/internal/auth"
	"github.com/aosadchuk/library-catalog/internal/database/users"
	"github.com/aosadchuk/library-catalog/internal/entities"
)

const (
	defaultUsersSkip  = 0
	defaultUsersLimit = 10
)

// UsersStore defines database operations for user management.
type UsersStore interface {
	CreateUser(firstName, lastName, email, passwordHash string) (*entities.User, error)
	ListUsers(skip, limit int) ([]entities.User, error)
	UpdateUser(id uint, params users.UpdateParams) (*entities.User, error)
	DeleteUser(id uint) (*entities.User, error)
}

type UsersController struct {
	store      UsersStore
	bcryptCost int
}

func NewUsersController(store UsersStore, bcryptCost int) *UsersController {
	return &UsersController{store: store, bcryptCost: bcryptCost}
}

// CreateUserRequest is the payload for creating a user. The password is
// hashed before it reaches storage; it is never persisted in plaintext.
type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

// UpdateUserRequest is the payload for a partial user update. Absent
// fields are left unchanged.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password"`
	IsActive  *bool   `json:"is_active"`
}

// ListUsers returns users paginated via skip/limit query parameters.
// GET /users/
func (uc *UsersController) ListUsers(c *gin.Context) {
	skip := parseQueryInt(c, "skip", defaultUsersSkip)
	limit := parseQueryInt(c, "limit", defaultUsersLimit)

	list, err := uc.store.ListUsers(skip, limit)
	if err != nil {
		respondInternalError(c, err, "list users")
		return
	}
	c.JSON(200, list)
}

// CreateUser creates a new user.
// POST /users/
func (uc *UsersController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password, uc.bcryptCost)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := uc.store.CreateUser(req.FirstName, req.LastName, req.Email, passwordHash)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondBadRequest(c, "email already registered")
			return
		}
		respondInternalError(c, err, "create user")
		return
	}

	respondCreated(c, user)
}

// UpdateUser applies a partial update to a user.
// PUT /users/:id
func (uc *UsersController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	params := users.UpdateParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsActive:  req.IsActive,
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password, uc.bcryptCost)
		if err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		params.PasswordHash = &hash
	}

	user, err := uc.store.UpdateUser(id, params)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondBadRequest(c, "email already registered")
			return
		}
		respondRepositoryError(c, err, "user")
		return
	}
	c.JSON(200, user)
}

// DeleteUser removes a user and returns the removed row.
// DELETE /users/:id
func (uc *UsersController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.store.DeleteUser(id)
	if err != nil {
		respondRepositoryError(c, err, "user")
		return
	}
	c.JSON(200, user)
}
