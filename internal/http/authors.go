package http

import (
	"github.com/gin-gonic/gin"

	"github.com/aosadchuk/library-catalog/internal/database/authors"
	"github.com/aosadchuk/library-catalog/internal/entities"
)

// AuthorsStore defines database operations for author management.
type AuthorsStore interface {
	CreateAuthor(firstName, lastName string) (*entities.Author, error)
	ListAuthors() ([]entities.Author, error)
	GetAuthorByID(id uint) (*entities.Author, error)
	UpdateAuthor(id uint, params authors.UpdateParams) (*entities.Author, error)
	DeleteAuthor(id uint) (*entities.Author, error)
}

type AuthorsController struct {
	store AuthorsStore
}

func NewAuthorsController(store AuthorsStore) *AuthorsController {
	return &AuthorsController{store: store}
}

// AuthorRequest is the payload for creating or updating an author.
// Updates overwrite every field.
type AuthorRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// ListAuthors returns all authors.
// GET /authors/
func (ac *AuthorsController) ListAuthors(c *gin.Context) {
	list, err := ac.store.ListAuthors()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.JSON(200, list)
}

// GetAuthor returns a single author by ID.
// GET /authors/:id
func (ac *AuthorsController) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := ac.store.GetAuthorByID(id)
	if err != nil {
		respondRepositoryError(c, err, "author")
		return
	}
	c.JSON(200, author)
}

// CreateAuthor creates a new author.
// POST /authors/
func (ac *AuthorsController) CreateAuthor(c *gin.Context) {
	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	author, err := ac.store.CreateAuthor(req.FirstName, req.LastName)
	if err != nil {
		respondInternalError(c, err, "create author")
		return
	}

	respondCreated(c, author)
}

// UpdateAuthor overwrites an author's fields.
// PUT /authors/:id
func (ac *AuthorsController) UpdateAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	author, err := ac.store.UpdateAuthor(id, authors.UpdateParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondRepositoryError(c, err, "author")
		return
	}
	c.JSON(200, author)
}

// DeleteAuthor removes an author and returns the removed row.
// DELETE /authors/:id
func (ac *AuthorsController) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := ac.store.DeleteAuthor(id)
	if err != nil {
		respondRepositoryError(c, err, "author")
		return
	}
	c.JSON(200, author)
}
