package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aosadchuk/library-catalog/internal/database/books"
	"github.com/aosadchuk/library-catalog/internal/entities"
)

// BooksStore defines database operations for book management.
type BooksStore interface {
	CreateBook(params books.CreateParams) (*entities.Book, error)
	ListBooks() ([]entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	UpdateBook(id uint, params books.UpdateParams) (*entities.Book, error)
	DeleteBook(id uint) (*entities.Book, error)
}

type BooksController struct {
	store BooksStore
}

func NewBooksController(store BooksStore) *BooksController {
	return &BooksController{store: store}
}

// BookRequest is the payload for creating or updating a book.
// Updates overwrite every field.
type BookRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	AuthorID      uint   `json:"author_id" binding:"required"`
	PublishedYear int    `json:"published_year"`
	Price         int    `json:"price"`
}

// ListBooks returns all books.
// GET /books/
func (bc *BooksController) ListBooks(c *gin.Context) {
	list, err := bc.store.ListBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(200, list)
}

// GetBook returns a single book by ID.
// GET /books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetBookByID(id)
	if err != nil {
		respondRepositoryError(c, err, "book")
		return
	}
	c.JSON(200, book)
}

// CreateBook creates a new book. Titles are unique; a duplicate fails.
// POST /books/
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book, err := bc.store.CreateBook(books.CreateParams{
		Title:         req.Title,
		Description:   req.Description,
		AuthorID:      req.AuthorID,
		PublishedYear: req.PublishedYear,
		Price:         req.Price,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondBadRequest(c, "book with this title already exists")
			return
		}
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, book)
}

// UpdateBook overwrites a book's fields.
// PUT /books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book, err := bc.store.UpdateBook(id, books.UpdateParams{
		Title:         req.Title,
		Description:   req.Description,
		AuthorID:      req.AuthorID,
		PublishedYear: req.PublishedYear,
		Price:         req.Price,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondBadRequest(c, "book with this title already exists")
			return
		}
		respondRepositoryError(c, err, "book")
		return
	}
	c.JSON(200, book)
}

// DeleteBook removes a book and returns the removed row.
// DELETE /books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.DeleteBook(id)
	if err != nil {
		respondRepositoryError(c, err, "book")
		return
	}
	c.JSON(200, book)
}
