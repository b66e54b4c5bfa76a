// Package books provides database operations for book management.
package books

import (
	"gorm.io/gorm"

	"github.com/aosadchuk/library-catalog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateParams holds the fields required to create a book.
type CreateParams struct {
	Title         string
	Description   string
	AuthorID      uint
	PublishedYear int
	Price         int
}

// UpdateParams holds the fields of a book update. Every field is written
// unconditionally (replace-all, unlike the users repository).
type UpdateParams struct {
	Title         string
	Description   string
	AuthorID      uint
	PublishedYear int
	Price         int
}

// CreateBook persists a new book. Duplicate titles surface as
// gorm.ErrDuplicatedKey via the unique index on title.
func (r *Repository) CreateBook(params CreateParams) (*entities.Book, error) {
	book := &entities.Book{
		Title:         params.Title,
		Description:   params.Description,
		AuthorID:      params.AuthorID,
		PublishedYear: params.PublishedYear,
		Price:         params.Price,
	}

	if err := r.db.Create(book).Error; err != nil {
		return nil, err
	}

	return book, nil
}

// ListBooks returns all books.
func (r *Repository) ListBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Find(&books).Error
	return books, err
}

// GetBookByID retrieves a book by ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook overwrites every field of an existing book and returns the
// updated row.
func (r *Repository) UpdateBook(id uint, params UpdateParams) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}

	book.Title = params.Title
	book.Description = params.Description
	book.AuthorID = params.AuthorID
	book.PublishedYear = params.PublishedYear
	book.Price = params.Price

	if err := r.db.Save(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook removes a book by ID and returns the removed row.
func (r *Repository) DeleteBook(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Delete(&entities.Book{}, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}
