// Package authors provides database operations for author management.
package authors

import (
	"gorm.io/gorm"

	"github.com/aosadchuk/library-catalog/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpdateParams holds the fields of an author update. Every field is
// written unconditionally (replace-all, unlike the users repository).
type UpdateParams struct {
	FirstName string
	LastName  string
}

// CreateAuthor persists a new author.
func (r *Repository) CreateAuthor(firstName, lastName string) (*entities.Author, error) {
	author := &entities.Author{
		FirstName: firstName,
		LastName:  lastName,
	}

	if err := r.db.Create(author).Error; err != nil {
		return nil, err
	}

	return author, nil
}

// ListAuthors returns all authors.
func (r *Repository) ListAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Find(&authors).Error
	return authors, err
}

// GetAuthorByID retrieves an author by ID.
func (r *Repository) GetAuthorByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// UpdateAuthor overwrites every field of an existing author and returns
// the updated row.
func (r *Repository) UpdateAuthor(id uint, params UpdateParams) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, err
	}

	author.FirstName = params.FirstName
	author.LastName = params.LastName

	if err := r.db.Save(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// DeleteAuthor removes an author by ID and returns the removed row.
func (r *Repository) DeleteAuthor(id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Delete(&entities.Author{}, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}
