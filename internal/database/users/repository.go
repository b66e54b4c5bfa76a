// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetUserByEmail(email)
package users

import (
	"gorm.io/gorm"

	"github.com/aosadchuk/library-catalog/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpdateParams holds the optional fields of a user update.
// Nil fields are left unchanged (merge-by-presence).
type UpdateParams struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
	IsActive     *bool
}

// CreateUser persists a new user. The password must already be hashed.
func (r *Repository) CreateUser(firstName, lastName, email, passwordHash string) (*entities.User, error) {
	user := &entities.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers returns users with skip/limit pagination.
func (r *Repository) ListUsers(skip, limit int) ([]entities.User, error) {
	var users []entities.User
	query := r.db
	if skip > 0 {
		query = query.Offset(skip)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&users).Error
	return users, err
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (r *Repository) GetUserByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the non-nil fields of params to an existing user
// and returns the updated row. Unset fields keep their current values.
func (r *Repository) UpdateUser(id uint, params UpdateParams) (*entities.User, error) {
	var user entities.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if params.FirstName != nil {
		updates["first_name"] = *params.FirstName
	}
	if params.LastName != nil {
		updates["last_name"] = *params.LastName
	}
	if params.Email != nil {
		updates["email"] = *params.Email
	}
	if params.PasswordHash != nil {
		updates["password_hash"] = *params.PasswordHash
	}
	if params.IsActive != nil {
		updates["is_active"] = *params.IsActive
	}

	if len(updates) > 0 {
		if err := r.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user and all of that user's payments in a single
// transaction, returning the removed row. Subscriptions are left in place.
func (r *Repository) DeleteUser(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&entities.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.User{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
