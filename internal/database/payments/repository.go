// Package payments provides database operations for payment management.
package payments

import (
	"gorm.io/gorm"

	"github.com/aosadchuk/library-catalog/internal/entities"
)

// Repository handles all payment database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new payments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreatePayment persists a new payment for a user, optionally tied to a
// subscription.
func (r *Repository) CreatePayment(userID uint, subscriptionID *uint, amount float64, status string) (*entities.Payment, error) {
	payment := &entities.Payment{
		UserID:         userID,
		SubscriptionID: subscriptionID,
		Amount:         amount,
		Status:         status,
	}

	if err := r.db.Create(payment).Error; err != nil {
		return nil, err
	}

	return payment, nil
}

// ListPaymentsByUser returns all payments belonging to a user.
func (r *Repository) ListPaymentsByUser(userID uint) ([]entities.Payment, error) {
	var payments []entities.Payment
	err := r.db.Where("user_id = ?", userID).Find(&payments).Error
	return payments, err
}

// GetPaymentByID retrieves a payment by ID.
func (r *Repository) GetPaymentByID(id uint) (*entities.Payment, error) {
	var payment entities.Payment
	err := r.db.First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
