// Package subscriptions provides database operations for subscription management.
package subscriptions

import (
	"gorm.io/gorm"

	"github.com/aosadchuk/library-catalog/internal/entities"
)

// Repository handles all subscription database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new subscriptions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpdateParams holds the fields of a subscription update (replace-all).
type UpdateParams struct {
	Type     entities.SubscriptionType
	IsActive bool
}

// CreateSubscription persists a new subscription for a user.
func (r *Repository) CreateSubscription(userID uint, subType entities.SubscriptionType, isActive bool) (*entities.Subscription, error) {
	sub := &entities.Subscription{
		UserID:   userID,
		Type:     subType,
		IsActive: isActive,
	}

	if err := r.db.Create(sub).Error; err != nil {
		return nil, err
	}

	return sub, nil
}

// ListSubscriptionsByUser returns all subscriptions belonging to a user.
func (r *Repository) ListSubscriptionsByUser(userID uint) ([]entities.Subscription, error) {
	var subs []entities.Subscription
	err := r.db.Where("user_id = ?", userID).Find(&subs).Error
	return subs, err
}

// GetSubscriptionByID retrieves a subscription by ID.
func (r *Repository) GetSubscriptionByID(id uint) (*entities.Subscription, error) {
	var sub entities.Subscription
	err := r.db.First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubscription overwrites the mutable fields of a subscription and
// returns the updated row.
func (r *Repository) UpdateSubscription(id uint, params UpdateParams) (*entities.Subscription, error) {
	var sub entities.Subscription
	if err := r.db.First(&sub, id).Error; err != nil {
		return nil, err
	}

	sub.Type = params.Type
	sub.IsActive = params.IsActive

	if err := r.db.Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeleteSubscription removes a subscription and all of that subscription's
// payments in a single transaction, returning the removed row.
func (r *Repository) DeleteSubscription(id uint) (*entities.Subscription, error) {
	var sub entities.Subscription
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, id).Error; err != nil {
			return err
		}
		if err := tx.Where("subscription_id = ?", id).Delete(&entities.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Subscription{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
