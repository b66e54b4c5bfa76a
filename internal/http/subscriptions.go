package http

import (
	"github.com/gin-gonic/gin"

	"github.com/aosadchuk/library-catalog/internal/database/subscriptions"
	"github.com/aosadchuk/library-catalog/internal/entities"
)

// SubscriptionsStore defines database operations for subscription management.
type SubscriptionsStore interface {
	CreateSubscription(userID uint, subType entities.SubscriptionType, isActive bool) (*entities.Subscription, error)
	ListSubscriptionsByUser(userID uint) ([]entities.Subscription, error)
	UpdateSubscription(id uint, params subscriptions.UpdateParams) (*entities.Subscription, error)
	DeleteSubscription(id uint) (*entities.Subscription, error)
}

type SubscriptionsController struct {
	store SubscriptionsStore
}

func NewSubscriptionsController(store SubscriptionsStore) *SubscriptionsController {
	return &SubscriptionsController{store: store}
}

// SubscriptionRequest is the payload for creating or updating a subscription.
// The type is restricted to the enumerated set.
type SubscriptionRequest struct {
	Type     entities.SubscriptionType `json:"type" binding:"required,oneof=single family"`
	IsActive *bool                     `json:"is_active"`
}

// ListSubscriptions returns all subscriptions belonging to a user.
// GET /users/:id/subscriptions/
func (sc *SubscriptionsController) ListSubscriptions(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := sc.store.ListSubscriptionsByUser(userID)
	if err != nil {
		respondInternalError(c, err, "list subscriptions")
		return
	}
	c.JSON(200, list)
}

// CreateSubscription creates a subscription for a user. The user reference
// is taken from the URL; it is not validated against the users table.
// POST /users/:id/subscriptions/
func (sc *SubscriptionsController) CreateSubscription(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	sub, err := sc.store.CreateSubscription(userID, req.Type, isActive)
	if err != nil {
		respondInternalError(c, err, "create subscription")
		return
	}

	respondCreated(c, sub)
}

// UpdateSubscription overwrites a subscription's mutable fields.
// PUT /subscriptions/:id/
func (sc *SubscriptionsController) UpdateSubscription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	sub, err := sc.store.UpdateSubscription(id, subscriptions.UpdateParams{
		Type:     req.Type,
		IsActive: isActive,
	})
	if err != nil {
		respondRepositoryError(c, err, "subscription")
		return
	}
	c.JSON(200, sub)
}

// DeleteSubscription removes a subscription, cascading to its payments,
// and returns the removed row.
// DELETE /subscriptions/:id/
func (sc *SubscriptionsController) DeleteSubscription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := sc.store.DeleteSubscription(id)
	if err != nil {
		respondRepositoryError(c, err, "subscription")
		return
	}
	c.JSON(200, sub)
}
