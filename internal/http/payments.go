package http

import (
	"github.com/gin-gonic/gin"

	"github.com/aosadchuk/library-catalog/internal/entities"
)

// PaymentsStore defines database operations for payment management.
type PaymentsStore interface {
	CreatePayment(userID uint, subscriptionID *uint, amount float64, status string) (*entities.Payment, error)
	ListPaymentsByUser(userID uint) ([]entities.Payment, error)
}

type PaymentsController struct {
	store PaymentsStore
}

func NewPaymentsController(store PaymentsStore) *PaymentsController {
	return &PaymentsController{store: store}
}

// PaymentRequest is the payload for creating a payment. Amount and status
// are required; the subscription reference is optional.
type PaymentRequest struct {
	Amount         *float64 `json:"amount" binding:"required"`
	Status         string   `json:"status" binding:"required"`
	SubscriptionID *uint    `json:"subscription_id"`
}

// CreatePayment records a payment for a user.
// POST /users/:id/payments/
func (pc *PaymentsController) CreatePayment(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	payment, err := pc.store.CreatePayment(userID, req.SubscriptionID, *req.Amount, req.Status)
	if err != nil {
		respondInternalError(c, err, "create payment")
		return
	}

	respondCreated(c, payment)
}

// ListPayments returns all payments belonging to a user.
// GET /users/:id/payments/
func (pc *PaymentsController) ListPayments(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := pc.store.ListPaymentsByUser(userID)
	if err != nil {
		respondInternalError(c, err, "list payments")
		return
	}
	c.JSON(200, list)
}
