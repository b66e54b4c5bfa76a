package http

import (
	"github.com/gin-gonic/gin"

	"github.com/aosadchuk/library-catalog/internal/auth"
	"github.com/aosadchuk/library-catalog/internal/chat"
	"github.com/aosadchuk/library-catalog/internal/database"
)

// RouterConfig holds all dependencies needed to construct the router.
type RouterConfig struct {
	Database *database.Database

	UsersStore         UsersStore
	AuthorsStore       AuthorsStore
	BooksStore         BooksStore
	SubscriptionsStore SubscriptionsStore
	PaymentsStore      PaymentsStore

	AuthService *auth.Service
	ChatClient  *chat.Client // nil when no API key is configured

	BcryptCost int
	Version    string
}

// NewRouter builds the route table. Only /users/me is gated behind a bearer
// token; the remaining CRUD routes are open, matching the original service.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Registration, login and the token-gated identity endpoint
	authController := auth.NewController(cfg.AuthService)
	authController.RegisterRoutes(router)

	usersController := NewUsersController(cfg.UsersStore, cfg.BcryptCost)
	router.GET("/users/", usersController.ListUsers)
	router.POST("/users/", usersController.CreateUser)
	router.PUT("/users/:id", usersController.UpdateUser)
	router.DELETE("/users/:id", usersController.DeleteUser)

	subscriptionsController := NewSubscriptionsController(cfg.SubscriptionsStore)
	router.GET("/users/:id/subscriptions/", subscriptionsController.ListSubscriptions)
	router.POST("/users/:id/subscriptions/", subscriptionsController.CreateSubscription)
	router.PUT("/subscriptions/:id/", subscriptionsController.UpdateSubscription)
	router.DELETE("/subscriptions/:id/", subscriptionsController.DeleteSubscription)

	paymentsController := NewPaymentsController(cfg.PaymentsStore)
	router.GET("/users/:id/payments/", paymentsController.ListPayments)
	router.POST("/users/:id/payments/", paymentsController.CreatePayment)

	booksController := NewBooksController(cfg.BooksStore)
	router.GET("/books/", booksController.ListBooks)
	router.POST("/books/", booksController.CreateBook)
	router.GET("/books/:id", booksController.GetBook)
	router.PUT("/books/:id", booksController.UpdateBook)
	router.DELETE("/books/:id", booksController.DeleteBook)

	authorsController := NewAuthorsController(cfg.AuthorsStore)
	router.GET("/authors/", authorsController.ListAuthors)
	router.POST("/authors/", authorsController.CreateAuthor)
	router.GET("/authors/:id", authorsController.GetAuthor)
	router.PUT("/authors/:id", authorsController.UpdateAuthor)
	router.DELETE("/authors/:id", authorsController.DeleteAuthor)

	chatController := NewChatController(cfg.ChatClient)
	router.POST("/chat", chatController.Chat)

	return router
}
