package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aosadchuk/library-catalog/internal/auth"
	"github.com/aosadchuk/library-catalog/internal/chat"
	"github.com/aosadchuk/library-catalog/internal/config"
	"github.com/aosadchuk/library-catalog/internal/database"
	"github.com/aosadchuk/library-catalog/internal/database/authors"
	"github.com/aosadchuk/library-catalog/internal/database/books"
	"github.com/aosadchuk/library-catalog/internal/database/payments"
	"github.com/aosadchuk/library-catalog/internal/database/subscriptions"
	"github.com/aosadchuk/library-catalog/internal/database/users"
	http_controllers "github.com/aosadchuk/library-catalog/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Library Catalog v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Signing secret is fixed for the process lifetime; generate one if the
	// environment did not provide it.
	secretKey := cfg.Auth.SecretKey
	if secretKey == "" {
		secretKey, err = auth.GenerateSecretKey()
		if err != nil {
			log.Fatalf("Failed to generate signing secret: %v", err)
		}
		log.Printf("Generated signing secret (set AUTH_SECRET_KEY to persist tokens across restarts)")
	}

	tokens := auth.NewTokenIssuer(secretKey, cfg.Auth.TokenTTL)
	authService := auth.NewService(db.DB, tokens, cfg.Auth)

	var chatClient *chat.Client
	if cfg.OpenAI.APIKey != "" {
		chatClient = chat.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey)
	} else {
		log.Printf("WARNING: OPENAI_API_KEY is not set. The /chat endpoint will return an error.")
	}

	routerCfg := http_controllers.RouterConfig{
		Database:           db,
		UsersStore:         users.NewRepository(db.DB),
		AuthorsStore:       authors.NewRepository(db.DB),
		BooksStore:         books.NewRepository(db.DB),
		SubscriptionsStore: subscriptions.NewRepository(db.DB),
		PaymentsStore:      payments.NewRepository(db.DB),
		AuthService:        authService,
		ChatClient:         chatClient,
		BcryptCost:         cfg.Auth.BcryptCost,
		Version:            version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
