package http

import (
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aosadchuk/library-catalog/internal/auth"
	"github.com/aosadchuk/library-catalog/internal/chat"
	"github.com/aosadchuk/library-catalog/internal/config"
	"github.com/aosadchuk/library-catalog/internal/database"
	"github.com/aosadchuk/library-catalog/internal/database/authors"
	"github.com/aosadchuk/library-catalog/internal/database/books"
	"github.com/aosadchuk/library-catalog/internal/database/payments"
	"github.com/aosadchuk/library-catalog/internal/database/subscriptions"
	"github.com/aosadchuk/library-catalog/internal/database/users"
)

// setupTestRouter builds the full router over a temp sqlite database.
func setupTestRouter(t *testing.T, chatClient *chat.Client) (*gin.Engine, func()) {
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	authCfg := config.Auth{
		SecretKey:  "test-secret",
		TokenTTL:   time.Minute,
		BcryptCost: 4,
	}
	tokens := auth.NewTokenIssuer(authCfg.SecretKey, authCfg.TokenTTL)
	authService := auth.NewService(db.DB, tokens, authCfg)

	router := NewRouter(RouterConfig{
		Database:           db,
		UsersStore:         users.NewRepository(db.DB),
		AuthorsStore:       authors.NewRepository(db.DB),
		BooksStore:         books.NewRepository(db.DB),
		SubscriptionsStore: subscriptions.NewRepository(db.DB),
		PaymentsStore:      payments.NewRepository(db.DB),
		AuthService:        authService,
		ChatClient:         chatClient,
		BcryptCost:         authCfg.BcryptCost,
		Version:            "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return router, cleanup
}

// doRequest executes a request against the router and returns the recorder.
func doRequest(router *gin.Engine, method, path string, body *strings.Reader, headers map[string]string) *httptest.ResponseRecorder {
	if body == nil {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

// jsonID extracts the "id" field of a decoded JSON object as a path segment.
func jsonID(t *testing.T, obj map[string]any) string {
	t.Helper()
	id, ok := obj["id"].(float64)
	require.True(t, ok, "response has no numeric id: %v", obj)
	return strconv.Itoa(int(id))
}
