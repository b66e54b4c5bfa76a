package auth

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aosadchuk/library-catalog/internal/config"
	"github.com/aosadchuk/library-catalog/internal/entities"
)

func setupTestService(t *testing.T) (*Service, func()) {
	dbPath := "./test_auth_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	cfg := config.Auth{
		SecretKey:  "test-secret",
		TokenTTL:   time.Minute,
		BcryptCost: 4,
	}
	service := NewService(db, NewTokenIssuer(cfg.SecretKey, cfg.TokenTTL), cfg)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return service, cleanup
}

func TestService_Register(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	user, err := service.Register("Andriy", "Osadchuk", "andriy@example.com", "secretpassword")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "andriy@example.com", user.Email)
	assert.True(t, user.IsActive)
	// Password is stored only as a hash
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secretpassword", user.PasswordHash)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.Register("First", "User", "taken@example.com", "password1")
	require.NoError(t, err)

	_, err = service.Register("Second", "User", "taken@example.com", "password2")

	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	service.db.Model(&entities.User{}).Where("email = ?", "taken@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestService_Register_MissingFields(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.Register("No", "Email", "", "password")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = service.Register("No", "Password", "user@example.com", "")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestService_Authenticate(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.Register("Test", "User", "test@example.com", "correctpassword")
	require.NoError(t, err)

	user, err := service.Authenticate("test@example.com", "correctpassword")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.Register("Test", "User", "test@example.com", "correctpassword")
	require.NoError(t, err)

	_, err = service.Authenticate("test@example.com", "wrongpassword")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Authenticate_UnknownEmail(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.Authenticate("nobody@example.com", "password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_LoginAndUserFromToken(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	registered, err := service.Register("Test", "User", "test@example.com", "correctpassword")
	require.NoError(t, err)

	token, err := service.Login("test@example.com", "correctpassword")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := service.UserFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "test@example.com", user.Email)
}

func TestService_UserFromToken_UserDeleted(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.Register("Test", "User", "test@example.com", "correctpassword")
	require.NoError(t, err)

	token, err := service.Login("test@example.com", "correctpassword")
	require.NoError(t, err)

	// Token outlives the row it refers to
	require.NoError(t, service.db.Where("email = ?", "test@example.com").Delete(&entities.User{}).Error)

	_, err = service.UserFromToken(token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_UserFromToken_Invalid(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.UserFromToken("garbage")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
