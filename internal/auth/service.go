package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aosadchuk/library-catalog/internal/config"
	"github.com/aosadchuk/library-catalog/internal/entities"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// Service handles registration and credential verification.
type Service struct {
	db     *gorm.DB
	tokens *TokenIssuer
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(db *gorm.DB, tokens *TokenIssuer, cfg config.Auth) *Service {
	return &Service{
		db:     db,
		tokens: tokens,
		config: cfg,
	}
}

// Tokens returns the service's token issuer.
func (s *Service) Tokens() *TokenIssuer {
	return s.tokens
}

// Register hashes the password and persists a new user. Fails with
// ErrEmailTaken when the email is already registered; the unique index on
// email backstops the check against concurrent registration.
func (s *Service) Register(firstName, lastName, email, password string) (*entities.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	var existing entities.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate validates credentials and returns the user. Unknown emails
// and wrong passwords both surface as ErrInvalidCredentials.
func (s *Service) Authenticate(email, password string) (*entities.User, error) {
	var user entities.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Login authenticates and issues a bearer token for the user's email.
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.Authenticate(email, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.Email)
}

// UserFromToken validates a bearer token and resolves the embedded email
// claim back to the user row.
func (s *Service) UserFromToken(token string) (*entities.User, error) {
	email, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	var user entities.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
