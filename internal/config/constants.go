package config

// Default paths and endpoints
const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./library-catalog.db"

	// DefaultOpenAIBaseURL is the default base URL for the chat-completion proxy
	DefaultOpenAIBaseURL = "https://api.openai.com"
)

// DefaultBcryptCost is the bcrypt work factor used when hashing passwords
// unless overridden via AUTH_BCRYPT_COST.
const DefaultBcryptCost = 12
