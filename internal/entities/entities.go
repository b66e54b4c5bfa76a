package entities

import "time"

type SubscriptionType string

const (
	SubscriptionTypeSingle SubscriptionType = "single"
	SubscriptionTypeFamily SubscriptionType = "family"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FirstName    string `gorm:"size:100" json:"first_name"`
	LastName     string `gorm:"size:100" json:"last_name"`
	Email        string `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Subscriptions []Subscription `gorm:"foreignKey:UserID" json:"subscriptions,omitempty"`
	Payments      []Payment      `gorm:"foreignKey:UserID" json:"payments,omitempty"`
}

type Author struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`

	Books []Book `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
}

type Book struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Title         string `gorm:"uniqueIndex;size:512" json:"title"`
	Description   string `gorm:"type:text" json:"description,omitempty"`
	AuthorID      uint   `gorm:"index" json:"author_id"`
	PublishedYear int    `json:"published_year"`
	Price         int    `gorm:"default:0" json:"price"`
}

type Subscription struct {
	ID       uint             `gorm:"primaryKey" json:"id"`
	UserID   uint             `gorm:"index" json:"user_id"`
	Type     SubscriptionType `gorm:"size:20;not null" json:"type"`
	IsActive bool             `gorm:"default:true" json:"is_active"`

	Payments []Payment `gorm:"foreignKey:SubscriptionID" json:"payments,omitempty"`
}

type Payment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	SubscriptionID *uint     `gorm:"index" json:"subscription_id,omitempty"`
	Amount         float64   `gorm:"not null" json:"amount"`
	Status         string    `gorm:"size:50;not null" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
