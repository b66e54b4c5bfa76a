// Command generate_demo creates a demo database with a sample library catalog.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/aosadchuk/library-catalog/internal/auth"
	"github.com/aosadchuk/library-catalog/internal/config"
	"github.com/aosadchuk/library-catalog/internal/database"
	"github.com/aosadchuk/library-catalog/internal/database/authors"
	"github.com/aosadchuk/library-catalog/internal/database/books"
	"github.com/aosadchuk/library-catalog/internal/database/payments"
	"github.com/aosadchuk/library-catalog/internal/database/subscriptions"
	"github.com/aosadchuk/library-catalog/internal/database/users"
	"github.com/aosadchuk/library-catalog/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	createCatalog(db)
	createAccounts(db)

	log.Println("Demo database generated successfully!")
}

type authorConfig struct {
	FirstName string
	LastName  string
	Books     []books.CreateParams
}

func createCatalog(db *database.Database) {
	authorRepo := authors.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)

	for _, cfg := range getPublicDomainAuthors() {
		author, err := authorRepo.CreateAuthor(cfg.FirstName, cfg.LastName)
		if err != nil {
			log.Printf("Failed to save author %s %s: %v", cfg.FirstName, cfg.LastName, err)
			continue
		}

		for _, params := range cfg.Books {
			params.AuthorID = author.ID
			if _, err := bookRepo.CreateBook(params); err != nil {
				log.Printf("Failed to save book %s: %v", params.Title, err)
				continue
			}
			log.Printf("Saved: %s by %s %s", params.Title, author.FirstName, author.LastName)
		}
	}
}

func getPublicDomainAuthors() []authorConfig {
	return []authorConfig{
		{
			FirstName: "Marcus", LastName: "Aurelius",
			Books: []books.CreateParams{
				{Title: "Meditations", Description: "Private reflections of the Roman emperor on Stoic philosophy.", PublishedYear: 180, Price: 10},
			},
		},
		{
			FirstName: "Jane", LastName: "Austen",
			Books: []books.CreateParams{
				{Title: "Pride and Prejudice", Description: "A novel of manners set in rural England.", PublishedYear: 1813, Price: 7},
				{Title: "Sense and Sensibility", Description: "The Dashwood sisters navigate love and fortune.", PublishedYear: 1811, Price: 7},
			},
		},
		{
			FirstName: "Leo", LastName: "Tolstoy",
			Books: []books.CreateParams{
				{Title: "War and Peace", Description: "An epic of Russian society during the Napoleonic era.", PublishedYear: 1869, Price: 13},
				{Title: "Anna Karenina", Description: "A tragedy of love and society in imperial Russia.", PublishedYear: 1878, Price: 11},
			},
		},
		{
			FirstName: "Fyodor", LastName: "Dostoevsky",
			Books: []books.CreateParams{
				{Title: "Crime and Punishment", Description: "A former student commits a murder and wrestles with guilt.", PublishedYear: 1866, Price: 9},
			},
		},
		{
			FirstName: "Mary", LastName: "Shelley",
			Books: []books.CreateParams{
				{Title: "Frankenstein", Description: "A scientist creates a living being and abandons it.", PublishedYear: 1818, Price: 6},
			},
		},
		{
			FirstName: "Oscar", LastName: "Wilde",
			Books: []books.CreateParams{
				{Title: "The Picture of Dorian Gray", Description: "A portrait ages while its subject does not.", PublishedYear: 1890, Price: 6},
			},
		},
	}
}

func createAccounts(db *database.Database) {
	userRepo := users.NewRepository(db.DB)
	subscriptionRepo := subscriptions.NewRepository(db.DB)
	paymentRepo := payments.NewRepository(db.DB)

	accounts := []struct {
		firstName    string
		lastName     string
		email        string
		password     string
		subscription entities.SubscriptionType
		amount       float64
	}{
		{"Alice", "Reader", "alice@example.com", "demo-password", entities.SubscriptionTypeSingle, 9.99},
		{"Bob", "Bookworm", "bob@example.com", "demo-password", entities.SubscriptionTypeFamily, 19.99},
	}

	for _, a := range accounts {
		hash, err := auth.HashPassword(a.password, config.DefaultBcryptCost)
		if err != nil {
			log.Printf("Failed to hash password for %s: %v", a.email, err)
			continue
		}

		user, err := userRepo.CreateUser(a.firstName, a.lastName, a.email, hash)
		if err != nil {
			log.Printf("Failed to create user %s: %v", a.email, err)
			continue
		}

		sub, err := subscriptionRepo.CreateSubscription(user.ID, a.subscription, true)
		if err != nil {
			log.Printf("Failed to create subscription for %s: %v", a.email, err)
			continue
		}

		if _, err := paymentRepo.CreatePayment(user.ID, &sub.ID, a.amount, "paid"); err != nil {
			log.Printf("Failed to create payment for %s: %v", a.email, err)
		}

		log.Printf("Created account: %s (%s subscription)", a.email, a.subscription)
	}
}
