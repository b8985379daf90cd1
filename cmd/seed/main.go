package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/formgate/formgate/config"
	"github.com/formgate/formgate/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "secret123"
	username := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, username)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET username=EXCLUDED.username
		RETURNING id
	`, email, username).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO password_credentials (user_id, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, id, hash); err != nil {
		log.Fatalf("failed to seed password credential: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s username=%s password=%s\n", id, email, username, password)

	// Sample form with one required field
	var formID string
	if err := db.QueryRow(`
		INSERT INTO forms (name, description)
		VALUES ('Feedback', 'Demo feedback form')
		RETURNING id
	`).Scan(&formID); err != nil {
		log.Fatalf("failed to seed form: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO form_fields (form_id, name, type, required)
		VALUES ($1, 'Comment', 'TEXT', true), ($1, 'Rating', 'NUMBER', false)
	`, formID); err != nil {
		log.Fatalf("failed to seed form fields: %v", err)
	}
	fmt.Printf("seeded form: id=%s\n", formID)
}
