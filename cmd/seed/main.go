package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/yudhapratama/userhub/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demo"
	email := "demo@example.com"
	phone := "+6281200000001"

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, email, phone, status)
		VALUES ($1, $2, $3, 'enabled')
		ON CONFLICT (username) DO UPDATE SET updated_at = now()
		RETURNING id
	`, username, email, phone).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s email=%s\n", id, username, email)
}
