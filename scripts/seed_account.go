package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/cardlink/adapters/persistence"
	"github.com/khoahotran/cardlink/internal/config"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/auth"
	"github.com/khoahotran/cardlink/pkg/logger"
)

// Creates an active account with one empty card, for local development.
func main() {
	fmt.Println("adding account into database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	email := os.Getenv("SEED_EMAIL")
	password := os.Getenv("SEED_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_EMAIL and SEED_PASSWORD are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	appLogger := logger.NewZapLogger(cfg.App.Env)
	pool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	now := time.Now().UTC()
	a := &account.Account{
		ID:              uuid.New(),
		Name:            os.Getenv("SEED_NAME"),
		ContactName:     os.Getenv("SEED_CONTACT_NAME"),
		Email:           email,
		PasswordHash:    hash,
		IsActive:        true,
		Cards:           []*account.Card{{ID: uuid.New(), Name: "Card 1", IsActive: true}},
		CustomLinkTypes: []*account.CustomLinkType{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	repo := persistence.NewPostgresAccountRepo(pool, appLogger)
	if err := repo.Create(ctx, a); err != nil {
		log.Fatalf("cannot add account: %v", err)
	}

	fmt.Printf("added account '%s' (%s) with card %s\n", email, a.ID, a.Cards[0].ID)
}
