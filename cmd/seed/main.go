package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"userhub/internal/auth"
	"userhub/internal/config"
	"userhub/internal/db"
	"userhub/internal/model"
	"userhub/internal/repository"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
}

var demoUsers = []seedUser{
	{Name: "Alice Example", Email: "alice@example.com", Password: "alice-password"},
	{Name: "Bob Example", Email: "bob@example.com", Password: "bob-password"},
	{Name: "Carol Example", Email: "carol@example.com", Password: "carol-password"},
}

// Seeds demo users for local development. Existing emails are skipped so the
// command is safe to run repeatedly.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	repo := repository.NewUserRepository(gormDB)
	hasher := auth.NewPasswordHasher()
	ctx := context.Background()

	created := 0
	for _, su := range demoUsers {
		existing, err := repo.FindByEmail(ctx, su.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("check %s: %v", su.Email, err)
		}
		if existing != nil {
			log.Printf("skip %s: already exists", su.Email)
			continue
		}

		hash, err := hasher.Hash(su.Password)
		if err != nil {
			log.Fatalf("hash password for %s: %v", su.Email, err)
		}
		user := &model.User{Name: su.Name, Email: su.Email, PasswordHash: hash}
		if err := repo.Create(ctx, user); err != nil {
			log.Fatalf("create %s: %v", su.Email, err)
		}
		created++
	}

	log.Printf("seed complete: %d users created", created)
}
