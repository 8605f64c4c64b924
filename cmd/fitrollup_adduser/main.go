// Package main adds a user to the app_user table. The password is read from FIT_NEW_PASSWORD.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fitrollup/internal/auth"
	"github.com/2beens/fitrollup/internal/config"
	"github.com/2beens/fitrollup/internal/db"
	"github.com/2beens/fitrollup/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	username := flag.String("username", "", "username of the new user")
	flag.Parse()

	password := os.Getenv("FIT_NEW_PASSWORD")
	if *username == "" || password == "" {
		log.Fatal("username and password needed, use -username and FIT_NEW_PASSWORD")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBPassword: os.Getenv("FIT_DB_PASS"),
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.EnsureSchema(ctx, dbPool); err != nil {
		log.Fatal(err)
	}

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %s", err)
	}

	user, err := auth.NewPgUserRepo(dbPool).Add(ctx, *username, passwordHash)
	if errors.Is(err, auth.ErrUserExists) {
		log.Fatalf("user [%s] already exists", *username)
	}
	if err != nil {
		log.Fatalf("add user: %s", err)
	}

	fmt.Printf("user [%s] added, owner id: %s\n", user.Username, user.ID)
}
