// Command token issues a bearer token for the review API.
//
// Usage:
//
//	token [-role admin|institution|user] [-user <uuid>]
//
// Requires AUTH_JWT_SECRET (or auth.jwt_secret in the config file).
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/heartmarshall/prize2pride-backend/internal/auth"
	"github.com/heartmarshall/prize2pride-backend/internal/config"
	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

func main() {
	role := flag.String("role", string(domain.RoleAdmin), "token role: admin, institution or user")
	user := flag.String("user", "", "subject user id (default: random)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		log.Fatalf("config: %v", err)
	}

	userID := uuid.New()
	if *user != "" {
		if userID, err = uuid.Parse(*user); err != nil {
			log.Fatalf("invalid -user: %v", err)
		}
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := jwt.GenerateAccessToken(userID, domain.Role(*role))
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
