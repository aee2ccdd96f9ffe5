// Command devtoken prints a signed access token for local testing. The
// server must run with the same auth.jwt_secret and auth.jwt_issuer.
//
// Usage: devtoken [-user <uuid>] [-name <display name>]
// Without -user the token is issued for the seed dataset's user.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/heartmarshall/vntravel-backend/internal/adapter/seed"
	"github.com/heartmarshall/vntravel-backend/internal/auth"
	"github.com/heartmarshall/vntravel-backend/internal/config"
)

func main() {
	userFlag := flag.String("user", "", "user UUID (default: seed dataset user)")
	name := flag.String("name", "", "display name carried in the token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Auth.Enabled() {
		log.Fatal("auth.jwt_secret is not set; the server accepts no tokens")
	}

	userID, displayName, err := resolveUser(*userFlag, *name)
	if err != nil {
		log.Fatal(err)
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL).
		GenerateAccessToken(userID, displayName)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}

func resolveUser(raw, name string) (uuid.UUID, string, error) {
	if raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, "", fmt.Errorf("invalid -user: %w", err)
		}
		return id, name, nil
	}

	ds, err := seed.Default()
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("load seed: %w", err)
	}
	if name == "" {
		name = ds.User.Name
	}
	return ds.User.ID, name, nil
}
