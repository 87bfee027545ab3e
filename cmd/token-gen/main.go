// Command token-gen mints a development bearer token for a given actor id,
// signed with the configured JWT secret. In production tokens come from the
// external auth system; this tool only exists for local testing.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"campus-hub.backend/internal/config"
	"campus-hub.backend/pkg/jwt"
)

func main() {
	actor := flag.String("actor", "", "actor uuid (random when empty)")
	expiry := flag.Duration("expiry", 24*time.Hour, "token lifetime")
	flag.Parse()

	actorID := uuid.New()
	if *actor != "" {
		parsed, err := uuid.Parse(*actor)
		if err != nil {
			log.Fatalf("invalid actor id: %v", err)
		}
		actorID = parsed
	}

	cfg := config.Load()
	svc := jwt.NewJWTService(cfg.JWT.Secret, *expiry)

	token, err := svc.GenerateToken(actorID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Printf("actor: %s\n", actorID)
	fmt.Printf("token: %s\n", token)
}
