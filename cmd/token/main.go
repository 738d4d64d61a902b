// Command token issues an access token for a caller. It is used to
// bootstrap service accounts and local development sessions.
//
// Usage:
//
//	token --user=u1 [--permissions=showOrders,...] [--scope='{"branchId":"b1"}']
//
// Requires AUTH_JWT_SECRET (or auth.jwt_secret in the config file).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/heartmarshall/crmhub-backend/internal/auth"
	"github.com/heartmarshall/crmhub-backend/internal/config"
	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

func main() {
	user := flag.String("user", "", "user id the token is issued to")
	permissions := flag.String("permissions", "", "comma-separated granted actions")
	scope := flag.String("scope", "", "access-scope selector as a JSON object")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --user=ID [--permissions=a,b] [--scope=JSON]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	caller, err := parseCaller(*user, *permissions, *scope)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL).
		GenerateAccessToken(caller)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}

func parseCaller(user, permissions, scope string) (domain.Caller, error) {
	caller := domain.Caller{UserID: user}
	for _, p := range strings.Split(permissions, ",") {
		if p = strings.TrimSpace(p); p != "" {
			caller.Permissions = append(caller.Permissions, p)
		}
	}
	if scope != "" {
		if err := json.Unmarshal([]byte(scope), &caller.Scope); err != nil {
			return domain.Caller{}, fmt.Errorf("--scope: %w", err)
		}
	}
	return caller, nil
}
