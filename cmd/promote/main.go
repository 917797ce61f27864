// Command promote grants the admin role to an existing account by email.
// It is used to bootstrap the first administrator.
//
// Usage:
//
//	promote --email=user@example.com
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/biokit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/biokit-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/biokit-backend/internal/adapter/postgres/role"
	"github.com/heartmarshall/biokit-backend/internal/config"
	"github.com/heartmarshall/biokit-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the account to promote to admin")
	flag.Parse()

	addr := strings.ToLower(strings.TrimSpace(*email))
	if addr == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:             dsn,
		MaxConns:        2,
		MinConns:        1,
		MaxConnLifetime: time.Minute,
		MaxConnIdleTime: time.Minute,
	})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	acc, err := account.New(pool).GetByEmail(ctx, addr)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No account found with email %q. The user must sign in once first.\n", addr)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("find account: %v", err)
	}

	roles := role.New(pool)
	current, err := roles.Get(ctx, acc.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		log.Fatalf("read role: %v", err)
	}
	if current == domain.RoleAdmin {
		fmt.Printf("Account %q is already admin.\n", addr)
		return
	}

	if err := roles.Assign(ctx, acc.ID, domain.RoleAdmin); err != nil {
		log.Fatalf("assign role: %v", err)
	}

	fmt.Printf("Account %q (%s) promoted to admin.\n", addr, acc.ID)
}
