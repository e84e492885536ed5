package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"card-payment-gateway/internal/config"
	"card-payment-gateway/internal/infra/db/memory"
	pg "card-payment-gateway/internal/infra/db/postgres"
)

const schema = `
CREATE TABLE IF NOT EXISTS payments (
    id           TEXT PRIMARY KEY,
    status       TEXT NOT NULL,
    card_last4   TEXT NOT NULL,
    expiry_month INT NOT NULL,
    expiry_year  INT NOT NULL,
    currency     TEXT NOT NULL,
    amount       BIGINT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

func main() {
	cfgPath, dev := config.ParseFlags()
	cfg, err := config.LoadConfig(cfgPath, dev)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("seed requires database.url")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 4)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("create payments table: %v", err)
	}
	fmt.Println("payments table ready")

	// Insert the demo records unless they are already there.
	const insert = `
INSERT INTO payments (id, status, card_last4, expiry_month, expiry_year, currency, amount, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (id) DO NOTHING;`

	for _, p := range memory.SeedPayments() {
		tag, err := pool.Exec(ctx, insert,
			p.ID, string(p.Status), p.CardLast4, p.ExpiryMonth, p.ExpiryYear, p.Currency, p.Amount, time.Now().UTC())
		if err != nil {
			log.Fatalf("seed payment %s: %v", p.ID, err)
		}
		if tag.RowsAffected() > 0 {
			fmt.Printf("seeded: %s (%s %d %s, card ****%s)\n", p.ID, p.Currency, p.Amount, p.Status, p.CardLast4)
		} else {
			fmt.Printf("exists: %s\n", p.ID)
		}
	}

	fmt.Println("Seeding complete.")
}
