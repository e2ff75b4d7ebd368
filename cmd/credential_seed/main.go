// Command credential_seed provisions processor credentials for a merchant.
// Intended for local and staging environments.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"paygate/internal/config"
	"paygate/internal/models"
	"paygate/internal/repositories"
)

func main() {
	config.LoadEnv()

	provider := flag.String("provider", "cbdc", "processor to seed: cbdc or wipay")
	applePay := flag.Bool("apple-pay", false, "enable Apple Pay for the merchant")
	googlePay := flag.Bool("google-pay", false, "enable Google Pay for the merchant")
	flag.Parse()

	if err := run(*provider, *applePay, *googlePay); err != nil {
		log.Fatal(err)
	}
	log.Printf("✅ %s credentials stored for merchant %s", *provider, os.Getenv("SEED_MERCHANT_ID"))
}

// run seeds one credential row. It returns instead of exiting so the
// database connection is always closed.
func run(provider string, applePay, googlePay bool) error {
	table, ok := map[string]string{
		"cbdc":  models.CBDCCredentialTable,
		"wipay": models.WiPayCredentialTable,
	}[provider]
	if !ok {
		return fmt.Errorf("unknown provider %q", provider)
	}

	merchantID := os.Getenv("SEED_MERCHANT_ID")
	username := os.Getenv("SEED_API_USERNAME")
	password := os.Getenv("SEED_API_PASSWORD")
	if merchantID == "" || username == "" || password == "" {
		return errors.New("SEED_MERCHANT_ID, SEED_API_USERNAME, and SEED_API_PASSWORD must be set in environment")
	}

	db, err := repositories.InitDB()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer repositories.CloseDB(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cred := &models.ProcessorCredential{
		MerchantID:       merchantID,
		Username:         username,
		Password:         password,
		APIURL:           os.Getenv("SEED_API_URL"),
		ApplePayEnabled:  applePay,
		GooglePayEnabled: googlePay,
	}
	if err := repositories.NewCredentialRepository(db, table).Upsert(ctx, cred); err != nil {
		return fmt.Errorf("failed to seed credentials: %w", err)
	}
	return nil
}
