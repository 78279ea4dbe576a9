// Lists publishable API keys on the platform and warns about any that are
// not linked to a sales channel. Storefront requests made with an unlinked
// key cannot see any products.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"storefront-bff/internal/medusa"
	"storefront-bff/internal/setup"
	"storefront-bff/pkg/config"
	"storefront-bff/pkg/logger"
)

func main() {
	cfg, err := config.Load("storefront-bff-verifylinks")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       "warn",
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()

	gw := medusa.NewClient(cfg.Medusa.BackendURL, cfg.Medusa.PublishableKey, cfg.Medusa.RequestTimeout, log)
	runner := setup.NewRunner(gw, log, cfg.Setup, setup.Data{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := runner.Authenticate(ctx, cfg.Setup); err != nil {
		fmt.Fprintf(os.Stderr, "verification failed: %v\n", err)
		os.Exit(1)
	}

	keys, err := runner.PublishableKeys(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verification failed: %v\n", err)
		os.Exit(1)
	}

	if len(keys) == 0 {
		fmt.Println("No publishable API keys found, run the setup tool first")
		os.Exit(1)
	}

	fmt.Printf("Found %d publishable API key(s)\n\n", len(keys))

	unlinked := 0
	for _, key := range keys {
		fmt.Printf("%s\n", key.Title)
		fmt.Printf("  id:    %s\n", key.ID)
		fmt.Printf("  token: %s\n", keyToken(key))
		if len(key.SalesChannels) == 0 {
			fmt.Println("  WARNING: not linked to any sales channel")
			unlinked++
		} else {
			fmt.Printf("  linked to %d sales channel(s):\n", len(key.SalesChannels))
			for _, ch := range key.SalesChannels {
				fmt.Printf("    - %s (%s)\n", ch.Name, ch.ID)
			}
		}
		fmt.Println()
	}

	if unlinked > 0 {
		fmt.Printf("%d key(s) have no sales channels, re-run the setup tool to link them\n", unlinked)
		os.Exit(1)
	}
}

func keyToken(key medusa.APIKey) string {
	if key.Token != "" {
		return key.Token
	}
	return key.Redacted
}
