// One-shot store bootstrap. Converges the commerce platform toward the
// fixed configuration in internal/setup and prints a run summary. Safe to
// re-run; existing resources are reused, never recreated.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"storefront-bff/internal/medusa"
	"storefront-bff/internal/setup"
	"storefront-bff/pkg/config"
	"storefront-bff/pkg/logger"
)

func main() {
	cfg, err := config.Load("storefront-bff-setup")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()

	gw := medusa.NewClient(cfg.Medusa.BackendURL, cfg.Medusa.PublishableKey, cfg.Medusa.RequestTimeout, log)
	runner := setup.NewRunner(gw, log, cfg.Setup, setup.DefaultData())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := runner.Authenticate(ctx, cfg.Setup); err != nil {
		log.Error("Setup aborted", zap.Error(err))
		os.Exit(1)
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		log.Error("Setup failed", zap.Error(err))
		os.Exit(1)
	}

	printSummary(summary)
}

func printSummary(summary *setup.Summary) {
	fmt.Println()
	fmt.Println("Setup complete")
	fmt.Printf("  Store ID: %s\n", summary.StoreID)

	resources := make([]string, 0, len(summary.Counters.Created)+len(summary.Counters.Reused))
	seen := map[string]bool{}
	for resource := range summary.Counters.Created {
		resources = append(resources, resource)
		seen[resource] = true
	}
	for resource := range summary.Counters.Reused {
		if !seen[resource] {
			resources = append(resources, resource)
		}
	}
	sort.Strings(resources)

	for _, resource := range resources {
		fmt.Printf("  %-16s created=%d reused=%d\n",
			resource,
			summary.Counters.Created[resource],
			summary.Counters.Reused[resource])
	}

	if len(summary.Keys) > 0 {
		fmt.Println()
		fmt.Println("Publishable API keys (save these for your storefront .env):")
		for _, key := range summary.Keys {
			token := key.Token
			if token == "" {
				token = key.Redacted
			}
			fmt.Printf("  %s: %s\n", key.Title, token)
		}
	}
}
