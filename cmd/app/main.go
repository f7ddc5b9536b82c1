package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/donation-reconciler/pkg/config"
	"github.com/chris/donation-reconciler/pkg/handlers/reports"
	"github.com/chris/donation-reconciler/pkg/handlers/webhooks"
	appmiddleware "github.com/chris/donation-reconciler/pkg/middleware"
	"github.com/chris/donation-reconciler/pkg/notifier"
	"github.com/chris/donation-reconciler/pkg/providers"
	"github.com/chris/donation-reconciler/pkg/providers/card"
	"github.com/chris/donation-reconciler/pkg/providers/checkout"
	"github.com/chris/donation-reconciler/pkg/providers/ipn"
	"github.com/chris/donation-reconciler/pkg/recon"
	dydbstore "github.com/chris/donation-reconciler/pkg/storage/dynamodb"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

const providerTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	store := dydbstore.New(dbClient, cfg.DonationsTableName, cfg.ClaimsTableName)

	// Receipt dispatch. Without a queue configured receipts are dropped,
	// which is the right behavior for local runs.
	var receipts notifier.Notifier = &notifier.NoOp{}
	if cfg.ReceiptsQueueURL != "" {
		receipts = notifier.NewSQSNotifier(sqs.NewFromConfig(awsCfg), cfg.ReceiptsQueueURL)
	} else {
		log.Println("SQS_RECEIPTS_QUEUE_URL not set, receipts disabled")
	}

	// Provider adapters. Missing lookup credentials fail loudly per event
	// rather than silently, but flag them at startup anyway.
	if cfg.CheckoutBaseURL() == "" || cfg.CheckoutAccessToken == "" {
		log.Println("checkout API credentials not fully set, checkout lookups will fail")
	}
	if cfg.CardAPIURL == "" || cfg.CardAPIKey == "" {
		log.Println("card API credentials not fully set, balance transaction lookups will fail")
	}
	cardClient := card.NewHTTPClient(cfg.CardAPIURL, cfg.CardAPIKey, providerTimeout)
	checkoutClient := checkout.NewHTTPClient(cfg.CheckoutBaseURL(), cfg.CheckoutAccessToken, providerTimeout)
	registry := providers.NewRegistry(
		card.New(cardClient),
		ipn.New(ipn.Config{
			BusinessAddress: cfg.IPNBusinessAddress,
			PrimaryAddress:  cfg.IPNPrimaryAddress,
			MinimumDonation: cfg.MinimumDonation,
		}),
		checkout.New(checkoutClient, checkout.Config{MinimumDonation: cfg.MinimumDonation}),
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	engine := recon.New(registry, store, receipts, cfg.MinimumDonation, logger)

	webhooksHandler := webhooks.NewWebhooksHandler(engine)
	reportsHandler := reports.NewReportsHandler(store, cfg.DaysPerDollar)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(appmiddleware.RequestLogger(logger))

	router.Post("/webhooks/card", webhooksHandler.HandleCard)
	router.Post("/webhooks/paypal", webhooksHandler.HandleIPN)
	router.Post("/webhooks/checkout", webhooksHandler.HandleCheckout)

	router.Get("/donations/recent", reportsHandler.RecentDonations)
	router.Get("/donations/transaction/{transactionID}", reportsHandler.DonationByTransaction)
	router.Get("/donations/biggest", reportsHandler.BiggestDonors)
	router.Get("/donations/nag-check/{editor}", reportsHandler.NagCheck)

	mode := "sandbox"
	if cfg.Production {
		mode = "production"
	}
	log.Printf("Starting server on port %s (%s payments)", cfg.HTTPPort, mode)

	// Start the server
	err = http.ListenAndServe(":"+cfg.HTTPPort, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
