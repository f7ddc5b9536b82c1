package main

import (
	"context"
	"encoding/json"
	"log"

	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/donation-reconciler/pkg/notifier"
	"github.com/chris/donation-reconciler/pkg/receipts"
	"github.com/joho/godotenv"
)

var sender *receipts.Sender

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	server := os.Getenv("SMTP_SERVER")
	fromDomain := os.Getenv("MAIL_FROM_DOMAIN")
	if server == "" || fromDomain == "" {
		log.Fatal("SMTP_SERVER and MAIL_FROM_DOMAIN environment variables are not set")
	}

	port := 25
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err = strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid SMTP_PORT %q: %v", v, err)
		}
	}

	sender = receipts.NewSender(server, port, fromDomain)
}

// HandleRequest processes SQS messages and sends the donor receipts.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var receipt notifier.Receipt
		if err := json.Unmarshal([]byte(message.Body), &receipt); err != nil {
			log.Printf("ERROR: failed to unmarshal receipt from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		if err := sender.Send(receipt); err != nil {
			log.Printf("ERROR: failed to send receipt for message %s: %v", message.MessageId, err)
			// In a production system, persistent failures would be sent to a DLQ.
			return err
		}

		log.Printf("Successfully sent receipt to %s", receipt.Email)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
