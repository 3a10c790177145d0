package main

import (
	"context"
	"os"
	_ "time/tzdata"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"github.com/skillupx/lead-intake/cmd/mainconfig"
	appconfig "github.com/skillupx/lead-intake/internal/config"
	"github.com/skillupx/lead-intake/internal/leads"
	"github.com/skillupx/lead-intake/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.NewWithOptions(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Built once per cold start and reused across invocations.
	handler, err := mainconfig.NewLeadHandler(context.Background(), cfg, nil, logger)
	if err != nil {
		logger.Error("failed to initialize lead intake", "error", err)
		os.Exit(1)
	}

	lambda.Start(leads.LambdaHandler(handler))
}
