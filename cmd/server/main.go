package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/robertnguyen279/son-phuong-nam-backend/internal/app"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Inside Lambda the gateway delivers requests as events; elsewhere we
	// serve plain HTTP.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		r, _, err := app.BuildEngine(ctx, cfg, logger)
		if err != nil {
			logger.Fatal("bootstrap", zap.Error(err))
		}
		adapter := ginadapter.NewV2(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	if err := app.Run(ctx, cfg, logger); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
