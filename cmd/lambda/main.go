package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/personal-lambda/internal/config"
	"github.com/saulo-duarte/personal-lambda/internal/container"
	"github.com/saulo-duarte/personal-lambda/internal/router"
)

// The connection opened at cold start is reused by every warm invocation.
func main() {
	settings, err := config.Load()
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to load configuration")
	}

	c, err := container.New(context.Background(), settings)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to initialize container")
	}

	adapter := httpadapter.New(router.New(router.FromContainer(c)))
	lambda.Start(adapter.ProxyWithContext)
}
