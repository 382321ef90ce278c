// File: createscale/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"createscale/api"
	"createscale/config"
	"createscale/oauth"
	"createscale/screens"
	"createscale/session"
	"createscale/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	client := api.New(config.AppConfig.APIBaseURL)
	if secs := config.AppConfig.HTTPTimeoutSeconds; secs > 0 {
		client.HTTPClient.Timeout = time.Duration(secs) * time.Second
	}

	store := session.NewStore(client, session.NewFileTokenStorage(config.AppConfig.TokenPath))

	flow := oauth.NewFlow(client, func(authorizeURL string) error {
		logger.Info("Open this URL in your browser to continue sign-in")
		_, err := os.Stdout.WriteString("\nOpen to sign in:\n" + authorizeURL + "\n\n")
		return err
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting CreateScale client",
		zap.String("api", config.AppConfig.APIBaseURL),
		zap.String("env", config.GetEnv()))

	shell := screens.NewShell(store, client, flow, os.Stdin, os.Stdout)
	shell.Run(ctx)
}
