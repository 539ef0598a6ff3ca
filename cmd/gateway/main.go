package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	appGovernance "github.com/DoisLONG/GenAIStudio/pkg/app/governance"
	"github.com/DoisLONG/GenAIStudio/pkg/app/language"
	"github.com/DoisLONG/GenAIStudio/pkg/app/policy"
	"github.com/DoisLONG/GenAIStudio/pkg/app/prompt"
	"github.com/DoisLONG/GenAIStudio/pkg/config"
	handlers "github.com/DoisLONG/GenAIStudio/pkg/handlers/http"
	infraLogger "github.com/DoisLONG/GenAIStudio/pkg/infra/logger"
	"github.com/DoisLONG/GenAIStudio/pkg/infra/repository"
	"github.com/DoisLONG/GenAIStudio/pkg/middleware"
	"github.com/DoisLONG/GenAIStudio/pkg/server"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	// Load configuration
	if err := config.Load("./config"); err != nil {
		logger.WithError(err).Warn("running with default configuration")
	}
	cfg := config.GetConfig()

	// repositories: the tenant registry is read-only after this point, the
	// event log is the single shared mutable resource.
	tenantRepository := repository.NewMemoryTenantRepository(cfg.Tenants.RegionConfigs())
	eventLog := repository.NewMemoryEventLog()

	// core services
	languageResolver := language.NewResolver()
	promptGovernor := prompt.NewGovernor()
	policyEvaluator := policy.NewEvaluator()

	// use cases
	promptPreviewer := appGovernance.NewPromptPreviewer(
		logger, tenantRepository, languageResolver, promptGovernor, eventLog,
	)
	contentEvaluator := appGovernance.NewContentEvaluator(
		logger, tenantRepository, languageResolver, policyEvaluator, eventLog,
	)
	eventRecorder := appGovernance.NewEventRecorder(logger, eventLog)
	eventsFinder := appGovernance.NewEventsFinder(eventLog)

	// middleware
	middlewareTransport := &middleware.Transport{
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
	}

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		PreviewPromptHandler:  handlers.NewPreviewPromptHandler(logger, promptPreviewer),
		EvaluatePolicyHandler: handlers.NewEvaluatePolicyHandler(logger, contentEvaluator),
		CreateEventHandler:    handlers.NewCreateEventHandler(logger, eventRecorder),
		ListEventsHandler:     handlers.NewListEventsHandler(logger, eventsFinder),
		GetVersionHandler:     handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewGatewayServer(server.GatewayServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return srv.Run()
	})

	group.Go(func() error {
		<-ctx.Done()
		fmt.Println("shutting down server...")
		return srv.Shutdown()
	})

	if err := group.Wait(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}
