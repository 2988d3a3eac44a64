package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/application/usecase"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/service"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/infrastructure/clock"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/infrastructure/config"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/infrastructure/messaging"
	grpcPresentation "github.com/Romar-II/marek-armulik-decision-engine-backend/internal/presentation/grpc"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/presentation/rest"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/pkg/observability"
)

func main() {
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting decision engine",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Metrics ------------------------------------------------------------
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialise metrics", "error", err)
		os.Exit(1)
	}

	// --- Infrastructure adapters -------------------------------------------
	publisher := messaging.NewKafkaEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("closing kafka publisher", "error", err)
		}
	}()
	systemClock := clock.NewSystemClock()

	// --- Domain -------------------------------------------------------------
	engineCfg := service.EngineConfig{
		MinLoanAmount:       cfg.Engine.MinLoanAmount,
		MaxLoanAmount:       cfg.Engine.MaxLoanAmount,
		MinLoanPeriodMonths: cfg.Engine.MinLoanPeriodMonths,
		MaxLoanPeriodMonths: cfg.Engine.MaxLoanPeriodMonths,
		AgeOfMajority:       cfg.Engine.AgeOfMajority,
		LifeExpectancy: service.LifeExpectancy{
			Estonia:   cfg.Engine.LifeExpectancyEstonia,
			Latvia:    cfg.Engine.LifeExpectancyLatvia,
			Lithuania: cfg.Engine.LifeExpectancyLithuania,
		},
		CreditModifiers: service.CreditModifiers{
			Segment1: cfg.Engine.Segment1CreditModifier,
			Segment2: cfg.Engine.Segment2CreditModifier,
			Segment3: cfg.Engine.Segment3CreditModifier,
		},
		ValidateChecksum: cfg.Engine.ChecksumValidation,
	}
	engine := service.NewDecisionEngine(engineCfg)

	// --- Use cases ----------------------------------------------------------
	evaluateUC := usecase.NewEvaluateLoanUseCase(engine, publisher, systemClock, logger)
	limitsUC := usecase.NewGetLimitsUseCase(engineCfg)

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewDecisionHandler(evaluateUC, limitsUC)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health + metrics server ---------------------------------------
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("decision engine stopped")
}
