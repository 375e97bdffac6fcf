package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/config"
	"github.com/KirkDiggler/pokedex/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/pokedex/internal/handlers/web"
	"github.com/KirkDiggler/pokedex/internal/httpserver"
	"github.com/KirkDiggler/pokedex/internal/logger"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/translation"
	"github.com/KirkDiggler/pokedex/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/pokedex/internal/redis"
	"github.com/KirkDiggler/pokedex/internal/repositories/translations"
	"github.com/KirkDiggler/pokedex/internal/views"
)

const (
	shutdownTimeout  = 30 * time.Second
	redisPingTimeout = 3 * time.Second
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the web server",
	Long:  `Start the HTTP server (pages and JSON API) and the gRPC health service.`,
	RunE:  runServer,
}

func init() {
	config.RegisterFlags(serverCmd.Flags())
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(&config.LoadOptions{Flags: cmd.Flags()})
	if err != nil {
		return err
	}

	log, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync() // nolint:errcheck // stdout sync fails on some terminals
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	handlers, cleanup, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	httpSrv, err := httpserver.New(&httpserver.Config{
		Addr:        fmt.Sprintf(":%d", cfg.HTTPPort),
		Handlers:    handlers,
		Logger:      log,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("req"),
	})
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	grpcSrv, healthServer := newGRPCServer(log)

	errChan := make(chan error, 2)
	go func() {
		log.Info("grpc health server starting", zap.Int("port", cfg.GRPCPort))
		if err := grpcSrv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		if err := httpSrv.Start(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errChan:
		log.Error("server failed", zap.Error(err))
		shutdown(log, httpSrv, grpcSrv, healthServer)
		return err
	}

	shutdown(log, httpSrv, grpcSrv, healthServer)
	return nil
}

// shutdown marks the service NOT_SERVING first so health checks fail
// while in-flight page requests drain.
func shutdown(log *zap.Logger, httpSrv *httpserver.Server, grpcSrv *grpc.Server, healthServer *health.Server) {
	log.Info("shutting down")
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(catalogServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown incomplete", zap.Error(err))
	}

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		log.Warn("graceful shutdown timeout exceeded, forcing stop")
		grpcSrv.Stop()
	case <-stopped:
		log.Info("server stopped gracefully")
	}
}

// buildHandlers wires client, translation, optional cache, catalog and the
// two route groups. cleanup releases the Redis connection when one was opened.
func buildHandlers(ctx context.Context, cfg *config.Config, log *zap.Logger) ([]httpserver.RouteRegistrar, func(), error) {
	cleanup := func() {}

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: cfg.PokeAPI.Timeout,
		Logger:      log,
	})
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	var cache translations.Repository
	if cfg.Redis.CacheEnabled() {
		rc, err := redisclient.NewClient(cfg.Redis.Addr, nil)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create redis client: %w", err)
		}
		cleanup = func() {
			_ = rc.Close() // nolint:errcheck // process is exiting
		}

		if err := redisclient.Ping(ctx, rc, redisPingTimeout); err != nil {
			cleanup()
			return nil, func() {}, err
		}

		cache, err = translations.NewRedisRepository(&translations.Config{
			Client: rc,
			Clock:  clock.New(),
			TTL:    cfg.Redis.TTL,
		})
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("failed to create translation cache: %w", err)
		}
		log.Info("translation cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.TTL))
	}

	translator, err := translation.NewOrchestrator(&translation.Config{
		Client:         client,
		Cache:          cache,
		MaxConcurrency: cfg.PokeAPI.MaxConcurrency,
		Logger:         log,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("failed to create translation service: %w", err)
	}

	catalogService, err := catalog.NewOrchestrator(&catalog.Config{
		Client:                 client,
		Translator:             translator,
		PageSize:               cfg.PageSize,
		Language:               cfg.Language,
		DescriptionPlaceholder: cfg.DescriptionPlaceholder,
		MaxConcurrency:         cfg.PokeAPI.MaxConcurrency,
		Logger:                 log,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("failed to create catalog service: %w", err)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("failed to parse templates: %w", err)
	}

	pages, err := web.NewHandler(&web.HandlerConfig{
		Catalog:  catalogService,
		Renderer: renderer,
		Language: cfg.Language,
		Logger:   log,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("failed to create page handler: %w", err)
	}

	api, err := v1alpha1.NewPokemonHandler(&v1alpha1.PokemonHandlerConfig{
		Catalog: catalogService,
		Logger:  log,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("failed to create api handler: %w", err)
	}

	return []httpserver.RouteRegistrar{pages, api}, cleanup, nil
}
