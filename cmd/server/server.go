package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	roomsv1alpha1 "github.com/KirkDiggler/rpg-rooms/internal/api/rooms/v1alpha1"
	"github.com/KirkDiggler/rpg-rooms/internal/clients/edgar"
	"github.com/KirkDiggler/rpg-rooms/internal/clients/llm"
	"github.com/KirkDiggler/rpg-rooms/internal/config"
	"github.com/KirkDiggler/rpg-rooms/internal/decoder"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	"github.com/KirkDiggler/rpg-rooms/internal/handlers/rooms/v1alpha1"
	"github.com/KirkDiggler/rpg-rooms/internal/logging"
	placementorch "github.com/KirkDiggler/rpg-rooms/internal/orchestrators/placement"
	"github.com/KirkDiggler/rpg-rooms/internal/orchestrators/templates"
	"github.com/KirkDiggler/rpg-rooms/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-rooms/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-rooms/internal/placement"
	"github.com/KirkDiggler/rpg-rooms/internal/redis"
	"github.com/KirkDiggler/rpg-rooms/internal/registry"
	templaterepo "github.com/KirkDiggler/rpg-rooms/internal/repositories/templates"
)

var loadSnapshot bool

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the rooms gRPC server with the template and placement services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().Int("port", config.Defaults().Server.Port, "gRPC server port")
	serverCmd.Flags().String("redis-endpoint", "", "redis address for snapshots (empty keeps them in memory)")
	serverCmd.Flags().BoolVar(&loadSnapshot, "load-snapshot", true, "load the configured snapshot collection on start")
	_ = v.BindPFlag("server.port", serverCmd.Flags().Lookup("port"))              // nolint:errcheck // flag exists
	_ = v.BindPFlag("redis.endpoint", serverCmd.Flags().Lookup("redis-endpoint")) // nolint:errcheck // flag exists
}

// services is everything the handler needs, plus what has to be closed
type services struct {
	templates templates.Service
	placement placementorch.Service
	closers   []func() error
}

func (s *services) close(logger *zap.Logger) {
	for _, c := range s.closers {
		if err := c(); err != nil {
			logger.Warn("failed to close dependency", zap.Error(err))
		}
	}
}

func buildServices(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*services, error) {
	svc := &services{}
	clk := clock.New()

	var repo templaterepo.Repository
	if cfg.Redis.Endpoint != "" {
		client, err := redis.NewClient(cfg.Redis.Endpoint, &redis.Options{PoolSize: cfg.Redis.PoolSize})
		if err != nil {
			return nil, err
		}
		svc.closers = append(svc.closers, client.Close)

		if err := redis.Ping(ctx, client, 5*time.Second); err != nil {
			svc.close(logger)
			return nil, err
		}
		repo, err = templaterepo.NewRedisRepository(&templaterepo.Config{Client: client, Clock: clk})
		if err != nil {
			svc.close(logger)
			return nil, err
		}
		logger.Info("storing snapshots in redis", zap.String("endpoint", cfg.Redis.Endpoint))
	} else {
		repo = templaterepo.NewInMemory(clk)
		logger.Info("storing snapshots in memory")
	}

	var edgarClient edgar.Client
	if cfg.Edgar.BaseURL != "" {
		c, err := edgar.New(&edgar.Config{
			BaseURL:     cfg.Edgar.BaseURL,
			Token:       cfg.Edgar.Token,
			HTTPTimeout: cfg.Edgar.Timeout,
			Logger:      logger,
		})
		if err != nil {
			svc.close(logger)
			return nil, err
		}
		edgarClient = c
	}

	var llmClient llm.Client
	if cfg.LLM.BaseURL != "" {
		c, err := llm.New(&llm.Config{
			BaseURL:     cfg.LLM.BaseURL,
			HTTPTimeout: cfg.LLM.Timeout,
			CacheTTL:    cfg.LLM.CacheTTL,
			Logger:      logger,
		})
		if err != nil {
			svc.close(logger)
			return nil, err
		}
		llmClient = c
	}

	var policy decoder.Policy
	if len(cfg.Templates.DenyWords) > 0 {
		policy = decoder.DenyList(cfg.Templates.DenyWords...)
	}

	reg := registry.New(&registry.Config{Clock: clk, Logger: logger})

	templateService, err := templates.NewOrchestrator(&templates.Config{
		Registry:    reg,
		Repository:  repo,
		EdgarClient: edgarClient,
		LLMClient:   llmClient,
		Decoder:     decoder.New(&decoder.Config{Policy: policy, Logger: logger}),
		Collection:  cfg.Templates.Collection,
		Logger:      logger,
	})
	if err != nil {
		svc.close(logger)
		return nil, err
	}

	minDistance := cfg.Placement.MinDistance
	placementService, err := placementorch.NewOrchestrator(&placementorch.Config{
		IDGenerator:     idgen.NewUUID("sess"),
		Sink:            placement.NewMemorySink(idgen.NewUUID("inst")),
		Templates:       reg,
		EventBus:        events.NewBus(),
		DiceRoller:      dice.DefaultRoller,
		Clock:           clk,
		MinimumDistance: &minDistance,
		MaxAttempts:     cfg.Placement.MaxAttempts,
		GridSteps:       cfg.Placement.GridSteps,
		Logger:          logger,
	})
	if err != nil {
		svc.close(logger)
		return nil, err
	}

	svc.templates = templateService
	svc.placement = placementService
	return svc, nil
}

// restoreSnapshot merges the configured collection into the registry. A
// missing snapshot is normal on first start.
func restoreSnapshot(ctx context.Context, svc *services, logger *zap.Logger) {
	out, err := svc.templates.LoadSnapshot(ctx, &templates.LoadSnapshotInput{})
	switch {
	case errors.IsNotFound(err):
		logger.Info("no snapshot to restore")
	case err != nil:
		logger.Warn("failed to restore snapshot", zap.Error(err))
	default:
		logger.Info("snapshot restored",
			zap.String("collection", out.Collection),
			zap.Int("added", len(out.Result.Added)),
		)
	}
}

func newGRPCServer(logger *zap.Logger, handler roomsv1alpha1.RoomServiceServer) (*grpc.Server, *health.Server) {
	recoveryOpt := grpc_recovery.WithRecoveryHandler(func(p any) error {
		logger.Error("recovered from panic", zap.Any("panic", p))
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logging.InterceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logging.InterceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	roomsv1alpha1.RegisterRoomServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(roomsv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)
	return srv, healthServer
}

func runServer(_ *cobra.Command, _ []string) error {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, "rooms")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }() // nolint:errcheck // stderr sync fails on some platforms

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc, err := buildServices(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}
	defer svc.close(logger)

	if loadSnapshot {
		restoreSnapshot(ctx, svc, logger)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		TemplateService:  svc.templates,
		PlacementService: svc.placement,
	})
	if err != nil {
		return fmt.Errorf("failed to create room handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv, healthServer := newGRPCServer(logger, handler)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}
