package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	battlev1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
)

var (
	configPath string
	grpcPort   int
	httpPort   int
	redisAddrs []string
	logLevel   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the battle server",
	Long:  `Start the gRPC battle service and the websocket gateway.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 0, "Gateway HTTP port (overrides config)")
	serverCmd.Flags().StringSliceVar(&redisAddrs, "redis", nil, "Redis addresses; empty keeps sessions in memory")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// applyFlags lets explicitly set flags win over the config file
func applyFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPC.Port = grpcPort
	}
	if flags.Changed("http-port") {
		cfg.HTTP.Port = httpPort
	}
	if flags.Changed("redis") {
		cfg.Redis.Addrs = redisAddrs
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	slog.SetDefault(cfg.Log.NewLogger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPC.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(a.handler)

	var httpSrv *http.Server
	if cfg.HTTP.Port != 0 {
		httpSrv = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:           a.gateway.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	a.sweeper.Start(ctx)
	defer a.sweeper.Stop()

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPC.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	if httpSrv != nil {
		go func() {
			slog.Info("Gateway starting", "port", cfg.HTTP.Port)
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errChan <- fmt.Errorf("failed to serve http: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping...")
	case err := <-errChan:
		srv.Stop()
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GRPC.ShutdownTimeout)
	defer shutdownCancel()

	if httpSrv != nil {
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Gateway shutdown incomplete", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}

	return nil
}

func newGRPCServer(handler battlev1alpha1.BattleServiceServer) *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
	)

	battlev1alpha1.RegisterBattleServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(battlev1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "Recovered from panic", "panic", p)
	return status.Errorf(codes.Internal, "internal error")
}
