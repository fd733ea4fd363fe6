package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/ravelar/storefront/internal/account-service/app"
	"github.com/ravelar/storefront/internal/account-service/domain"
	"github.com/ravelar/storefront/internal/account-service/httpx"
	"github.com/ravelar/storefront/internal/pkg/config"
	"github.com/ravelar/storefront/internal/pkg/interceptors"
	"github.com/ravelar/storefront/internal/pkg/store"
	"github.com/ravelar/storefront/internal/pkg/telemetry"
	"github.com/ravelar/storefront/internal/rpc"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, config.Getenv("OTEL_SERVICE_NAME", "account-service"))
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	accounts := store.NewMemory[domain.Account]()
	if err := app.SeedDemoData(ctx, accounts); err != nil {
		slog.Error("failed to seed accounts", "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(interceptors.RequestIDServerInterceptor()),
	)
	rpc.RegisterAccountServer(grpcServer, app.NewServer(accounts))

	grpcAddr := ":" + config.Getenv("GRPC_PORT", "9091")
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		slog.Error("failed to listen", "addr", grpcAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		slog.Info("account service gRPC running", "addr", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC server failed", "error", err)
		}
	}()

	httpServer := &http.Server{
		Addr:    ":" + config.Getenv("HTTP_PORT", "8081"),
		Handler: httpx.NewRouter(httpx.NewHandler(accounts)),
	}
	go func() {
		slog.Info("account service HTTP running", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("HTTP server failed", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown error", "error", err)
	}
	grpcServer.GracefulStop()
}
