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
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ravelar/storefront/internal/catalog-service/app"
	"github.com/ravelar/storefront/internal/catalog-service/domain"
	"github.com/ravelar/storefront/internal/catalog-service/httpx"
	"github.com/ravelar/storefront/internal/catalog-service/remote"
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

	shutdownTracer, err := telemetry.SetupTracer(ctx, config.Getenv("OTEL_SERVICE_NAME", "catalog-service"))
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

	items := store.NewMemory[domain.CatalogItem]()
	if err := app.SeedDemoData(ctx, items); err != nil {
		slog.Error("failed to seed items", "error", err)
		os.Exit(1)
	}

	// The account service is only needed for the items-with-accounts view;
	// the handler degrades gracefully if it is down.
	accountAddr := config.Getenv("ACCOUNT_SERVICE_ADDR", "localhost:9091")
	accountConn, err := grpc.NewClient(accountAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		slog.Error("could not create client connection", "addr", accountAddr, "error", err)
		os.Exit(1)
	}
	defer accountConn.Close()

	directory := remote.NewAccountDirectory(
		rpc.NewAccountClient(accountConn),
		config.DurationMS("REMOTE_CALL_TIMEOUT_MS", 2000),
	)

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(interceptors.RequestIDServerInterceptor()),
	)
	rpc.RegisterCatalogServer(grpcServer, app.NewServer(items))

	grpcAddr := ":" + config.Getenv("GRPC_PORT", "9092")
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		slog.Error("failed to listen", "addr", grpcAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		slog.Info("catalog service gRPC running", "addr", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC server failed", "error", err)
		}
	}()

	httpServer := &http.Server{
		Addr:    ":" + config.Getenv("HTTP_PORT", "8082"),
		Handler: httpx.NewRouter(httpx.NewHandler(items, directory)),
	}
	go func() {
		slog.Info("catalog service HTTP running", "addr", httpServer.Addr)
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
