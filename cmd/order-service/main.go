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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ravelar/storefront/internal/order-service/app"
	"github.com/ravelar/storefront/internal/order-service/domain"
	"github.com/ravelar/storefront/internal/order-service/httpx"
	"github.com/ravelar/storefront/internal/order-service/journal"
	journalsqlite "github.com/ravelar/storefront/internal/order-service/journal/sqlite"
	"github.com/ravelar/storefront/internal/order-service/remote"
	"github.com/ravelar/storefront/internal/pkg/config"
	"github.com/ravelar/storefront/internal/pkg/interceptors"
	"github.com/ravelar/storefront/internal/pkg/metrics"
	"github.com/ravelar/storefront/internal/pkg/store"
	"github.com/ravelar/storefront/internal/pkg/telemetry"
	"github.com/ravelar/storefront/internal/rpc"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, config.Getenv("OTEL_SERVICE_NAME", "order-service"))
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

	// Remote clients: one connection per dependency, made once, reused for
	// the life of the process.
	callTimeout := config.DurationMS("REMOTE_CALL_TIMEOUT_MS", 2000)

	accountConn := mustDial(config.Getenv("ACCOUNT_SERVICE_ADDR", "localhost:9091"))
	defer accountConn.Close()
	catalogConn := mustDial(config.Getenv("CATALOG_SERVICE_ADDR", "localhost:9092"))
	defer catalogConn.Close()

	accounts := remote.NewAccounts(rpc.NewAccountClient(accountConn), callTimeout)
	catalog := remote.NewCatalog(rpc.NewCatalogClient(catalogConn), callTimeout)

	orders := newOrderStore(ctx)
	if err := app.SeedDemoData(ctx, orders); err != nil {
		slog.Error("failed to seed orders", "error", err)
		os.Exit(1)
	}

	var jr journal.Repository
	if path := config.Getenv("JOURNAL_PATH", "orders-journal.db"); path != "off" {
		repo, err := journalsqlite.Open(path)
		if err != nil {
			slog.Error("failed to open journal", "path", path, "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		jr = repo
	}

	decisions := metrics.NewOrderDecisions(prometheus.DefaultRegisterer)

	coordinator := app.NewCoordinator(accounts, catalog, orders, jr, decisions)
	aggregator := app.NewAggregator(accounts, catalog, orders)

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(interceptors.RequestIDServerInterceptor()),
	)
	rpc.RegisterOrderServer(grpcServer, app.NewServer(coordinator))

	grpcAddr := ":" + config.Getenv("GRPC_PORT", "9090")
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		slog.Error("failed to listen", "addr", grpcAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		slog.Info("order service gRPC running", "addr", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC server failed", "error", err)
		}
	}()

	httpServer := &http.Server{
		Addr:    ":" + config.Getenv("HTTP_PORT", "8080"),
		Handler: httpx.NewRouter(httpx.NewHandler(coordinator, aggregator)),
	}
	go func() {
		slog.Info("order service HTTP running", "addr", httpServer.Addr)
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

// newOrderStore picks the order store backend: in-memory by default, redis
// when ORDER_STORE=redis (ids stay atomic either way).
func newOrderStore(ctx context.Context) store.Store[domain.Order] {
	if config.Getenv("ORDER_STORE", "memory") != "redis" {
		return store.NewMemory[domain.Order]()
	}

	rdb := redis.NewClient(&redis.Options{Addr: config.Getenv("REDIS_ADDR", "localhost:6379")})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis", "error", err)
		os.Exit(1)
	}
	return store.NewRedis[domain.Order](rdb, "order")
}

func mustDial(addr string) *grpc.ClientConn {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		slog.Error("could not create client connection", "addr", addr, "error", err)
		os.Exit(1)
	}
	return conn
}
