package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/paxlock/paxlock/logger"
	"github.com/paxlock/paxlock/paxos"
	"github.com/paxlock/paxlock/server"
	"github.com/paxlock/paxlock/types"
)

var (
	nodeID          = flag.String("id", "", "Unique node ID (required)")
	listenAddr      = flag.String("listen", server.DefaultListenAddress, "gRPC bind address")
	metricsAddr     = flag.String("metrics", "", "Prometheus /metrics bind address (empty disables)")
	logLevel        = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	rateLimit       = flag.Int("rate-limit", 0, "Requests per second (0 disables rate limiting)")
	rateLimitBurst  = flag.Int("rate-limit-burst", server.DefaultRateLimitBurst, "Rate limit burst size")
	shutdownTimeout = flag.Duration("shutdown-timeout", server.DefaultShutdownTimeout, "Graceful shutdown bound")
)

func main() {
	flag.Parse()

	if *nodeID == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		flag.Usage()
		os.Exit(1)
	}

	log := logger.NewStdLogger(*logLevel).WithNodeID(types.NodeID(*nodeID))

	var metrics server.ServerMetrics
	if *metricsAddr != "" {
		metrics = server.NewPrometheusServerMetrics(prometheus.DefaultRegisterer)
	}

	builder := server.NewLockNodeServerBuilder().
		WithNodeID(types.NodeID(*nodeID)).
		WithListenAddress(*listenAddr).
		WithMetricsAddress(*metricsAddr).
		WithShutdownTimeout(*shutdownTimeout).
		WithAcceptor(paxos.NewAcceptor(log, nil)).
		WithLogger(log).
		WithMetrics(metrics)
	if *rateLimit > 0 {
		builder = builder.WithRateLimit(*rateLimit, *rateLimitBurst, time.Second)
	}

	srv, err := builder.Build()
	if err != nil {
		log.Fatalw("Failed to build server", "error", err)
	}

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		log.Fatalw("Failed to start server", "error", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Infow("Received signal, shutting down", "signal", sig.String())

	stopCtx, cancel := context.WithTimeout(ctx, *shutdownTimeout)
	defer cancel()
	if err := srv.Stop(stopCtx); err != nil {
		log.Errorw("Shutdown failed", "error", err)
		os.Exit(1)
	}
}
