package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "pokeio/internal/adapters/mcp"
	"pokeio/internal/config"
	"pokeio/internal/di"
	"pokeio/internal/logging"
)

func main() {
	configDir := flag.String("config", config.Dir(), "directory holding config.yaml")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9464)")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("pokeio-mcp: %v", err)
	}

	// stdout carries the protocol, so logs never go to the terminal
	logger, err := di.ProvideLogger(cfg, logging.DefaultFile())
	if err != nil {
		log.Fatalf("pokeio-mcp: %v", err)
	}

	c, err := di.NewContainer(cfg, logger)
	if err != nil {
		log.Fatalf("pokeio-mcp: %v", err)
	}
	defer c.Close()

	if err := c.Services.Types.Ensure(context.Background()); err != nil {
		// show retries the missing types on demand
		logger.Warn("type table incomplete", zap.Error(err))
	}

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, c.Metrics.Handler(), logger)
	}

	mcpServer := server.NewMCPServer(
		"pokeio-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, c.Services)
	mcpadapter.RegisterWriteTools(mcpServer, c.Services)

	logger.Info("serving stdio", zap.String("metrics", *metricsAddr))
	if err := server.ServeStdio(mcpServer); err != nil {
		c.Close()
		log.Fatalf("pokeio-mcp: %v", err)
	}
}

func serveMetrics(addr string, handler http.Handler, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	logger.Info("metrics listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
