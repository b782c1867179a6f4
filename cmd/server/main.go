// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/kidzeivo/seating-designer/internal/config"
	"github.com/kidzeivo/seating-designer/internal/db"
	"github.com/kidzeivo/seating-designer/internal/db/jsondb"
	"github.com/kidzeivo/seating-designer/internal/db/kvdb"
	"github.com/kidzeivo/seating-designer/internal/server"
)

func main() {
	cfg := config.Load()
	var (
		serviceName = flag.String("service-name", cfg.ServiceName, "otel service name")
		addr        = flag.String("addr", cfg.Addr, "default server address")
		dbStr       = flag.String("db", cfg.DB, "storage connection string, jsondb://<dir> or kvdb://<file>")
		otlpAddr    = flag.String("otlp-grpc", cfg.OTLPAddr, "default otlp/gRPC address, by default disabled. Example value: localhost:4317")
		logLevelArg = flag.String("log-level", cfg.LogLevel, "log level")
	)
	flag.Parse()

	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(*logLevelArg))
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(jsonHandler)
	if err != nil {
		logger.Error("unable to parse log level", "level-input", *logLevelArg, "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger)
	logger.Info("start and listen", "address", *addr)
	logger.Info("otlp/gRPC", "address", *otlpAddr, "service", *serviceName)
	logger.Info("storage", "connection", *dbStr)

	if *otlpAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		grpcOptions := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithBlock()}
		conn, err := grpc.DialContext(ctx, *otlpAddr, grpcOptions...)
		if err != nil {
			logger.Error("failed to create gRPC connection to collector", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		// Set up a trace exporter
		otelExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			logger.Error("failed to create trace exporter", "error", err)
			os.Exit(1)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(otelExporter))
		otel.SetTracerProvider(tp)
	}

	var versionStore db.VersionStore

	u, err := url.Parse(*dbStr)
	if err != nil {
		logger.Error("unable to parse db connection string", "error", err)
		os.Exit(1)
	}

	switch u.Scheme {
	case "jsondb":
		path := u.Host + u.Path
		versionStore, err = jsondb.NewVersionStore(path)
		if err != nil {
			logger.Error("could not initialize version store", "error", err)
			os.Exit(1)
		}
	case "kvdb":
		path := u.Host + u.Path
		db, err := bolt.Open(path, 0600, nil)
		if err != nil {
			logger.Error("could not open version database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		versionStore, err = kvdb.NewVersionStore(db)
		if err != nil {
			logger.Error("could not initialize version bucket", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("Unknown storage backend", "type", u.Scheme)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    *addr,
		Handler: server.NewServer(*serviceName, versionStore),
	}

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("error during listen and serve", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}
