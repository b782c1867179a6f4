// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/kidzeivo/seating-designer/internal/client"
	"github.com/kidzeivo/seating-designer/internal/db"
	"github.com/kidzeivo/seating-designer/internal/db/jsondb"
	"github.com/kidzeivo/seating-designer/internal/db/kvdb"
	"github.com/kidzeivo/seating-designer/internal/exchange"
	"github.com/kidzeivo/seating-designer/internal/view"
)

func main() {
	var (
		dbStr  = flag.String("db", "jsondb://testdata", "store to read from, jsondb://<dir>, kvdb://<file> or http(s)://<server>")
		idStr  = flag.String("id", "", "version id to export")
		format = flag.String("format", "json", "output format, json or csv")
		out    = flag.String("out", "", "output file, derived from the version name when empty, - for stdout")
	)
	flag.Parse()

	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{})
	logger := slog.New(jsonHandler)
	slog.SetDefault(logger)

	id, err := uuid.Parse(*idStr)
	if err != nil {
		logger.Error("unable to parse version id", "id", *idStr, "error", err)
		os.Exit(1)
	}

	store, closeFN := openStore(logger, *dbStr)
	defer closeFN()

	version, err := store.GetVersionByID(context.Background(), id)
	if err != nil {
		logger.Error("could not load version", "id", id, "error", err)
		os.Exit(1)
	}

	var data []byte
	name := exchange.Filename(version.Name, version.SavedAt)
	switch *format {
	case "json":
		data, err = exchange.Export(*version)
	case "csv":
		data, err = view.CSV(version.Plan())
		name = strings.TrimSuffix(name, ".json") + ".csv"
	default:
		logger.Error("unknown format", "format", *format)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("could not render export", "format", *format, "error", err)
		os.Exit(1)
	}

	switch *out {
	case "-":
		if _, err := os.Stdout.Write(data); err != nil {
			logger.Error("could not write export", "error", err)
			os.Exit(1)
		}
	case "":
		*out = name
		fallthrough
	default:
		if err := os.WriteFile(*out, data, 0644); err != nil {
			logger.Error("could not write export", "file", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("wrote export", "file", *out, "bytes", len(data))
	}
}

func openStore(logger *slog.Logger, conn string) (db.VersionStore, func() error) {
	noop := func() error { return nil }

	u, err := url.Parse(conn)
	if err != nil {
		logger.Error("unable to parse connection string", "connection", conn, "error", err)
		os.Exit(1)
	}

	switch u.Scheme {
	case "jsondb":
		store, err := jsondb.NewVersionStore(u.Host + u.Path)
		if err != nil {
			logger.Error("could not initialize version store", "error", err)
			os.Exit(1)
		}
		return store, noop
	case "kvdb":
		bdb, err := bolt.Open(u.Host+u.Path, 0600, nil)
		if err != nil {
			logger.Error("could not open version database", "error", err)
			os.Exit(1)
		}
		store, err := kvdb.NewVersionStore(bdb)
		if err != nil {
			logger.Error("could not initialize version bucket", "error", err)
			os.Exit(1)
		}
		return store, bdb.Close
	case "http", "https":
		return client.NewVersionStore(conn), noop
	default:
		logger.Error("Unknown storage backend", "type", u.Scheme)
		os.Exit(1)
	}
	return nil, noop
}
