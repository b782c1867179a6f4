// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/url"
	"os"

	bolt "go.etcd.io/bbolt"

	"github.com/kidzeivo/seating-designer/internal/client"
	"github.com/kidzeivo/seating-designer/internal/db"
	"github.com/kidzeivo/seating-designer/internal/db/jsondb"
	"github.com/kidzeivo/seating-designer/internal/db/kvdb"
)

func main() {
	var (
		srcStr = flag.String("src", "jsondb://testdata", "source store, jsondb://<dir>, kvdb://<file> or http(s)://<server>")
		dstStr = flag.String("dst", "kvdb://output.db", "destination store")
	)
	flag.Parse()

	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{})
	logger := slog.New(jsonHandler)
	slog.SetDefault(logger)

	src := openStore(logger, *srcStr)
	dst := openStore(logger, *dstStr)
	logger.Info("start converting", "src", *srcStr, "dst", *dstStr)
	into(dst, src)
	logger.Info("finished converting")
}

type database interface {
	db.VersionStore
	Close() error
}

type dbWrapper struct {
	db.VersionStore

	closeFN func() error
}

func (d *dbWrapper) Close() error {
	return d.closeFN()
}

func into(dst, src database) {
	defer src.Close()
	defer dst.Close()
	ctx := context.Background()

	infos, err := src.ListVersions(ctx)
	if err != nil {
		panic(err)
	}
	// Listing is newest first. Copy oldest first so a bounded destination
	// evicts the same versions the source would have dropped.
	for i := len(infos) - 1; i >= 0; i-- {
		v, err := src.GetVersionByID(ctx, infos[i].ID)
		if err != nil {
			panic(err)
		}
		if _, err := dst.CreateVersion(ctx, v); err != nil {
			panic(err)
		}
	}
}

func openStore(logger *slog.Logger, conn string) database {
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
		return &dbWrapper{VersionStore: store, closeFN: func() error { return nil }}
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
		return &dbWrapper{VersionStore: store, closeFN: bdb.Close}
	case "http", "https":
		return &dbWrapper{VersionStore: client.NewVersionStore(conn), closeFN: func() error { return nil }}
	default:
		logger.Error("Unknown storage backend", "type", u.Scheme)
		os.Exit(1)
	}
	return nil
}
