// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package jsondb

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/kidzeivo/seating-designer/internal/db"
	"github.com/kidzeivo/seating-designer/internal/model"
)

// NewVersionStore opens a version store over a directory, one JSON blob
// per version keyed by its id. The directory is created when missing.
func NewVersionStore(dir string) (*VersionStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &VersionStore{dir: dir}, nil
}

type VersionStore struct {
	mu  sync.RWMutex
	dir string
}

func (v *VersionStore) filename(id uuid.UUID) string {
	return filepath.Join(v.dir, id.String()+".json")
}

func (v *VersionStore) CreateVersion(ctx context.Context, version *model.Version) (uuid.UUID, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "CreateVersion")
	defer span.End()

	if version.ID == uuid.Nil {
		span.AddEvent("uuid is nil, generate a new id")
		version.ID = uuid.New()
	}
	if version.SavedAt.IsZero() {
		version.SavedAt = time.Now()
	}

	fileData, err := json.MarshalIndent(version, "", "  ")
	if err != nil {
		span.RecordError(err)
		return uuid.Nil, err
	}

	span.AddEvent("Lock")
	v.mu.Lock()
	defer span.AddEvent("Unlock")
	defer v.mu.Unlock()

	if err := os.WriteFile(v.filename(version.ID), fileData, 0644); err != nil {
		span.RecordError(err)
		return uuid.Nil, err
	}
	return version.ID, nil
}

func (v *VersionStore) GetVersionByID(ctx context.Context, id uuid.UUID) (*model.Version, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetVersionByID")
	defer span.End()

	span.AddEvent("RLock")
	v.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer v.mu.RUnlock()

	fileData, err := os.ReadFile(v.filename(id))
	if os.IsNotExist(err) {
		span.RecordError(db.ErrVersionNotFound)
		return nil, db.ErrVersionNotFound
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	version := &model.Version{}
	if err := json.Unmarshal(fileData, version); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return version, nil
}

func (v *VersionStore) DeleteVersion(ctx context.Context, id uuid.UUID) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "DeleteVersion")
	defer span.End()

	span.AddEvent("Lock")
	v.mu.Lock()
	defer span.AddEvent("Unlock")
	defer v.mu.Unlock()

	err := os.Remove(v.filename(id))
	if os.IsNotExist(err) {
		span.RecordError(db.ErrVersionNotFound)
		return db.ErrVersionNotFound
	}
	return err
}

// ListVersions reads every blob in the directory. Files that are not named
// by a uuid or do not parse as a version are skipped, a single corrupt
// entry must not take the whole listing down.
func (v *VersionStore) ListVersions(ctx context.Context) ([]model.VersionInfo, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListVersions")
	defer span.End()

	span.AddEvent("RLock")
	v.mu.RLock()
	defer span.AddEvent("RUnlock")
	defer v.mu.RUnlock()

	entries, err := os.ReadDir(v.dir)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var res []model.VersionInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := uuid.Parse(strings.TrimSuffix(name, ".json")); err != nil {
			continue
		}
		fileData, err := os.ReadFile(filepath.Join(v.dir, name))
		if err != nil {
			span.RecordError(err)
			continue
		}
		version := &model.Version{}
		if err := json.Unmarshal(fileData, version); err != nil {
			span.RecordError(err)
			continue
		}
		res = append(res, version.Info())
	}
	sort.Slice(res, func(i, j int) bool { return res[i].SavedAt.After(res[j].SavedAt) })
	return res, nil
}
