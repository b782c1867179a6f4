// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package kvdb

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/trace"

	"github.com/kidzeivo/seating-designer/internal/db"
	"github.com/kidzeivo/seating-designer/internal/model"
)

const bucketVersion = "version_store"

// maxStoredVersions bounds the store to the most recent snapshots; saving
// past the bound evicts the oldest.
const maxStoredVersions = 20

func NewVersionStore(db *bolt.DB) (*VersionStore, error) {
	return &VersionStore{db: db}, db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketVersion))
		return err
	})
}

type VersionStore struct {
	db *bolt.DB
}

func (s *VersionStore) CreateVersion(ctx context.Context, version *model.Version) (uuid.UUID, error) {
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

	j, err := json.Marshal(version)
	if err != nil {
		return uuid.Nil, err
	}

	span.AddEvent("Update bucket")
	return version.ID, s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketVersion))
		if err := bucket.Put(version.ID[:], j); err != nil {
			return err
		}
		return pruneOldest(bucket)
	})
}

// pruneOldest drops entries beyond maxStoredVersions, oldest SavedAt
// first. Entries that do not parse are counted as oldest so they are the
// first to go.
func pruneOldest(bucket *bolt.Bucket) error {
	type entry struct {
		key     []byte
		savedAt time.Time
	}
	var entries []entry
	err := bucket.ForEach(func(k, v []byte) error {
		var version model.Version
		e := entry{key: append([]byte(nil), k...)}
		if err := json.Unmarshal(v, &version); err == nil {
			e.savedAt = version.SavedAt
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return err
	}
	if len(entries) <= maxStoredVersions {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].savedAt.Before(entries[j].savedAt) })
	for _, e := range entries[:len(entries)-maxStoredVersions] {
		if err := bucket.Delete(e.key); err != nil {
			return err
		}
	}
	return nil
}

func (s *VersionStore) GetVersionByID(ctx context.Context, id uuid.UUID) (*model.Version, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "GetVersionByID")
	defer span.End()
	span.AddEvent("View bucket")
	version := &model.Version{}
	return version, s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketVersion))
		res := bucket.Get(id[:])
		if res == nil {
			span.RecordError(db.ErrVersionNotFound)
			return db.ErrVersionNotFound
		}
		return json.Unmarshal(res, version)
	})
}

func (s *VersionStore) DeleteVersion(ctx context.Context, id uuid.UUID) error {
	var span trace.Span
	_, span = tracer.Start(ctx, "DeleteVersion")
	defer span.End()

	span.AddEvent("Update bucket")
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketVersion))
		if bucket.Get(id[:]) == nil {
			span.RecordError(db.ErrVersionNotFound)
			return db.ErrVersionNotFound
		}
		return bucket.Delete(id[:])
	})
}

// ListVersions returns metadata newest first. Blobs that fail to parse are
// skipped rather than failing the listing.
func (s *VersionStore) ListVersions(ctx context.Context) ([]model.VersionInfo, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "ListVersions")
	defer span.End()

	span.AddEvent("View bucket")
	var res []model.VersionInfo
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketVersion))
		return bucket.ForEach(func(_, v []byte) error {
			version := &model.Version{}
			if err := json.Unmarshal(v, version); err != nil {
				span.RecordError(err)
				return nil
			}
			res = append(res, version.Info())
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(res, func(i, j int) bool { return res[i].SavedAt.After(res[j].SavedAt) })
	return res, nil
}
