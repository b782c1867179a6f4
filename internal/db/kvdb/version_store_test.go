package kvdb

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/kidzeivo/seating-designer/internal/db"
	"github.com/kidzeivo/seating-designer/internal/model"
)

func openTestDB(t *testing.T) *bolt.DB {
	t.Helper()
	bdb, err := bolt.Open(filepath.Join(t.TempDir(), "versions.db"), 0600, nil)
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	t.Cleanup(func() { bdb.Close() })
	return bdb
}

func storedVersion(name string, savedAt time.Time) *model.Version {
	plan := model.Plan{}
	plan, _ = plan.AddTable(model.TableShapeRect, model.Point{X: 24, Y: 24})
	return &model.Version{
		Name:    name,
		SavedAt: savedAt,
		Guests:  plan.Guests,
		Tables:  plan.Tables,
	}
}

func TestVersionStore_RoundTrip(t *testing.T) {
	store, err := NewVersionStore(openTestDB(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()

	id, err := store.CreateVersion(ctx, storedVersion("spring gala", time.Time{}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.GetVersionByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "spring gala" || len(got.Tables) != 1 {
		t.Fatalf("roundtrip = %q with %d tables", got.Name, len(got.Tables))
	}
	if got.SavedAt.IsZero() {
		t.Fatalf("store did not stamp SavedAt")
	}

	if err := store.DeleteVersion(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetVersionByID(ctx, id); !errors.Is(err, db.ErrVersionNotFound) {
		t.Fatalf("get after delete = %v, want ErrVersionNotFound", err)
	}
	if err := store.DeleteVersion(ctx, id); !errors.Is(err, db.ErrVersionNotFound) {
		t.Fatalf("second delete = %v, want ErrVersionNotFound", err)
	}
}

func TestVersionStore_KeepsNewestTwenty(t *testing.T) {
	store, err := NewVersionStore(openTestDB(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 0; i < 23; i++ {
		id, err := store.CreateVersion(ctx, storedVersion(fmt.Sprintf("v%02d", i), base.Add(time.Duration(i)*time.Minute)))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, id)
	}

	infos, err := store.ListVersions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != maxStoredVersions {
		t.Fatalf("list count = %d, want %d", len(infos), maxStoredVersions)
	}
	if infos[0].Name != "v22" || infos[len(infos)-1].Name != "v03" {
		t.Fatalf("kept range %s..%s, want v22..v03", infos[0].Name, infos[len(infos)-1].Name)
	}

	// the three oldest were evicted
	for _, id := range ids[:3] {
		if _, err := store.GetVersionByID(ctx, id); !errors.Is(err, db.ErrVersionNotFound) {
			t.Fatalf("evicted version still readable: %v", err)
		}
	}
}

func TestVersionStore_ListSkipsCorruptEntries(t *testing.T) {
	bdb := openTestDB(t)
	store, err := NewVersionStore(bdb)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()

	if _, err := store.CreateVersion(ctx, storedVersion("good", time.Time{})); err != nil {
		t.Fatalf("create: %v", err)
	}
	bad := uuid.New()
	err = bdb.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketVersion)).Put(bad[:], []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("plant corrupt blob: %v", err)
	}

	infos, err := store.ListVersions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "good" {
		t.Fatalf("list = %+v, want only the parsable entry", infos)
	}
}
