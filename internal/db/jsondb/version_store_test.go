package jsondb

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kidzeivo/seating-designer/internal/db"
	"github.com/kidzeivo/seating-designer/internal/model"
)

func testVersion(name string, savedAt time.Time) *model.Version {
	plan := model.Plan{}
	plan, _ = plan.AddGuest(name+" guest", model.GenderFemale, "")
	plan, _ = plan.AddTable(model.TableShapeRound, model.Point{X: 48, Y: 96})
	return &model.Version{
		Name:    name,
		SavedAt: savedAt,
		Guests:  plan.Guests,
		Tables:  plan.Tables,
		Stage:   &model.Size{Width: 1200, Height: 800},
		Pan:     &model.Point{X: 10, Y: -20},
	}
}

func TestVersionStore_CreateAndGet(t *testing.T) {
	store, err := NewVersionStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()

	id, err := store.CreateVersion(ctx, testVersion("rehearsal", time.Time{}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("create returned the nil id")
	}

	got, err := store.GetVersionByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "rehearsal" {
		t.Errorf("name = %q, want rehearsal", got.Name)
	}
	if got.SavedAt.IsZero() {
		t.Errorf("store did not stamp SavedAt")
	}
	if len(got.Guests) != 1 || len(got.Tables) != 1 {
		t.Errorf("payload = %d guests %d tables", len(got.Guests), len(got.Tables))
	}
	if got.Stage == nil || got.Stage.Width != 1200 || got.Pan == nil || got.Pan.Y != -20 {
		t.Errorf("viewport = %+v %+v", got.Stage, got.Pan)
	}
	if got.Tables[0].Chairs[0].ID == uuid.Nil {
		t.Errorf("chair identities lost in the roundtrip")
	}
}

func TestVersionStore_NotFound(t *testing.T) {
	store, err := NewVersionStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	missing := uuid.MustParse("0eac703a-40f3-4318-ae96-f28e026a23c6")

	if _, err := store.GetVersionByID(ctx, missing); !errors.Is(err, db.ErrVersionNotFound) {
		t.Fatalf("get missing = %v, want ErrVersionNotFound", err)
	}
	if err := store.DeleteVersion(ctx, missing); !errors.Is(err, db.ErrVersionNotFound) {
		t.Fatalf("delete missing = %v, want ErrVersionNotFound", err)
	}
}

func TestVersionStore_Delete(t *testing.T) {
	store, err := NewVersionStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()

	id, err := store.CreateVersion(ctx, testVersion("to delete", time.Time{}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.DeleteVersion(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.DeleteVersion(ctx, id); !errors.Is(err, db.ErrVersionNotFound) {
		t.Fatalf("second delete = %v, want ErrVersionNotFound", err)
	}
}

func TestVersionStore_ListNewestFirst(t *testing.T) {
	store, err := NewVersionStore(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, name := range []string{"oldest", "middle", "newest"} {
		if _, err := store.CreateVersion(ctx, testVersion(name, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	infos, err := store.ListVersions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("list count = %d, want 3", len(infos))
	}
	want := []string{"newest", "middle", "oldest"}
	for i, info := range infos {
		if info.Name != want[i] {
			t.Fatalf("list order = %v, want %v", infos, want)
		}
	}
}

func TestVersionStore_ListSkipsCorruptEntries(t *testing.T) {
	dir := t.TempDir()
	store, err := NewVersionStore(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()

	if _, err := store.CreateVersion(ctx, testVersion("good", time.Time{})); err != nil {
		t.Fatalf("create: %v", err)
	}
	corrupt := filepath.Join(dir, uuid.New().String()+".json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt blob: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{}"), 0644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	infos, err := store.ListVersions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "good" {
		t.Fatalf("list = %+v, want only the parsable entry", infos)
	}
}
