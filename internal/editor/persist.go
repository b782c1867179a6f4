// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package editor

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kidzeivo/seating-designer/internal/model"
)

var (
	// ErrSaveInFlight rejects a second save while one is pending.
	ErrSaveInFlight = errors.New("save already in flight")
	// ErrLoadInFlight rejects a second load of the same version while the
	// first is pending. Loads of other versions stay allowed.
	ErrLoadInFlight = errors.New("load already in flight for this version")
)

// SaveInFlight reports whether a save is pending, for disabling the save
// control.
func (e *Editor) SaveInFlight() bool { return e.saveInFlight }

// BeginSave marks a save pending. Saving is single-flight: a second
// BeginSave before CompleteSave returns ErrSaveInFlight.
func (e *Editor) BeginSave() error {
	if e.saveInFlight {
		return ErrSaveInFlight
	}
	e.saveInFlight = true
	return nil
}

// CompleteSave clears the pending save regardless of its outcome. The plan
// itself is never touched by saving.
func (e *Editor) CompleteSave() { e.saveInFlight = false }

// SnapshotVersion captures the current plan, stage size and pan offset as
// a version payload for the persistence layer. Transient view state (tool,
// selection, popover) is not part of a version. The snapshot is detached:
// later edits do not write through it. The store assigns the identity.
func (e *Editor) SnapshotVersion(name string) model.Version {
	plan := e.plan.Clone()
	stage := e.stage
	pan := e.pan
	return model.Version{
		Name:    name,
		SavedAt: time.Now(),
		Guests:  plan.Guests,
		Tables:  plan.Tables,
		Stage:   &stage,
		Pan:     &pan,
	}
}

// LoadInFlight reports whether a load of the given version is pending, for
// disabling that version's load control.
func (e *Editor) LoadInFlight(id uuid.UUID) bool {
	_, ok := e.loading[id]
	return ok
}

// BeginLoad marks a load of the given version pending and returns its
// request token. Tokens are monotonic across all loads: when several loads
// overlap, only the completion carrying the newest token is applied, so a
// slow early response can never overwrite a later request's result.
func (e *Editor) BeginLoad(id uuid.UUID) (uint64, error) {
	if _, ok := e.loading[id]; ok {
		return 0, ErrLoadInFlight
	}
	e.loadSeq++
	token := e.loadSeq
	e.loading[id] = token
	e.newestLoad = token
	return token, nil
}

// CompleteLoad delivers the outcome of a load begun with BeginLoad and
// reports whether the version was applied. Failed loads leave the current
// plan untouched. Stale completions, ones whose token is no longer the
// newest begun load, are dropped even on success. Applying a version
// replaces the plan, adopts the stored stage size and pan when present and
// resets selection, popover and any held gesture.
func (e *Editor) CompleteLoad(id uuid.UUID, token uint64, v *model.Version, err error) bool {
	if tok, ok := e.loading[id]; ok && tok == token {
		delete(e.loading, id)
	}
	if err != nil || v == nil {
		return false
	}
	if token != e.newestLoad {
		return false
	}
	e.plan = v.Plan().Clone()
	if v.Stage != nil {
		e.stage = *v.Stage
	}
	if v.Pan != nil {
		e.pan = *v.Pan
	}
	e.selected = uuid.Nil
	e.popover = nil
	e.gesture = nil
	return true
}
