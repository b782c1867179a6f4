// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

// Package editor holds the interactive state of the floor-plan designer:
// the current plan, the viewport, tool and selection state, and the
// pointer-gesture machine that turns raw pointer events into pans, table
// drags and seat assignments.
//
// The editor is single-threaded by contract. All methods are synchronous
// state transitions driven from one event loop; the only asynchronous edges
// are the Begin/Complete pairs around persistence calls. Every plan change
// goes through the model's value mutators, so snapshots handed out earlier
// are never mutated underneath their observers.
package editor

import (
	"github.com/google/uuid"

	"github.com/kidzeivo/seating-designer/internal/geometry"
	"github.com/kidzeivo/seating-designer/internal/model"
)

// Tool is the global pointer mode.
type Tool int

const (
	// ToolSelect makes pointer-downs on tables start a drag.
	ToolSelect Tool = iota
	// ToolPan makes any pointer-down pan the canvas.
	ToolPan
)

// SeatRef addresses one chair on one table, the target of the assignment
// popover.
type SeatRef struct {
	TableID uuid.UUID
	ChairID uuid.UUID
}

// DefaultStage is the stage size before the host viewport reports its own.
var DefaultStage = model.Size{Width: 1200, Height: 800}

// duplicateOffset displaces a duplicated table from its source.
var duplicateOffset = model.Point{X: 40, Y: 40}

// Editor is the interaction controller. The zero value is not usable; use
// NewEditor.
type Editor struct {
	plan model.Plan

	stage model.Size
	pan   model.Point

	tool     Tool
	snapping bool
	selected uuid.UUID
	popover  *SeatRef

	shortcutsEnabled bool

	gesture *gesture

	saveInFlight bool
	loadSeq      uint64
	newestLoad   uint64
	loading      map[uuid.UUID]uint64
}

// NewEditor returns an editor over an empty plan with snapping on, the
// select tool active and keyboard shortcuts enabled.
func NewEditor() *Editor {
	return &Editor{
		stage:            DefaultStage,
		snapping:         true,
		shortcutsEnabled: true,
		loading:          make(map[uuid.UUID]uint64),
	}
}

// Plan returns the current plan snapshot. Mutators never write through
// previously returned snapshots, so the value stays consistent for as long
// as the caller holds it.
func (e *Editor) Plan() model.Plan { return e.plan }

// Stage returns the canvas dimensions.
func (e *Editor) Stage() model.Size { return e.stage }

// SetStage records the canvas dimensions reported by the host viewport.
func (e *Editor) SetStage(s model.Size) { e.stage = s }

// Pan returns the current canvas offset.
func (e *Editor) Pan() model.Point { return e.pan }

// Tool returns the active pointer mode.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches the pointer mode. An in-flight gesture finishes under
// the mode it started with.
func (e *Editor) SetTool(t Tool) { e.tool = t }

// Snapping reports whether grid snapping is applied to placement and drag.
func (e *Editor) Snapping() bool { return e.snapping }

// SetSnapping toggles grid snapping.
func (e *Editor) SetSnapping(on bool) { e.snapping = on }

// Selected returns the selected table id, uuid.Nil when nothing is
// selected.
func (e *Editor) Selected() uuid.UUID { return e.selected }

// Popover returns the seat the assignment popover is open for, nil when
// closed.
func (e *Editor) Popover() *SeatRef {
	if e.popover == nil {
		return nil
	}
	ref := *e.popover
	return &ref
}

func (e *Editor) maybeSnap(p model.Point) model.Point {
	if e.snapping {
		return geometry.SnapPoint(p)
	}
	return p
}

// AddGuest appends a guest to the plan.
func (e *Editor) AddGuest(name string, gender model.Gender, photoURL string) model.Guest {
	plan, guest := e.plan.AddGuest(name, gender, photoURL)
	e.plan = plan
	return guest
}

// RemoveGuest deletes a guest, clearing any seat that referenced it.
func (e *Editor) RemoveGuest(id uuid.UUID) {
	e.plan = e.plan.RemoveGuest(id)
}

// AddTable places a new table of the given shape at the visual center of
// the viewport, snapped when snapping is on, and selects it.
func (e *Editor) AddTable(shape model.TableShape) model.Table {
	at := e.maybeSnap(model.Point{
		X: e.stage.Width/2 - e.pan.X,
		Y: e.stage.Height/2 - e.pan.Y,
	})
	plan, table := e.plan.AddTable(shape, at)
	e.plan = plan
	e.selected = table.ID
	return table
}

// DuplicateTable clones the table at a fixed offset from its source and
// selects the copy. Unknown ids are a silent no-op.
func (e *Editor) DuplicateTable(id uuid.UUID) {
	src, ok := e.plan.TableByID(id)
	if !ok {
		return
	}
	at := e.maybeSnap(model.Point{X: src.X + duplicateOffset.X, Y: src.Y + duplicateOffset.Y})
	plan, dup, ok := e.plan.DuplicateTable(id, at)
	if !ok {
		return
	}
	e.plan = plan
	e.selected = dup.ID
}

// DuplicateSelected clones the selected table. No-op without a selection.
func (e *Editor) DuplicateSelected() {
	if e.selected == uuid.Nil {
		return
	}
	e.DuplicateTable(e.selected)
}

// DeleteTable removes the table, dropping the selection and the popover if
// they pointed at it.
func (e *Editor) DeleteTable(id uuid.UUID) {
	e.plan = e.plan.DeleteTable(id)
	if e.selected == id {
		e.selected = uuid.Nil
	}
	if e.popover != nil && e.popover.TableID == id {
		e.popover = nil
	}
}

// SetChairCount resizes a table's chair list. The popover closes if its
// chair was truncated away.
func (e *Editor) SetChairCount(id uuid.UUID, n int) {
	e.plan = e.plan.SetChairCount(id, n)
	if e.popover == nil || e.popover.TableID != id {
		return
	}
	if t, ok := e.plan.TableByID(id); ok {
		for _, c := range t.Chairs {
			if c.ID == e.popover.ChairID {
				return
			}
		}
	}
	e.popover = nil
}

// RotateSelected turns the selected table by steps of the fixed rotation
// increment. Negative steps rotate the other way. Rotation accumulates
// without clamping or wrapping.
func (e *Editor) RotateSelected(steps int) {
	if e.selected == uuid.Nil {
		return
	}
	e.plan = e.plan.RotateTable(e.selected, float64(steps)*geometry.RotationStep)
}

// RotationDegrees returns the rounded rotation readout for a table, 0 for
// unknown ids.
func (e *Editor) RotationDegrees(id uuid.UUID) int {
	t, ok := e.plan.TableByID(id)
	if !ok {
		return 0
	}
	return geometry.RotationDegrees(t.Rotation)
}
