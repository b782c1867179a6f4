// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package editor

import (
	"github.com/google/uuid"

	"github.com/kidzeivo/seating-designer/internal/model"
)

type gestureKind int

const (
	gesturePan gestureKind = iota
	gestureDrag
)

// gesture captures one pointer interaction from down to up. At most one
// exists at a time; pointer-downs from other pointer ids are ignored while
// it is held.
type gesture struct {
	kind      gestureKind
	pointerID int
	start     model.Point // pointer position at pointer-down
	origin    model.Point // pan offset or table position at pointer-down
	tableID   uuid.UUID   // drag only
}

// PointerDownStage handles a pointer-down on empty stage area. Under the
// pan tool it starts a pan; under the select tool it clears the selection
// and closes the popover.
func (e *Editor) PointerDownStage(pointerID int, at model.Point) {
	if e.gesture != nil {
		return
	}
	if e.tool == ToolPan {
		e.gesture = &gesture{kind: gesturePan, pointerID: pointerID, start: at, origin: e.pan}
		return
	}
	e.selected = uuid.Nil
	e.popover = nil
}

// PointerDownTable handles a pointer-down on a table body. Under the pan
// tool the event pans the canvas exactly like a stage press. Under the
// select tool it selects the table and starts a drag from its current
// position.
func (e *Editor) PointerDownTable(pointerID int, tableID uuid.UUID, at model.Point) {
	if e.gesture != nil {
		return
	}
	if e.tool == ToolPan {
		e.gesture = &gesture{kind: gesturePan, pointerID: pointerID, start: at, origin: e.pan}
		return
	}
	table, ok := e.plan.TableByID(tableID)
	if !ok {
		return
	}
	e.selected = tableID
	e.popover = nil
	e.gesture = &gesture{
		kind:      gestureDrag,
		pointerID: pointerID,
		start:     at,
		origin:    model.Point{X: table.X, Y: table.Y},
		tableID:   tableID,
	}
}

// PointerMove advances the held gesture. Pans are unclamped; drags update
// the table position live, snapped while snapping is on. Events from other
// pointer ids are ignored.
func (e *Editor) PointerMove(pointerID int, at model.Point) {
	g := e.gesture
	if g == nil || g.pointerID != pointerID {
		return
	}
	dx := at.X - g.start.X
	dy := at.Y - g.start.Y
	switch g.kind {
	case gesturePan:
		e.pan = model.Point{X: g.origin.X + dx, Y: g.origin.Y + dy}
	case gestureDrag:
		pos := e.maybeSnap(model.Point{X: g.origin.X + dx, Y: g.origin.Y + dy})
		e.plan = e.plan.MoveTable(g.tableID, pos)
	}
}

// PointerUp releases the held gesture. The dragged position is already
// applied; there is no commit step.
func (e *Editor) PointerUp(pointerID int) {
	if e.gesture == nil || e.gesture.pointerID != pointerID {
		return
	}
	e.gesture = nil
}

// Dragging reports whether a pan or drag gesture is currently held.
func (e *Editor) Dragging() bool { return e.gesture != nil }
