// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package editor

import (
	"github.com/google/uuid"

	"github.com/kidzeivo/seating-designer/internal/model"
	"github.com/kidzeivo/seating-designer/internal/view"
)

// popoverChoiceLimit caps how many unassigned guests the popover offers.
const popoverChoiceLimit = 6

// OpenSeatPopover opens the assignment popover for a chair, replacing any
// popover already open, and selects the owning table. Unknown seats are a
// no-op.
func (e *Editor) OpenSeatPopover(tableID, chairID uuid.UUID) {
	table, ok := e.plan.TableByID(tableID)
	if !ok {
		return
	}
	for _, c := range table.Chairs {
		if c.ID == chairID {
			e.popover = &SeatRef{TableID: tableID, ChairID: chairID}
			e.selected = tableID
			return
		}
	}
}

// CloseSeatPopover dismisses the popover if one is open.
func (e *Editor) CloseSeatPopover() { e.popover = nil }

// PopoverChoices returns the unassigned guests the popover offers, at most
// popoverChoiceLimit of them, in guest-list order.
func (e *Editor) PopoverChoices() []model.Guest {
	choices := view.UnassignedGuests(e.plan)
	if len(choices) > popoverChoiceLimit {
		choices = choices[:popoverChoiceLimit]
	}
	return choices
}

// AssignSeat seats a guest on the popover's chair and closes the popover.
// The guest's previous seat, if any, is cleared first so the guest never
// occupies two chairs.
func (e *Editor) AssignSeat(guestID uuid.UUID) {
	if e.popover == nil {
		return
	}
	if _, ok := e.plan.GuestByID(guestID); !ok {
		return
	}
	ref := *e.popover
	plan := e.plan.UnassignGuestEverywhere(guestID)
	e.plan = plan.AssignGuest(ref.TableID, ref.ChairID, guestID)
	e.popover = nil
}

// ClearSeat empties the popover's chair and closes the popover.
func (e *Editor) ClearSeat() {
	if e.popover == nil {
		return
	}
	ref := *e.popover
	e.plan = e.plan.AssignGuest(ref.TableID, ref.ChairID, uuid.Nil)
	e.popover = nil
}

// DropGuest handles dropping a guest card onto a chair marker. Only empty
// chairs accept a drop; dropping onto an occupied chair must not overwrite
// the seated guest. The dropped guest is unseated from any previous chair.
func (e *Editor) DropGuest(tableID, chairID, guestID uuid.UUID) {
	if _, ok := e.plan.GuestByID(guestID); !ok {
		return
	}
	table, ok := e.plan.TableByID(tableID)
	if !ok {
		return
	}
	for _, c := range table.Chairs {
		if c.ID != chairID {
			continue
		}
		if c.Occupied() {
			return
		}
		plan := e.plan.UnassignGuestEverywhere(guestID)
		e.plan = plan.AssignGuest(tableID, chairID, guestID)
		return
	}
}
