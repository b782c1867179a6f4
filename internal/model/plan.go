// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Point is a position in canvas space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a stage dimension in canvas units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Plan is the editable seating design: the guest list plus the placed
// tables. Mutators treat the receiver as immutable input and return a fresh
// plan, so previously observed state is never aliased and derived views
// always see a consistent snapshot.
type Plan struct {
	Guests []Guest `json:"guests"`
	Tables []Table `json:"tables"`
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	var out Plan
	_ = copier.CopyWithOption(&out, &p, copier.Option{DeepCopy: true})
	return out
}

// AddGuest appends a new guest and returns the updated plan together with
// the created guest.
func (p Plan) AddGuest(name string, gender Gender, photoURL string) (Plan, Guest) {
	out := p.Clone()
	now := time.Now()
	guest := Guest{
		ID:        uuid.New(),
		Name:      name,
		Gender:    gender,
		PhotoURL:  photoURL,
		CreatedAt: &now,
	}
	out.Guests = append(out.Guests, guest)
	return out, guest
}

// RemoveGuest deletes the guest and clears every chair that referenced it,
// so no dangling seat link survives the deletion.
func (p Plan) RemoveGuest(id uuid.UUID) Plan {
	out := p.UnassignGuestEverywhere(id)
	for i, g := range out.Guests {
		if g.ID == id {
			out.Guests = append(out.Guests[:i], out.Guests[i+1:]...)
			break
		}
	}
	return out
}

// UnassignGuestEverywhere clears any chair on any table that references the
// guest. Callers run it before reassigning a guest to a new seat and before
// deleting a guest.
func (p Plan) UnassignGuestEverywhere(id uuid.UUID) Plan {
	out := p.Clone()
	for ti := range out.Tables {
		for ci := range out.Tables[ti].Chairs {
			if out.Tables[ti].Chairs[ci].GuestID == id {
				out.Tables[ti].Chairs[ci].GuestID = uuid.Nil
			}
		}
	}
	return out
}

// AddTable creates a table of the given shape at the given position with
// the shape's default chair count and badge style, numbered with the next
// free display number.
func (p Plan) AddTable(shape TableShape, at Point) (Plan, Table) {
	out := p.Clone()
	table := Table{
		ID:     uuid.New(),
		Number: out.MaxTableNumber() + 1,
		Shape:  shape,
		Badge:  DefaultBadge(shape),
		X:      at.X,
		Y:      at.Y,
		Chairs: NewChairs(DefaultChairCount(shape)),
	}
	out.Tables = append(out.Tables, table)
	return out, table
}

// DuplicateTable clones a table onto a fresh identity with fresh chair
// identities at the given position. Seat assignments are copied as they
// are: the duplicate may double-book guests, which is deliberately left for
// the user to resolve. An unknown id is a silent no-op.
func (p Plan) DuplicateTable(id uuid.UUID, at Point) (Plan, Table, bool) {
	src, ok := p.TableByID(id)
	if !ok {
		return p, Table{}, false
	}
	out := p.Clone()
	var dup Table
	_ = copier.CopyWithOption(&dup, &src, copier.Option{DeepCopy: true})
	dup.ID = uuid.New()
	dup.Number = out.MaxTableNumber() + 1
	dup.X = at.X
	dup.Y = at.Y
	for i := range dup.Chairs {
		dup.Chairs[i].ID = uuid.New()
	}
	out.Tables = append(out.Tables, dup)
	return out, dup, true
}

// MoveTable repositions the table. Unknown ids are a no-op.
func (p Plan) MoveTable(id uuid.UUID, at Point) Plan {
	out := p.Clone()
	for i := range out.Tables {
		if out.Tables[i].ID == id {
			out.Tables[i].X = at.X
			out.Tables[i].Y = at.Y
			break
		}
	}
	return out
}

// RotateTable adds delta radians to the table's rotation. The stored value
// accumulates without wrapping.
func (p Plan) RotateTable(id uuid.UUID, delta float64) Plan {
	out := p.Clone()
	for i := range out.Tables {
		if out.Tables[i].ID == id {
			out.Tables[i].Rotation += delta
			break
		}
	}
	return out
}

// DeleteTable removes the table. Guests seated there only lose their seat
// link; the guest entities themselves are untouched.
func (p Plan) DeleteTable(id uuid.UUID) Plan {
	out := p.Clone()
	for i, t := range out.Tables {
		if t.ID == id {
			out.Tables = append(out.Tables[:i], out.Tables[i+1:]...)
			break
		}
	}
	return out
}

// SetChairCount resizes the table's chair list, clamping n to
// [MinChairs, MaxChairs]. Growing appends empty chairs with fresh
// identities; shrinking truncates from the end, releasing the guests on the
// removed chairs back to the unassigned pool. Assignments on the retained
// chairs are kept in order.
func (p Plan) SetChairCount(id uuid.UUID, n int) Plan {
	out := p.Clone()
	for i := range out.Tables {
		t := &out.Tables[i]
		if t.ID != id {
			continue
		}
		n = ClampChairCount(n)
		for len(t.Chairs) < n {
			t.Chairs = append(t.Chairs, Chair{ID: uuid.New()})
		}
		if len(t.Chairs) > n {
			t.Chairs = t.Chairs[:n]
		}
		break
	}
	return out
}

// AssignGuest sets or clears a single chair's guest link; uuid.Nil clears.
// It deliberately does not enforce the one-seat-per-guest rule. Callers
// must unassign the guest from any prior seat first, in that order.
func (p Plan) AssignGuest(tableID, chairID, guestID uuid.UUID) Plan {
	out := p.Clone()
	for ti := range out.Tables {
		if out.Tables[ti].ID != tableID {
			continue
		}
		for ci := range out.Tables[ti].Chairs {
			if out.Tables[ti].Chairs[ci].ID == chairID {
				out.Tables[ti].Chairs[ci].GuestID = guestID
				break
			}
		}
		break
	}
	return out
}

// GuestByID resolves a guest reference against the guest list.
func (p Plan) GuestByID(id uuid.UUID) (Guest, bool) {
	for _, g := range p.Guests {
		if g.ID == id {
			return g, true
		}
	}
	return Guest{}, false
}

// TableByID looks up a table by identity.
func (p Plan) TableByID(id uuid.UUID) (Table, bool) {
	for _, t := range p.Tables {
		if t.ID == id {
			return t, true
		}
	}
	return Table{}, false
}

// MaxTableNumber returns the highest display number in use, 0 when the plan
// has no tables.
func (p Plan) MaxTableNumber() int {
	max := 0
	for _, t := range p.Tables {
		if t.Number > max {
			max = t.Number
		}
	}
	return max
}
