// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

// Package view derives presentation projections from a plan. Projections
// are recomputed from scratch on every call and never cache state, so they
// always reflect the latest mutation.
package view

import (
	"sort"

	"github.com/google/uuid"

	"github.com/kidzeivo/seating-designer/internal/model"
)

// Seat pairs a chair with its 1-based display number and the resolved
// guest. Guest is nil for empty chairs and for chair references that no
// longer resolve to a live guest.
type Seat struct {
	Number int
	Chair  model.Chair
	Guest  *model.Guest
}

// TableSeating exposes one table's seats in chair order.
type TableSeating struct {
	Table model.Table
	Seats []Seat
}

// UnassignedGuests returns every guest no chair references, preserving the
// guest list's original order.
func UnassignedGuests(p model.Plan) []model.Guest {
	seated := make(map[uuid.UUID]struct{})
	for _, t := range p.Tables {
		for _, c := range t.Chairs {
			if c.Occupied() {
				seated[c.GuestID] = struct{}{}
			}
		}
	}
	out := make([]model.Guest, 0, len(p.Guests))
	for _, g := range p.Guests {
		if _, ok := seated[g.ID]; !ok {
			out = append(out, g)
		}
	}
	return out
}

// NextTableNumber proposes the display number for the next table.
func NextTableNumber(p model.Plan) int {
	return p.MaxTableNumber() + 1
}

// GuestsByTable projects all tables sorted by display number ascending,
// each with its seats in chair order. A chair whose guest reference does
// not resolve is reported as empty rather than failing.
func GuestsByTable(p model.Plan) []TableSeating {
	tables := make([]model.Table, len(p.Tables))
	copy(tables, p.Tables)
	sort.Slice(tables, func(i, j int) bool { return tables[i].Number < tables[j].Number })

	out := make([]TableSeating, 0, len(tables))
	for _, t := range tables {
		seating := TableSeating{Table: t, Seats: make([]Seat, 0, len(t.Chairs))}
		for i, c := range t.Chairs {
			seat := Seat{Number: i + 1, Chair: c}
			if c.Occupied() {
				if g, ok := p.GuestByID(c.GuestID); ok {
					guest := g
					seat.Guest = &guest
				}
			}
			seating.Seats = append(seating.Seats, seat)
		}
		out = append(out, seating)
	}
	return out
}
