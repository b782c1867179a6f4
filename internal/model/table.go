// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package model

import "github.com/google/uuid"

type TableShape string

const (
	TableShapeRound TableShape = "round"
	TableShapeRect  TableShape = "rect"
)

// BadgeStyle is the visual style of the number badge rendered on a table.
type BadgeStyle string

const (
	BadgeClassic  BadgeStyle = "classic"
	BadgeMonogram BadgeStyle = "monogram"
	BadgeModern   BadgeStyle = "modern"
)

// Chair count bounds enforced by SetChairCount on every table.
const (
	MinChairs = 2
	MaxChairs = 20
)

// Chair is a seat slot on a table. GuestID is a weak reference into the
// plan's guest list: uuid.Nil means the seat is empty, and an id that no
// longer resolves to a guest is treated as empty by every reader.
type Chair struct {
	ID      uuid.UUID `json:"id"`
	GuestID uuid.UUID `json:"guestId"`
}

// Occupied reports whether the chair holds a guest reference. The reference
// may still be dangling; resolve it against the guest list before use.
func (c Chair) Occupied() bool {
	return c.GuestID != uuid.Nil
}

// Table is a placed table. Chair positions are never stored; they are
// recomputed from Shape, Rotation and the chair index by the geometry
// package whenever they are needed.
type Table struct {
	ID       uuid.UUID  `json:"id"`
	Number   int        `json:"number"`
	Shape    TableShape `json:"shape"`
	Badge    BadgeStyle `json:"badge"`
	VIP      bool       `json:"vip"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Rotation float64    `json:"rotation"`
	Chairs   []Chair    `json:"chairs"`
}

// DefaultChairCount returns the chair count a freshly added table starts
// with: 8 around a round table, 12 around a rectangular one.
func DefaultChairCount(shape TableShape) int {
	if shape == TableShapeRect {
		return 12
	}
	return 8
}

// DefaultBadge returns the number-badge style a freshly added table starts
// with.
func DefaultBadge(shape TableShape) BadgeStyle {
	if shape == TableShapeRect {
		return BadgeModern
	}
	return BadgeClassic
}

// ClampChairCount forces n into the [MinChairs, MaxChairs] range.
func ClampChairCount(n int) int {
	if n < MinChairs {
		return MinChairs
	}
	if n > MaxChairs {
		return MaxChairs
	}
	return n
}

// NewChairs allocates n empty chairs with fresh identities.
func NewChairs(n int) []Chair {
	chairs := make([]Chair, n)
	for i := range chairs {
		chairs[i].ID = uuid.New()
	}
	return chairs
}
