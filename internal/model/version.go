// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package model

import (
	"time"

	"github.com/google/uuid"
)

// Version is a named, timestamped snapshot of a plan as handed to the
// persistence layer. Stage size and pan are optional: older snapshots omit
// them, and loaders keep their current viewport when they are absent.
type Version struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"savedAt"`
	Guests  []Guest   `json:"guests"`
	Tables  []Table   `json:"tables"`
	Stage   *Size     `json:"stageSize,omitempty"`
	Pan     *Point    `json:"pan,omitempty"`
}

// VersionInfo is the listing projection of a version: identity and
// metadata without the plan payload.
type VersionInfo struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"savedAt"`
}

// Info strips the payload down to the listing projection.
func (v Version) Info() VersionInfo {
	return VersionInfo{ID: v.ID, Name: v.Name, SavedAt: v.SavedAt}
}

// Plan extracts the editable plan carried by the snapshot.
func (v Version) Plan() Plan {
	return Plan{Guests: v.Guests, Tables: v.Tables}
}
