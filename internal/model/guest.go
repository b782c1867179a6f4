// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package model

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Gender selects the generated placeholder avatar for guests without a
// photo of their own. It carries no other meaning in the planner.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Guest struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Gender    Gender     `json:"gender"`
	PhotoURL  string     `json:"photoUrl,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// AvatarURL returns the image shown on the guest's card: the uploaded photo
// when present, otherwise a placeholder generated from the gender attribute.
func (g Guest) AvatarURL() string {
	if g.PhotoURL != "" {
		return g.PhotoURL
	}
	kind := "boy"
	if g.Gender == GenderFemale {
		kind = "girl"
	}
	return fmt.Sprintf("https://avatar.iran.liara.run/public/%s?username=%s", kind, url.QueryEscape(g.Name))
}
