// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

// Package exchange reads and writes the portable plan document, the JSON
// file users download from and feed back into the designer.
package exchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"github.com/kidzeivo/seating-designer/internal/model"
)

var validate = validator.New()

// ErrInvalidDocument reports a document that is not valid JSON or whose
// guests or tables fields are missing or not arrays. Nothing is accepted
// from such a document.
var ErrInvalidDocument = errors.New("invalid plan document")

// Document is the on-disk exchange shape. Guests and tables must be
// present as arrays, empty arrays included; stage size and pan are
// optional.
type Document struct {
	Name    string        `json:"name"`
	SavedAt time.Time     `json:"savedAt"`
	Guests  []model.Guest `json:"guests" validate:"required"`
	Tables  []model.Table `json:"tables" validate:"required"`
	Stage   *model.Size   `json:"stageSize,omitempty"`
	Pan     *model.Point  `json:"pan,omitempty"`
}

// FromVersion converts a stored version into its exchange shape. The
// version identity stays behind, ids are local to a store.
func FromVersion(v model.Version) Document {
	doc := Document{
		Name:    v.Name,
		SavedAt: v.SavedAt,
		Guests:  v.Guests,
		Tables:  v.Tables,
		Stage:   v.Stage,
		Pan:     v.Pan,
	}
	if doc.Guests == nil {
		doc.Guests = []model.Guest{}
	}
	if doc.Tables == nil {
		doc.Tables = []model.Table{}
	}
	return doc
}

// Version converts the document back into a version payload without an
// identity, the receiving store assigns one.
func (d Document) Version() model.Version {
	return model.Version{
		Name:    d.Name,
		SavedAt: d.SavedAt,
		Guests:  d.Guests,
		Tables:  d.Tables,
		Stage:   d.Stage,
		Pan:     d.Pan,
	}
}

// Export renders a version as a pretty-printed document.
func Export(v model.Version) ([]byte, error) {
	return json.MarshalIndent(FromVersion(v), "", "  ")
}

// Import parses and validates a document. It returns ErrInvalidDocument
// for malformed JSON and for documents whose guests or tables are missing
// or null, so callers can reject the file before touching any state.
func Import(data []byte) (*model.Version, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	v := doc.Version()
	return &v, nil
}

// Filename builds the download name for a version from its sanitized name
// and save date.
func Filename(name string, savedAt time.Time) string {
	base := slug.Make(name)
	if base == "" {
		base = "plan"
	}
	return fmt.Sprintf("%s-%s.json", base, savedAt.Format("2006-01-02"))
}
