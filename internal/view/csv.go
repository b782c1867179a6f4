// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package view

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/kidzeivo/seating-designer/internal/model"
)

var csvHeader = []string{"Table", "VIP", "Seat", "Guest", "Gender"}

// WriteCSV renders the seating list: one row per seat grouped by table in
// display-number order, empty seats included, followed by one row per
// unassigned guest with the table and seat columns left blank. Fields
// containing commas, quotes or newlines are quoted with internal quotes
// doubled.
func WriteCSV(w io.Writer, p model.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, ts := range GuestsByTable(p) {
		vip := ""
		if ts.Table.VIP {
			vip = "yes"
		}
		for _, seat := range ts.Seats {
			row := []string{strconv.Itoa(ts.Table.Number), vip, strconv.Itoa(seat.Number), "", ""}
			if seat.Guest != nil {
				row[3] = seat.Guest.Name
				row[4] = string(seat.Guest.Gender)
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	for _, g := range UnassignedGuests(p) {
		if err := cw.Write([]string{"", "", "", g.Name, string(g.Gender)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV renders the seating list into memory.
func CSV(p model.Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
