// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

package geometry

import (
	"math"

	"github.com/kidzeivo/seating-designer/internal/model"
)

// GridUnit is the placement grid pitch in canvas units.
const GridUnit = 24.0

// Snap rounds a coordinate to the nearest grid line.
func Snap(v float64) float64 {
	return math.Round(v/GridUnit) * GridUnit
}

// SnapPoint snaps both axes independently.
func SnapPoint(p model.Point) model.Point {
	return model.Point{X: Snap(p.X), Y: Snap(p.Y)}
}
