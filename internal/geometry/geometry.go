// Copyright (C) 2025 the seating-designer maintainers
// See root-dir/LICENSE for more information

// Package geometry computes chair positions and table footprints for the
// floor plan. Everything here is a pure function of table state, determined
// solely by shape, chair index, chair count and rotation. Chair coordinates
// are never stored; callers recompute them on every change so the layout can
// never drift out of sync with the model.
package geometry

import (
	"math"

	"github.com/kidzeivo/seating-designer/internal/model"
)

const (
	// RoundTableDiameter is the footprint of a round table.
	RoundTableDiameter = 98.0
	// RoundChairRadius is the distance of a chair marker from the center of
	// a round table.
	RoundChairRadius = 70.0

	// RectTableWidth and RectTableHeight form the fixed footprint of a
	// rectangular table.
	RectTableWidth  = 126.0
	RectTableHeight = 74.0

	// ChairMargin pushes rectangular chair markers outward from the table
	// edge. The smaller chair dot decoration sits directly on the edge.
	ChairMargin = 18.0

	// RotationStep is the radian increment applied by the rotate controls.
	RotationStep = 0.15
)

// Chair returns the marker offset of chair i of n relative to the table
// center. Rotation only affects round tables; rectangular chair placement
// ignores it, matching the observed editor behaviour.
func Chair(shape model.TableShape, i, n int, rotation float64) model.Point {
	if shape == model.TableShapeRect {
		return RectChair(i, n)
	}
	return RoundChair(i, n, rotation)
}

// RoundChair places chair i of n on the circle of radius RoundChairRadius.
// Chair 0 sits at angle 0 (to the right of center) and the table rotation
// shifts every chair by the same offset.
func RoundChair(i, n int, rotation float64) model.Point {
	if n <= 0 {
		return model.Point{}
	}
	angle := (2*math.Pi/float64(n))*float64(i) + rotation
	return model.Point{
		X: math.Cos(angle) * RoundChairRadius,
		Y: math.Sin(angle) * RoundChairRadius,
	}
}

// RectChair places chair i of n around a rectangular table, round-robin
// over the four sides (top, right, bottom, left) with ceil(n/4) chairs per
// side, offset outward from the edge by ChairMargin.
func RectChair(i, n int) model.Point {
	return rectChairAt(i, n, ChairMargin)
}

// RectChairDot places the decorative chair dot for chair i of n directly on
// the table edge, with no outward offset.
func RectChairDot(i, n int) model.Point {
	return rectChairAt(i, n, 0)
}

func rectChairAt(i, n int, margin float64) model.Point {
	if n <= 0 {
		return model.Point{}
	}
	perSide := (n + 3) / 4
	side := i / perSide
	pos := i % perSide

	t := 0.5
	if perSide > 1 {
		t = float64(pos) / float64(perSide-1)
	}

	halfW := RectTableWidth / 2
	halfH := RectTableHeight / 2
	switch side {
	case 0: // top, left to right
		return model.Point{X: -halfW + t*RectTableWidth, Y: -halfH - margin}
	case 1: // right, top to bottom
		return model.Point{X: halfW + margin, Y: -halfH + t*RectTableHeight}
	case 2: // bottom, left to right
		return model.Point{X: -halfW + t*RectTableWidth, Y: halfH + margin}
	default: // left, top to bottom
		return model.Point{X: -halfW - margin, Y: -halfH + t*RectTableHeight}
	}
}

// Footprint returns the table body size for the given shape.
func Footprint(shape model.TableShape) model.Size {
	if shape == model.TableShapeRect {
		return model.Size{Width: RectTableWidth, Height: RectTableHeight}
	}
	return model.Size{Width: RoundTableDiameter, Height: RoundTableDiameter}
}

// RotationDegrees renders an accumulated radian rotation for display. The
// stored value is not wrapped; only the displayed number is rounded.
func RotationDegrees(rotation float64) int {
	return int(math.Round(rotation * 180 / math.Pi))
}
