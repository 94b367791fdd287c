package render

import "math"

// scanTriangle fills the projected triangle column by column. Points are
// classified by screen X into left, center and right; the walk steps whole
// pixels, snapping each column to its center at x.5, and paints vertical
// spans top-down with one extra pixel at the span bottom.
func scanTriangle(frame *Framebuffer, p1, p2, p3 Point, color uint8) {
	width := Scalar(frame.width)

	left, leftSel := p1, 1
	if left.X > p2.X {
		left, leftSel = p2, 2
	}
	if left.X > p3.X {
		left, leftSel = p3, 3
	}

	right, rightSel := p3, 3
	if (right.X < p2.X || leftSel == 3) && leftSel != 2 {
		right, rightSel = p2, 2
	}
	if right.X < p1.X && leftSel != 1 {
		right, rightSel = p1, 1
	}

	var center Point
	switch leftSel + rightSel {
	case 3:
		center = p3
	case 4:
		center = p2
	case 5:
		center = p1
	}

	switch {
	case left.X == center.X && center.X == right.X:
		// All three points share one column.
		if center.X < 0 || center.X >= width {
			return
		}
		maxY := p1.Y
		if maxY < p2.Y {
			maxY = p2.Y
		}
		if maxY < p3.Y {
			maxY = p3.Y
		}
		minY := p1.Y
		if minY > p2.Y {
			minY = p2.Y
		}
		if minY > p3.Y {
			minY = p3.Y
		}
		for y := maxY; y > minY; y-- {
			frame.paintf(center.X, y, color)
		}

	case left.X == center.X || center.X == right.X:
		// Two points share a column; the third sits off to one side.
		var top, bottom, side Point
		var walkLeft bool
		if left.X == center.X {
			if left.Y > center.Y {
				top, bottom = left, center
			} else {
				top, bottom = center, left
			}
			side = right
			walkLeft = false
		} else {
			if right.Y > center.Y {
				top, bottom = right, center
			} else {
				top, bottom = center, right
			}
			side = left
			walkLeft = true
		}

		upperSlope := (top.Y - side.Y) / (top.X - side.X)
		lowerSlope := (bottom.Y - side.Y) / (bottom.X - side.X)

		if walkLeft {
			for x := top.X; x > side.X; x-- {
				topY := upperSlope*(x-side.X) + side.Y
				bottomY := lowerSlope*(x-side.X) + side.Y
				for y := topY; y > bottomY; y-- {
					frame.paintf(x, y, color)
				}
				frame.paintf(x, bottomY, color)
				if float64(x)-math.Floor(float64(x)) != 0.5 {
					x = Scalar(math.Floor(float64(x)) + 0.5)
				}
			}
			if float64(side.X)-math.Abs(float64(side.X)) > 0.5 {
				frame.paintf(side.X, side.Y, color)
			}
		} else {
			for x := top.X; x < side.X; x++ {
				topY := upperSlope*(x-side.X) + side.Y
				bottomY := lowerSlope*(x-side.X) + side.Y
				for y := topY; y > bottomY; y-- {
					frame.paintf(x, y, color)
				}
				frame.paintf(x, bottomY, color)
				if float64(x)-math.Floor(float64(x)) != 0.5 {
					x = Scalar(math.Floor(float64(x)) + 0.5)
				}
			}
			if float64(side.X)-math.Floor(float64(side.X)) < 0.5 {
				frame.paintf(side.X, side.Y, color)
			}
		}

	default:
		// General case: two spans split at the center column. The left span
		// interpolates from the left point, the right span from the right.
		slopeLeftCenter := (center.Y - left.Y) / (center.X - left.X)
		slopeLeftRight := (right.Y - left.Y) / (right.X - left.X)
		slopeCenterRight := (right.Y - center.Y) / (right.X - center.X)

		for x := left.X; x < center.X; x++ {
			if x < 0 || x >= width {
				continue
			}
			topY := slopeLeftCenter*(x-left.X) + left.Y
			bottomY := slopeLeftRight*(x-left.X) + left.Y
			if topY < bottomY {
				topY, bottomY = bottomY, topY
			}
			for y := topY; y > bottomY; y-- {
				frame.paintf(x, y, color)
			}
			frame.paintf(x, bottomY, color)
			if float64(x)-math.Floor(float64(x)) != 0.5 {
				x = Scalar(math.Floor(float64(x)) + 0.5)
			}
		}

		for x := center.X; x < right.X; x++ {
			if x < 0 || x >= width {
				continue
			}
			topY := slopeCenterRight*(x-right.X) + right.Y
			bottomY := slopeLeftRight*(x-right.X) + right.Y
			if topY < bottomY {
				topY, bottomY = bottomY, topY
			}
			for y := topY; y > bottomY; y-- {
				frame.paintf(x, y, color)
			}
			frame.paintf(x, bottomY, color)
			if float64(x)-math.Floor(float64(x)) != 0.5 {
				x = Scalar(math.Floor(float64(x)) + 0.5)
			}
		}

		if float64(right.X)-math.Floor(float64(right.X)) < 0.5 {
			if right.X >= 0 && right.X < width {
				frame.paintf(right.X, right.Y, color)
			}
		}
	}
}
