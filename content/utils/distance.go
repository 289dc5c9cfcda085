package utils

import (
	"math"

	"golang.org/x/image/math/f64"
)

func GetDistance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

func Distance(a, b f64.Vec2) float64 {
	return GetDistance(a[0], a[1], b[0], b[1])
}
