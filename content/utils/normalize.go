package utils

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Normal 返回单位向量，零向量原样返回
func Normal(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

func Normalize(v f64.Vec2) f64.Vec2 {
	x, y := Normal(v[0], v[1])
	return f64.Vec2{x, y}
}

// Add 返回 p + dir*scale
func Add(p, dir f64.Vec2, scale float64) f64.Vec2 {
	return f64.Vec2{p[0] + dir[0]*scale, p[1] + dir[1]*scale}
}
