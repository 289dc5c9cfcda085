package world

import (
	"math/rand"

	"golang.org/x/image/math/f64"

	"avoid-the-circles/content/config"
)

// Direction 敌人出生的那一边，同时决定它穿过屏幕的方向
type Direction int

const (
	Top Direction = iota
	Bottom
	Right
	Left
)

const directionCount = 4

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

var directions = [directionCount]struct {
	unit f64.Vec2
	// gone 前沿已经完全越过出生点对面的边界
	gone func(s Shape, b Bounds) bool
	// spawn 根据离边缘的距离 offset 和垂直方向上的坐标 across 计算出生点
	spawn func(b Bounds, offset, across float64) f64.Vec2
	// span 垂直方向上的屏幕长度
	span func(b Bounds) float64
}{
	Top: {
		unit:  f64.Vec2{0, 1},
		gone:  func(s Shape, b Bounds) bool { return s.Pos[1]-s.Radius >= b.H },
		spawn: func(b Bounds, offset, across float64) f64.Vec2 { return f64.Vec2{across, -offset} },
		span:  func(b Bounds) float64 { return b.W },
	},
	Bottom: {
		unit:  f64.Vec2{0, -1},
		gone:  func(s Shape, b Bounds) bool { return s.Pos[1]+s.Radius <= 0 },
		spawn: func(b Bounds, offset, across float64) f64.Vec2 { return f64.Vec2{across, b.H + offset} },
		span:  func(b Bounds) float64 { return b.W },
	},
	Right: {
		unit:  f64.Vec2{-1, 0},
		gone:  func(s Shape, b Bounds) bool { return s.Pos[0]+s.Radius <= 0 },
		spawn: func(b Bounds, offset, across float64) f64.Vec2 { return f64.Vec2{b.W + offset, across} },
		span:  func(b Bounds) float64 { return b.H },
	},
	Left: {
		unit:  f64.Vec2{1, 0},
		gone:  func(s Shape, b Bounds) bool { return s.Pos[0]-s.Radius >= b.W },
		spawn: func(b Bounds, offset, across float64) f64.Vec2 { return f64.Vec2{-offset, across} },
		span:  func(b Bounds) float64 { return b.H },
	},
}

// Unit 每个方向对应的单位移动向量
func (d Direction) Unit() f64.Vec2 {
	return directions[d].unit
}

// Crossed s 是否已经完全越过了方向 d 的终点边界
func (d Direction) Crossed(s Shape, b Bounds) bool {
	return directions[d].gone(s, b)
}

func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(directionCount))
}

// SpawnPosition 返回 dir 一侧屏幕外的随机位置
func SpawnPosition(dir Direction, b Bounds, spawn config.Spawn, rng *rand.Rand) f64.Vec2 {
	d := directions[dir]
	offset := between(rng, spawn.MarginMin, spawn.MarginMax)
	across := between(rng, -spawn.Spread, d.span(b))
	return d.spawn(b, offset, across)
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
