// Package world 是游戏的模拟部分：玩家、敌人、出生点和存活/死亡状态。
// 不依赖任何图形或输入库，绘制和输入都由调用方负责。
package world

import (
	"image/color"

	"golang.org/x/image/math/f64"

	"avoid-the-circles/content/utils"
)

// Shape 玩家和敌人共有的属性，半径始终大于 0
type Shape struct {
	Pos    f64.Vec2
	Radius float64
	Color  color.RGBA
}

// Overlaps 圆心距离严格小于半径之和才算碰撞，恰好相切不算
func (s Shape) Overlaps(other Shape) bool {
	return utils.Distance(s.Pos, other.Pos) < s.Radius+other.Radius
}

// Bounds 可见区域的大小，左上角为原点
type Bounds struct {
	W, H float64
}

// Contains 圆与可见区域是否有重叠的部分
func (b Bounds) Contains(s Shape) bool {
	return s.Pos[0]+s.Radius > 0 && s.Pos[0]-s.Radius < b.W &&
		s.Pos[1]+s.Radius > 0 && s.Pos[1]-s.Radius < b.H
}
