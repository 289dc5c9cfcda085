package world

import (
	"image/color"
	"math/rand"

	"golang.org/x/image/math/f64"

	"avoid-the-circles/content/config"
	"avoid-the-circles/content/utils"
)

type Player struct {
	Shape
	Speed float64
	Dead  bool
	start f64.Vec2 // 出生点，重新开始时回到这里
}

func NewPlayer(pos f64.Vec2, radius, speed float64, c color.RGBA) *Player {
	return &Player{
		Shape: Shape{Pos: pos, Radius: radius, Color: c},
		Speed: speed,
		start: pos,
	}
}

func (p *Player) Start() f64.Vec2 {
	return p.start
}

// Update 按输入移动，斜向移动和单轴移动的速度相同
func (p *Player) Update(in Input, dt float64, b Bounds) {
	var dir f64.Vec2
	if in.Up {
		dir[1] -= 1
	}
	if in.Down {
		dir[1] += 1
	}
	if in.Left {
		dir[0] -= 1
	}
	if in.Right {
		dir[0] += 1
	}
	p.Pos = utils.Add(p.Pos, utils.Normalize(dir), p.Speed*dt)
	p.Clamp(b)
}

// Clamp 保证整个圆都在屏幕内
func (p *Player) Clamp(b Bounds) {
	p.Pos[0] = utils.Clamp(p.Pos[0], p.Radius, b.W-p.Radius)
	p.Pos[1] = utils.Clamp(p.Pos[1], p.Radius, b.H-p.Radius)
}

// HitBy 与敌人重叠时标记死亡
func (p *Player) HitBy(e *Enemy) bool {
	if !p.Overlaps(e.Shape) {
		return false
	}
	p.Dead = true
	return true
}

func (p *Player) Reset() {
	p.Pos = p.start
	p.Dead = false
}

type Enemy struct {
	Shape
	Speed float64 // 创建时随机一次，之后不变
	Dir   Direction
}

func NewEnemy(cfg config.Config, b Bounds, rng *rand.Rand) *Enemy {
	e := &Enemy{
		Shape: Shape{
			Radius: cfg.Enemies.Radius,
			Color: color.RGBA{
				R: randomChannel(rng, cfg.Enemies.ColorMin, cfg.Enemies.ColorMax),
				G: randomChannel(rng, cfg.Enemies.ColorMin, cfg.Enemies.ColorMax),
				B: randomChannel(rng, cfg.Enemies.ColorMin, cfg.Enemies.ColorMax),
				A: 0xff,
			},
		},
		Speed: between(rng, cfg.Enemies.SpeedMin, cfg.Enemies.SpeedMax),
	}
	e.Respawn(b, cfg.Spawn, rng)
	return e
}

// Update 沿当前方向移动，完全穿过屏幕后重新出生，返回是否重新出生
func (e *Enemy) Update(dt float64, b Bounds, spawn config.Spawn, rng *rand.Rand) bool {
	e.Pos = utils.Add(e.Pos, e.Dir.Unit(), e.Speed*dt)
	if !e.Dir.Crossed(e.Shape, b) {
		return false
	}
	e.Respawn(b, spawn, rng)
	return true
}

// Respawn 重新随机方向和出生点，速度不变
func (e *Enemy) Respawn(b Bounds, spawn config.Spawn, rng *rand.Rand) {
	e.Dir = RandomDirection(rng)
	e.Pos = SpawnPosition(e.Dir, b, spawn, rng)
}

func randomChannel(rng *rand.Rand, lo, hi uint8) uint8 {
	return lo + uint8(rng.Intn(int(hi-lo)+1))
}
