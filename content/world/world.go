package world

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"golang.org/x/image/math/f64"

	"avoid-the-circles/content/config"
)

// Input 一帧内的操作，移动键按住即生效，Restart 只在按下的那一帧为 true
type Input struct {
	Up, Down, Left, Right bool
	Restart               bool
}

// Event Step 在这一帧内引起的状态变化
type Event int

const (
	EventNone Event = iota
	EventDied
	EventRestarted
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventDied:
		return "died"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// World 拥有玩家和固定数量的敌人
type World struct {
	cfg     config.Config
	bounds  Bounds
	rng     *rand.Rand
	log     *log.Logger
	mode    config.Mode
	player  *Player
	enemies []*Enemy
	score   float64
	frames  int
}

func New(cfg config.Config, rng *rand.Rand, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := Bounds{W: float64(cfg.Screen.Width), H: float64(cfg.Screen.Height)}
	w := &World{
		cfg:     cfg,
		bounds:  b,
		rng:     rng,
		log:     logger,
		mode:    config.ModeAlive,
		player:  NewPlayer(f64.Vec2{b.W / 2, b.H / 2}, cfg.Player.Radius, cfg.Player.Speed, cfg.Player.Color.Color()),
		enemies: make([]*Enemy, cfg.Enemies.Count),
	}
	for i := range w.enemies {
		w.enemies[i] = NewEnemy(cfg, b, rng)
	}
	return w
}

// Step 推进一帧，dt 为距离上一帧的秒数
func (w *World) Step(in Input, dt float64) Event {
	switch w.mode {
	case config.ModeAlive:
		return w.stepAlive(in, dt)
	case config.ModeDead:
		if in.Restart {
			w.Restart()
			return EventRestarted
		}
	}
	return EventNone
}

func (w *World) stepAlive(in Input, dt float64) Event {
	w.frames++
	w.score += w.cfg.Score.Step

	w.player.Update(in, dt, w.bounds)

	// 撞到之后其余敌人这一帧仍然照常移动
	for i, e := range w.enemies {
		if e.Update(dt, w.bounds, w.cfg.Spawn, w.rng) {
			w.log.Debug("enemy respawned", "enemy", i, "dir", e.Dir, "x", e.Pos[0], "y", e.Pos[1])
		}
		if !w.player.Dead && w.player.HitBy(e) {
			w.log.Debug("player hit", "enemy", i)
		}
	}

	if !w.player.Dead {
		return EventNone
	}
	w.mode = config.ModeDead
	w.log.Info("player died", "score", int(w.score), "frames", w.frames)
	return EventDied
}

// Restart 分数清零，玩家回到出生点，所有敌人重新出生（速度不变）
func (w *World) Restart() {
	w.score = 0
	w.frames = 0
	w.player.Reset()
	for _, e := range w.enemies {
		e.Respawn(w.bounds, w.cfg.Spawn, w.rng)
	}
	w.mode = config.ModeAlive
	w.log.Info("restarted", "enemies", len(w.enemies))
}

func (w *World) Mode() config.Mode {
	return w.mode
}

func (w *World) Alive() bool {
	return w.mode == config.ModeAlive
}

func (w *World) Score() float64 {
	return w.score
}

// Frames 本局已经模拟的帧数
func (w *World) Frames() int {
	return w.frames
}

func (w *World) Bounds() Bounds {
	return w.bounds
}

// Player 返回玩家的副本，绘制时不能修改状态
func (w *World) Player() Player {
	return *w.player
}

// EachEnemy 按顺序访问每个敌人的副本
func (w *World) EachEnemy(fn func(i int, e Enemy)) {
	for i, e := range w.enemies {
		fn(i, *e)
	}
}

func (w *World) EnemyCount() int {
	return len(w.enemies)
}
