package config

import (
	"errors"
	"fmt"
	"image/color"
)

type Mode int

const (
	ModeAlive Mode = iota
	ModeDead
)

func (m Mode) String() string {
	switch m {
	case ModeAlive:
		return "alive"
	case ModeDead:
		return "dead"
	default:
		return "unknown"
	}
}

const (
	FontSize           = 30
	ScoreFontSize      = 60
	FinalScoreFontSize = 80
)

// Config 游戏启动时一次性确定的所有参数
type Config struct {
	Title   string  `yaml:"title"`
	TPS     int     `yaml:"tps"`
	Debug   bool    `yaml:"debug"`
	Screen  Screen  `yaml:"screen"`
	Player  Player  `yaml:"player"`
	Enemies Enemies `yaml:"enemies"`
	Spawn   Spawn   `yaml:"spawn"`
	Score   Score   `yaml:"score"`
}

type Screen struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Background RGBA `yaml:"background"`
	Foreground RGBA `yaml:"foreground"`
}

type Player struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Color  RGBA    `yaml:"color"`
}

type Enemies struct {
	Count    int     `yaml:"count"`
	Radius   float64 `yaml:"radius"`
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
	ColorMin uint8   `yaml:"color_min"` // 每个颜色通道的随机范围
	ColorMax uint8   `yaml:"color_max"`
}

// Spawn 敌人在屏幕外出生的范围
type Spawn struct {
	MarginMin float64 `yaml:"margin_min"` // 离屏幕边缘的最小距离
	MarginMax float64 `yaml:"margin_max"`
	Spread    float64 `yaml:"spread"` // 垂直方向上超出屏幕的范围
}

type Score struct {
	Step float64 `yaml:"step"` // 每帧增加的分数
}

// RGBA 便于在 YAML 中书写的颜色
type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func Default() Config {
	return Config{
		Title: "Circles",
		TPS:   60,
		Screen: Screen{
			Width:      800,
			Height:     600,
			Background: RGBA{245, 245, 245, 255},
			Foreground: RGBA{0, 0, 0, 255},
		},
		Player: Player{
			Radius: 20,
			Speed:  250,
			Color:  RGBA{0, 0, 0, 255},
		},
		Enemies: Enemies{
			Count:    30,
			Radius:   20,
			SpeedMin: 100,
			SpeedMax: 250,
			ColorMin: 15,
			ColorMax: 230,
		},
		Spawn: Spawn{
			MarginMin: 20,
			MarginMax: 120,
			Spread:    10,
		},
		Score: Score{
			Step: 0.1,
		},
	}
}

var ErrInvalid = errors.New("invalid config")

func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.Player.Radius <= 0:
		return fmt.Errorf("%w: player radius %v", ErrInvalid, c.Player.Radius)
	case 2*c.Player.Radius > float64(c.Screen.Width) || 2*c.Player.Radius > float64(c.Screen.Height):
		return fmt.Errorf("%w: player radius %v does not fit the screen", ErrInvalid, c.Player.Radius)
	case c.Player.Speed < 0:
		return fmt.Errorf("%w: player speed %v", ErrInvalid, c.Player.Speed)
	case c.Enemies.Count <= 0:
		return fmt.Errorf("%w: enemy count %d", ErrInvalid, c.Enemies.Count)
	case c.Enemies.Radius <= 0:
		return fmt.Errorf("%w: enemy radius %v", ErrInvalid, c.Enemies.Radius)
	case c.Enemies.SpeedMin <= 0 || c.Enemies.SpeedMax < c.Enemies.SpeedMin:
		return fmt.Errorf("%w: enemy speed range [%v, %v]", ErrInvalid, c.Enemies.SpeedMin, c.Enemies.SpeedMax)
	case c.Enemies.ColorMax < c.Enemies.ColorMin:
		return fmt.Errorf("%w: enemy color range [%d, %d]", ErrInvalid, c.Enemies.ColorMin, c.Enemies.ColorMax)
	case c.Spawn.MarginMin <= 0 || c.Spawn.MarginMax < c.Spawn.MarginMin:
		return fmt.Errorf("%w: spawn margin range [%v, %v]", ErrInvalid, c.Spawn.MarginMin, c.Spawn.MarginMax)
	case c.Spawn.MarginMin < c.Enemies.Radius:
		return fmt.Errorf("%w: spawn margin %v is smaller than enemy radius %v, enemies would spawn visible",
			ErrInvalid, c.Spawn.MarginMin, c.Enemies.Radius)
	case c.Spawn.Spread < 0:
		return fmt.Errorf("%w: spawn spread %v", ErrInvalid, c.Spawn.Spread)
	case c.Score.Step < 0:
		return fmt.Errorf("%w: score step %v", ErrInvalid, c.Score.Step)
	}
	return nil
}
