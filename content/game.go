package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"avoid-the-circles/content/config"
	"avoid-the-circles/content/world"
)

type Game struct {
	cfg       config.Config
	world     *world.World
	log       *log.Logger
	hitPlayer *audio.Player // 为 nil 时不播放音效
	faces     *faces
}

func NewGame(cfg config.Config, w *world.World, logger *log.Logger, hit *audio.Player, f *faces) *Game {
	return &Game{
		cfg:       cfg,
		world:     w,
		log:       logger,
		hitPlayer: hit,
		faces:     f,
	}
}

func (g *Game) Update() error {
	in := readInput(g.world.Alive())
	dt := 1 / float64(ebiten.TPS())

	switch g.world.Step(in, dt) {
	case world.EventDied:
		g.playHit()
	case world.EventRestarted:
		g.log.Debug("new run", "tps", ebiten.ActualTPS())
	}
	return nil
}

func (g *Game) playHit() {
	if g.hitPlayer == nil {
		return
	}
	if err := g.hitPlayer.Rewind(); err != nil {
		g.log.Warn("rewind hit sound", "err", err)
		return
	}
	g.hitPlayer.Play()
}

// Draw 只读取 world 的状态，不做任何修改
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Screen.Background.Color())
	fg := g.cfg.Screen.Foreground.Color()

	if g.world.Alive() {
		// 绘制分数
		g.drawText(screen, strconv.Itoa(int(g.world.Score())), 20, 30, config.ScoreFontSize, fg, text.AlignStart)

		p := g.world.Player()
		drawCircle(screen, p.Shape)
		g.world.EachEnemy(func(_ int, e world.Enemy) {
			drawCircle(screen, e.Shape)
		})
	} else {
		w, h := float64(g.cfg.Screen.Width), float64(g.cfg.Screen.Height)
		g.drawText(screen, "Final Score", w/2, h/2-75, config.FontSize, fg, text.AlignCenter)
		g.drawText(screen, strconv.Itoa(int(g.world.Score())), w/2, h/2-40, config.FinalScoreFontSize, fg, text.AlignCenter)
		g.drawText(screen, "Press R to restart", w/2, h-100, config.FontSize, fg, text.AlignCenter)
	}

	if g.cfg.Debug {
		visible := 0
		g.world.EachEnemy(func(_ int, e world.Enemy) {
			if g.world.Bounds().Contains(e.Shape) {
				visible++
			}
		})
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f\nVisible: %d/%d\nMode: %v",
			ebiten.ActualTPS(), ebiten.ActualFPS(), visible, g.world.EnemyCount(), g.world.Mode()),
			g.cfg.Screen.Width-140, 10)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

func drawCircle(screen *ebiten.Image, s world.Shape) {
	vector.DrawFilledCircle(screen, float32(s.Pos[0]), float32(s.Pos[1]), float32(s.Radius), s.Color, true)
}

func (g *Game) drawText(screen *ebiten.Image, str string, x, y, size float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = size
	op.PrimaryAlign = align
	text.Draw(screen, str, g.faces.face(size), op)
}
