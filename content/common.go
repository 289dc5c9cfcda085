package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"avoid-the-circles/content/world"
)

var (
	audioContext *audio.Context
	// 每个移动方向对应的按键，任意一个按下即可
	moveKeys = []struct {
		keys []ebiten.Key
		set  func(in *world.Input)
	}{
		{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, func(in *world.Input) { in.Up = true }},
		{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, func(in *world.Input) { in.Down = true }},
		{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, func(in *world.Input) { in.Left = true }},
		{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, func(in *world.Input) { in.Right = true }},
	}
)

// readInput 存活时读取移动键，死亡后只检查重新开始
func readInput(alive bool) world.Input {
	var in world.Input
	if !alive {
		in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
		return in
	}
	for _, m := range moveKeys {
		for _, k := range m.keys {
			if ebiten.IsKeyPressed(k) {
				m.set(&in)
				break
			}
		}
	}
	return in
}
