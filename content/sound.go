package main

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	raudio "github.com/hajimehoshi/ebiten/v2/examples/resources/audio"
)

const sampleRate = 48000

// InitSound 加载撞到敌人时的音效
func InitSound() (*audio.Player, error) {
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}
	jabD, err := wav.DecodeWithoutResampling(bytes.NewReader(raudio.Jab_wav))
	if err != nil {
		return nil, fmt.Errorf("decode hit sound: %w", err)
	}
	p, err := audioContext.NewPlayer(jabD)
	if err != nil {
		return nil, fmt.Errorf("create hit player: %w", err)
	}
	return p, nil
}
