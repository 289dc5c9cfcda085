package main

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// faces 每个字号只创建一次 GoTextFace，Draw 每帧都会用到
type faces struct {
	source *text.GoTextFaceSource
	bySize map[float64]*text.GoTextFace
}

func loadFaces() (*faces, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &faces{source: s, bySize: make(map[float64]*text.GoTextFace)}, nil
}

func (f *faces) face(size float64) *text.GoTextFace {
	if face, ok := f.bySize[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.bySize[size] = face
	return face
}
