package entities

import (
	"errors"

	"github.com/decker502/ringmenu/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockRingResourceLoader 测试用资源加载器，返回固定尺寸的空白图像
type mockRingResourceLoader struct {
	failIcon string // 加载该名称的图标时返回错误
}

func (m *mockRingResourceLoader) IconImage(icon config.IconConfig, size float64) (*ebiten.Image, error) {
	if icon.Name == m.failIcon {
		return nil, errors.New("mock icon load failure")
	}
	return ebiten.NewImage(int(size), int(size)), nil
}

func (m *mockRingResourceLoader) SlotFrameImage(size float64) *ebiten.Image {
	return ebiten.NewImage(int(size), int(size))
}

func (m *mockRingResourceLoader) SelectorImage(size float64) *ebiten.Image {
	return ebiten.NewImage(int(size), int(size))
}
