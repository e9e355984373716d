package game

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	"github.com/decker502/ringmenu/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nfnt/resize"
	"golang.org/x/image/font/basicfont"
)

// ResourceManager 集中管理环形菜单用到的图像和字体
//
// 图标可以来自图片文件（缩放到槽位大小），也可以按配置颜色程序化生成；
// 所有图像按 key 缓存，只生成一次。
//
// 非线程安全：只应在游戏循环 goroutine 中使用。
type ResourceManager struct {
	imageCache map[string]*ebiten.Image
	debugFace  *text.GoXFace
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage 从文件加载图片（PNG/JPEG），结果会被缓存
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache["file:"+path]; exists {
		return cached, nil
	}
	src, err := decodeImageFile(path)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	rm.imageCache["file:"+path] = img
	return img, nil
}

// loadScaledImage 加载图片并缩放为 size×size，结果会被缓存
func (rm *ResourceManager) loadScaledImage(path string, size float64) (*ebiten.Image, error) {
	side := squareSide(size)
	key := fmt.Sprintf("file:%s:%d", path, side)
	if cached, exists := rm.imageCache[key]; exists {
		return cached, nil
	}
	src, err := decodeImageFile(path)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(resize.Resize(uint(side), uint(side), src, resize.Bilinear))
	rm.imageCache[key] = img
	return img, nil
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := ebitenutil.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// IconImage 返回配置对应的图标
// 配置了 Image 时从文件加载并缩放到 size，否则生成指定颜色的实心圆
func (rm *ResourceManager) IconImage(icon config.IconConfig, size float64) (*ebiten.Image, error) {
	if icon.Image != "" {
		return rm.loadScaledImage(icon.Image, size)
	}
	clr, err := config.ParseHexColor(icon.Color)
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", icon.Name, err)
	}
	key := fmt.Sprintf("icon:%s:%v", icon.Color, size)
	if cached, exists := rm.imageCache[key]; exists {
		return cached, nil
	}

	img := newSquareImage(size)
	r := float32(size / 2)
	vector.DrawFilledCircle(img, r, r, r*0.7, clr, true)
	rm.imageCache[key] = img
	return img, nil
}

// SlotFrameImage 槽位底框：半透明深色圆盘加浅色描边
func (rm *ResourceManager) SlotFrameImage(size float64) *ebiten.Image {
	key := fmt.Sprintf("slotFrame:%v", size)
	if cached, exists := rm.imageCache[key]; exists {
		return cached
	}

	img := newSquareImage(size)
	r := float32(size / 2)
	vector.DrawFilledCircle(img, r, r, r-1, color.NRGBA{R: 20, G: 20, B: 30, A: 200}, true)
	vector.StrokeCircle(img, r, r, r-1, 2, color.NRGBA{R: 220, G: 220, B: 230, A: 255}, true)
	rm.imageCache[key] = img
	return img
}

// SelectorImage 选择框：金色圆环
func (rm *ResourceManager) SelectorImage(size float64) *ebiten.Image {
	key := fmt.Sprintf("selector:%v", size)
	if cached, exists := rm.imageCache[key]; exists {
		return cached
	}

	img := newSquareImage(size)
	r := float32(size / 2)
	vector.StrokeCircle(img, r, r, r-2, 3, color.NRGBA{R: 255, G: 200, B: 40, A: 255}, true)
	rm.imageCache[key] = img
	return img
}

// DebugFace 返回 HUD 使用的等宽位图字体
func (rm *ResourceManager) DebugFace() *text.GoXFace {
	if rm.debugFace == nil {
		rm.debugFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return rm.debugFace
}

// CachedImageCount 返回已缓存的图像数量
func (rm *ResourceManager) CachedImageCount() int {
	return len(rm.imageCache)
}

func squareSide(size float64) int {
	side := int(size + 0.5)
	if side < 1 {
		side = 1
	}
	return side
}

func newSquareImage(size float64) *ebiten.Image {
	side := squareSide(size)
	return ebiten.NewImage(side, side)
}
