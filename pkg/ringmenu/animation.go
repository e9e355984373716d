package ringmenu

import (
	"math"

	"github.com/decker502/ringmenu/pkg/utils"
)

// animationKind 动画类型
type animationKind int

const (
	animationNone animationKind = iota
	animationOpen
	animationClose
	animationSelectorMove
)

func (k animationKind) String() string {
	switch k {
	case animationOpen:
		return "open"
	case animationClose:
		return "close"
	case animationSelectorMove:
		return "selectorMove"
	}
	return "none"
}

// animation 一段正在进行的定时动画
// 动画只是数据，由 Controller.Tick 逐帧推进，不存在挂起的执行上下文
type animation struct {
	kind     animationKind
	elapsed  float64 // 已播放时间（秒）
	duration float64 // 总时长（秒）

	// 仅用于选择框移动：插值的起止索引（未取模，保证走短弧）
	from float64
	to   float64
}

// Frame 某一时刻环形菜单的视觉参数
type Frame struct {
	Radius        float64 // 槽位到锚点的距离
	Rotation      float64 // 开合旋转偏移（弧度）
	Alpha         float64 // 统一透明度
	SelectorIndex float64 // 选择框所在的（小数）索引
}

// progress 返回归一化时间 t ∈ [0, 1]
func (a *animation) progress() float64 {
	if a.duration <= 0 {
		return 1
	}
	return math.Min(a.elapsed/a.duration, 1)
}

// advance 推进动画，返回是否已完成
func (a *animation) advance(dt float64) bool {
	a.elapsed += dt
	return a.elapsed >= a.duration
}

// openFrame 展开动画在 t 时刻的参数
func openFrame(g Geometry, selected, t float64) Frame {
	return Frame{
		Radius:        utils.Lerp(0, g.Radius, t),
		Rotation:      float64(g.Spins) * 2 * math.Pi * t,
		Alpha:         t,
		SelectorIndex: selected,
	}
}

// closeFrame 收起动画在 t 时刻的参数，是 openFrame 的镜像
func closeFrame(g Geometry, selected, t float64) Frame {
	return Frame{
		Radius:        utils.Lerp(g.Radius, 0, t),
		Rotation:      float64(g.Spins) * 2 * math.Pi * (1 - t),
		Alpha:         1 - t,
		SelectorIndex: selected,
	}
}

// moveFrame 选择框移动在 t 时刻的参数
// 插值的是索引而不是笛卡尔坐标，选择框因此沿圆弧移动
func moveFrame(g Geometry, from, to, t float64) Frame {
	return Frame{
		Radius:        g.Radius,
		Rotation:      0,
		Alpha:         1,
		SelectorIndex: utils.Lerp(from, to, t),
	}
}

// frameAt 计算动画在 t 时刻的参数
func (a *animation) frameAt(g Geometry, selected int, t float64) Frame {
	switch a.kind {
	case animationOpen:
		return openFrame(g, float64(selected), t)
	case animationClose:
		return closeFrame(g, float64(selected), t)
	case animationSelectorMove:
		return moveFrame(g, a.from, a.to, t)
	}
	return Frame{}
}

// finalFrame 动画结束时的精确终态
// 直接写入终值，不依赖逐帧累积的时间恰好落在 duration 上
func (a *animation) finalFrame(g Geometry, selected int) Frame {
	switch a.kind {
	case animationOpen:
		return Frame{Radius: g.Radius, Rotation: 0, Alpha: 1, SelectorIndex: float64(selected)}
	case animationClose:
		return Frame{Radius: 0, Rotation: 0, Alpha: 0, SelectorIndex: float64(selected)}
	case animationSelectorMove:
		return Frame{Radius: g.Radius, Rotation: 0, Alpha: 1, SelectorIndex: float64(selected)}
	}
	return Frame{}
}
