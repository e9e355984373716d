// Package ringmenu 实现环形选择菜单的核心：状态机、开合/选择动画插值和选中提交协议。
//
// 包内不做任何渲染，只通过 Visual 接口设置槽位和选择框的位置、透明度与可见性。
// 宿主每帧调用一次 Controller.Tick，动画按经过的真实时间推进。
package ringmenu

import (
	"fmt"
	"log"
	"math"
)

// InputEvent 宿主传入的离散输入事件（边沿触发，每次按下只出现一次）
type InputEvent int

const (
	// InputToggle 打开/关闭菜单
	InputToggle InputEvent = iota
	// InputPrevious 选择上一个槽位
	InputPrevious
	// InputNext 选择下一个槽位
	InputNext
	// InputUseItem 使用当前物品，由外部消费者处理，控制器忽略
	InputUseItem
)

func (e InputEvent) String() string {
	switch e {
	case InputToggle:
		return "Toggle"
	case InputPrevious:
		return "Previous"
	case InputNext:
		return "Next"
	case InputUseItem:
		return "UseItem"
	}
	return fmt.Sprintf("InputEvent(%d)", int(e))
}

// MenuState 菜单开合状态
type MenuState int

const (
	StateClosed MenuState = iota
	StateOpening
	StateOpen
	StateClosing
)

func (s MenuState) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateOpening:
		return "Opening"
	case StateOpen:
		return "Open"
	case StateClosing:
		return "Closing"
	}
	return fmt.Sprintf("MenuState(%d)", int(s))
}

// Visual 宿主提供的可定位、可着色、可显隐的视觉句柄
type Visual interface {
	SetPosition(x, y float64)
	SetAlpha(alpha float64)
	SetVisible(visible bool)
}

// Icon 不透明的图标句柄（例如 *ebiten.Image）
type Icon any

// Bindings 宿主在初始化时提供的图标和视觉句柄
// Slots 与 Icons 一一对应
type Bindings struct {
	Icons    []Icon
	Slots    []Visual
	Selector Visual
}

// Slot 环上的一个槽位
type Slot struct {
	Icon    Icon
	X, Y    float64
	Alpha   float64
	Visible bool

	visual Visual
}

// Selector 高亮当前选中槽位的选择框
type Selector struct {
	X, Y    float64
	Alpha   float64
	Visible bool

	visual Visual
}

// Controller 环形菜单控制器
//
// 持有槽位、选择框和菜单状态，串行化互斥的动画（开合 vs 选择框移动），
// 并在收起动画完成时向订阅者提交当前选中项。
// 单线程使用：所有方法都应在游戏循环所在的 goroutine 中调用。
type Controller struct {
	geometry Geometry
	layout   Layout

	slots    []Slot
	selector Selector

	state          MenuState
	selectorMoving bool
	selected       int

	active *animation
	frame  Frame

	listeners notifier
}

// New 初始化环形菜单
//
// 校验几何配置和绑定，创建处于收起（不可见、透明度 0、位于锚点）状态的槽位和选择框，
// 选中索引置 0，注册 listeners 后立即提交一次 SelectionChanged(0)。
//
// 返回：
//   - *Controller: 控制器实例
//   - error: 配置非法时返回包装了 ErrInvalidConfiguration 的错误
func New(geometry Geometry, bindings Bindings, listeners ...Listener) (*Controller, error) {
	if err := geometry.Validate(); err != nil {
		return nil, err
	}
	n := len(bindings.Icons)
	if n == 0 {
		return nil, fmt.Errorf("empty icon list: %w", ErrInvalidConfiguration)
	}
	if len(bindings.Slots) != n {
		return nil, fmt.Errorf("%d slot visuals for %d icons: %w", len(bindings.Slots), n, ErrInvalidConfiguration)
	}
	if bindings.Selector == nil {
		return nil, fmt.Errorf("nil selector visual: %w", ErrInvalidConfiguration)
	}

	layout, err := NewLayout(n, geometry.AngleOffset)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		geometry: geometry,
		layout:   layout,
		slots:    make([]Slot, n),
		selector: Selector{visual: bindings.Selector},
		state:    StateClosed,
	}
	for i := range c.slots {
		if bindings.Slots[i] == nil {
			return nil, fmt.Errorf("nil visual for slot %d: %w", i, ErrInvalidConfiguration)
		}
		c.slots[i] = Slot{Icon: bindings.Icons[i], visual: bindings.Slots[i]}
	}

	c.setVisible(false)
	c.apply(Frame{})

	for _, l := range listeners {
		if l != nil {
			c.listeners.add(l)
		}
	}

	log.Printf("[RingMenu] Initialized with %d slots (radius=%.1f, openClose=%.2fs, spins=%d, select=%.2fs)",
		n, geometry.Radius, geometry.OpenCloseDuration, geometry.Spins, geometry.SelectDuration)

	c.listeners.notify(c.selected)
	return c, nil
}

// Subscribe 订阅选中项提交事件
// 在分发过程中订阅，新订阅者从下一次提交开始生效
func (c *Controller) Subscribe(l Listener) Subscription {
	return c.listeners.add(l)
}

// Tick 每帧调用一次
//
// 按顺序处理 events，本帧最多消费一个改变状态的输入，其余丢弃（不排队）。
// 本帧新启动的动画停留在 t=0；否则推进正在进行的动画 deltaTime 秒。
// deltaTime 为负数或非有限值时按 0 处理。
//
// 返回的错误只可能包装 ErrIllegalTransition，表示内部不变量被破坏。
func (c *Controller) Tick(events []InputEvent, deltaTime float64) error {
	started, err := c.handleInput(events)
	if err != nil {
		log.Printf("[RingMenu] Error: %v", err)
		return err
	}
	if !started && c.active != nil {
		c.step(sanitizeDelta(deltaTime))
	}
	return nil
}

// sanitizeDelta 负数、NaN 和 ±Inf 的帧间隔按 0 处理
func sanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}

// handleInput 处理本帧输入，返回是否启动了新动画
func (c *Controller) handleInput(events []InputEvent) (bool, error) {
	for _, ev := range events {
		switch ev {
		case InputToggle:
			if !c.isIdle() {
				continue
			}
			if c.state == StateClosed {
				return true, c.begin(animationOpen, 0, 0)
			}
			return true, c.begin(animationClose, 0, 0)

		case InputPrevious, InputNext:
			if c.state != StateOpen || c.selectorMoving {
				continue
			}
			delta := 1
			if ev == InputPrevious {
				delta = -1
			}
			from := c.selected
			c.selected = wrapIndex(from+delta, len(c.slots))
			log.Printf("[RingMenu] Select %s: %d -> %d", ev, from, c.selected)
			return true, c.begin(animationSelectorMove, float64(from), float64(from+delta))
		}
	}
	return false, nil
}

// isIdle 没有任何动画进行，且菜单处于稳定的 Closed/Open 状态
func (c *Controller) isIdle() bool {
	return c.active == nil && !c.selectorMoving &&
		(c.state == StateClosed || c.state == StateOpen)
}

// begin 启动动画并应用 t=0 的帧
func (c *Controller) begin(kind animationKind, from, to float64) error {
	if c.active != nil {
		return fmt.Errorf("start %s while %s is running: %w", kind, c.active.kind, ErrIllegalTransition)
	}

	anim := &animation{kind: kind, from: from, to: to}
	switch kind {
	case animationOpen:
		if c.state != StateClosed {
			return fmt.Errorf("open from %s: %w", c.state, ErrIllegalTransition)
		}
		anim.duration = c.geometry.OpenCloseDuration
		c.state = StateOpening
		c.setVisible(true)
	case animationClose:
		if c.state != StateOpen {
			return fmt.Errorf("close from %s: %w", c.state, ErrIllegalTransition)
		}
		anim.duration = c.geometry.OpenCloseDuration
		c.state = StateClosing
	case animationSelectorMove:
		if c.state != StateOpen {
			return fmt.Errorf("move selector while %s: %w", c.state, ErrIllegalTransition)
		}
		anim.duration = c.geometry.SelectDuration
		c.selectorMoving = true
	default:
		return fmt.Errorf("unknown animation %d: %w", kind, ErrIllegalTransition)
	}

	c.active = anim
	log.Printf("[RingMenu] Animation %s started (state=%s)", kind, c.state)
	c.apply(anim.frameAt(c.geometry, c.selected, 0))
	return nil
}

// step 推进当前动画；完成时写入精确终态并结束动画
func (c *Controller) step(dt float64) {
	anim := c.active
	if !anim.advance(dt) {
		c.apply(anim.frameAt(c.geometry, c.selected, anim.progress()))
		return
	}

	c.apply(anim.finalFrame(c.geometry, c.selected))
	c.active = nil

	switch anim.kind {
	case animationOpen:
		c.state = StateOpen
	case animationClose:
		c.setVisible(false)
		c.state = StateClosed
	case animationSelectorMove:
		c.selectorMoving = false
	}
	log.Printf("[RingMenu] Animation %s completed (state=%s, selected=%d)", anim.kind, c.state, c.selected)

	if anim.kind == animationClose {
		c.listeners.notify(c.selected)
	}
}

// apply 把帧参数写入所有槽位和选择框
func (c *Controller) apply(f Frame) {
	c.frame = f
	alpha := c.layout.SlotAlpha(f.Alpha)
	for i := range c.slots {
		s := &c.slots[i]
		s.X, s.Y = c.layout.SlotPosition(i, f.Rotation, f.Radius)
		s.Alpha = alpha
		s.visual.SetPosition(s.X, s.Y)
		s.visual.SetAlpha(alpha)
	}
	c.selector.X, c.selector.Y = c.layout.PositionAt(f.SelectorIndex, f.Rotation, f.Radius)
	c.selector.Alpha = alpha
	c.selector.visual.SetPosition(c.selector.X, c.selector.Y)
	c.selector.visual.SetAlpha(alpha)
}

// setVisible 设置所有槽位和选择框的可见性
func (c *Controller) setVisible(visible bool) {
	for i := range c.slots {
		c.slots[i].Visible = visible
		c.slots[i].visual.SetVisible(visible)
	}
	c.selector.Visible = visible
	c.selector.visual.SetVisible(visible)
}

// wrapIndex 把索引回绕到 [0, n)
func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// IsClosed 菜单完全收起（不在动画中）时返回 true
// 外部消费者用它限制"使用物品"只能在菜单收起时进行
func (c *Controller) IsClosed() bool {
	return c.state == StateClosed
}

// CurrentSelection 返回当前选中索引
// 导航时立即更新，即使选择框的移动动画尚未结束
func (c *Controller) CurrentSelection() int {
	return c.selected
}

// State 返回当前菜单状态
func (c *Controller) State() MenuState {
	return c.state
}

// IsSelectorMoving 选择框移动动画是否进行中
func (c *Controller) IsSelectorMoving() bool {
	return c.selectorMoving
}

// IsAnimating 是否有任何动画在进行
func (c *Controller) IsAnimating() bool {
	return c.active != nil
}

// Frame 返回最近一次写入的帧参数
func (c *Controller) Frame() Frame {
	return c.frame
}

// SlotCount 返回槽位数量
func (c *Controller) SlotCount() int {
	return len(c.slots)
}

// Slot 返回槽位的快照
func (c *Controller) Slot(i int) Slot {
	return c.slots[i]
}

// Selector 返回选择框的快照
func (c *Controller) Selector() Selector {
	return c.selector
}

// Icon 返回槽位的图标句柄
func (c *Controller) Icon(i int) Icon {
	return c.slots[i].Icon
}

// Layout 返回环形布局
func (c *Controller) Layout() Layout {
	return c.layout
}
