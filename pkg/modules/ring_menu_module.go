package modules

import (
	"fmt"
	"log"

	"github.com/decker502/ringmenu/pkg/config"
	"github.com/decker502/ringmenu/pkg/ecs"
	"github.com/decker502/ringmenu/pkg/entities"
	"github.com/decker502/ringmenu/pkg/game"
	"github.com/decker502/ringmenu/pkg/ringmenu"
	"github.com/decker502/ringmenu/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// SoundPlayer 播放环形菜单音效
// game.AudioManager 实现此接口
type SoundPlayer interface {
	PlaySound(id game.SoundID) bool
}

// RingMenuModule 环形菜单模块
// 封装环形菜单相关的全部功能：
//   - 锚点、槽位、选择框实体的创建
//   - 控制器（状态机和动画）的创建与逐帧驱动
//   - 环形菜单的渲染
//   - 开合、选择时的音效
//
// 控制器由模块持有，通过 Controller() 以引用的形式交给需要它的消费者，
// 不存在全局单例。
type RingMenuModule struct {
	entityManager *ecs.EntityManager
	controller    *ringmenu.Controller
	renderSystem  *systems.RingMenuRenderSystem
	sounds        SoundPlayer

	anchorEntity   ecs.EntityID
	slotEntities   []ecs.EntityID
	selectorEntity ecs.EntityID
	icons          []*ebiten.Image
	names          []string

	// 上一帧的状态（用于检测状态变化触发音效）
	lastState     ringmenu.MenuState
	lastSelection int
}

// RingMenuCallbacks 环形菜单回调函数集合
type RingMenuCallbacks struct {
	// OnSelectionChanged 选中项提交回调（初始化时和每次收起完成时）
	OnSelectionChanged func(index int)
}

// NewRingMenuModule 创建环形菜单模块
//
// 参数:
//   - em: EntityManager 实例
//   - rl: 资源加载器（图标、底框、选择框图像）
//   - cfg: 已校验的环形菜单配置
//   - sounds: 音效播放器，可为 nil
//   - callbacks: 回调集合，OnSelectionChanged 在构造过程中即收到 index 0
//
// 返回:
//   - *RingMenuModule: 新创建的模块实例
//   - error: 配置非法或资源加载失败
func NewRingMenuModule(
	em *ecs.EntityManager,
	rl entities.RingResourceLoader,
	cfg *config.RingMenuConfig,
	sounds SoundPlayer,
	callbacks RingMenuCallbacks,
) (*RingMenuModule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create ring menu module: %w", err)
	}

	m := &RingMenuModule{
		entityManager: em,
		renderSystem:  systems.NewRingMenuRenderSystem(em),
		sounds:        sounds,
		slotEntities:  make([]ecs.EntityID, 0, len(cfg.Icons)),
		icons:         make([]*ebiten.Image, 0, len(cfg.Icons)),
		names:         make([]string, 0, len(cfg.Icons)),
	}

	// 1. 锚点
	m.anchorEntity = entities.NewRingAnchorEntity(em, cfg.Anchor.X, cfg.Anchor.Y)

	// 2. 槽位和选择框实体
	bindings := ringmenu.Bindings{}
	for i, iconCfg := range cfg.Icons {
		id, icon, err := entities.NewRingSlotEntity(em, rl, m.anchorEntity, i, iconCfg, cfg.SlotSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create ring slot: %w", err)
		}
		m.slotEntities = append(m.slotEntities, id)
		m.icons = append(m.icons, icon)
		m.names = append(m.names, iconCfg.Name)
		bindings.Icons = append(bindings.Icons, icon)
		bindings.Slots = append(bindings.Slots, entities.NewRingVisual(em, id, m.anchorEntity))
	}
	m.selectorEntity = entities.NewRingSelectorEntity(em, rl, m.anchorEntity, cfg.SelectorSize)
	bindings.Selector = entities.NewRingVisual(em, m.selectorEntity, m.anchorEntity)

	// 3. 控制器
	var listeners []ringmenu.Listener
	if callbacks.OnSelectionChanged != nil {
		listeners = append(listeners, callbacks.OnSelectionChanged)
	}
	controller, err := ringmenu.New(cfg.ToGeometry(), bindings, listeners...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ring menu controller: %w", err)
	}
	m.controller = controller
	m.lastState = controller.State()
	m.lastSelection = controller.CurrentSelection()

	log.Printf("[RingMenuModule] Initialized with %d slots at (%.0f, %.0f)",
		len(m.slotEntities), cfg.Anchor.X, cfg.Anchor.Y)
	return m, nil
}

// Update 驱动控制器一帧，并根据状态变化播放音效
func (m *RingMenuModule) Update(events []ringmenu.InputEvent, deltaTime float64) error {
	if err := m.controller.Tick(events, deltaTime); err != nil {
		return fmt.Errorf("ring menu tick: %w", err)
	}

	state := m.controller.State()
	selection := m.controller.CurrentSelection()
	if state != m.lastState {
		switch state {
		case ringmenu.StateOpening:
			m.playSound(game.SoundRingOpen)
		case ringmenu.StateClosing:
			m.playSound(game.SoundRingClose)
		}
	}
	if selection != m.lastSelection {
		m.playSound(game.SoundSelect)
	}
	m.lastState = state
	m.lastSelection = selection
	return nil
}

// Draw 渲染环形菜单
func (m *RingMenuModule) Draw(screen *ebiten.Image) {
	m.renderSystem.Draw(screen)
}

// Controller 返回控制器引用，供消费者查询和订阅
func (m *RingMenuModule) Controller() *ringmenu.Controller {
	return m.controller
}

// SlotEntities 返回槽位实体（按索引）
func (m *RingMenuModule) SlotEntities() []ecs.EntityID {
	return m.slotEntities
}

// SelectorEntity 返回选择框实体
func (m *RingMenuModule) SelectorEntity() ecs.EntityID {
	return m.selectorEntity
}

// ItemName 返回槽位的图标名称
func (m *RingMenuModule) ItemName(index int) string {
	return m.names[index]
}

// ItemIcon 返回槽位的图标图像
func (m *RingMenuModule) ItemIcon(index int) *ebiten.Image {
	return m.icons[index]
}

func (m *RingMenuModule) playSound(id game.SoundID) {
	if m.sounds != nil {
		m.sounds.PlaySound(id)
	}
}
