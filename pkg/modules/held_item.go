package modules

import (
	"log"

	"github.com/decker502/ringmenu/pkg/components"
	"github.com/decker502/ringmenu/pkg/ecs"
	"github.com/decker502/ringmenu/pkg/entities"
	"github.com/decker502/ringmenu/pkg/game"
	"github.com/decker502/ringmenu/pkg/ringmenu"
	"github.com/hajimehoshi/ebiten/v2"
)

// ItemCatalog 根据槽位索引查询物品名称和图标
// RingMenuModule 实现此接口
type ItemCatalog interface {
	ItemName(index int) string
	ItemIcon(index int) *ebiten.Image
}

// HeldItem 手持物品：环形菜单的外部消费者
//
// 订阅选中项提交事件更新显示的图标；收到 UseItem 输入时，
// 只有在菜单完全收起时才使用物品。
type HeldItem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	menu          *ringmenu.Controller
	catalog       ItemCatalog
	sounds        SoundPlayer
	subscription  ringmenu.Subscription
}

// NewHeldItem 创建手持物品并订阅环形菜单
//
// 菜单在此之前已经提交过初始选中项，这里直接同步一次当前选中，
// 之后的变化通过订阅获得。
func NewHeldItem(em *ecs.EntityManager, x, y float64, menu *ringmenu.Controller, catalog ItemCatalog, sounds SoundPlayer) *HeldItem {
	h := &HeldItem{
		entityManager: em,
		entity:        entities.NewHeldItemEntity(em, x, y),
		menu:          menu,
		catalog:       catalog,
		sounds:        sounds,
	}
	h.onSelected(menu.CurrentSelection())
	h.subscription = menu.Subscribe(h.onSelected)
	return h
}

// onSelected 选中项提交回调
func (h *HeldItem) onSelected(index int) {
	held, ok := ecs.GetComponent[*components.HeldItemComponent](h.entityManager, h.entity)
	if !ok {
		return
	}
	held.Index = index
	held.Name = h.catalog.ItemName(index)
	held.Icon = h.catalog.ItemIcon(index)
	log.Printf("[HeldItem] Selected Item: %d (%s)", index, held.Name)
}

// HandleInput 处理 UseItem 输入，返回是否使用了物品
func (h *HeldItem) HandleInput(events []ringmenu.InputEvent) bool {
	for _, ev := range events {
		if ev != ringmenu.InputUseItem {
			continue
		}
		if !h.menu.IsClosed() {
			log.Printf("[HeldItem] Ignored UseItem: ring menu is %s", h.menu.State())
			return false
		}
		return h.use()
	}
	return false
}

func (h *HeldItem) use() bool {
	held, ok := ecs.GetComponent[*components.HeldItemComponent](h.entityManager, h.entity)
	if !ok || held.Index < 0 {
		return false
	}
	held.UseCount++
	held.UseFlash = components.HeldItemFlashDuration
	if h.sounds != nil {
		h.sounds.PlaySound(game.SoundUseItem)
	}
	log.Printf("[HeldItem] Using Item: %d (%s)", held.Index, held.Name)
	return true
}

// Component 返回手持物品组件
func (h *HeldItem) Component() *components.HeldItemComponent {
	held, _ := ecs.GetComponent[*components.HeldItemComponent](h.entityManager, h.entity)
	return held
}

// Close 取消订阅
func (h *HeldItem) Close() {
	h.subscription.Unsubscribe()
}
