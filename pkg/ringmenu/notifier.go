package ringmenu

// Listener 选中项提交回调
type Listener func(index int)

// Subscription 订阅句柄，用于取消订阅
type Subscription struct {
	id       uint64
	notifier *notifier
}

// Unsubscribe 取消订阅
// 在分发过程中调用时，移除会推迟到本次分发结束后生效
func (s Subscription) Unsubscribe() {
	if s.notifier == nil || s.id == 0 {
		return
	}
	s.notifier.remove(s.id)
}

type subscriber struct {
	id       uint64
	listener Listener
}

// pendingOp 分发期间推迟执行的订阅变更
type pendingOp struct {
	add bool
	sub subscriber
}

// notifier 一对多、同步的观察者列表
//
// 分发期间的订阅/取消订阅被记录下来，在分发结束后按顺序应用，
// 因此本次分发看到的订阅者集合是固定的。
type notifier struct {
	nextID      uint64
	subscribers []subscriber
	dispatching bool
	pending     []pendingOp
}

func (n *notifier) add(l Listener) Subscription {
	n.nextID++
	sub := subscriber{id: n.nextID, listener: l}
	if n.dispatching {
		n.pending = append(n.pending, pendingOp{add: true, sub: sub})
	} else {
		n.subscribers = append(n.subscribers, sub)
	}
	return Subscription{id: sub.id, notifier: n}
}

func (n *notifier) remove(id uint64) {
	if n.dispatching {
		n.pending = append(n.pending, pendingOp{sub: subscriber{id: id}})
		return
	}
	n.removeNow(id)
}

func (n *notifier) removeNow(id uint64) {
	for i, s := range n.subscribers {
		if s.id == id {
			n.subscribers = append(n.subscribers[:i], n.subscribers[i+1:]...)
			return
		}
	}
}

// len 返回当前（已生效的）订阅者数量
func (n *notifier) len() int {
	return len(n.subscribers)
}

func (n *notifier) notify(index int) {
	n.dispatching = true
	for _, s := range n.subscribers {
		s.listener(index)
	}
	n.dispatching = false

	for _, op := range n.pending {
		if op.add {
			n.subscribers = append(n.subscribers, op.sub)
		} else {
			n.removeNow(op.sub.id)
		}
	}
	n.pending = n.pending[:0]
}
