package ringmenu

import "errors"

var (
	// ErrInvalidConfiguration 环形菜单配置非法（槽位为空、半径或时长非正等）
	// 在构造阶段返回，菜单不会被创建
	ErrInvalidConfiguration = errors.New("ring menu: invalid configuration")

	// ErrIllegalTransition 在已有动画进行时尝试启动新动画
	// 正常输入路径不会触发，出现即为程序错误
	ErrIllegalTransition = errors.New("ring menu: illegal transition")
)
