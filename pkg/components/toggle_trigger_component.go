package components

import "github.com/hajimehoshi/ebiten/v2"

// ToggleTriggerComponent 将键盘按键绑定到抽屉
// 按键刚按下时触发实体上的 SlideToggleComponent
type ToggleTriggerComponent struct {
	Key ebiten.Key
}
