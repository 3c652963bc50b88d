package components

import "image/color"

// PanelStyleComponent 面板的绘制样式
type PanelStyleComponent struct {
	Name        string     // 面板名称，同时作为持久化状态的键
	Fill        color.RGBA // 填充颜色
	Border      color.RGBA // 边框颜色
	BorderWidth float32    // 边框宽度，0 表示不绘制边框
	ShowLabel   bool       // 是否在左上角显示名称和状态
}
