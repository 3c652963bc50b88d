package components

import "github.com/decker502/picviewer/pkg/ecs"

// RectTransformComponent 轴对齐的 UI 矩形
//
// X/Y 是相对父容器左上角的本地坐标（无父容器时即屏幕坐标）。
// 父容器的尺寸就是抽屉滑动的容器尺寸。
type RectTransformComponent struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	// Parent 父容器，根画布为 ecs.InvalidEntity
	Parent ecs.EntityID
}

// HasParent 是否嵌套在其他矩形中
func (r *RectTransformComponent) HasParent() bool {
	return r.Parent != ecs.InvalidEntity
}
