package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/picviewer/pkg/components"
	"github.com/decker502/picviewer/pkg/ecs"
)

// maxParentDepth 父子链的最大深度，防止配置错误造成循环
const maxParentDepth = 32

// PanelRenderSystem 面板渲染系统
// 按实体创建顺序绘制所有带样式的矩形（先创建的在下层）
type PanelRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewPanelRenderSystem 创建面板渲染系统
func NewPanelRenderSystem(em *ecs.EntityManager) *PanelRenderSystem {
	return &PanelRenderSystem{entityManager: em}
}

// Draw 绘制所有面板
func (s *PanelRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.PanelStyleComponent, *components.RectTransformComponent](s.entityManager)

	for _, id := range entities {
		style, _ := ecs.GetComponent[*components.PanelStyleComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectTransformComponent](s.entityManager, id)
		if style == nil || rect == nil || rect.Width <= 0 || rect.Height <= 0 {
			continue
		}

		x, y := s.WorldPosition(id)
		fx, fy := float32(x), float32(y)
		fw, fh := float32(rect.Width), float32(rect.Height)

		vector.DrawFilledRect(screen, fx, fy, fw, fh, style.Fill, false)
		if style.BorderWidth > 0 {
			vector.StrokeRect(screen, fx, fy, fw, fh, style.BorderWidth, style.Border, false)
		}

		if style.ShowLabel {
			ebitenutil.DebugPrintAt(screen, s.label(id, style), int(x)+4, int(y)+4)
		}
	}
}

// WorldPosition 沿父子链累加本地坐标，得到屏幕坐标
func (s *PanelRenderSystem) WorldPosition(entity ecs.EntityID) (float64, float64) {
	var x, y float64
	current := entity
	for depth := 0; depth < maxParentDepth && current != ecs.InvalidEntity; depth++ {
		rect, ok := ecs.GetComponent[*components.RectTransformComponent](s.entityManager, current)
		if !ok {
			break
		}
		x += rect.X
		y += rect.Y
		current = rect.Parent
	}
	return x, y
}

// label 面板左上角的文字：名称，抽屉额外显示状态和窗口系数
func (s *PanelRenderSystem) label(entity ecs.EntityID, style *components.PanelStyleComponent) string {
	slide, ok := ecs.GetComponent[*components.SlideToggleComponent](s.entityManager, entity)
	if !ok {
		return style.Name
	}

	text := fmt.Sprintf("%s [%s] wf=%.2f", style.Name, slide.State(), slide.WindowFactor)
	if trigger, ok := ecs.GetComponent[*components.ToggleTriggerComponent](s.entityManager, entity); ok {
		text += fmt.Sprintf(" key=%s", trigger.Key)
	}
	return text
}
