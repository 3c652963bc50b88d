package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/picviewer/internal/logger"
	"github.com/decker502/picviewer/pkg/components"
	"github.com/decker502/picviewer/pkg/ecs"
)

// FullWidthSystem 将带 FullWidthComponent 的面板宽度拉伸到父容器宽度
//
// 需要在 SlideToggleSystem 之前更新：抽屉的隐藏位置只依赖容器尺寸，
// 但绘制和点击区域依赖面板自身宽度。
type FullWidthSystem struct {
	entityManager *ecs.EntityManager
}

// NewFullWidthSystem 创建全宽拉伸系统
func NewFullWidthSystem(em *ecs.EntityManager) *FullWidthSystem {
	return &FullWidthSystem{entityManager: em}
}

// Update 拉伸尚未处理（或需要跟随容器）的面板
func (s *FullWidthSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.FullWidthComponent, *components.RectTransformComponent](s.entityManager)

	for _, id := range entities {
		full, _ := ecs.GetComponent[*components.FullWidthComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectTransformComponent](s.entityManager, id)
		if full == nil || rect == nil {
			continue
		}
		if full.Applied && !full.Track {
			continue
		}
		if !rect.HasParent() {
			continue
		}

		parent, ok := ecs.GetComponent[*components.RectTransformComponent](s.entityManager, rect.Parent)
		if !ok {
			continue
		}

		if rect.Width != parent.Width {
			logger.Log.Debug("panel stretched to container width",
				zap.Uint64("entity", uint64(id)),
				zap.Float64("from", rect.Width),
				zap.Float64("to", parent.Width))
			rect.Width = parent.Width
		}
		full.Applied = true
	}
}
