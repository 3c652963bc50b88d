package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/picviewer/pkg/components"
	"github.com/decker502/picviewer/pkg/config"
	"github.com/decker502/picviewer/pkg/ecs"
)

// 面板默认颜色
var (
	defaultPanelColor  = color.RGBA{R: 60, G: 60, B: 70, A: 220}
	defaultBorderColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// NewCanvasEntity 创建根容器实体
//
// 参数：
//   - em: 实体管理器
//   - cfg: 窗口配置（尺寸和背景色）
//
// 返回：
//   - 根容器实体ID
//   - 错误信息
func NewCanvasEntity(em *ecs.EntityManager, cfg config.WindowConfig) (ecs.EntityID, error) {
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("canvas background: %w", err)
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.RectTransformComponent{
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
	})
	ecs.AddComponent(em, entity, &components.PanelStyleComponent{
		Name: "canvas",
		Fill: bg,
	})
	return entity, nil
}

// NewPanelEntity 根据配置在父容器内创建面板
//
// 配置了 Direction 的面板会带上 SlideToggleComponent（抽屉），
// 配置了 Key 的抽屉会带上 ToggleTriggerComponent。
//
// 参数：
//   - em: 实体管理器
//   - parent: 父容器实体
//   - cfg: 面板配置
//
// 返回：
//   - 面板实体ID
//   - 错误信息（配置不合法时）
func NewPanelEntity(em *ecs.EntityManager, parent ecs.EntityID, cfg config.PanelConfig) (ecs.EntityID, error) {
	fill := defaultPanelColor
	if cfg.Color != "" {
		c, err := config.ParseColor(cfg.Color)
		if err != nil {
			return ecs.InvalidEntity, fmt.Errorf("panel %q: %w", cfg.Name, err)
		}
		fill = c
	}

	var slide *components.SlideToggleComponent
	if cfg.IsDrawer() {
		dir, err := components.ParseHideDirection(cfg.Direction)
		if err != nil {
			return ecs.InvalidEntity, fmt.Errorf("panel %q: %w", cfg.Name, err)
		}
		slide = &components.SlideToggleComponent{
			Speed:        cfg.Speed,
			Direction:    dir,
			StartHidden:  cfg.StartHidden,
			WindowFactor: config.DefaultWindowFactor,
		}
		if err := slide.SetWindowFactor(cfg.WindowFactor); err != nil {
			return ecs.InvalidEntity, fmt.Errorf("panel %q: %w", cfg.Name, err)
		}
	}

	var trigger *components.ToggleTriggerComponent
	if cfg.Key != "" && slide != nil {
		key, err := config.ParseKey(cfg.Key)
		if err != nil {
			return ecs.InvalidEntity, fmt.Errorf("panel %q: %w", cfg.Name, err)
		}
		trigger = &components.ToggleTriggerComponent{Key: key}
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.RectTransformComponent{
		X:      cfg.X,
		Y:      cfg.Y,
		Width:  cfg.Width,
		Height: cfg.Height,
		Parent: parent,
	})
	ecs.AddComponent(em, entity, &components.PanelStyleComponent{
		Name:        cfg.Name,
		Fill:        fill,
		Border:      defaultBorderColor,
		BorderWidth: 1,
		ShowLabel:   true,
	})
	if slide != nil {
		ecs.AddComponent(em, entity, slide)
	}
	if trigger != nil {
		ecs.AddComponent(em, entity, trigger)
	}
	if cfg.FullWidth {
		ecs.AddComponent(em, entity, &components.FullWidthComponent{Track: cfg.TrackWidth})
	}

	return entity, nil
}
