package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/picviewer/internal/logger"
	"github.com/decker502/picviewer/pkg/components"
	"github.com/decker502/picviewer/pkg/config"
	"github.com/decker502/picviewer/pkg/ecs"
	"github.com/decker502/picviewer/pkg/entities"
	"github.com/decker502/picviewer/pkg/game"
	"github.com/decker502/picviewer/pkg/systems"
)

// ViewerScene 图片查看场景
//
// 一个根容器（画布）加若干面板，其中配置了方向的面板是抽屉。
// 系统更新顺序：按键 → 全宽拉伸 → 抽屉滑动。
type ViewerScene struct {
	entityManager *ecs.EntityManager
	stateManager  *game.DrawerStateManager

	canvas  ecs.EntityID
	drawers map[string]ecs.EntityID

	inputSystem     *systems.ToggleInputSystem
	fullWidthSystem *systems.FullWidthSystem
	slideSystem     *systems.SlideToggleSystem
	renderSystem    *systems.PanelRenderSystem
}

// NewViewerScene 根据布局配置创建场景
//
// 参数：
//   - cfg: 已校验的布局配置
//   - stateManager: 抽屉状态管理器，可为 nil（不恢复也不保存状态）
func NewViewerScene(cfg *config.ViewerConfig, stateManager *game.DrawerStateManager) (*ViewerScene, error) {
	return newViewerScene(cfg, stateManager, nil)
}

// NewViewerSceneWithInput 创建带自定义键盘输入的场景（用于测试）
func NewViewerSceneWithInput(cfg *config.ViewerConfig, stateManager *game.DrawerStateManager, input systems.KeyInput) (*ViewerScene, error) {
	return newViewerScene(cfg, stateManager, input)
}

func newViewerScene(cfg *config.ViewerConfig, stateManager *game.DrawerStateManager, input systems.KeyInput) (*ViewerScene, error) {
	em := ecs.NewEntityManager()
	s := &ViewerScene{
		entityManager:   em,
		stateManager:    stateManager,
		drawers:         make(map[string]ecs.EntityID),
		fullWidthSystem: systems.NewFullWidthSystem(em),
		slideSystem:     systems.NewSlideToggleSystem(em),
		renderSystem:    systems.NewPanelRenderSystem(em),
	}
	if input != nil {
		s.inputSystem = systems.NewToggleInputSystemWithInput(em, s.slideSystem, input)
	} else {
		s.inputSystem = systems.NewToggleInputSystem(em, s.slideSystem)
	}
	s.inputSystem.OnWindowFactorChanged = func(id ecs.EntityID, _ float64) {
		s.recordState(id)
	}

	canvas, err := entities.NewCanvasEntity(em, cfg.Viewer)
	if err != nil {
		return nil, err
	}
	s.canvas = canvas

	for _, pc := range cfg.Panels {
		id, err := entities.NewPanelEntity(em, canvas, pc)
		if err != nil {
			return nil, err
		}
		if pc.IsDrawer() {
			s.drawers[pc.Name] = id
		}
	}

	// 先拉伸宽度，再记录抽屉的显示位置
	s.fullWidthSystem.Update(0)
	if err := s.slideSystem.InitAll(); err != nil {
		return nil, fmt.Errorf("failed to initialize drawers: %w", err)
	}

	for name, id := range s.drawers {
		s.restoreState(name, id)

		slide, _ := ecs.GetComponent[*components.SlideToggleComponent](em, id)
		drawer := id
		slide.OnToggled = func(hidden bool) {
			s.recordState(drawer)
		}
	}

	logger.Log.Info("viewer scene created",
		zap.Int("panels", len(cfg.Panels)),
		zap.Int("drawers", len(s.drawers)))
	return s, nil
}

// restoreState 恢复持久化的抽屉状态
func (s *ViewerScene) restoreState(name string, id ecs.EntityID) {
	if s.stateManager == nil {
		return
	}
	state, ok := s.stateManager.Get(name)
	if !ok {
		return
	}

	slide, _ := ecs.GetComponent[*components.SlideToggleComponent](s.entityManager, id)
	if err := slide.SetWindowFactor(state.WindowFactor); err != nil {
		logger.Log.Warn("ignoring persisted window factor",
			zap.String("drawer", name),
			zap.Error(err))
	}
	if err := s.slideSystem.SetHidden(id, state.Hidden); err != nil {
		logger.Log.Warn("failed to restore drawer state",
			zap.String("drawer", name),
			zap.Error(err))
	}
}

// recordState 把抽屉当前状态写入状态管理器（内存）
// 正在滑动的抽屉记录其目标状态
func (s *ViewerScene) recordState(id ecs.EntityID) {
	if s.stateManager == nil {
		return
	}
	style, ok := ecs.GetComponent[*components.PanelStyleComponent](s.entityManager, id)
	if !ok {
		return
	}
	slide, ok := ecs.GetComponent[*components.SlideToggleComponent](s.entityManager, id)
	if !ok {
		return
	}

	hidden := slide.IsHidden
	if slide.IsSliding {
		hidden = !hidden
	}
	s.stateManager.Set(style.Name, game.DrawerState{
		Hidden:       hidden,
		WindowFactor: slide.WindowFactor,
	})
}

// Update 更新场景
func (s *ViewerScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.fullWidthSystem.Update(deltaTime)
	s.slideSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *ViewerScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// Resize 逻辑屏幕尺寸变化时同步根容器尺寸
// 抽屉在下一帧 Update 中检测到容器变化
func (s *ViewerScene) Resize(width, height int) {
	rect, ok := ecs.GetComponent[*components.RectTransformComponent](s.entityManager, s.canvas)
	if !ok {
		return
	}
	rect.Width = float64(width)
	rect.Height = float64(height)
}

// Toggle 按名称触发抽屉，返回是否开始滑动
func (s *ViewerScene) Toggle(name string) bool {
	id, ok := s.drawers[name]
	if !ok {
		return false
	}
	return s.slideSystem.Trigger(id)
}

// Drawer 按名称查找抽屉实体
func (s *ViewerScene) Drawer(name string) (ecs.EntityID, bool) {
	id, ok := s.drawers[name]
	return id, ok
}

// EntityManager 返回场景的实体管理器
func (s *ViewerScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// SaveOnExit 实现 game.Saveable，保存所有抽屉的状态
func (s *ViewerScene) SaveOnExit() bool {
	if s.stateManager == nil {
		return true
	}
	for _, id := range s.drawers {
		s.recordState(id)
	}
	if err := s.stateManager.Save(); err != nil {
		logger.Log.Error("failed to save drawer state", zap.Error(err))
		return false
	}
	return true
}
