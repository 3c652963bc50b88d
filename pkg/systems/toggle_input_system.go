package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/decker502/picviewer/internal/logger"
	"github.com/decker502/picviewer/pkg/components"
	"github.com/decker502/picviewer/pkg/config"
	"github.com/decker502/picviewer/pkg/ecs"
)

// WindowFactorStep 每次按键调整窗口系数的步长
const WindowFactorStep = 0.1

// KeyInput 键盘输入接口
// 用于依赖注入，支持测试时 mock
type KeyInput interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenKeyInput Ebitengine 默认实现
type ebitenKeyInput struct{}

func (e *ebitenKeyInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// defaultKeyInput 默认键盘输入实例
var defaultKeyInput KeyInput = &ebitenKeyInput{}

// ToggleInputSystem 抽屉按键触发系统
//
// 职责：
//   - 检测 ToggleTriggerComponent 绑定的按键，触发对应抽屉
//   - "=" 增大、"-" 减小所有抽屉的窗口系数，非法值记录警告后忽略
type ToggleInputSystem struct {
	entityManager *ecs.EntityManager
	slideSystem   *SlideToggleSystem
	keyInput      KeyInput

	// OnWindowFactorChanged 窗口系数调整成功后调用（用于持久化）
	OnWindowFactorChanged func(entity ecs.EntityID, value float64)
}

// NewToggleInputSystem 创建按键触发系统
func NewToggleInputSystem(em *ecs.EntityManager, slideSystem *SlideToggleSystem) *ToggleInputSystem {
	return NewToggleInputSystemWithInput(em, slideSystem, defaultKeyInput)
}

// NewToggleInputSystemWithInput 创建带自定义键盘输入的按键触发系统（用于测试）
func NewToggleInputSystemWithInput(em *ecs.EntityManager, slideSystem *SlideToggleSystem, input KeyInput) *ToggleInputSystem {
	return &ToggleInputSystem{
		entityManager: em,
		slideSystem:   slideSystem,
		keyInput:      input,
	}
}

// Update 处理本帧的按键
func (s *ToggleInputSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.ToggleTriggerComponent, *components.SlideToggleComponent](s.entityManager)

	for _, id := range entities {
		trigger, _ := ecs.GetComponent[*components.ToggleTriggerComponent](s.entityManager, id)
		if trigger == nil || !s.keyInput.IsKeyJustPressed(trigger.Key) {
			continue
		}
		if !s.slideSystem.Trigger(id) {
			logger.Log.Debug("drawer trigger ignored",
				zap.Uint64("entity", uint64(id)),
				zap.Stringer("key", trigger.Key))
		}
	}

	switch {
	case s.keyInput.IsKeyJustPressed(config.KeyWindowFactorUp):
		s.adjustWindowFactor(WindowFactorStep)
	case s.keyInput.IsKeyJustPressed(config.KeyWindowFactorDown):
		s.adjustWindowFactor(-WindowFactorStep)
	}
}

// adjustWindowFactor 调整所有抽屉的窗口系数
// 隐藏中的抽屉由 SlideToggleSystem 在本帧按新系数重新对齐
func (s *ToggleInputSystem) adjustWindowFactor(delta float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.SlideToggleComponent](s.entityManager) {
		slide, _ := ecs.GetComponent[*components.SlideToggleComponent](s.entityManager, id)
		if slide == nil {
			continue
		}

		// 保留两位小数，避免 0.1 步长累积出 0.30000000000000004
		next := math.Round((slide.WindowFactor+delta)*100) / 100
		if err := slide.SetWindowFactor(next); err != nil {
			logger.Log.Warn("window factor rejected",
				zap.Uint64("entity", uint64(id)),
				zap.Float64("value", next),
				zap.Error(err))
			continue
		}

		logger.Log.Debug("window factor changed",
			zap.Uint64("entity", uint64(id)),
			zap.Float64("value", next))
		if s.OnWindowFactorChanged != nil {
			s.OnWindowFactorChanged(id, next)
		}
	}
}
