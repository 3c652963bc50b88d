package systems

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/decker502/picviewer/internal/logger"
	"github.com/decker502/picviewer/pkg/components"
	"github.com/decker502/picviewer/pkg/ecs"
)

var (
	// ErrNoParent 抽屉没有父容器，无法确定滑动距离
	ErrNoParent = errors.New("drawer has no parent container")
	// ErrMissingComponent 实体缺少 SlideToggleComponent 或 RectTransformComponent
	ErrMissingComponent = errors.New("entity is missing drawer components")
)

// SlideToggleSystem 抽屉滑动系统
//
// 职责：
//   - Init: 解析方向、记录显示位置、采样容器尺寸
//   - Update: 每帧轮询容器尺寸和窗口系数，推进正在滑动的面板，到达目标后停止并翻转状态
//   - Trigger: 外部触发一次滑动
//
// 位移公式：sign × 轴向容器尺寸 × Speed × deltaTime，
// sign = (隐藏中 ? +1 : -1) × BaseSign（当前隐藏则向显示方向移动，反之亦然）。
type SlideToggleSystem struct {
	entityManager *ecs.EntityManager
}

// NewSlideToggleSystem 创建抽屉滑动系统
func NewSlideToggleSystem(em *ecs.EntityManager) *SlideToggleSystem {
	return &SlideToggleSystem{entityManager: em}
}

// Init 初始化单个抽屉
//
// 记录当前位置作为显示位置；StartHidden 为 true 时直接放到隐藏位置。
// Right/Down 抽屉的显示位置记录为到远端边缘的距离，容器变化时跟随该边缘。
// 非法方向返回 ErrInvalidHideDirection，没有父容器返回 ErrNoParent。
func (s *SlideToggleSystem) Init(entity ecs.EntityID) error {
	slide, rect, err := s.drawer(entity)
	if err != nil {
		return err
	}

	sign, err := slide.Direction.BaseSign()
	if err != nil {
		return fmt.Errorf("drawer %d: %w", entity, err)
	}
	if err := components.ValidateWindowFactor(slide.WindowFactor); err != nil {
		return fmt.Errorf("drawer %d: %w", entity, err)
	}

	w, h, ok := s.containerSize(rect)
	if !ok {
		return fmt.Errorf("drawer %d: %w", entity, ErrNoParent)
	}

	slide.BaseSign = sign
	slide.Horizontal = slide.Direction.IsHorizontal()
	slide.ShownX = rect.X
	slide.ShownY = rect.Y
	slide.ContainerSize = [2]float64{w, h}
	slide.EdgeOffset = s.edgeOffset(slide)
	slide.AppliedWindowFactor = slide.WindowFactor
	slide.IsSliding = false
	slide.TotalDisplacement = 0
	slide.IsHidden = slide.StartHidden
	slide.Initialized = true

	if slide.IsHidden {
		s.snap(slide, rect)
	}

	logger.Log.Debug("drawer initialized",
		zap.Uint64("entity", uint64(entity)),
		zap.Stringer("direction", slide.Direction),
		zap.Float64("windowFactor", slide.WindowFactor),
		zap.Bool("hidden", slide.IsHidden))
	return nil
}

// InitAll 初始化所有尚未初始化的抽屉，遇到第一个错误即返回
func (s *SlideToggleSystem) InitAll() error {
	for _, id := range ecs.GetEntitiesWith2[*components.SlideToggleComponent, *components.RectTransformComponent](s.entityManager) {
		slide, _ := ecs.GetComponent[*components.SlideToggleComponent](s.entityManager, id)
		if slide.Initialized {
			continue
		}
		if err := s.Init(id); err != nil {
			return err
		}
	}
	return nil
}

// Trigger 开始一次滑动
//
// 返回 false 表示未开始：实体不是已初始化的抽屉，或者正在滑动中
// （进行中的滑动不会被打断）。
func (s *SlideToggleSystem) Trigger(entity ecs.EntityID) bool {
	slide, _, err := s.drawer(entity)
	if err != nil || !slide.Initialized || slide.IsSliding {
		return false
	}

	slide.IsSliding = true
	slide.TotalDisplacement = 0
	logger.Log.Debug("drawer slide started",
		zap.Uint64("entity", uint64(entity)),
		zap.Bool("hiding", !slide.IsHidden))
	return true
}

// SetHidden 不经动画直接切换到指定状态（用于恢复持久化状态）
// 正在进行的滑动会被取消
func (s *SlideToggleSystem) SetHidden(entity ecs.EntityID, hidden bool) error {
	slide, rect, err := s.drawer(entity)
	if err != nil {
		return err
	}
	if !slide.Initialized {
		return fmt.Errorf("drawer %d is not initialized", entity)
	}

	slide.IsSliding = false
	slide.TotalDisplacement = 0
	slide.IsHidden = hidden
	s.snap(slide, rect)
	return nil
}

// Update 推进所有抽屉一帧
func (s *SlideToggleSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.SlideToggleComponent, *components.RectTransformComponent](s.entityManager)

	for _, id := range entities {
		slide, _ := ecs.GetComponent[*components.SlideToggleComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectTransformComponent](s.entityManager, id)
		if slide == nil || rect == nil || !slide.Initialized {
			continue
		}

		// 容器尺寸变化检测
		w, h, ok := s.containerSize(rect)
		if !ok {
			continue
		}
		realign := false
		if slide.ContainerSize != [2]float64{w, h} {
			logger.Log.Debug("drawer container resized",
				zap.Uint64("entity", uint64(id)),
				zap.Float64("width", w),
				zap.Float64("height", h))
			slide.ContainerSize = [2]float64{w, h}
			s.anchorShown(slide)
			realign = true
		}
		// 窗口系数被外部修改（SetWindowFactor）
		if slide.WindowFactor != slide.AppliedWindowFactor {
			slide.AppliedWindowFactor = slide.WindowFactor
			realign = realign || slide.IsHidden
		}
		// 静止时按新的尺寸/系数重新对齐；滑动中由结束时的 snap 落到新目标
		if realign && !slide.IsSliding {
			s.snap(slide, rect)
		}

		if !slide.IsSliding || deltaTime <= 0 {
			continue
		}

		axis := s.axisSize(slide)
		displacement := s.displacement(slide, axis, deltaTime)
		if slide.Horizontal {
			rect.X += displacement
		} else {
			rect.Y += displacement
		}

		s.judgeStop(id, slide, rect, displacement, axis)
	}
}

// displacement 本帧位移
func (s *SlideToggleSystem) displacement(slide *components.SlideToggleComponent, axis, deltaTime float64) float64 {
	sign := -slide.BaseSign
	if !slide.IsHidden {
		sign = slide.BaseSign
	}
	return sign * axis * slide.Speed * deltaTime
}

// judgeStop 累计位移超过 轴向尺寸 × WindowFactor 后停止
func (s *SlideToggleSystem) judgeStop(id ecs.EntityID, slide *components.SlideToggleComponent, rect *components.RectTransformComponent, displacement, axis float64) {
	slide.TotalDisplacement += math.Abs(displacement)
	if slide.TotalDisplacement < axis*slide.WindowFactor {
		return
	}

	slide.IsSliding = false
	slide.IsHidden = !slide.IsHidden
	slide.TotalDisplacement = 0
	s.snap(slide, rect)

	logger.Log.Debug("drawer slide finished",
		zap.Uint64("entity", uint64(id)),
		zap.Bool("hidden", slide.IsHidden),
		zap.Float64("x", rect.X),
		zap.Float64("y", rect.Y))

	if slide.OnToggled != nil {
		slide.OnToggled(slide.IsHidden)
	}
}

// snap 把面板放到当前状态对应的精确位置
// 隐藏位置 = 显示位置 + BaseSign × 轴向容器尺寸 × WindowFactor
func (s *SlideToggleSystem) snap(slide *components.SlideToggleComponent, rect *components.RectTransformComponent) {
	slide.AppliedWindowFactor = slide.WindowFactor
	rect.X, rect.Y = slide.ShownX, slide.ShownY
	if !slide.IsHidden {
		return
	}

	offset := slide.BaseSign * s.axisSize(slide) * slide.WindowFactor
	if slide.Horizontal {
		rect.X += offset
	} else {
		rect.Y += offset
	}
}

// edgeOffset 显示位置到收起方向容器边缘的距离
func (s *SlideToggleSystem) edgeOffset(slide *components.SlideToggleComponent) float64 {
	pos := slide.ShownY
	if slide.Horizontal {
		pos = slide.ShownX
	}
	if slide.BaseSign > 0 {
		return s.axisSize(slide) - pos
	}
	return pos
}

// anchorShown 容器尺寸变化后，按 EdgeOffset 重新计算显示位置
// Left/Up 相对起始边缘（不变），Right/Down 相对远端边缘
func (s *SlideToggleSystem) anchorShown(slide *components.SlideToggleComponent) {
	pos := slide.EdgeOffset
	if slide.BaseSign > 0 {
		pos = s.axisSize(slide) - slide.EdgeOffset
	}
	if slide.Horizontal {
		slide.ShownX = pos
	} else {
		slide.ShownY = pos
	}
}

// axisSize 滑动轴方向上的容器尺寸
func (s *SlideToggleSystem) axisSize(slide *components.SlideToggleComponent) float64 {
	if slide.Horizontal {
		return slide.ContainerSize[0]
	}
	return slide.ContainerSize[1]
}

// containerSize 父容器的当前尺寸
func (s *SlideToggleSystem) containerSize(rect *components.RectTransformComponent) (float64, float64, bool) {
	if !rect.HasParent() {
		return 0, 0, false
	}
	parent, ok := ecs.GetComponent[*components.RectTransformComponent](s.entityManager, rect.Parent)
	if !ok {
		return 0, 0, false
	}
	return parent.Width, parent.Height, true
}

// drawer 获取抽屉的两个必要组件
func (s *SlideToggleSystem) drawer(entity ecs.EntityID) (*components.SlideToggleComponent, *components.RectTransformComponent, error) {
	slide, ok1 := ecs.GetComponent[*components.SlideToggleComponent](s.entityManager, entity)
	rect, ok2 := ecs.GetComponent[*components.RectTransformComponent](s.entityManager, entity)
	if !ok1 || !ok2 {
		return nil, nil, fmt.Errorf("entity %d: %w", entity, ErrMissingComponent)
	}
	return slide, rect, nil
}
