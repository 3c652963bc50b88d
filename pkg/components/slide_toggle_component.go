package components

import (
	"errors"
	"fmt"
	"strings"
)

// HideDirection 面板隐藏时移动的方向
type HideDirection int

const (
	// HideLeft 向左收起（水平轴，负方向）
	HideLeft HideDirection = iota
	// HideRight 向右收起（水平轴，正方向）
	HideRight
	// HideUp 向上收起（垂直轴，负方向）
	HideUp
	// HideDown 向下收起（垂直轴，正方向）
	HideDown
)

// 窗口系数的合法范围 (MinWindowFactor, MaxWindowFactor]
const (
	MinWindowFactor = 0.1
	MaxWindowFactor = 1.0
)

var (
	// ErrInvalidWindowFactor 窗口系数超出 (0.1, 1.0]
	// 低于 0.1 时面板几乎完全藏在容器外，无法再取回
	ErrInvalidWindowFactor = errors.New("window factor must be in (0.1, 1.0]")

	// ErrInvalidHideDirection 未知的隐藏方向
	ErrInvalidHideDirection = errors.New("invalid hide direction")
)

var hideDirectionNames = map[HideDirection]string{
	HideLeft:  "left",
	HideRight: "right",
	HideUp:    "up",
	HideDown:  "down",
}

// String 返回方向名称
func (d HideDirection) String() string {
	if name, ok := hideDirectionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("HideDirection(%d)", int(d))
}

// Valid 是否为四个合法方向之一
func (d HideDirection) Valid() bool {
	_, ok := hideDirectionNames[d]
	return ok
}

// IsHorizontal Left/Right 沿 X 轴移动，Up/Down 沿 Y 轴移动
func (d HideDirection) IsHorizontal() bool {
	return d == HideLeft || d == HideRight
}

// BaseSign 收起时的移动符号
// 屏幕坐标 X 向右、Y 向下增长，所以 Left/Up 为 -1，Right/Down 为 +1
func (d HideDirection) BaseSign() (float64, error) {
	switch d {
	case HideLeft, HideUp:
		return -1, nil
	case HideRight, HideDown:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidHideDirection, int(d))
	}
}

// ParseHideDirection 解析方向名称（不区分大小写）
// "top"/"bottom" 分别作为 "up"/"down" 的别名
func ParseHideDirection(name string) (HideDirection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return HideLeft, nil
	case "right":
		return HideRight, nil
	case "up", "top":
		return HideUp, nil
	case "down", "bottom":
		return HideDown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidHideDirection, name)
	}
}

// SlideToggleComponent 滑动切换组件（抽屉）
// 由外部动作触发，在"显示"和"隐藏"之间滑动切换面板
//
// 面板沿 Direction 决定的轴线性移动，
// 累计位移达到 容器尺寸 × WindowFactor 时停止并翻转状态。
// 逻辑由 SlideToggleSystem 驱动。
type SlideToggleComponent struct {
	// 配置
	Speed        float64       // 每秒移动的容器尺寸倍数（位移 = 容器尺寸 × Speed × deltaTime）
	WindowFactor float64       // 滑动距离占容器尺寸的比例 (0.1, 1.0]
	Direction    HideDirection // 隐藏方向
	StartHidden  bool          // 初始化时是否直接放在隐藏位置

	// 状态
	IsSliding         bool    // 是否正在滑动
	IsHidden          bool    // 当前（或本次滑动开始前）是否处于隐藏状态
	TotalDisplacement float64 // 本次滑动累计的绝对位移

	// 由 SlideToggleSystem.Init 填充
	Initialized bool
	BaseSign    float64 // 收起时的移动符号
	Horizontal  bool    // 是否沿 X 轴移动
	ShownX      float64 // 显示状态下的本地坐标（按当前容器尺寸）
	ShownY      float64
	// EdgeOffset 显示位置沿滑动轴到收起方向容器边缘的距离
	// Right/Down 抽屉靠远端边缘定位，容器变化时跟随该边缘
	EdgeOffset float64

	ContainerSize       [2]float64 // 上一帧观测到的容器尺寸，用于检测尺寸变化
	AppliedWindowFactor float64    // 当前位置对应的窗口系数，用于检测 SetWindowFactor

	// 回调函数
	OnToggled func(hidden bool) // 每次滑动结束后调用
}

// SetWindowFactor 设置窗口系数
//
// 1.0 表示滑动整个容器尺寸；不合法的值返回 ErrInvalidWindowFactor，原值保持不变。
// 正在滑动时修改会在本次滑动的停止判断中立即生效；
// 静止在隐藏位置时，SlideToggleSystem 会在下一次 Update 中按新系数重新对齐。
func (c *SlideToggleComponent) SetWindowFactor(value float64) error {
	if err := ValidateWindowFactor(value); err != nil {
		return err
	}
	c.WindowFactor = value
	return nil
}

// ValidateWindowFactor 检查窗口系数是否在 (0.1, 1.0] 内
func ValidateWindowFactor(value float64) error {
	if !(value > MinWindowFactor && value <= MaxWindowFactor) {
		return fmt.Errorf("%w: got %v", ErrInvalidWindowFactor, value)
	}
	return nil
}

// State 返回状态机的可读名称，用于日志和调试显示
func (c *SlideToggleComponent) State() string {
	visibility := "shown"
	if c.IsHidden {
		visibility = "hidden"
	}
	if c.IsSliding {
		return "sliding(from " + visibility + ")"
	}
	return "idle(" + visibility + ")"
}
