package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/picviewer/pkg/components"
)

// 窗口默认配置
const (
	// DefaultWindowWidth 默认窗口宽度
	DefaultWindowWidth = 800
	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 600
	// DefaultWindowTitle 默认窗口标题
	DefaultWindowTitle = "Picture Viewer"
	// DefaultConfigPath 嵌入的默认布局文件
	DefaultConfigPath = "data/panels.yaml"
)

// 抽屉默认参数
const (
	// DefaultSpeed 默认滑动速度（每秒移动的容器尺寸倍数）
	DefaultSpeed = 10.0
	// DefaultWindowFactor 默认窗口系数
	DefaultWindowFactor = 1.0
)

// 全局快捷键，不能再绑定到抽屉
const (
	// KeyWindowFactorUp 增大所有抽屉的窗口系数
	KeyWindowFactorUp = ebiten.KeyEqual
	// KeyWindowFactorDown 减小所有抽屉的窗口系数
	KeyWindowFactorDown = ebiten.KeyMinus
	// KeyFullscreen 切换全屏
	KeyFullscreen = ebiten.KeyF11
)

// reservedKeys 全局快捷键及其用途
var reservedKeys = map[ebiten.Key]string{
	KeyWindowFactorUp:   "window factor up",
	KeyWindowFactorDown: "window factor down",
	KeyFullscreen:       "fullscreen",
}

// ErrInvalidConfig 配置内容不合法
var ErrInvalidConfig = errors.New("invalid viewer config")

// ViewerConfig 查看器布局配置
type ViewerConfig struct {
	Viewer WindowConfig  `yaml:"viewer"`
	Panels []PanelConfig `yaml:"panels"`
}

// WindowConfig 窗口（根容器）配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // "#RRGGBB" 或 "#RRGGBBAA"
	Resizable  bool   `yaml:"resizable"`
}

// PanelConfig 单个面板配置
//
// Direction 为空表示普通面板（不滑动）；否则为抽屉，
// Speed/WindowFactor 为 0 时使用默认值。
type PanelConfig struct {
	Name         string  `yaml:"name"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Direction    string  `yaml:"direction"`
	Speed        float64 `yaml:"speed"`
	WindowFactor float64 `yaml:"windowFactor"`
	StartHidden  bool    `yaml:"startHidden"`
	FullWidth    bool    `yaml:"fullWidth"`
	TrackWidth   bool    `yaml:"trackWidth"`
	Key          string  `yaml:"key"`
	Color        string  `yaml:"color"`
}

// IsDrawer 是否为抽屉
func (p *PanelConfig) IsDrawer() bool {
	return strings.TrimSpace(p.Direction) != ""
}

// LoadViewerConfig 解析并校验 YAML 布局
func LoadViewerConfig(data []byte) (*ViewerConfig, error) {
	var cfg ViewerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse viewer config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 填充未配置的字段
func (c *ViewerConfig) applyDefaults() {
	if c.Viewer.Width == 0 {
		c.Viewer.Width = DefaultWindowWidth
	}
	if c.Viewer.Height == 0 {
		c.Viewer.Height = DefaultWindowHeight
	}
	if c.Viewer.Title == "" {
		c.Viewer.Title = DefaultWindowTitle
	}
	if c.Viewer.Background == "" {
		c.Viewer.Background = "#202020"
	}

	for i := range c.Panels {
		p := &c.Panels[i]
		if !p.IsDrawer() {
			continue
		}
		if p.Speed == 0 {
			p.Speed = DefaultSpeed
		}
		if p.WindowFactor == 0 {
			p.WindowFactor = DefaultWindowFactor
		}
	}
}

// Validate 校验配置
// 所有问题一起报告，便于一次修正
func (c *ViewerConfig) Validate() error {
	var errs []error

	if c.Viewer.Width < 0 || c.Viewer.Height < 0 {
		errs = append(errs, fmt.Errorf("viewer size %dx%d must not be negative", c.Viewer.Width, c.Viewer.Height))
	}
	if _, err := ParseColor(c.Viewer.Background); err != nil {
		errs = append(errs, fmt.Errorf("viewer background: %w", err))
	}

	names := make(map[string]bool, len(c.Panels))
	for i := range c.Panels {
		p := &c.Panels[i]
		prefix := fmt.Sprintf("panels[%d]", i)
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		} else if names[p.Name] {
			errs = append(errs, fmt.Errorf("%s: duplicate name %q", prefix, p.Name))
		}
		names[p.Name] = true

		if p.Width < 0 || p.Height < 0 {
			errs = append(errs, fmt.Errorf("%s: size must not be negative", prefix))
		}
		if p.Color != "" {
			if _, err := ParseColor(p.Color); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
			}
		}
		if p.Key != "" {
			key, err := ParseKey(p.Key)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
			} else if use, ok := reservedKeys[key]; ok {
				errs = append(errs, fmt.Errorf("%s: key %q is reserved for %s", prefix, p.Key, use))
			}
		}

		if !p.IsDrawer() {
			continue
		}
		if _, err := components.ParseHideDirection(p.Direction); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
		if p.Speed <= 0 {
			errs = append(errs, fmt.Errorf("%s: speed must be positive, got %v", prefix, p.Speed))
		}
		if err := components.ValidateWindowFactor(p.WindowFactor); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ParseKey 解析按键名称，如 "Tab"、"L"、"ArrowLeft"、"F1"
func ParseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return key, nil
}

// ParseColor 解析 "#RRGGBB" 或 "#RRGGBBAA"
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
