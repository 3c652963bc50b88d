package entities

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/picviewer/pkg/components"
	"github.com/decker502/picviewer/pkg/config"
	"github.com/decker502/picviewer/pkg/ecs"
)

// TestNewCanvasEntity 测试根容器创建
func TestNewCanvasEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	canvas, err := NewCanvasEntity(em, config.WindowConfig{Width: 640, Height: 480, Background: "#102030"})
	if err != nil {
		t.Fatalf("NewCanvasEntity() error: %v", err)
	}

	rect, ok := ecs.GetComponent[*components.RectTransformComponent](em, canvas)
	if !ok || rect.Width != 640 || rect.Height != 480 || rect.HasParent() {
		t.Errorf("canvas rect = %+v, %v", rect, ok)
	}
	style, ok := ecs.GetComponent[*components.PanelStyleComponent](em, canvas)
	if !ok || style.Fill != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("canvas style = %+v, %v", style, ok)
	}

	if _, err := NewCanvasEntity(em, config.WindowConfig{Background: "nope"}); err == nil {
		t.Error("invalid background should fail")
	}
}

// TestNewPanelEntity_Drawer 测试抽屉面板的组件组合
func TestNewPanelEntity_Drawer(t *testing.T) {
	em := ecs.NewEntityManager()
	canvas, _ := NewCanvasEntity(em, config.WindowConfig{Width: 800, Height: 600, Background: "#000000"})

	id, err := NewPanelEntity(em, canvas, config.PanelConfig{
		Name: "toolbar", X: 0, Y: 0, Width: 100, Height: 40,
		Direction: "top", Speed: 4, WindowFactor: 0.5, StartHidden: true,
		FullWidth: true, TrackWidth: true, Key: "Tab", Color: "#aabbcc",
	})
	if err != nil {
		t.Fatalf("NewPanelEntity() error: %v", err)
	}

	rect, _ := ecs.GetComponent[*components.RectTransformComponent](em, id)
	if rect == nil || rect.Parent != canvas || rect.Width != 100 {
		t.Errorf("rect = %+v", rect)
	}

	slide, ok := ecs.GetComponent[*components.SlideToggleComponent](em, id)
	if !ok {
		t.Fatal("drawer should have SlideToggleComponent")
	}
	if slide.Direction != components.HideUp || slide.Speed != 4 || slide.WindowFactor != 0.5 || !slide.StartHidden {
		t.Errorf("slide = %+v", slide)
	}
	if slide.Initialized {
		t.Error("factory must not initialize the drawer")
	}

	trigger, ok := ecs.GetComponent[*components.ToggleTriggerComponent](em, id)
	if !ok || trigger.Key != ebiten.KeyTab {
		t.Errorf("trigger = %+v, %v", trigger, ok)
	}

	full, ok := ecs.GetComponent[*components.FullWidthComponent](em, id)
	if !ok || !full.Track {
		t.Errorf("full width = %+v, %v", full, ok)
	}
}

// TestNewPanelEntity_Plain 普通面板没有抽屉相关组件
func TestNewPanelEntity_Plain(t *testing.T) {
	em := ecs.NewEntityManager()
	canvas, _ := NewCanvasEntity(em, config.WindowConfig{Width: 800, Height: 600, Background: "#000000"})

	id, err := NewPanelEntity(em, canvas, config.PanelConfig{Name: "status", Width: 800, Height: 20, Key: "S"})
	if err != nil {
		t.Fatalf("NewPanelEntity() error: %v", err)
	}

	if ecs.HasComponent[*components.SlideToggleComponent](em, id) {
		t.Error("plain panel should not have SlideToggleComponent")
	}
	if ecs.HasComponent[*components.ToggleTriggerComponent](em, id) {
		t.Error("key binding without a drawer should be ignored")
	}
	style, _ := ecs.GetComponent[*components.PanelStyleComponent](em, id)
	if style == nil || style.Fill != defaultPanelColor {
		t.Errorf("style = %+v", style)
	}
}

// TestNewPanelEntity_Errors 非法配置不创建实体
func TestNewPanelEntity_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PanelConfig
		wantErr error
	}{
		{
			name:    "非法方向",
			cfg:     config.PanelConfig{Name: "a", Direction: "north", Speed: 1, WindowFactor: 1},
			wantErr: components.ErrInvalidHideDirection,
		},
		{
			name:    "窗口系数过小",
			cfg:     config.PanelConfig{Name: "a", Direction: "left", Speed: 1, WindowFactor: 0.05},
			wantErr: components.ErrInvalidWindowFactor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			before := em.EntityCount()
			_, err := NewPanelEntity(em, ecs.InvalidEntity, tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if em.EntityCount() != before {
				t.Error("failed factory call must not leave entities behind")
			}
		})
	}
}
