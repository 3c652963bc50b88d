package systems

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/picviewer/pkg/components"
	"github.com/decker502/picviewer/pkg/ecs"
)

// TestPanelRenderSystem_WorldPosition 测试沿父子链计算屏幕坐标
func TestPanelRenderSystem_WorldPosition(t *testing.T) {
	em := ecs.NewEntityManager()
	canvas := em.CreateEntity()
	ecs.AddComponent(em, canvas, &components.RectTransformComponent{X: 5, Y: 7, Width: 800, Height: 600})
	panel := em.CreateEntity()
	ecs.AddComponent(em, panel, &components.RectTransformComponent{X: 100, Y: 50, Parent: canvas})
	child := em.CreateEntity()
	ecs.AddComponent(em, child, &components.RectTransformComponent{X: -20, Y: 3, Parent: panel})

	s := NewPanelRenderSystem(em)

	tests := []struct {
		name   string
		entity ecs.EntityID
		wantX  float64
		wantY  float64
	}{
		{"根容器", canvas, 5, 7},
		{"一级面板", panel, 105, 57},
		{"二级面板", child, 85, 60},
		{"不存在的实体", 99, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := s.WorldPosition(tt.entity)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("WorldPosition() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestPanelRenderSystem_WorldPositionCycle 循环父子链不会死循环
func TestPanelRenderSystem_WorldPositionCycle(t *testing.T) {
	em := ecs.NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()
	ecs.AddComponent(em, a, &components.RectTransformComponent{X: 1, Parent: b})
	ecs.AddComponent(em, b, &components.RectTransformComponent{X: 1, Parent: a})

	x, _ := NewPanelRenderSystem(em).WorldPosition(a)
	if x != maxParentDepth {
		t.Errorf("WorldPosition() x = %v, want %v", x, maxParentDepth)
	}
}

// TestPanelRenderSystem_Label 测试标签文字
func TestPanelRenderSystem_Label(t *testing.T) {
	em := ecs.NewEntityManager()
	canvas := newTestCanvas(em)
	drawer := newTestDrawer(em, canvas, components.HideLeft, 1, 0.5)
	ecs.AddComponent(em, drawer, &components.ToggleTriggerComponent{Key: ebiten.KeyL})

	s := NewPanelRenderSystem(em)

	if got := s.label(canvas, &components.PanelStyleComponent{Name: "viewer"}); got != "viewer" {
		t.Errorf("canvas label = %q, want %q", got, "viewer")
	}

	got := s.label(drawer, &components.PanelStyleComponent{Name: "thumbs"})
	for _, want := range []string{"thumbs", "idle(shown)", "wf=0.50", "key=L"} {
		if !strings.Contains(got, want) {
			t.Errorf("drawer label %q should contain %q", got, want)
		}
	}
}
