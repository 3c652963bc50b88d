package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDrawerStateManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestDrawerStateManagerNilGdata(t *testing.T) {
	m := NewDrawerStateManager(nil)
	if m == nil {
		t.Fatal("NewDrawerStateManager(nil) returned nil")
	}

	m.Set("thumbnails", DrawerState{Hidden: true, WindowFactor: 0.5})
	if err := m.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}

	got, ok := m.Get("thumbnails")
	if !ok || !got.Hidden || got.WindowFactor != 0.5 {
		t.Errorf("Get() = %+v, %v", got, ok)
	}
}

// TestDrawerStateLoadSave 测试 Save() 后新实例能 Load() 回来
func TestDrawerStateLoadSave(t *testing.T) {
	gm := openTestGdata(t, "test_drawer_state")

	m1 := NewDrawerStateManager(gm)
	if m1.Len() != 0 {
		t.Fatalf("fresh manager should be empty, got %d", m1.Len())
	}
	m1.Set("thumbnails", DrawerState{Hidden: true, WindowFactor: 0.25})
	m1.Set("toolbar", DrawerState{Hidden: false, WindowFactor: 0.4})
	if err := m1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	m2 := NewDrawerStateManager(gm)
	if m2.Len() != 2 {
		t.Fatalf("reloaded manager has %d drawers, want 2", m2.Len())
	}
	got, ok := m2.Get("thumbnails")
	if !ok || !got.Hidden || got.WindowFactor != 0.25 {
		t.Errorf("thumbnails = %+v, %v", got, ok)
	}
	got, ok = m2.Get("toolbar")
	if !ok || got.Hidden || got.WindowFactor != 0.4 {
		t.Errorf("toolbar = %+v, %v", got, ok)
	}
	if _, ok := m2.Get("missing"); ok {
		t.Error("unknown drawer should not be found")
	}
}

// TestDrawerStateCorruptData 测试存档损坏时降级为空状态
func TestDrawerStateCorruptData(t *testing.T) {
	gm := openTestGdata(t, "test_drawer_state_corrupt")
	if err := gm.SaveObjectProp(drawerObject, drawerProperty, []byte("{not: [valid")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	m := NewDrawerStateManager(gm)
	if m.Len() != 0 {
		t.Errorf("corrupt state should yield empty manager, got %d", m.Len())
	}
	if err := m.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
}

// TestDrawerStateReset 测试清空状态
func TestDrawerStateReset(t *testing.T) {
	m := NewDrawerStateManager(nil)
	m.Set("a", DrawerState{Hidden: true})
	m.Reset()
	if m.Len() != 0 {
		t.Errorf("Len() after Reset = %d", m.Len())
	}
}
