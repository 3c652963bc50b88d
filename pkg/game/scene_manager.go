package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 控制当前活动的场景
// 任意时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
	width        int
	height       int
}

// NewSceneManager 创建场景管理器
// 初始没有活动场景，使用 SwitchTo 设置第一个场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换到指定场景
// Resizable 场景会立即收到最近一次的屏幕尺寸
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize 记录新的逻辑屏幕尺寸，尺寸变化时通知 Resizable 场景
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// SaveOnExit 如果当前场景实现了 Saveable 则调用它
// 没有场景或场景不需要保存时返回 true
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}
