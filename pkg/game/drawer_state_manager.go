package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/decker502/picviewer/internal/logger"
)

// DrawerState 单个抽屉的持久化状态
type DrawerState struct {
	Hidden       bool    `yaml:"hidden"`
	WindowFactor float64 `yaml:"windowFactor"`
}

// DrawerStates 按面板名称索引的抽屉状态
type DrawerStates map[string]DrawerState

// DrawerStateManager 抽屉状态管理器
// 负责抽屉状态的加载、保存和内存管理
type DrawerStateManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	states       DrawerStates
}

// 存储路径常量
const (
	drawerObject   = "drawers"
	drawerProperty = "state"
)

// NewDrawerStateManager 创建新的抽屉状态管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 加载失败不是致命错误，记录警告后使用空状态。
func NewDrawerStateManager(gdataManager *gdata.Manager) *DrawerStateManager {
	m := &DrawerStateManager{
		gdataManager: gdataManager,
		states:       make(DrawerStates),
	}

	if err := m.Load(); err != nil {
		logger.Log.Warn("failed to load drawer state, using defaults", zap.Error(err))
	}
	return m
}

// Load 从 gdata 加载状态
//
// gdataManager 为 nil 或文件不存在时使用空状态
func (m *DrawerStateManager) Load() error {
	m.states = make(DrawerStates)

	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(drawerObject, drawerProperty) {
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(drawerObject, drawerProperty)
	if err != nil {
		return fmt.Errorf("failed to load drawer state: %w", err)
	}

	var loaded DrawerStates
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal drawer state: %w", err)
	}
	if loaded != nil {
		m.states = loaded
	}

	logger.Log.Debug("drawer state loaded", zap.Int("drawers", len(m.states)))
	return nil
}

// Save 保存状态到 gdata
//
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (m *DrawerStateManager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.states)
	if err != nil {
		return fmt.Errorf("failed to marshal drawer state: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(drawerObject, drawerProperty, data); err != nil {
		return fmt.Errorf("failed to save drawer state: %w", err)
	}

	logger.Log.Debug("drawer state saved", zap.Int("drawers", len(m.states)))
	return nil
}

// Get 获取指定抽屉的状态
func (m *DrawerStateManager) Get(name string) (DrawerState, bool) {
	s, ok := m.states[name]
	return s, ok
}

// Set 更新指定抽屉的状态
// 注意：仅修改内存，需调用 Save() 持久化
func (m *DrawerStateManager) Set(name string, state DrawerState) {
	m.states[name] = state
}

// Reset 清空所有状态（内存）
func (m *DrawerStateManager) Reset() {
	m.states = make(DrawerStates)
}

// Len 已记录状态的抽屉数量
func (m *DrawerStateManager) Len() int {
	return len(m.states)
}
