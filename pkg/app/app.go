// Package app 提供查看器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
package app

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"github.com/decker502/picviewer/internal/logger"
	"github.com/decker502/picviewer/pkg/config"
	"github.com/decker502/picviewer/pkg/embedded"
	"github.com/decker502/picviewer/pkg/game"
	"github.com/decker502/picviewer/pkg/scenes"
)

// AppName gdata 存储目录名
const AppName = "picviewer"

// Config 定义应用启动配置
type Config struct {
	// ConfigPath 外部布局文件路径，为空则使用嵌入的默认布局
	ConfigPath string
	// ResetState 忽略已保存的抽屉状态
	ResetState bool
	// DisablePersistence 不打开 gdata 存储（仅内存状态）
	DisablePersistence bool
}

// App 是查看器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	viewerConfig *config.ViewerConfig
}

// NewApp 创建并初始化应用
//
// 调用此函数前，如果使用嵌入布局，必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	viewerConfig, err := LoadViewerConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	var gdataManager *gdata.Manager
	if !cfg.DisablePersistence {
		gdataManager, err = gdata.Open(gdata.Config{AppName: AppName})
		if err != nil {
			// 无法持久化不影响使用
			logger.Log.Warn("persistent storage unavailable, drawer state will not be saved", zap.Error(err))
			gdataManager = nil
		}
	}

	stateManager := game.NewDrawerStateManager(gdataManager)
	if cfg.ResetState {
		stateManager.Reset()
	}

	scene, err := scenes.NewViewerScene(viewerConfig, stateManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create viewer scene: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.Resize(viewerConfig.Viewer.Width, viewerConfig.Viewer.Height)
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		viewerConfig: viewerConfig,
	}, nil
}

// LoadViewerConfig 读取布局配置
// path 为空时读取嵌入的 data/panels.yaml
func LoadViewerConfig(path string) (*config.ViewerConfig, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = embedded.ReadFile(config.DefaultConfigPath)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read viewer config: %w", err)
	}

	cfg, err := config.LoadViewerConfig(data)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("viewer config loaded",
		zap.String("path", path),
		zap.Int("panels", len(cfg.Panels)))
	return cfg, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(config.KeyFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 可调整大小的窗口使用窗口实际尺寸，抽屉会在下一帧按新容器尺寸重新计算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !a.viewerConfig.Viewer.Resizable {
		return a.viewerConfig.Viewer.Width, a.viewerConfig.Viewer.Height
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// WindowConfig 返回窗口配置
func (a *App) WindowConfig() config.WindowConfig {
	return a.viewerConfig.Viewer
}

// GetSceneManager 返回场景管理器
// 用于在关闭时保存状态
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
