package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/picviewer/internal/logger"
	"github.com/decker502/picviewer/pkg/app"
	"github.com/decker502/picviewer/pkg/embedded"
)

var (
	configPath = flag.String("config", "", "布局配置文件路径（默认使用内置 data/panels.yaml）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	reset      = flag.Bool("reset", false, "忽略已保存的抽屉状态")
)

func main() {
	flag.Parse()

	if err := logger.Init(*verbose); err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer logger.Sync()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	viewer, err := app.NewApp(app.Config{
		ConfigPath: *configPath,
		ResetState: *reset,
	})
	if err != nil {
		logger.Log.Fatal("初始化失败", zap.Error(err))
	}

	window := viewer.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	if window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	runErr := ebiten.RunGame(viewer)

	// 窗口关闭后保存抽屉状态
	if !viewer.GetSceneManager().SaveOnExit() {
		logger.Log.Warn("抽屉状态保存失败")
	}

	if runErr != nil {
		logger.Log.Fatal("运行失败", zap.Error(runErr))
	}
}
