package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 查看器中的一个画面（目前只有图片查看画面）
// 每个场景有自己的更新和绘制逻辑
type Scene interface {
	// Update 更新场景逻辑
	// deltaTime 为距上一次更新经过的秒数
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后会在逻辑屏幕尺寸变化时收到通知
type Resizable interface {
	Resize(width, height int)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 窗口关闭
//   - 用户通过 OS 命令关闭程序
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
