// Package logger 提供进程级的 zap 日志实例
//
// 默认是 no-op logger，测试和未初始化的调用方不会产生任何输出。
// main 在启动时调用 Init() 切换到真正的 logger。
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log 全局日志实例
var Log = zap.NewNop()

// Init 初始化全局 logger
//
// 参数：
//   - verbose: true 时使用 development 配置（Debug 级别、彩色控制台输出），
//     否则只输出 Warn 及以上级别
func Init(verbose bool) error {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync 刷新缓冲的日志
func Sync() {
	_ = Log.Sync()
}
