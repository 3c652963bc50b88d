package components

// FullWidthComponent 将面板宽度拉伸到父容器宽度
//
// 首次更新时生效；Track 为 true 时容器宽度变化后会重新拉伸。
type FullWidthComponent struct {
	Track   bool // 是否跟随容器宽度变化
	Applied bool // 是否已经拉伸过
}
