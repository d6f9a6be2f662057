package tui

// helpLine returns the footer hints for a mode.
func helpLine(m Mode) string {
	switch m {
	case ModePrompt:
		return "enter 安排 · esc 取消"
	case ModeTemplates:
		return "↑↓ 选择 · enter 放置 · esc 返回"
	case ModeStats:
		return "esc 返回"
	case ModeConfirmDelete:
		return "确认删除? y 删除 · n 取消"
	}
	return "↑↓←→ 移动 · enter 完成度 · n 贴纸 · p 安排 · s 统计 · [] 切换周 · r 复制周 · R 重复 · c 紧凑 · u 用户 · q 退出"
}
