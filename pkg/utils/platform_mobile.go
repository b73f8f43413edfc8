//go:build mobile

package utils

// IsMobile 移动端构建始终为 true（开始界面显示"轻触"提示）
func IsMobile() bool {
	return true
}
