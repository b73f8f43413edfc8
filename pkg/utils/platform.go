//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 1 时桌面端按移动端处理（提示文字改为"轻触"）
const MobileEmulateEnv = "FLAPPY_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
