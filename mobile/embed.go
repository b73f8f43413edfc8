//go:build mobile

// embed.go - 移动端配置嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把根目录的 data/flappy.yaml 复制到 mobile/data/：
//
//	cp data/flappy.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/flappy.yaml
var dataFS embed.FS
