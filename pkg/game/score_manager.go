package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 最高分存储位置
const (
	scoresObject      = "scores"
	highScoreProperty = "highScore"
)

// HighScoreManager 最高分存储
//
// 只保存一个整数。gdataManager 为 nil 时退化为仅内存保存，进程退出后丢失。
// 读取失败（数据损坏）时记录警告并按 0 处理，不会阻止游戏开始。
type HighScoreManager struct {
	gdataManager *gdata.Manager
	highScore    int
}

// NewHighScoreManager 创建最高分存储并立即读取一次
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	hm := &HighScoreManager{gdataManager: gdataManager}
	if err := hm.Load(); err != nil {
		log.Printf("[HighScoreManager] Warning: %v (treating high score as 0)", err)
	}
	return hm
}

// Load 从 gdata 重新读取最高分
func (hm *HighScoreManager) Load() error {
	hm.highScore = 0
	if hm.gdataManager == nil {
		return nil
	}
	if !hm.gdataManager.ObjectPropExists(scoresObject, highScoreProperty) {
		return nil
	}

	data, err := hm.gdataManager.LoadObjectProp(scoresObject, highScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load high score: %w", err)
	}

	var score int
	if err := yaml.Unmarshal(data, &score); err != nil {
		return fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	if score < 0 {
		return fmt.Errorf("invalid high score %d", score)
	}

	hm.highScore = score
	log.Printf("[HighScoreManager] Loaded high score: %d", score)
	return nil
}

// HighScore 返回当前最高分
func (hm *HighScoreManager) HighScore() int {
	return hm.highScore
}

// SaveHighScore 写入新的最高分
//
// 是否需要写入由调用方判断（只在刷新纪录时调用）。
func (hm *HighScoreManager) SaveHighScore(score int) error {
	hm.highScore = score
	if hm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}
	if err := hm.gdataManager.SaveObjectProp(scoresObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}

	log.Printf("[HighScoreManager] Saved high score: %d", score)
	return nil
}
