// Package idgen 提供进程内单调递增的 ID 序列。
//
// 每个引擎持有自己的 Sequence（由调用方注入），避免模块级全局计数器，
// 也便于在测试中从确定的起点开始计数。序列号在进程生命周期内不会复用。
package idgen

import (
	"strconv"
	"sync"
)

// Sequence 单调递增计数器
type Sequence struct {
	mu   sync.Mutex
	next int
}

// NewSequence 创建从 start 开始的序列
func NewSequence(start int) *Sequence {
	return &Sequence{next: start}
}

// Next 返回当前值并自增
func (s *Sequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return n
}

// NextID 返回带前缀的 ID，例如 prefix="s_new_" → "s_new_100"
func (s *Sequence) NextID(prefix string) string {
	return prefix + strconv.Itoa(s.Next())
}
