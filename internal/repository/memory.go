package repository

import (
	"sync"

	pkgerrors "github.com/maplol/adaptix-mvp/pkg/errors"
)

// memTable 保持插入顺序的内存表，读写均返回副本
type memTable[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(*T) string
	clone func(T) T
}

func newMemTable[T any](idOf func(*T) string, clone func(T) T) *memTable[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &memTable[T]{idOf: idOf, clone: clone}
}

// load 整表替换
func (t *memTable[T]) load(items []T) {
	cp := make([]T, len(items))
	for i := range items {
		cp[i] = t.clone(items[i])
	}
	t.mu.Lock()
	t.items = cp
	t.mu.Unlock()
}

func (t *memTable[T]) indexOf(id string) int {
	for i := range t.items {
		if t.idOf(&t.items[i]) == id {
			return i
		}
	}
	return -1
}

func (t *memTable[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if i := t.indexOf(id); i >= 0 {
		return t.clone(t.items[i]), true
	}
	var zero T
	return zero, false
}

// list 按插入顺序返回满足 match 的记录，match 为 nil 时返回全部
func (t *memTable[T]) list(match func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.items))
	for i := range t.items {
		if match == nil || match(&t.items[i]) {
			out = append(out, t.clone(t.items[i]))
		}
	}
	return out
}

func (t *memTable[T]) count(match func(*T) bool) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for i := range t.items {
		if match == nil || match(&t.items[i]) {
			n++
		}
	}
	return n
}

func (t *memTable[T]) insert(item T) {
	t.mu.Lock()
	t.items = append(t.items, t.clone(item))
	t.mu.Unlock()
}

// insertUnless 不存在满足 conflict 的记录时才插入，检查与插入在同一把写锁内
func (t *memTable[T]) insertUnless(item T, conflict func(*T) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.items {
		if conflict(&t.items[i]) {
			return false
		}
	}
	t.items = append(t.items, t.clone(item))
	return true
}

// update 在同一把写锁内读取、修改并写回记录。
// fn 作用于副本，返回错误时原记录保持不变；记录不存在时返回 ErrRecordNotFound。
func (t *memTable[T]) update(id string, fn func(*T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	i := t.indexOf(id)
	if i < 0 {
		return zero, pkgerrors.ErrRecordNotFound
	}
	cp := t.clone(t.items[i])
	if err := fn(&cp); err != nil {
		return zero, err
	}
	t.items[i] = cp
	return t.clone(cp), nil
}

func (t *memTable[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.items = append(t.items[:i], t.items[i+1:]...)
	return true
}

// swapWithNeighbor 与相邻记录交换位置；越界时不变，返回 moved=false
func (t *memTable[T]) swapWithNeighbor(id string, delta int) (moved, found bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(id)
	if i < 0 {
		return false, false
	}
	j := i + delta
	if j < 0 || j >= len(t.items) {
		return false, true
	}
	t.items[i], t.items[j] = t.items[j], t.items[i]
	return true, true
}

func (t *memTable[T]) clear() {
	t.mu.Lock()
	t.items = nil
	t.mu.Unlock()
}
