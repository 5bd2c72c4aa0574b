package service

import (
	"sync"

	"github.com/maplol/adaptix-mvp/internal/model"
)

// gridSession 单个会话的网格交互状态
//
// 剪贴板保存快照；拖拽与溢出弹层互斥（开始拖拽时关闭弹层）。
type gridSession struct {
	clipboard    *model.Shift
	dragShiftID  string
	overflowCell string
}

// sessionStore 按 sid 保存网格交互状态
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*gridSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*gridSession)}
}

// with 在锁内访问会话状态，不存在时创建
func (st *sessionStore) with(sid string, fn func(gs *gridSession)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	gs, ok := st.sessions[sid]
	if !ok {
		gs = &gridSession{}
		st.sessions[sid] = gs
	}
	fn(gs)
}

// snapshot 返回会话状态副本
func (st *sessionStore) snapshot(sid string) gridSession {
	st.mu.Lock()
	defer st.mu.Unlock()
	gs, ok := st.sessions[sid]
	if !ok {
		return gridSession{}
	}
	out := *gs
	if gs.clipboard != nil {
		cp := *gs.clipboard
		out.clipboard = &cp
	}
	return out
}

func (st *sessionStore) drop(sid string) {
	st.mu.Lock()
	delete(st.sessions, sid)
	st.mu.Unlock()
}

// reset 清空全部会话状态（演示数据重置时）
func (st *sessionStore) reset() {
	st.mu.Lock()
	st.sessions = make(map[string]*gridSession)
	st.mu.Unlock()
}
