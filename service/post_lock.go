package service

import "sync"

// postLocks 按帖子 id 串行化状态流转（进程内）；跨进程靠 SELECT ... FOR UPDATE
type postLocks struct {
	mu    sync.Mutex
	locks map[uint64]*postLock
}

type postLock struct {
	mu   sync.Mutex
	refs int
}

func newPostLocks() *postLocks {
	return &postLocks{locks: make(map[uint64]*postLock)}
}

// lock 返回解锁函数；没有人持有时条目会被回收
func (l *postLocks) lock(postID uint64) func() {
	l.mu.Lock()
	pl, ok := l.locks[postID]
	if !ok {
		pl = &postLock{}
		l.locks[postID] = pl
	}
	pl.refs++
	l.mu.Unlock()

	pl.mu.Lock()
	return func() {
		pl.mu.Unlock()
		l.mu.Lock()
		pl.refs--
		if pl.refs == 0 {
			delete(l.locks, postID)
		}
		l.mu.Unlock()
	}
}

func (l *postLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
