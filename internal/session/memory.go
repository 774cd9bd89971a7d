package session

import "sync"

// MemoryStore はプロセス内メモリ上のStore実装。
// トークンをキーとした並行アクセスに安全で、トークンが異なる操作同士は
// 干渉しない。期限切れのセッションは参照されたときに削除する。
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore は新しいMemoryStoreを生成する。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

// Get はトークンに対応する生きたセッションを返す。
// 期限切れのセッションはこの時点で削除する（受動的な失効）。
func (m *MemoryStore) Get(token string) (Session, bool) {
	m.mu.RLock()
	sess, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return Session{}, false
	}
	if sess.IsExpired() {
		m.Delete(token)
		return Session{}, false
	}
	return sess, true
}

// Put はセッションを保存する。
func (m *MemoryStore) Put(sess Session) {
	m.mu.Lock()
	m.sessions[sess.Token] = sess
	m.mu.Unlock()
}

// Delete はセッションの記録を完全に消す。
func (m *MemoryStore) Delete(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Len は保持中のセッション数を返す。テストでの検証用。
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
