// internal/lock/keyed_mutex.go
package lock

import "sync"

// KeyedMutex は文字列キー単位の排他制御を提供します。
// 復習の read-compute-write を (user_id, flashcard_id) 単位で、
// ストリーク更新を user_id 単位で直列化するために使います。
// エントリは参照カウントで管理し、誰も待っていないキーはマップから削除します。
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*entry),
	}
}

// Lock はキーに対応するロックを取得し、解放用の関数を返します。
// 呼び出し側は defer unlock() で全ての経路 (エラー時含む) で解放すること。
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()
			k.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(k.entries, key)
			}
			k.mu.Unlock()
		})
	}
}
