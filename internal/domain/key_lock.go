package domain

import (
	"hash/fnv"
	"sync"
)

const keyLockShards = 64

// KeyLock serialises work per key using a fixed set of mutex shards.
// Distinct keys may share a shard; equal keys always do.
type KeyLock struct {
	shards [keyLockShards]sync.Mutex
}

// Lock acquires the shard for key and returns its unlock function.
func (l *KeyLock) Lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	m := &l.shards[h.Sum32()%keyLockShards]
	m.Lock()
	return m.Unlock
}
