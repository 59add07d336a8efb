package usecase

import (
	"hash/fnv"
	"sync"
)

const keyMutexShards = 64

// keyMutex serializes work per string key by hashing keys onto a fixed set of
// shard mutexes. Distinct keys may share a shard; that costs contention, not
// correctness. Used to keep concurrent find-or-create from opening two
// conversations for the same (account, page, sender).
type keyMutex struct {
	shards [keyMutexShards]sync.Mutex
}

// lock acquires the shard for key and returns the unlock function.
func (k *keyMutex) lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	shard := &k.shards[h.Sum32()%keyMutexShards]
	shard.Lock()
	return shard.Unlock
}
