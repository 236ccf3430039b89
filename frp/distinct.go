package frp

import (
	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// DistinctBy emits a value only the first time its key is seen during a
// mount. Keys are remembered by their 64-bit xxhash, so memory stays flat for
// long keys at the price of a negligible collision chance.
func DistinctBy[T any](s *Signal[T], key func(T) string) *Signal[T] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[T]) func() {
		seen := mapset.NewThreadUnsafeSet[uint64]()
		return s.Subscribe(Derive(emit, func(v T) {
			if seen.Add(xxhash.Sum64String(key(v))) {
				emit.Value(v)
			}
		})).Unsubscribe
	})
}
