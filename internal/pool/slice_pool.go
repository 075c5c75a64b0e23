package pool

import "sync"

// maxPooledIDs caps the identifier slices kept in the pool (8MiB).
const maxPooledIDs = 1 << 20

var idSlicePool = sync.Pool{
	New: func() any { return &[]uint64{} },
}

// GetIDSlice retrieves an empty identifier slice with at least the given
// capacity. Hand it back with PutIDSlice, grown or not, once it is no longer
// referenced.
func GetIDSlice(capacity int) []uint64 {
	ptr, _ := idSlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]
	if cap(slice) < capacity {
		slice = make([]uint64, 0, capacity)
	}

	return slice
}

// PutIDSlice returns a slice obtained from GetIDSlice, possibly grown by
// append, to the pool.
func PutIDSlice(slice []uint64) {
	if cap(slice) > maxPooledIDs {
		return
	}
	slice = slice[:0]
	idSlicePool.Put(&slice)
}
