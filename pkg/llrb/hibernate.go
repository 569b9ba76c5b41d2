package llrb

import "sync"

// Buffer order inside hibernatedData.
const (
	bufLeft = iota
	bufRight
	bufFlags
	bufFree
)

// Flag bits packed into the bufFlags words.
const (
	flagRed  = 1 << 0
	flagDead = 1 << 1
)

// Hibernate compresses the arena's structural data (child handles,
// colors, free list) with LZ4 and drops the node storage, keeping only
// the elements. Handles stay valid across a Hibernate/Boot cycle, but
// every other operation on a hibernated allocator panics. Arenas
// smaller than HibernationThreshold are left untouched.
//
// Hibernation is best effort: when a buffer turns out incompressible
// the allocator stays live.
func (a *Allocator[T]) Hibernate() {
	if a.hibernatedStorageLen > 0 {
		panic("cannot hibernate an already hibernated allocator")
	}

	if len(a.storage) < a.HibernationThreshold {
		return
	}

	a.hibernatedStorageLen = len(a.storage)
	if a.hibernatedStorageLen == 0 {
		a.storage = nil
		a.free = nil

		return
	}

	// Deinterleave node fields; same-field runs compress far better
	// than interleaved structs.
	buffers := [4][]uint32{}
	for idx := range buffers[:bufFree] {
		buffers[idx] = make([]uint32, len(a.storage))
	}

	for idx, nd := range a.storage {
		buffers[bufLeft][idx] = uint32(nd.left)
		buffers[bufRight][idx] = uint32(nd.right)

		var flags uint32

		if nd.red {
			flags |= flagRed
		}

		if nd.dead {
			flags |= flagDead
		}

		buffers[bufFlags][idx] = flags
	}

	a.hibernatedFreeLen = len(a.free)
	if a.hibernatedFreeLen > 0 {
		buffers[bufFree] = make([]uint32, len(a.free))
		for idx, h := range a.free {
			buffers[bufFree][idx] = uint32(h)
		}
	}

	var wg sync.WaitGroup

	packed := [4][]byte{}

	for idx, buffer := range buffers {
		if len(buffer) == 0 {
			continue
		}

		wg.Add(1)

		go func(bufIdx int, buf []uint32) {
			defer wg.Done()

			packed[bufIdx] = compressWords(buf)
		}(idx, buffer)
	}

	wg.Wait()

	for idx, buffer := range buffers {
		if len(buffer) > 0 && packed[idx] == nil {
			// Incompressible; stay live.
			a.hibernatedStorageLen = 0
			a.hibernatedFreeLen = 0

			return
		}
	}

	elems := make([]T, len(a.storage))
	for idx := range a.storage {
		elems[idx] = a.storage[idx].elem
	}

	a.hibernatedElems = elems
	a.hibernatedData = packed
	a.storage = nil
	a.free = nil
}

// Boot restores a hibernated allocator to its live form. Booting a
// live allocator is a no-op.
func (a *Allocator[T]) Boot() {
	if a.storage == nil && a.hibernatedStorageLen == 0 {
		a.storage = []node[T]{}
		a.free = []Handle{}

		return
	}

	if a.hibernatedStorageLen == 0 {
		// Not hibernated.
		return
	}

	n := a.hibernatedStorageLen
	buffers := [4][]uint32{}

	var wg sync.WaitGroup

	for idx := range buffers[:bufFree] {
		wg.Add(1)

		go func(bufIdx int) {
			defer wg.Done()

			buffers[bufIdx] = make([]uint32, n)
			doAssert(decompressWords(a.hibernatedData[bufIdx], buffers[bufIdx]) == nil)
		}(idx)
	}

	if a.hibernatedFreeLen > 0 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			buffers[bufFree] = make([]uint32, a.hibernatedFreeLen)
			doAssert(decompressWords(a.hibernatedData[bufFree], buffers[bufFree]) == nil)
		}()
	}

	wg.Wait()

	// 3/2 growth headroom, matching the append growth pattern.
	storage := make([]node[T], n, n*3/2+1)
	for idx := range storage {
		flags := buffers[bufFlags][idx]
		storage[idx] = node[T]{
			elem:  a.hibernatedElems[idx],
			left:  Handle(buffers[bufLeft][idx]),
			right: Handle(buffers[bufRight][idx]),
			red:   flags&flagRed != 0,
			dead:  flags&flagDead != 0,
		}
	}

	free := make([]Handle, a.hibernatedFreeLen)
	for idx := range free {
		free[idx] = Handle(buffers[bufFree][idx])
	}

	a.storage = storage
	a.free = free
	a.hibernatedElems = nil
	a.hibernatedData = [4][]byte{}
	a.hibernatedStorageLen = 0
	a.hibernatedFreeLen = 0
}
