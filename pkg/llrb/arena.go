package llrb

import (
	"cmp"
	"fmt"
	"math"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// Handle is an opaque index naming a live node inside an Allocator.
// The zero Handle is the nil sentinel and never names a node.
type Handle uint32

// maxHandle bounds the arena size; [math.MaxUint32] stays reserved.
const maxHandle = math.MaxUint32 - 1

// Nil reports whether the handle names no node.
func (h Handle) Nil() bool {
	return h == 0
}

// node is a single tree node. Children are referenced by handle; the
// owning storage for every node is the Allocator slot it occupies.
type node[T cmp.Ordered] struct {
	elem  T
	left  Handle
	right Handle
	red   bool
	dead  bool
}

// Allocator owns every node of a tree in one growable slice and hands
// out stable integer handles. Freed slots are kept on a LIFO free list
// and reused most-recently-freed first, which keeps handle values dense
// under interleaved insert/delete workloads.
//
// Slot 0 is reserved as the nil sentinel and is never handed out.
type Allocator[T cmp.Ordered] struct {
	storage []node[T]
	free    []Handle

	// HibernationThreshold is the minimum slot count at which
	// Hibernate actually compresses; smaller arenas are left alone.
	HibernationThreshold int

	hibernatedElems      []T
	hibernatedData       [4][]byte
	hibernatedStorageLen int
	hibernatedFreeLen    int
}

// NewAllocator creates an empty allocator.
func NewAllocator[T cmp.Ordered]() *Allocator[T] {
	return &Allocator[T]{
		storage: []node[T]{},
		free:    []Handle{},
	}
}

// Size returns the number of slots currently allocated, including the
// reserved slot 0 and any free slots.
func (a *Allocator[T]) Size() int {
	return len(a.storage)
}

// Used returns the number of live nodes held by the allocator.
func (a *Allocator[T]) Used() int {
	a.mustLive()

	if len(a.storage) == 0 {
		return 0
	}

	return len(a.storage) - len(a.free) - 1
}

// FreeCount returns the number of tombstoned slots awaiting reuse.
func (a *Allocator[T]) FreeCount() int {
	a.mustLive()

	return len(a.free)
}

// malloc creates an occupied slot holding elem and returns its handle.
// The most recently freed slot is reused before the storage grows.
func (a *Allocator[T]) malloc(elem T, red bool) Handle {
	a.mustLive()

	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.storage[h] = node[T]{elem: elem, red: red}

		return h
	}

	if len(a.storage) == 0 {
		// Slot 0 is the nil sentinel.
		a.storage = append(a.storage, node[T]{dead: true})
	}

	if len(a.storage) > maxHandle {
		panic("llrb allocator exhausted the uint32 handle space")
	}

	a.storage = append(a.storage, node[T]{elem: elem, red: red})

	return Handle(len(a.storage) - 1)
}

// release tombstones the slot named by h, pushes it onto the free list
// and returns the element it held.
func (a *Allocator[T]) release(h Handle) T {
	n := a.at(h)
	elem := n.elem

	var zero T

	*n = node[T]{elem: zero, dead: true}
	a.free = append(a.free, h)

	return elem
}

// at returns the node named by h. Dereferencing the nil sentinel, an
// out-of-range index or a freed slot is an internal invariant
// violation, never a user error.
func (a *Allocator[T]) at(h Handle) *node[T] {
	a.mustLive()
	doAssert(!h.Nil() && int(h) < len(a.storage))

	n := &a.storage[h]
	doAssert(!n.dead)

	return n
}

// reset discards every slot and the free list, keeping capacity, so
// future allocations get dense low indices again.
func (a *Allocator[T]) reset() {
	a.mustLive()
	a.storage = a.storage[:0]
	a.free = a.free[:0]
}

func (a *Allocator[T]) mustLive() {
	if a.storage == nil {
		panic("hibernated allocators cannot be used")
	}
}

// doAssert panics when an internal invariant of the balancing logic is
// violated. Such panics indicate a defect in this package, not misuse.
func doAssert(condition bool) {
	if !condition {
		panic("llrb internal assertion failed")
	}
}

// Stats is a point-in-time summary of allocator occupancy.
type Stats struct {
	Slots          int
	Live           int
	Free           int
	FootprintBytes uint64
}

// Stats summarizes the allocator's occupancy and approximate memory
// footprint. The allocator must not be hibernated.
func (a *Allocator[T]) Stats() Stats {
	a.mustLive()

	var n node[T]

	footprint := uint64(cap(a.storage))*uint64(unsafe.Sizeof(n)) +
		uint64(cap(a.free))*uint64(unsafe.Sizeof(Handle(0)))

	return Stats{
		Slots:          len(a.storage),
		Live:           a.Used(),
		Free:           len(a.free),
		FootprintBytes: footprint,
	}
}

// String renders the stats in a human-readable single line.
func (s Stats) String() string {
	return fmt.Sprintf("slots=%s live=%s free=%s footprint=%s",
		humanize.Comma(int64(s.Slots)),
		humanize.Comma(int64(s.Live)),
		humanize.Comma(int64(s.Free)),
		humanize.IBytes(s.FootprintBytes))
}
