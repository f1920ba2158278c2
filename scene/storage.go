package scene

import "iter"

const objectBlockSize = 64

// objectStore keeps objects in separately allocated fixed-size blocks so
// pointers handed out to systems stay valid while new objects are appended.
// Slots are never reused until compact, which keeps iteration in insertion
// order and is the only operation that moves objects.
type objectStore struct {
	blocks []*[objectBlockSize]Object
	filled [][objectBlockSize]bool
	next   int
	live   int
}

func (st *objectStore) append(obj Object) int {
	slot := st.next
	st.next++

	blockIdx := slot / objectBlockSize
	slotIdx := slot % objectBlockSize

	if blockIdx >= len(st.blocks) {
		st.blocks = append(st.blocks, new([objectBlockSize]Object))
		st.filled = append(st.filled, [objectBlockSize]bool{})
	}

	st.blocks[blockIdx][slotIdx] = obj
	st.filled[blockIdx][slotIdx] = true
	st.live++
	return slot
}

func (st *objectStore) get(slot int) *Object {
	if slot < 0 || slot >= st.next {
		return nil
	}

	blockIdx := slot / objectBlockSize
	slotIdx := slot % objectBlockSize
	if !st.filled[blockIdx][slotIdx] {
		return nil
	}
	return &st.blocks[blockIdx][slotIdx]
}

func (st *objectStore) remove(slot int) bool {
	if st.get(slot) == nil {
		return false
	}

	blockIdx := slot / objectBlockSize
	slotIdx := slot % objectBlockSize
	st.filled[blockIdx][slotIdx] = false
	st.blocks[blockIdx][slotIdx] = Object{}
	st.live--
	return true
}

// compact closes the gaps left by removals and returns the old->new slot
// mapping for every surviving object.
func (st *objectStore) compact() map[int]int {
	moved := make(map[int]int, st.live)
	if st.live == st.next {
		for i := range st.next {
			moved[i] = i
		}
		return moved
	}

	numBlocks := (st.live + objectBlockSize - 1) / objectBlockSize
	blocks := make([]*[objectBlockSize]Object, numBlocks)
	for i := range blocks {
		blocks[i] = new([objectBlockSize]Object)
	}
	filled := make([][objectBlockSize]bool, numBlocks)

	write := 0
	for read := range st.next {
		obj := st.get(read)
		if obj == nil {
			continue
		}
		blocks[write/objectBlockSize][write%objectBlockSize] = *obj
		filled[write/objectBlockSize][write%objectBlockSize] = true
		moved[read] = write
		write++
	}

	st.blocks = blocks
	st.filled = filled
	st.next = write
	return moved
}

// slots iterates occupied slots in insertion order.
func (st *objectStore) slots() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range st.next {
			if !st.filled[i/objectBlockSize][i%objectBlockSize] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
