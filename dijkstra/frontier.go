package dijkstra

// entry is a pending state with the accumulated cost it was pushed with.
type entry struct {
	state State
	cost  int
}

// frontier is a min-heap of entries ordered by cost, then by State.Less.
// We use the “lazy-decrease-key” approach: a cheaper path to a state pushes a
// new entry, and the outdated one is discarded when popped.
type frontier []entry

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller cost first, ties by state order.
func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].state.Less(f[j].state)
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }

// Pop removes and returns the last element of the backing slice.
// Called by heap.Pop after moving the minimum there.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]

	return it
}
