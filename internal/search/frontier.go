package search

import (
	"container/heap"

	"github.com/talgya/statecraft/internal/world"
)

// entry is one partial schedule on the frontier, carrying its own world
// clone. Entries are independent after cloning, which is what makes beam
// pruning and early stopping safe.
type entry struct {
	eu    float64
	seq   uint64 // insertion counter, breaks EU ties first-in-wins
	sched Schedule
	world *world.World
}

// frontier is a max-priority queue over (EU, -seq). The insertion counter
// gives FIFO-stable ordering among equal EUs, which the determinism
// guarantee depends on.
type frontier []*entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].eu != f[j].eu {
		return f[i].eu > f[j].eu
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(*entry))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return e
}

// prune keeps only the top-width entries by pop order, discarding the rest.
func (f *frontier) prune(width int) {
	if f.Len() <= width {
		return
	}
	kept := make(frontier, 0, width)
	for len(kept) < width {
		kept = append(kept, heap.Pop(f).(*entry))
	}
	*f = kept
	heap.Init(f)
}
