package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/lintang-b-s/pathkit/pkg"
)

func TestHeapExtractsInRankOrder(t *testing.T) {
	for _, d := range []int{2, 4, 7} {
		h := NewdAryHeap[int](d)

		rng := rand.New(rand.NewSource(42))
		ranks := make([]float64, 0, 200)
		for i := 0; i < 200; i++ {
			r := rng.Float64() * 1000
			ranks = append(ranks, r)
			h.Insert(NewPriorityQueueNode(r, i))
		}
		sort.Float64s(ranks)

		for i := 0; i < len(ranks); i++ {
			node, err := h.ExtractMin()
			if err != nil {
				t.Fatalf("d=%d extract %d: %v", d, i, err)
			}
			if !Eq(node.GetRank(), ranks[i]) {
				t.Fatalf("d=%d extract %d: rank=%v want %v", d, i, node.GetRank(), ranks[i])
			}
		}
		if !h.IsEmpty() {
			t.Errorf("d=%d heap not empty after draining", d)
		}
	}
}

func TestHeapGetMinrankEmpty(t *testing.T) {
	h := NewBinaryHeap[Index]()
	if got := h.GetMinrank(); !Eq(got, 2*pkg.INF_WEIGHT) {
		t.Errorf("GetMinrank on empty = %v", got)
	}
	if _, err := h.ExtractMin(); err == nil {
		t.Error("ExtractMin on empty heap must error")
	}
}

// the heap never removes stale entries on update, duplicates of the same
// item with different ranks must coexist and come out min-first
func TestHeapToleratesDuplicateItems(t *testing.T) {
	h := NewFourAryHeap[Index]()
	h.Insert(NewPriorityQueueNode(10.0, Index(7)))
	h.Insert(NewPriorityQueueNode(3.0, Index(7)))
	h.Insert(NewPriorityQueueNode(6.0, Index(7)))

	if h.Size() != 3 {
		t.Fatalf("size = %d", h.Size())
	}
	first, _ := h.ExtractMin()
	if !Eq(first.GetRank(), 3.0) || first.GetItem() != Index(7) {
		t.Errorf("first = (%v, %v)", first.GetRank(), first.GetItem())
	}
}

func TestHeapClearAndPreallocate(t *testing.T) {
	h := NewBinaryHeap[int]()
	h.Preallocate(64)
	for i := 0; i < 10; i++ {
		h.Insert(NewPriorityQueueNode(float64(i), i))
	}
	h.Clear()
	if !h.IsEmpty() || h.Size() != 0 {
		t.Errorf("heap not empty after Clear: size=%d", h.Size())
	}
}
