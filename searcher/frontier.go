package searcher

import (
	"container/heap"

	"github.com/gammazero/deque"
)

// Frontier holds the nodes awaiting exploration. Remove takes out exactly one
// node; the remaining nodes keep their relative order for later ties.
type Frontier[S comparable] interface {
	Insert(nodes ...*Node[S])
	Remove() *Node[S]
	Len() int
}

// NewFrontier returns an empty frontier implementing strategy's removal policy.
func NewFrontier[S comparable](strategy Strategy) (Frontier[S], error) {
	switch strategy {
	case BreadthFirst:
		return &fifo[S]{}, nil
	case Greedy:
		return newRanked(func(n *Node[S]) float64 { return n.heuristic }), nil
	case WeightedAStar:
		return newRanked(func(n *Node[S]) float64 { return n.evaluation }), nil
	default:
		return nil, &ConfigurationError{Strategy: strategy.String()}
	}
}

type fifo[S comparable] struct {
	queue deque.Deque[*Node[S]]
}

func (f *fifo[S]) Insert(nodes ...*Node[S]) {
	for _, node := range nodes {
		f.queue.PushBack(node)
	}
}

func (f *fifo[S]) Remove() *Node[S] {
	if f.queue.Len() == 0 {
		return nil
	}
	return f.queue.PopFront()
}

func (f *fifo[S]) Len() int {
	return f.queue.Len()
}

// ranked removes the node with the smallest key. Equal keys go to the node
// inserted first, which is the first minimum in frontier order.
type ranked[S comparable] struct {
	queue rankQueue[S]
	key   func(*Node[S]) float64
	next  uint64
}

func newRanked[S comparable](key func(*Node[S]) float64) *ranked[S] {
	return &ranked[S]{key: key}
}

func (r *ranked[S]) Insert(nodes ...*Node[S]) {
	for _, node := range nodes {
		heap.Push(&r.queue, rankItem[S]{node: node, key: r.key(node), sequence: r.next})
		r.next++
	}
}

func (r *ranked[S]) Remove() *Node[S] {
	if r.queue.Len() == 0 {
		return nil
	}
	return heap.Pop(&r.queue).(rankItem[S]).node
}

func (r *ranked[S]) Len() int {
	return r.queue.Len()
}

type rankItem[S comparable] struct {
	node     *Node[S]
	key      float64
	sequence uint64
}

type rankQueue[S comparable] []rankItem[S]

func (q rankQueue[S]) Len() int { return len(q) }
func (q rankQueue[S]) Less(i, j int) bool {
	if q[i].key != q[j].key {
		return q[i].key < q[j].key
	}
	return q[i].sequence < q[j].sequence
}
func (q rankQueue[S]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *rankQueue[S]) Push(x any) {
	*q = append(*q, x.(rankItem[S]))
}

func (q *rankQueue[S]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = rankItem[S]{}
	*q = old[:n-1]
	return item
}
