package eosim

import "container/heap"

// planQueue is a min-heap over (time, sequence), grounded on the
// event-queue-plus-sequence-counter pattern used to keep a shared
// clock deterministic across ties: every plan gets a sequence number
// at schedule time, and the heap orders first by time, then by that
// sequence number, so equal-time plans fire in schedule order.
//
// Cancellation is eager: cancel clears the plan's alive flag and, if
// it is still resident, removes it from the heap immediately rather
// than leaving a tombstone for popNext to skip. A secondary index from
// PlanID to the plan's heap slot makes that removal O(log n).
type planQueue struct {
	items   planHeap
	byID    map[PlanID]*plan
	nextSeq uint64
}

// newPlanQueue builds an empty planQueue. capacityHint preallocates the
// heap's backing slice; zero means let append grow it.
func newPlanQueue(capacityHint int) *planQueue {
	return &planQueue{
		items: make(planHeap, 0, capacityHint),
		byID:  make(map[PlanID]*plan),
	}
}

// schedule inserts a new plan for time at and returns its id. Callers
// (Context.Schedule) are responsible for rejecting at < now before
// calling this.
func (q *planQueue) schedule(at Time, fn PlanFunc) PlanID {
	p := &plan{
		id:    newPlanID(),
		at:    at,
		seq:   q.nextSeq,
		fn:    fn,
		alive: true,
	}
	q.nextSeq++
	heap.Push(&q.items, p)
	q.byID[p.id] = p
	return p.id
}

// cancel marks id inactive and removes it from the heap if present,
// reporting whether it found anything to remove. Unknown or
// already-popped ids are a no-op, matching the idempotence law for
// cancellation.
func (q *planQueue) cancel(id PlanID) bool {
	p, ok := q.byID[id]
	if !ok {
		return false
	}
	p.alive = false
	delete(q.byID, id)
	heap.Remove(&q.items, p.index)
	return true
}

// popNext removes and returns the minimum live plan, or (nil, false)
// when the queue is empty. Because cancel removes plans eagerly,
// every entry remaining in the heap is live.
func (q *planQueue) popNext() (*plan, bool) {
	if q.items.Len() == 0 {
		return nil, false
	}
	p := heap.Pop(&q.items).(*plan)
	delete(q.byID, p.id)
	return p, true
}

// peekNextTime reports the firing time of the next live plan without
// removing it.
func (q *planQueue) peekNextTime() (Time, bool) {
	if q.items.Len() == 0 {
		return 0, false
	}
	return q.items[0].at, true
}

func (q *planQueue) len() int {
	return q.items.Len()
}

// planHeap implements container/heap.Interface over *plan, ordered by
// (at, seq).
type planHeap []*plan

func (h planHeap) Len() int { return len(h) }

func (h planHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h planHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *planHeap) Push(x any) {
	p := x.(*plan)
	p.index = len(*h)
	*h = append(*h, p)
}

func (h *planHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	p.index = -1
	*h = old[:n-1]
	return p
}
