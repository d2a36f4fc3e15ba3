package tlqsched

// SortByPriority drains q and returns a new [Queue] holding the same
// processes ordered by ascending priority value.
//
// Processes are inserted one at a time in the order they are drained, each
// placed after every process already placed with an equal or lower priority
// value. Processes sharing a priority therefore keep their relative order,
// and sorting an already sorted queue leaves it unchanged.
func SortByPriority(q *Queue) *Queue {
	sorted := &Queue{items: make([]*Process, 0, q.Len())}
	for p := q.Dequeue(); p != nil; p = q.Dequeue() {
		i := 0
		for next := range sorted.All() {
			if p.Priority < next.Priority {
				break
			}
			i++
		}
		sorted.insert(i, p)
	}
	return sorted
}
