package tlqsched_test

import (
	"slices"
	"testing"

	"github.com/tomasbasham/tlqsched"
)

func TestQueue(t *testing.T) {
	t.Parallel()

	t.Run("empty queue", func(t *testing.T) {
		t.Parallel()

		var q tlqsched.Queue
		if !q.IsEmpty() {
			t.Error("expected zero value queue to be empty")
		}
		if p := q.Peek(); p != nil {
			t.Errorf("expected nil peek, got: %v", p)
		}
		if p := q.Dequeue(); p != nil {
			t.Errorf("expected nil dequeue, got: %v", p)
		}
	})

	t.Run("fifo order", func(t *testing.T) {
		t.Parallel()

		q := tlqsched.NewQueue()
		for i := 1; i <= 10; i++ {
			q.Enqueue(tlqsched.NewProcess(i, 0, 1, 0))
		}

		if got := q.Peek().ID; got != 1 {
			t.Errorf("mismatch:\n  got:  %d\n  want: %d", got, 1)
		}

		var got []int
		for p := q.Dequeue(); p != nil; p = q.Dequeue() {
			got = append(got, p.ID)
		}

		want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		if !slices.Equal(got, want) {
			t.Errorf("mismatch:\n  got:  %#v\n  want: %#v", got, want)
		}
		if !q.IsEmpty() {
			t.Error("expected queue to be empty after draining")
		}
	})

	t.Run("interleaved enqueue and dequeue", func(t *testing.T) {
		t.Parallel()

		q := tlqsched.NewQueue(
			tlqsched.NewProcess(1, 0, 1, 0),
			tlqsched.NewProcess(2, 0, 1, 0),
			tlqsched.NewProcess(3, 0, 1, 0),
		)
		q.Dequeue()
		q.Dequeue()
		q.Enqueue(tlqsched.NewProcess(4, 0, 1, 0))

		if got := q.Len(); got != 2 {
			t.Errorf("mismatch:\n  got:  %d\n  want: %d", got, 2)
		}
		if got := ids(slices.Collect(q.All())); !slices.Equal(got, []int{3, 4}) {
			t.Errorf("mismatch:\n  got:  %#v\n  want: %#v", got, []int{3, 4})
		}
	})
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	t.Run("moves the head", func(t *testing.T) {
		t.Parallel()

		from := tlqsched.NewQueue(tlqsched.NewProcess(1, 0, 1, 0), tlqsched.NewProcess(2, 0, 1, 0))
		to := tlqsched.NewQueue(tlqsched.NewProcess(3, 0, 1, 0))

		moved := tlqsched.Transfer(from, to)
		if moved == nil || moved.ID != 1 {
			t.Fatalf("expected process 1 to be moved, got: %v", moved)
		}
		if got := ids(slices.Collect(from.All())); !slices.Equal(got, []int{2}) {
			t.Errorf("from mismatch:\n  got:  %#v\n  want: %#v", got, []int{2})
		}
		if got := ids(slices.Collect(to.All())); !slices.Equal(got, []int{3, 1}) {
			t.Errorf("to mismatch:\n  got:  %#v\n  want: %#v", got, []int{3, 1})
		}
	})

	t.Run("rotates within a queue", func(t *testing.T) {
		t.Parallel()

		q := tlqsched.NewQueue(tlqsched.NewProcess(1, 0, 1, 0), tlqsched.NewProcess(2, 0, 1, 0))
		tlqsched.Transfer(q, q)

		if got := ids(slices.Collect(q.All())); !slices.Equal(got, []int{2, 1}) {
			t.Errorf("mismatch:\n  got:  %#v\n  want: %#v", got, []int{2, 1})
		}
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()

		from, to := tlqsched.NewQueue(), tlqsched.NewQueue()
		if moved := tlqsched.Transfer(from, to); moved != nil {
			t.Errorf("expected nothing moved, got: %v", moved)
		}
		if !to.IsEmpty() {
			t.Error("expected destination to stay empty")
		}
	})
}
