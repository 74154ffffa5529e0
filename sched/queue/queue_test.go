package queue

import (
	"testing"

	"github.com/schedsim/mlfqsim/sched"
)

func TestFIFOOrder(t *testing.T) {
	q := New()
	if !q.Empty() {
		t.Fatal("expected new queue to be empty")
	}

	for id := sched.JobID(1); id <= 5; id++ {
		q.Push(id)
	}
	if q.Len() != 5 {
		t.Fatalf("expected Len 5, got %d", q.Len())
	}

	for want := sched.JobID(1); want <= 5; want++ {
		got := q.Pop()
		if got != want {
			t.Errorf("expected Pop to return %d, got %d", want, got)
		}
	}
	if !q.Empty() {
		t.Fatal("expected queue to be empty after draining")
	}
}

func TestInterleavedPushPop(t *testing.T) {
	// Round-robin usage: the consumer pops the head and pushes it back at
	// the tail. Order must rotate, never reorder.
	q := New()
	q.Push(1)
	q.Push(2)

	var order []sched.JobID
	for i := 0; i < 6; i++ {
		id := q.Pop()
		order = append(order, id)
		q.Push(id)
	}

	expected := []sched.JobID{1, 2, 1, 2, 1, 2}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("expected rotation order %v, got %v", expected, order)
		}
	}
}

func TestPopEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Pop on empty queue to panic")
		}
	}()
	New().Pop()
}

func TestLenAfterCompaction(t *testing.T) {
	q := New()
	q.Push(1)
	q.Pop()
	q.Push(2)
	q.Push(3)
	if q.Len() != 2 {
		t.Errorf("expected Len 2 after drain and refill, got %d", q.Len())
	}
	if got := q.Pop(); got != 2 {
		t.Errorf("expected Pop to return 2, got %d", got)
	}
}
