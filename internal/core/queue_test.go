package core

import "testing"

func TestJobQueueFIFO(t *testing.T) {
	q := NewJobQueue(8)
	if !q.Empty() {
		t.Fatal("new queue must be empty")
	}

	q.Put(1, 2, 0)
	q.Put(3, 4, 1)
	q.Put(5, 6, 2)

	for i, want := range []Job{{1, 2, 0}, {3, 4, 1}, {5, 6, 2}} {
		got := q.Get()
		if got != want {
			t.Fatalf("job %d = %v, want %v", i, got, want)
		}
	}
	if !q.Empty() {
		t.Fatal("queue must be empty after draining")
	}
}

func TestJobQueueWrapsAround(t *testing.T) {
	q := NewJobQueue(3)
	q.Put(0, 0, 0)
	q.Put(1, 1, 1)
	q.Get()
	q.Put(2, 2, 2)
	q.Get()
	q.Put(3, 3, 3) // tail wraps past the end of the ring

	if got := q.Get(); got != (Job{2, 2, 2}) {
		t.Fatalf("got %v, want {2 2 2}", got)
	}
	if got := q.Get(); got != (Job{3, 3, 3}) {
		t.Fatalf("got %v, want {3 3 3}", got)
	}
	if !q.Empty() {
		t.Fatal("queue must be empty")
	}
}

func TestJobQueueReset(t *testing.T) {
	q := NewJobQueue(4)
	q.Put(1, 1, 1)
	q.Put(2, 2, 2)
	q.Reset()
	if !q.Empty() {
		t.Fatal("reset queue must be empty")
	}
	q.Put(9, 9, 9)
	if got := q.Get(); got != (Job{9, 9, 9}) {
		t.Fatalf("got %v after reset, want {9 9 9}", got)
	}
}
