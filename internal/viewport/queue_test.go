package viewport

import "testing"

func TestQueueOrderAndSaturation(t *testing.T) {
	q := newCommandQueue(2)
	q.EnqueueCommand("a")
	q.EnqueueCommand("b")
	q.EnqueueCommand("c") // dropped, queue full

	if line, ok := q.Dequeue(); !ok || line != "a" {
		t.Fatalf("got %q %v", line, ok)
	}
	if line, ok := q.Dequeue(); !ok || line != "b" {
		t.Fatalf("got %q %v", line, ok)
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("saturated enqueue should have been dropped")
	}
}

func TestNilQueueIsSafe(t *testing.T) {
	var q *commandQueue
	q.EnqueueCommand("x")
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("nil queue returned a value")
	}
}
