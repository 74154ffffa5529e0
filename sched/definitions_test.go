package sched

import "testing"

func TestStatusString(t *testing.T) {
	statuses := []Status{Queued, Running, Exited}
	expected := []string{"Queued", "Running", "Exited"}

	for i, s := range statuses {
		if s.String() != expected[i] {
			t.Errorf("expected Status %d to render as %q, got %q", i, expected[i], s.String())
		}
	}

	if Status(99).String() != "Unknown" {
		t.Errorf("expected out of range Status to render as Unknown, got %q", Status(99).String())
	}
}
