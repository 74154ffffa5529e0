package trace

import (
	"bytes"
	"testing"
)

func TestWriterEmitterFormats(t *testing.T) {
	var buf bytes.Buffer
	e := NewWriterEmitter(&buf)

	e.TickEvent(1, "spin", 0, 10)
	e.TickEvent(2, "spin", 2, 10)
	e.ExitEvent(1, "spin")
	e.IdleEvent(10)

	expected := "Process spin 1 has consumed 10 ms in L0\n" +
		"Process spin 2 has consumed 10 ms in L2\n" +
		"Process spin 1 EXIT\n" +
		"Process idle 0 has consumed 10 ms in IDLE\n"

	if buf.String() != expected {
		t.Errorf("expected trace output:\n%swas:\n%s", expected, buf.String())
	}
}
