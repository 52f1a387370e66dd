package app

import (
	"testing"

	"snake/internal/core"
)

func TestCommandBufferKeepsPressOrder(t *testing.T) {
	var b CommandBuffer
	if got := b.Poll(); got != nil {
		t.Fatalf("empty buffer polled %v", got)
	}

	b.Push(core.MoveUp)
	b.Push(core.SpeedUp)
	b.Push(core.MoveLeft)
	if b.Len() != 3 {
		t.Fatalf("expected 3 queued commands, got %d", b.Len())
	}

	got := b.Poll()
	want := []core.Command{core.MoveUp, core.SpeedUp, core.MoveLeft}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("command %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if b.Len() != 0 {
		t.Fatalf("poll should drain the buffer, %d left", b.Len())
	}
}
