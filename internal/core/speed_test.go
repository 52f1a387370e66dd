package core

import (
	"testing"
	"time"
)

func TestSpeedClampsToBounds(t *testing.T) {
	s := NewSpeed(10, 1, 20)
	if s.TPS() != 10 {
		t.Fatalf("expected 10 tps, got %d", s.TPS())
	}
	for i := 0; i < 30; i++ {
		s.Up()
	}
	if s.TPS() != 20 {
		t.Fatalf("expected speed to stop at max 20, got %d", s.TPS())
	}
	if s.Up() {
		t.Fatal("Up at max must report no change")
	}
	for i := 0; i < 30; i++ {
		s.Down()
	}
	if s.TPS() != 1 {
		t.Fatalf("expected speed to stop at min 1, got %d", s.TPS())
	}
	if s.Down() {
		t.Fatal("Down at min must report no change")
	}
	if s.Interval() != time.Second {
		t.Fatalf("expected 1s interval at 1 tps, got %v", s.Interval())
	}
}

func TestNewSpeedNormalizesBounds(t *testing.T) {
	s := NewSpeed(50, 0, -3)
	if s.Min() != 1 || s.Max() != 1 || s.TPS() != 1 {
		t.Fatalf("expected 1/1/1, got min=%d max=%d tps=%d", s.Min(), s.Max(), s.TPS())
	}
}
