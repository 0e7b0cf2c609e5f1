package kaki

import "testing"

func TestNewSpan(t *testing.T) {
	s := NewSpan(2, 5)
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.Empty() {
		t.Error("Empty() = true, want false")
	}
}

func TestNewSpanEmpty(t *testing.T) {
	s := NewSpan(4, 4)
	if !s.Empty() {
		t.Error("Empty() = false, want true")
	}
}

func TestNewSpanPanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for end before start")
		}
	}()
	NewSpan(5, 2)
}
