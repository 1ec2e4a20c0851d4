package game

import (
	"testing"
	"time"
)

func TestShopMessageExpires(t *testing.T) {
	s := NewShop(2 * time.Second)
	s.Flash(insufficientFundsMessage)

	frame := time.Second / 60
	for i := 0; i < 119; i++ {
		s.Advance(frame)
	}
	if s.Message() != insufficientFundsMessage {
		t.Fatalf("message cleared early after %v", 119*frame)
	}
	s.Advance(frame)
	s.Advance(frame)
	if s.Message() != "" {
		t.Fatalf("message = %q after 2s, want empty", s.Message())
	}
}

func TestShopFlashRestartsTimer(t *testing.T) {
	s := NewShop(2 * time.Second)
	s.Flash("a")
	s.Advance(1500 * time.Millisecond)
	s.Flash("b")
	s.Advance(1500 * time.Millisecond)
	if s.Message() != "b" {
		t.Fatalf("message = %q, want b", s.Message())
	}
}

func TestShopToggle(t *testing.T) {
	s := NewShop(time.Second)
	s.Toggle()
	if !s.IsOpen() {
		t.Fatal("toggle should open")
	}
	s.Close()
	if s.IsOpen() {
		t.Fatal("close should close")
	}
}
