package game

import "time"

const insufficientFundsMessage = "Insufficient funds"

// Shop is the Whiskermart overlay: open flag plus a transient message that
// clears itself after a fixed duration of frame time.
type Shop struct {
	open      bool
	message   string
	remaining time.Duration
	duration  time.Duration
}

func NewShop(messageDuration time.Duration) *Shop {
	return &Shop{duration: messageDuration}
}

func (s *Shop) IsOpen() bool { return s.open }
func (s *Shop) Toggle()      { s.open = !s.open }
func (s *Shop) Close()       { s.open = false }

// Flash shows msg for the configured duration.
func (s *Shop) Flash(msg string) {
	s.message = msg
	s.remaining = s.duration
}

// Advance counts the message timer down by dt.
func (s *Shop) Advance(dt time.Duration) {
	if s.remaining <= 0 {
		s.message = ""
		return
	}
	s.remaining -= dt
	if s.remaining <= 0 {
		s.remaining = 0
		s.message = ""
	}
}

// Message is the visible transient message, or "".
func (s *Shop) Message() string { return s.message }
