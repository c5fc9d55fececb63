package deck

import "strconv"

// Hand is an ordered sequence of cards owned by the player or dealer.
type Hand []Card

// Value returns the best blackjack value of the hand: card values are
// summed with each Ace counted as 11, then Aces are demoted to 1 one at
// a time while the total exceeds 21. The result is the best total <= 21
// when achievable, otherwise the minimal bust value.
func (h Hand) Value() int {
	value := 0
	aces := 0
	for _, c := range h {
		value += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}
	return value
}

// IsSoft reports whether the hand's best value counts an Ace as 11.
func (h Hand) IsSoft() bool {
	value := 0
	aces := 0
	for _, c := range h {
		value += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}
	return aces > 0
}

// IsBust reports whether the hand's value exceeds 21.
func (h Hand) IsBust() bool {
	return h.Value() > 21
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// totalling 21.
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Value() == 21
}

// Label returns a display label for the hand value, e.g. "17" or
// "Soft 17".
func (h Hand) Label() string {
	v := h.Value()
	if h.IsSoft() {
		return "Soft " + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// Copy returns a deep copy of the hand.
func (h Hand) Copy() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}
