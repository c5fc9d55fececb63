package deck

import (
	"testing"
)

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		hand  Hand
		value int
		soft  bool
	}{
		{
			name:  "Hard total",
			hand:  Hand{NewCard(Spades, Ten), NewCard(Hearts, Seven)},
			value: 17,
			soft:  false,
		},
		{
			name:  "Soft total",
			hand:  Hand{NewCard(Spades, Ace), NewCard(Hearts, Six)},
			value: 17,
			soft:  true,
		},
		{
			name:  "Ace demoted once",
			hand:  Hand{NewCard(Spades, Ace), NewCard(Hearts, Six), NewCard(Clubs, Nine)},
			value: 16,
			soft:  false,
		},
		{
			name:  "Two aces count 11 and 1",
			hand:  Hand{NewCard(Spades, Ace), NewCard(Hearts, Ace)},
			value: 12,
			soft:  true,
		},
		{
			name:  "Face cards count ten",
			hand:  Hand{NewCard(Spades, King), NewCard(Hearts, Queen), NewCard(Clubs, Jack)},
			value: 30,
			soft:  false,
		},
		{
			name:  "All aces demoted still busts",
			hand:  Hand{NewCard(Spades, Ace), NewCard(Hearts, Ten), NewCard(Clubs, Five), NewCard(Diamonds, Nine)},
			value: 25,
			soft:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hand.Value(); got != tt.value {
				t.Errorf("Value() = %d, want %d", got, tt.value)
			}
			if got := tt.hand.IsSoft(); got != tt.soft {
				t.Errorf("IsSoft() = %v, want %v", got, tt.soft)
			}
		})
	}
}

func TestHandIsBlackjack(t *testing.T) {
	natural := Hand{NewCard(Spades, Ace), NewCard(Hearts, King)}
	if !natural.IsBlackjack() {
		t.Error("A-K should be a natural")
	}

	// 21 in three cards is not a natural
	drawn := Hand{NewCard(Spades, Seven), NewCard(Hearts, Seven), NewCard(Clubs, Seven)}
	if drawn.IsBlackjack() {
		t.Error("Three-card 21 should not be a natural")
	}
	if drawn.Value() != 21 {
		t.Errorf("Expected 21, got %d", drawn.Value())
	}
}

func TestHandIsBust(t *testing.T) {
	hand := Hand{NewCard(Spades, Ten), NewCard(Hearts, Nine)}
	if hand.IsBust() {
		t.Error("19 should not be bust")
	}
	hand = append(hand, NewCard(Clubs, Five))
	if !hand.IsBust() {
		t.Error("24 should be bust")
	}
}

func TestHandLabel(t *testing.T) {
	soft := Hand{NewCard(Spades, Ace), NewCard(Hearts, Six)}
	if got := soft.Label(); got != "Soft 17" {
		t.Errorf("Label() = %q, want %q", got, "Soft 17")
	}
	hard := Hand{NewCard(Spades, Ten), NewCard(Hearts, Seven)}
	if got := hard.Label(); got != "17" {
		t.Errorf("Label() = %q, want %q", got, "17")
	}
}

func TestHandCopy(t *testing.T) {
	hand := Hand{NewCard(Spades, Ten), NewCard(Hearts, Seven)}
	dup := hand.Copy()
	dup[0] = NewCard(Clubs, Two)
	if hand[0] != NewCard(Spades, Ten) {
		t.Error("Copy should not share backing storage")
	}
}
