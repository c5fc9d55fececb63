package deck

import (
	"fmt"
	"strings"
)

// ParseCards parses a space-separated card list like "AS KH 10D" into
// cards: rank first (2-10, J, Q, K, A), then a suit letter (S, H, D, C).
// Intended for tests and tooling, not user input.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(strings.ToUpper(s))
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		card, err := parseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func parseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	var suit Suit
	switch s[len(s)-1] {
	case 'S':
		suit = Spades
	case 'H':
		suit = Hearts
	case 'D':
		suit = Diamonds
	case 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}

	var rank Rank
	switch s[:len(s)-1] {
	case "2":
		rank = Two
	case "3":
		rank = Three
	case "4":
		rank = Four
	case "5":
		rank = Five
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "10", "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank in %q", s)
	}

	return NewCard(suit, rank), nil
}
