package deck

import (
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a single deck.
const DeckSize = 52

// reshuffleFraction is the depletion threshold: once fewer than this
// fraction of the full shoe remains, the shoe should be rebuilt before
// the next hand is dealt.
const reshuffleFraction = 0.25

// Shoe is the combined set of one or more 52-card decks that cards are
// dealt from. Cards are consumed from the end of the slice.
type Shoe struct {
	cards    []Card
	numDecks int
	rng      *rand.Rand
}

// NewShoe creates an unshuffled shoe of numDecks decks, all 4 suits by
// 13 ranks repeated per deck.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards:    make([]Card, 0, numDecks*DeckSize),
		numDecks: numDecks,
		rng:      rng,
	}
	s.fill()
	return s
}

// Stacked creates a shoe that deals the given cards in order. Used in
// tests to set up exact deal sequences.
func Stacked(cards ...Card) *Shoe {
	// numDecks stays zero so a stacked shoe never reports NeedsShuffle.
	s := &Shoe{
		cards: make([]Card, len(cards)),
	}
	// Draw pops from the end, so store in reverse.
	for i, c := range cards {
		s.cards[len(cards)-1-i] = c
	}
	return s
}

func (s *Shoe) fill() {
	s.cards = s.cards[:0]
	for i := 0; i < s.numDecks; i++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
}

// Shuffle performs an in-place Fisher-Yates shuffle.
func (s *Shoe) Shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the next card. The second return value is
// false when the shoe is empty.
func (s *Shoe) Draw() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, true
}

// MustDraw draws a card and panics if the shoe is empty. A correctly
// sized shoe can never run dry mid-hand because NeedsShuffle gates every
// deal at 25% remaining.
func (s *Shoe) MustDraw() Card {
	card, ok := s.Draw()
	if !ok {
		panic("deck: draw from empty shoe")
	}
	return card
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// FullSize returns the number of cards in the shoe when full.
func (s *Shoe) FullSize() int {
	return s.numDecks * DeckSize
}

// NeedsShuffle reports whether the shoe has dropped below the depletion
// threshold and should be rebuilt before the next hand.
func (s *Shoe) NeedsShuffle() bool {
	return float64(len(s.cards)) < float64(s.FullSize())*reshuffleFraction
}

// Rebuild discards the remaining cards, restores the full shoe and
// shuffles it.
func (s *Shoe) Rebuild() {
	s.fill()
	s.Shuffle()
}

// Cards returns a copy of the remaining cards in deal order (first card
// dealt first).
func (s *Shoe) Cards() []Card {
	out := make([]Card, len(s.cards))
	for i, c := range s.cards {
		out[len(s.cards)-1-i] = c
	}
	return out
}
