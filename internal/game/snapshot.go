package game

import (
	"time"

	"github.com/lox/blackjack/internal/audio"
	"github.com/lox/blackjack/internal/deck"
)

// Snapshot is the read-only view of a session broadcast to hint,
// tooltip, and rendering collaborators after every mutation. Hands are
// deep copies, never live references.
type Snapshot struct {
	State           State
	Balance         int
	CurrentBet      int
	ActiveHandIndex int
	PlayerHands     []deck.Hand
	DealerHand      deck.Hand
	// DealerHidden is true while the dealer's second card is face down,
	// i.e. until DEALER_TURN or HAND_OVER.
	DealerHidden bool
}

// Snapshot returns a deep-copied view of the current session state.
func (s *Session) Snapshot() Snapshot {
	hands := make([]deck.Hand, len(s.playerHands))
	for i, h := range s.playerHands {
		hands[i] = h.Copy()
	}
	return Snapshot{
		State:           s.state,
		Balance:         s.balance,
		CurrentBet:      s.bet,
		ActiveHandIndex: s.active,
		PlayerHands:     hands,
		DealerHand:      s.dealerHand.Copy(),
		DealerHidden:    s.state == Betting || s.state == PlayerTurn,
	}
}

func (s *Session) publishSnapshot() {
	s.bus.Publish(SnapshotEvent{Snapshot: s.Snapshot(), timestamp: time.Now()})
}

func (s *Session) publishCue(cue audio.Cue) {
	s.bus.Publish(CueEvent{Cue: cue, timestamp: time.Now()})
}
