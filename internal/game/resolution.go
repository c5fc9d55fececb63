package game

import (
	"time"

	"github.com/lox/blackjack/internal/audio"
)

// Outcome marks resolutions that bypass the per-hand comparison loop.
type Outcome int

const (
	// OutcomeNone resolves each player hand against the dealer total.
	OutcomeNone Outcome = iota
	// OutcomeBlackjack is a natural two-card 21 with no dealer natural,
	// paying 3:2 on top of the returned stake.
	OutcomeBlackjack
	// OutcomePush is the player-and-dealer double natural; the bet is
	// returned.
	OutcomePush
)

// HandOutcome is the result of a single player hand.
type HandOutcome int

const (
	HandWin HandOutcome = iota
	HandLose
	HandPush
	HandBust
)

// String returns the string representation of the hand outcome
func (o HandOutcome) String() string {
	switch o {
	case HandWin:
		return "win"
	case HandLose:
		return "lose"
	case HandPush:
		return "push"
	case HandBust:
		return "bust"
	default:
		return "unknown"
	}
}

// Resolution describes how a completed hand paid out.
type Resolution struct {
	Special     Outcome
	Hands       []HandOutcome
	DealerValue int
	Winnings    int // total credited back to the balance, stakes included
	Bankrupt    bool
	FinalScore  int // match count recorded on bankruptcy, else 0
}

// resolve settles all bets and moves to HAND_OVER. It is the single
// payout path: the natural-blackjack and double-natural-push specials
// and the general per-hand comparison all run through here so the math
// can't drift apart.
func (s *Session) resolve(special Outcome) {
	s.state = HandOver
	res := Resolution{Special: special, DealerValue: s.dealerHand.Value()}

	switch special {
	case OutcomeBlackjack:
		// Stake back plus the 3:2 natural premium.
		res.Winnings = s.bet + s.bet*3/2
		s.publishCue(audio.CueWin)
	case OutcomePush:
		res.Winnings = s.bet
	default:
		dealerValue := res.DealerValue
		for i, hand := range s.playerHands {
			value := hand.Value()
			switch {
			case value > 21:
				res.Hands = append(res.Hands, HandBust)
			case dealerValue > 21 || value > dealerValue:
				res.Hands = append(res.Hands, HandWin)
				res.Winnings += s.bet * 2
				if i == 0 {
					s.publishCue(audio.CueWin)
				}
			case value < dealerValue:
				res.Hands = append(res.Hands, HandLose)
				if i == 0 && res.Winnings == 0 {
					s.publishCue(audio.CueLose)
				}
			default:
				res.Hands = append(res.Hands, HandPush)
				res.Winnings += s.bet
			}
		}
	}

	s.balance += res.Winnings
	s.bet = 0

	s.logger.Debug("hand resolved",
		"special", special,
		"dealer", res.DealerValue,
		"winnings", res.Winnings,
		"balance", s.balance)

	if s.ledger != nil {
		s.ledger.MatchPlayed(s.balance)
	}

	if s.balance <= 0 {
		res.Bankrupt = true
		s.publishCue(audio.CueBust)
		start := s.cfg.StartingCash
		if s.ledger != nil {
			res.FinalScore, start = s.ledger.Bankruptcy()
		}
		s.balance = start
	}

	// The bankruptcy event follows the outcome so subscribers showing
	// the latest message end on the bankruptcy banner.
	s.bus.Publish(OutcomeEvent{Resolution: res, timestamp: time.Now()})
	if res.Bankrupt {
		s.bus.Publish(BankruptcyEvent{FinalScore: res.FinalScore, timestamp: time.Now()})
	}
	s.publishSnapshot()
}
