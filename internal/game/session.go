package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/audio"
	"github.com/lox/blackjack/internal/deck"
)

// State is the authoritative phase of a blackjack session.
type State int

const (
	Betting State = iota
	PlayerTurn
	DealerTurn
	HandOver
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Betting:
		return "BETTING"
	case PlayerTurn:
		return "PLAYER_TURN"
	case DealerTurn:
		return "DEALER_TURN"
	case HandOver:
		return "HAND_OVER"
	default:
		return "UNKNOWN"
	}
}

// Config holds the table rules for a session.
type Config struct {
	NumDecks     int
	StartingCash int
}

// DefaultConfig returns the standard six-deck table.
func DefaultConfig() Config {
	return Config{NumDecks: 6, StartingCash: 1000}
}

// Ledger is the persistence hook a session notifies when hands finish.
// MatchPlayed is called after every resolution with the post-payout
// balance. Bankruptcy is called when the balance hits zero; it must
// record the bust, reset its session sub-record, and return the final
// match count for display along with the fresh starting cash.
type Ledger interface {
	MatchPlayed(currentCash int)
	Bankruptcy() (finalScore, startingCash int)
}

// Session owns all mutable state for one player-vs-dealer game: the
// shoe, hands, balance, bet, and the state machine that sequences them.
// All mutating operations are silent no-ops when called outside their
// valid state so out-of-order UI calls can never corrupt the session.
type Session struct {
	cfg    Config
	shoe   *deck.Shoe
	logger *log.Logger
	bus    EventBus
	ledger Ledger

	state       State
	balance     int
	bet         int
	playerHands []deck.Hand
	dealerHand  deck.Hand
	active      int
}

// NewSession creates a session dealing from the given shoe with the
// configured starting cash.
func NewSession(cfg Config, shoe *deck.Shoe, logger *log.Logger) *Session {
	return &Session{
		cfg:     cfg,
		shoe:    shoe,
		logger:  logger.WithPrefix("game"),
		bus:     NewEventBus(),
		state:   Betting,
		balance: cfg.StartingCash,
	}
}

// EventBus returns the bus session events are published on.
func (s *Session) EventBus() EventBus {
	return s.bus
}

// SetLedger attaches the score ledger notified on hand resolution.
func (s *Session) SetLedger(l Ledger) {
	s.ledger = l
}

// RestoreBalance overwrites the balance from persisted state. Only
// valid between hands.
func (s *Session) RestoreBalance(balance int) {
	if s.state != Betting {
		return
	}
	s.balance = balance
	s.publishSnapshot()
}

// State returns the current state machine phase.
func (s *Session) State() State { return s.state }

// Balance returns the player's cash at rest.
func (s *Session) Balance() int { return s.balance }

// Bet returns the current bet.
func (s *Session) Bet() int { return s.bet }

// PlaceBet moves amount from the balance to the bet. No-op outside
// BETTING or when the balance can't cover it.
func (s *Session) PlaceBet(amount int) {
	if s.state != Betting || amount <= 0 {
		return
	}
	if s.balance < amount {
		return
	}
	s.bet += amount
	s.balance -= amount
	s.publishCue(audio.CueChip)
	s.publishSnapshot()
}

// ClearBet returns the full current bet to the balance. No-op outside
// BETTING.
func (s *Session) ClearBet() {
	if s.state != Betting {
		return
	}
	s.balance += s.bet
	s.bet = 0
	s.publishSnapshot()
}

// StartHand deals two cards each to the player and dealer and moves to
// PLAYER_TURN. The shoe is rebuilt and reshuffled first if it has
// dropped below a quarter of its full size. A natural blackjack resolves
// immediately, before any player action: 3:2 payout, or a push if the
// dealer also holds a natural.
func (s *Session) StartHand() {
	if s.state != Betting || s.bet == 0 {
		return
	}

	if s.shoe.NeedsShuffle() {
		s.shoe.Rebuild()
		s.logger.Debug("rebuilt shoe", "remaining", s.shoe.Remaining())
		s.bus.Publish(ShuffleEvent{timestamp: time.Now()})
	}

	s.playerHands = []deck.Hand{{s.shoe.MustDraw(), s.shoe.MustDraw()}}
	s.dealerHand = deck.Hand{s.shoe.MustDraw(), s.shoe.MustDraw()}
	s.active = 0
	s.state = PlayerTurn

	s.publishCue(audio.CueCardFlip)
	s.publishSnapshot()

	if s.playerHands[0].IsBlackjack() {
		if s.dealerHand.IsBlackjack() {
			s.resolve(OutcomePush)
		} else {
			s.resolve(OutcomeBlackjack)
		}
	}
}

// Hit draws one card into the active hand. A bust forfeits the hand and
// auto-advances. No-op outside PLAYER_TURN.
func (s *Session) Hit() {
	if s.state != PlayerTurn {
		return
	}
	hand := &s.playerHands[s.active]
	*hand = append(*hand, s.shoe.MustDraw())
	s.publishCue(audio.CueCardFlip)
	s.publishSnapshot()

	if hand.IsBust() {
		s.logger.Debug("hand busts", "hand", s.active+1, "value", hand.Value())
		s.publishCue(audio.CueBust)
		s.advance()
	}
}

// Stand ends play on the active hand and advances: to the second split
// hand if one remains, else to the dealer. No-op outside PLAYER_TURN.
func (s *Session) Stand() {
	if s.state != PlayerTurn {
		return
	}
	s.publishCue(audio.CueStand)
	s.advance()
}

// DoubleDown doubles the bet, draws exactly one card into the active
// hand, and forces an advance regardless of the result. No-op unless
// the hand has exactly two cards and the balance covers the raise.
func (s *Session) DoubleDown() {
	if s.state != PlayerTurn {
		return
	}
	hand := &s.playerHands[s.active]
	if len(*hand) != 2 || s.balance < s.bet {
		return
	}
	s.balance -= s.bet
	s.bet *= 2
	*hand = append(*hand, s.shoe.MustDraw())
	s.publishCue(audio.CueCardFlip)
	s.publishSnapshot()
	s.advance()
}

// Split turns a two-card pair of equal value into two one-card hands,
// draws one card into each, and debits the balance for the second
// hand's bet. Only a single split is supported. No-op when the guards
// fail, including insufficient balance.
func (s *Session) Split() {
	if s.state != PlayerTurn || len(s.playerHands) != 1 {
		return
	}
	hand := s.playerHands[0]
	if len(hand) != 2 || hand[0].Value() != hand[1].Value() {
		return
	}
	if s.balance < s.bet {
		return
	}
	s.balance -= s.bet
	s.playerHands = []deck.Hand{
		{hand[0], s.shoe.MustDraw()},
		{hand[1], s.shoe.MustDraw()},
	}
	s.active = 0
	s.publishCue(audio.CueCardFlip)
	s.publishSnapshot()
}

// advance hands control to the next split hand, or to the dealer.
func (s *Session) advance() {
	if len(s.playerHands) > 1 && s.active == 0 {
		s.active = 1
		s.publishSnapshot()
		return
	}
	s.state = DealerTurn
	// Entering DEALER_TURN reveals the hole card via the snapshot's
	// DealerHidden flag.
	s.publishSnapshot()
}

// DealerStep performs one draw-or-stop decision of dealer auto-play and
// reports whether the dealer is done. The dealer draws while below 17
// and on soft 17 (H17 rule), stopping at hard 17 or better, or on a
// bust. Resolution happens on the finishing step. Outside DEALER_TURN
// it reports done without touching anything, so a driving ticker always
// terminates.
func (s *Session) DealerStep() bool {
	if s.state != DealerTurn {
		return true
	}
	value := s.dealerHand.Value()
	if value < 17 || (value == 17 && s.dealerHand.IsSoft()) {
		s.dealerHand = append(s.dealerHand, s.shoe.MustDraw())
		s.publishCue(audio.CueCardFlip)
		s.publishSnapshot()
		return false
	}
	s.resolve(OutcomeNone)
	return true
}

// ResetForNewHand clears the hands and returns to BETTING.
func (s *Session) ResetForNewHand() {
	if s.state != HandOver {
		return
	}
	s.playerHands = nil
	s.dealerHand = nil
	s.active = 0
	s.state = Betting
	s.publishSnapshot()
}
