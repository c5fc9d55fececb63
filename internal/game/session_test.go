package game

import (
	"io"
	rand "math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testRand() *rand.Rand {
	return randutil.New(42)
}

func card(suit deck.Suit, rank deck.Rank) deck.Card {
	return deck.NewCard(suit, rank)
}

// recorder collects every event published by the session under test.
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(event Event) {
	r.events = append(r.events, event)
}

func (r *recorder) lastOutcome(t *testing.T) Resolution {
	t.Helper()
	for i := len(r.events) - 1; i >= 0; i-- {
		if oe, ok := r.events[i].(OutcomeEvent); ok {
			return oe.Resolution
		}
	}
	t.Fatal("no outcome event published")
	return Resolution{}
}

func newTestSession(t *testing.T, cards ...deck.Card) (*Session, *recorder) {
	t.Helper()
	s := NewSession(DefaultConfig(), deck.Stacked(cards...), testLogger())
	rec := &recorder{}
	s.EventBus().Subscribe(rec)
	return s, rec
}

func TestPlaceAndClearBet(t *testing.T) {
	s, _ := newTestSession(t)

	s.PlaceBet(50)
	assert.Equal(t, 950, s.Balance())
	assert.Equal(t, 50, s.Bet())

	s.PlaceBet(100)
	assert.Equal(t, 850, s.Balance())
	assert.Equal(t, 150, s.Bet())

	s.ClearBet()
	assert.Equal(t, 1000, s.Balance())
	assert.Equal(t, 0, s.Bet())
}

func TestPlaceBetGuards(t *testing.T) {
	s, _ := newTestSession(t)

	// More than the balance
	s.PlaceBet(2000)
	assert.Equal(t, 1000, s.Balance())
	assert.Equal(t, 0, s.Bet())

	// Non-positive amounts
	s.PlaceBet(0)
	s.PlaceBet(-10)
	assert.Equal(t, 0, s.Bet())
}

func TestStartHandRequiresBet(t *testing.T) {
	s, _ := newTestSession(t)

	s.StartHand()
	assert.Equal(t, Betting, s.State())
}

func TestOutOfStateCallsAreNoOps(t *testing.T) {
	s, _ := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Seven),
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Nine),
	)

	// Player actions before any hand exists
	s.Hit()
	s.Stand()
	s.DoubleDown()
	s.Split()
	require.Equal(t, Betting, s.State())

	s.PlaceBet(50)
	s.StartHand()
	require.Equal(t, PlayerTurn, s.State())

	// Betting actions mid-hand
	s.PlaceBet(50)
	s.ClearBet()
	assert.Equal(t, 50, s.Bet())
	assert.Equal(t, 950, s.Balance())

	s.ResetForNewHand()
	assert.Equal(t, PlayerTurn, s.State())
}

func TestStandThenDealerWins(t *testing.T) {
	s, rec := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Seven), // player 17
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Six), // dealer 16
		card(deck.Spades, deck.Four), // dealer draws to 20
	)

	s.PlaceBet(50)
	s.StartHand()
	require.Equal(t, PlayerTurn, s.State())

	s.Stand()
	require.Equal(t, DealerTurn, s.State())

	require.False(t, s.DealerStep()) // draw the four
	require.True(t, s.DealerStep())  // stand at 20 and resolve

	assert.Equal(t, HandOver, s.State())
	assert.Equal(t, 950, s.Balance())

	res := rec.lastOutcome(t)
	assert.Equal(t, []HandOutcome{HandLose}, res.Hands)
	assert.Equal(t, 20, res.DealerValue)
	assert.Equal(t, 0, res.Winnings)
}

func TestPlayerWinPaysEvenMoney(t *testing.T) {
	s, rec := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine), // player 19
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Eight), // dealer 18
	)

	s.PlaceBet(50)
	s.StartHand()
	s.Stand()
	require.True(t, s.DealerStep())

	assert.Equal(t, 1050, s.Balance())
	res := rec.lastOutcome(t)
	assert.Equal(t, []HandOutcome{HandWin}, res.Hands)
	assert.Equal(t, 100, res.Winnings)
}

func TestNaturalBlackjackResolvesImmediately(t *testing.T) {
	s, rec := newTestSession(t,
		card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King), // player natural
		card(deck.Diamonds, deck.Nine), card(deck.Clubs, deck.Seven),
	)

	s.PlaceBet(50)
	s.StartHand()

	// No player action: the hand is already over.
	assert.Equal(t, HandOver, s.State())
	assert.Equal(t, 1075, s.Balance()) // 950 + 50 stake + 75 premium

	res := rec.lastOutcome(t)
	assert.Equal(t, OutcomeBlackjack, res.Special)
	assert.Equal(t, 125, res.Winnings)
}

func TestDoubleNaturalIsPush(t *testing.T) {
	s, rec := newTestSession(t,
		card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King),
		card(deck.Diamonds, deck.Ace), card(deck.Clubs, deck.Queen),
	)

	s.PlaceBet(50)
	s.StartHand()

	assert.Equal(t, HandOver, s.State())
	assert.Equal(t, 1000, s.Balance())

	res := rec.lastOutcome(t)
	assert.Equal(t, OutcomePush, res.Special)
	assert.Equal(t, 50, res.Winnings)
}

func TestHitToBustForfeitsBet(t *testing.T) {
	s, rec := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Six), // player 16
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Eight), // dealer 18
		card(deck.Spades, deck.King), // player busts on 26
	)

	s.PlaceBet(50)
	s.StartHand()
	s.Hit()

	// A bust auto-advances to the dealer.
	require.Equal(t, DealerTurn, s.State())
	require.True(t, s.DealerStep())

	assert.Equal(t, 950, s.Balance())
	res := rec.lastOutcome(t)
	assert.Equal(t, []HandOutcome{HandBust}, res.Hands)
	assert.Equal(t, 0, res.Winnings)
}

func TestDealerBustPaysStandingHands(t *testing.T) {
	s, rec := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Two), // player 12
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Six), // dealer 16
		card(deck.Spades, deck.King), // dealer busts on 26
	)

	s.PlaceBet(50)
	s.StartHand()
	s.Stand()

	require.False(t, s.DealerStep())
	require.True(t, s.DealerStep())

	assert.Equal(t, 1050, s.Balance())
	res := rec.lastOutcome(t)
	assert.Equal(t, []HandOutcome{HandWin}, res.Hands)
	assert.Equal(t, 26, res.DealerValue)
}

func TestDealerHitsSoftSeventeen(t *testing.T) {
	s, _ := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine), // player 19
		card(deck.Diamonds, deck.Ace), card(deck.Clubs, deck.Six), // dealer soft 17
		card(deck.Spades, deck.Two), // dealer draws to 19
	)

	s.PlaceBet(50)
	s.StartHand()
	s.Stand()

	require.False(t, s.DealerStep(), "dealer must draw on soft 17")
	require.True(t, s.DealerStep(), "dealer must stand on hard 19")

	assert.Equal(t, 1000, s.Balance()) // 19 vs 19 push
}

func TestDealerStandsOnHardSeventeen(t *testing.T) {
	s, _ := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine),
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Seven), // dealer hard 17
	)

	s.PlaceBet(50)
	s.StartHand()
	s.Stand()

	require.True(t, s.DealerStep(), "dealer must stand on hard 17")
	assert.Equal(t, 1050, s.Balance())
}

func TestDoubleDown(t *testing.T) {
	s, rec := newTestSession(t,
		card(deck.Spades, deck.Six), card(deck.Hearts, deck.Five), // player 11
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Eight), // dealer 18
		card(deck.Spades, deck.Ten), // player doubles to 21
	)

	s.PlaceBet(50)
	s.StartHand()
	s.DoubleDown()

	require.Equal(t, DealerTurn, s.State())
	assert.Equal(t, 100, s.Bet())
	assert.Equal(t, 850, s.Balance())

	require.True(t, s.DealerStep())
	assert.Equal(t, 1050, s.Balance()) // won 200 on the doubled bet

	res := rec.lastOutcome(t)
	assert.Equal(t, 200, res.Winnings)
}

func TestDoubleDownGuards(t *testing.T) {
	s, _ := newTestSession(t,
		card(deck.Spades, deck.Six), card(deck.Hearts, deck.Five),
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Eight),
		card(deck.Spades, deck.Two),
	)

	s.PlaceBet(600)
	s.StartHand()

	// Balance (400) cannot cover the raise.
	s.DoubleDown()
	assert.Equal(t, 600, s.Bet())
	assert.Equal(t, PlayerTurn, s.State())

	// Three cards in hand can no longer double.
	s.Hit()
	s.DoubleDown()
	assert.Equal(t, 600, s.Bet())
}

func TestSplitPlaysBothHands(t *testing.T) {
	s, rec := newTestSession(t,
		card(deck.Spades, deck.Eight), card(deck.Hearts, deck.Eight), // player pair
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Seven), // dealer 17
		card(deck.Spades, deck.Ten), // first split hand -> 18
		card(deck.Hearts, deck.Seven), // second split hand -> 15
		card(deck.Clubs, deck.Two), // hit second hand -> 17
	)

	s.PlaceBet(50)
	s.StartHand()
	s.Split()

	assert.Equal(t, 900, s.Balance())
	snap := s.Snapshot()
	require.Len(t, snap.PlayerHands, 2)
	assert.Equal(t, 0, snap.ActiveHandIndex)
	assert.Equal(t, 18, snap.PlayerHands[0].Value())
	assert.Equal(t, 15, snap.PlayerHands[1].Value())

	s.Stand() // first hand stands on 18
	assert.Equal(t, PlayerTurn, s.State())
	assert.Equal(t, 1, s.Snapshot().ActiveHandIndex)

	s.Hit() // second hand to 17
	s.Stand()
	require.Equal(t, DealerTurn, s.State())
	require.True(t, s.DealerStep())

	// Hand one beats 17, hand two pushes: 100 + 50 back on 900.
	assert.Equal(t, 1050, s.Balance())
	res := rec.lastOutcome(t)
	assert.Equal(t, []HandOutcome{HandWin, HandPush}, res.Hands)
	assert.Equal(t, 150, res.Winnings)
}

func TestSplitGuards(t *testing.T) {
	t.Run("insufficient balance", func(t *testing.T) {
		s, _ := newTestSession(t,
			card(deck.Spades, deck.Eight), card(deck.Hearts, deck.Eight),
			card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Seven),
		)
		s.PlaceBet(600)
		s.StartHand()

		s.Split()
		assert.Len(t, s.Snapshot().PlayerHands, 1)
		assert.Equal(t, 400, s.Balance())
	})

	t.Run("unequal values", func(t *testing.T) {
		s, _ := newTestSession(t,
			card(deck.Spades, deck.Eight), card(deck.Hearts, deck.Nine),
			card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Seven),
		)
		s.PlaceBet(50)
		s.StartHand()

		s.Split()
		assert.Len(t, s.Snapshot().PlayerHands, 1)
	})

	t.Run("only one split", func(t *testing.T) {
		s, _ := newTestSession(t,
			card(deck.Spades, deck.Eight), card(deck.Hearts, deck.Eight),
			card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Seven),
			card(deck.Spades, deck.Eight), card(deck.Hearts, deck.Eight),
		)
		s.PlaceBet(50)
		s.StartHand()
		s.Split()
		require.Len(t, s.Snapshot().PlayerHands, 2)

		// Another pair landed, but a second split is refused.
		s.Split()
		assert.Len(t, s.Snapshot().PlayerHands, 2)
		assert.Equal(t, 900, s.Balance())
	})

	t.Run("ten-value mixed ranks may split", func(t *testing.T) {
		s, _ := newTestSession(t,
			card(deck.Spades, deck.King), card(deck.Hearts, deck.Ten),
			card(deck.Diamonds, deck.Nine), card(deck.Clubs, deck.Seven),
			card(deck.Spades, deck.Two), card(deck.Hearts, deck.Three),
		)
		s.PlaceBet(50)
		s.StartHand()

		s.Split()
		assert.Len(t, s.Snapshot().PlayerHands, 2)
	})
}

func TestResetForNewHand(t *testing.T) {
	s, _ := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine),
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Seven),
	)

	s.PlaceBet(50)
	s.StartHand()
	s.Stand()
	require.True(t, s.DealerStep())
	require.Equal(t, HandOver, s.State())

	s.ResetForNewHand()
	assert.Equal(t, Betting, s.State())
	assert.Equal(t, 0, s.Bet())
	snap := s.Snapshot()
	assert.Empty(t, snap.PlayerHands)
	assert.Empty(t, snap.DealerHand)
}

func TestSnapshotHidesHoleCard(t *testing.T) {
	s, _ := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Six),
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Seven),
	)

	s.PlaceBet(50)
	s.StartHand()
	assert.True(t, s.Snapshot().DealerHidden)

	s.Stand()
	assert.False(t, s.Snapshot().DealerHidden)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s, _ := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Six),
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Seven),
		card(deck.Spades, deck.Two),
	)

	s.PlaceBet(50)
	s.StartHand()
	snap := s.Snapshot()
	snap.PlayerHands[0][0] = card(deck.Clubs, deck.Two)

	assert.Equal(t, card(deck.Spades, deck.Ten), s.Snapshot().PlayerHands[0][0])
}

func TestRestoreBalance(t *testing.T) {
	s, _ := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Six),
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Seven),
	)

	s.RestoreBalance(640)
	assert.Equal(t, 640, s.Balance())

	s.PlaceBet(40)
	s.StartHand()

	// Mid-hand restores are refused.
	s.RestoreBalance(9999)
	assert.Equal(t, 600, s.Balance())
}

// fakeLedger records resolution notifications in order.
type fakeLedger struct {
	matches      []int
	bankruptcies int
	finalScore   int
	startCash    int
}

func (f *fakeLedger) MatchPlayed(currentCash int) {
	f.matches = append(f.matches, currentCash)
}

func (f *fakeLedger) Bankruptcy() (int, int) {
	f.bankruptcies++
	return f.finalScore, f.startCash
}

func TestLedgerNotifiedOnResolution(t *testing.T) {
	s, _ := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Nine),
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Seven),
	)
	ledger := &fakeLedger{}
	s.SetLedger(ledger)

	s.PlaceBet(50)
	s.StartHand()
	s.Stand()
	require.True(t, s.DealerStep())

	require.Equal(t, []int{1050}, ledger.matches)
	assert.Equal(t, 0, ledger.bankruptcies)
}

func TestBankruptcyResetsBalance(t *testing.T) {
	s, rec := newTestSession(t,
		card(deck.Spades, deck.Ten), card(deck.Hearts, deck.Six), // player 16
		card(deck.Diamonds, deck.Ten), card(deck.Clubs, deck.Nine), // dealer 19
	)
	ledger := &fakeLedger{finalScore: 12, startCash: 1000}
	s.SetLedger(ledger)
	s.RestoreBalance(50)

	s.PlaceBet(50)
	s.StartHand()
	s.Stand()
	require.True(t, s.DealerStep())

	assert.Equal(t, 1, ledger.bankruptcies)
	assert.Equal(t, []int{0}, ledger.matches)
	assert.Equal(t, 1000, s.Balance())

	res := rec.lastOutcome(t)
	assert.True(t, res.Bankrupt)
	assert.Equal(t, 12, res.FinalScore)

	var sawBankruptcy bool
	for _, e := range rec.events {
		if be, ok := e.(BankruptcyEvent); ok {
			sawBankruptcy = true
			assert.Equal(t, 12, be.FinalScore)
		}
	}
	assert.True(t, sawBankruptcy, "expected a bankruptcy event")
}

func TestStartHandRebuildsDepletedShoe(t *testing.T) {
	shoe := deck.NewShoe(1, testRand())
	shoe.Shuffle()
	for shoe.Remaining() > 10 {
		shoe.MustDraw()
	}
	require.True(t, shoe.NeedsShuffle())

	s := NewSession(DefaultConfig(), shoe, testLogger())
	rec := &recorder{}
	s.EventBus().Subscribe(rec)

	s.PlaceBet(50)
	s.StartHand()

	assert.Equal(t, deck.DeckSize-4, shoe.Remaining())

	var sawShuffle bool
	for _, e := range rec.events {
		if _, ok := e.(ShuffleEvent); ok {
			sawShuffle = true
		}
	}
	assert.True(t, sawShuffle, "expected a shuffle event")
}
