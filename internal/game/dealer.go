package game

import (
	"context"
	"errors"
	"time"

	"github.com/coder/quartz"
)

// errDealerDone stops the ticker once the dealer has finished.
var errDealerDone = errors.New("dealer done")

// AutoPlay drives the dealer's draw-or-stop decisions off a ticker, one
// DealerStep per tick, until the dealer stands or busts and the hand
// resolves. The pacing is purely for readability: given the shoe state
// the sequence is deterministic, and tests drive it synchronously with
// a mock clock.
func AutoPlay(ctx context.Context, clock quartz.Clock, interval time.Duration, s *Session) error {
	waiter := clock.TickerFunc(ctx, interval, func() error {
		if s.DealerStep() {
			return errDealerDone
		}
		return nil
	}, "dealer")

	if err := waiter.Wait(); err != nil && !errors.Is(err, errDealerDone) {
		return err
	}
	return nil
}
