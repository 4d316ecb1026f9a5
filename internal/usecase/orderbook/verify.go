package orderbook

import (
	"errors"
	"fmt"

	orderbookv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/orderbook/v1"
)

// ErrInternalState marks an internal-consistency violation. It signals a
// defect in the engine itself, never a recoverable command failure; callers
// are expected to stop the book and alert.
var ErrInternalState = errors.New("order book internal state violation")

// VerifyInternalState walks both ladders and the registry without mutating
// anything and checks every structural invariant: aggregate volume and order
// count per level, strict price ordering, absence of empty levels, and the
// two-way correspondence between ladder positions and registry entries.
func (b *OrderBook) VerifyInternalState() error {
	reachable := 0

	for _, side := range []struct {
		action orderbookv1.OrderAction
		ladder *orderbookv1.Ladder
	}{
		{orderbookv1.ActionAsk, b.asks},
		{orderbookv1.ActionBid, b.bids},
	} {
		count, err := b.verifySide(side.action, side.ladder)
		if err != nil {
			return err
		}
		reachable += count
	}

	if reachable != len(b.orders) {
		return fmt.Errorf("%w: registry holds %d orders, ladders reach %d", ErrInternalState, len(b.orders), reachable)
	}
	return nil
}

func (b *OrderBook) verifySide(action orderbookv1.OrderAction, ladder *orderbookv1.Ladder) (int, error) {
	var walkErr error
	levels := 0
	ordersSeen := 0
	first := true
	var prevPrice int64

	ladder.Walk(func(level *orderbookv1.PriceLevel) bool {
		levels++

		if first {
			if best := ladder.Best(); best != level {
				walkErr = fmt.Errorf("%w: %s best level %v is not the first walked level %d", ErrInternalState, action, best, level.Price)
				return false
			}
			first = false
		} else if !betterPrice(action, prevPrice, level.Price) {
			walkErr = fmt.Errorf("%w: %s ladder ordering broken at %d after %d", ErrInternalState, action, level.Price, prevPrice)
			return false
		}
		prevPrice = level.Price

		if level.IsEmpty() {
			walkErr = fmt.Errorf("%w: empty %s level at price %d", ErrInternalState, action, level.Price)
			return false
		}

		var volume int64
		nodes := 0
		for node := level.Head(); node != nil; node = node.Next() {
			nodes++
			order := node.Order

			if order.Remaining() <= 0 {
				walkErr = fmt.Errorf("%w: order %d rests with remaining %d", ErrInternalState, order.ID, order.Remaining())
				return false
			}
			if order.Action != action {
				walkErr = fmt.Errorf("%w: order %d on the %s side has action %s", ErrInternalState, order.ID, action, order.Action)
				return false
			}
			if order.Price != level.Price {
				walkErr = fmt.Errorf("%w: order %d at price %d rests in level %d", ErrInternalState, order.ID, order.Price, level.Price)
				return false
			}
			if registered, exists := b.orders[order.ID]; !exists || registered != node {
				walkErr = fmt.Errorf("%w: order %d not registered at its ladder position", ErrInternalState, order.ID)
				return false
			}
			volume += order.Remaining()
		}

		if nodes != level.Count() {
			walkErr = fmt.Errorf("%w: %s level %d counts %d orders, queue holds %d", ErrInternalState, action, level.Price, level.Count(), nodes)
			return false
		}
		if volume != level.TotalVolume {
			walkErr = fmt.Errorf("%w: %s level %d aggregates volume %d, orders sum to %d", ErrInternalState, action, level.Price, level.TotalVolume, volume)
			return false
		}

		ordersSeen += nodes
		return true
	})

	if walkErr != nil {
		return 0, walkErr
	}
	if levels != ladder.Size() {
		return 0, fmt.Errorf("%w: %s ladder sizes %d, walk visited %d levels", ErrInternalState, action, ladder.Size(), levels)
	}
	return ordersSeen, nil
}

func betterPrice(action orderbookv1.OrderAction, prev, next int64) bool {
	if action == orderbookv1.ActionBid {
		return prev > next
	}
	return prev < next
}
