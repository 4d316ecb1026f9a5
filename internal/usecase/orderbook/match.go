package orderbook

import (
	orderbookv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/orderbook/v1"
)

// matchInstantly walks the opposite ladder in priority order, filling the
// taker against resting makers until the taker is done, the ladder empties
// or the first unmatchable level is reached. Levels are sorted, so one
// failed price check ends the walk.
//
// ignorePriceLimit is set for FOK orders after the budget pre-check: their
// price field is a monetary bound, not a limit price.
func (b *OrderBook) matchInstantly(taker *orderbookv1.Order, ignorePriceLimit bool, trades []orderbookv1.TradeEvent) []orderbookv1.TradeEvent {
	opposite := b.ladder(taker.Action.Opposite())

	for taker.Remaining() > 0 {
		level := opposite.Best()
		if level == nil {
			break
		}
		if !ignorePriceLimit && !priceCrosses(taker.Action, taker.Price, level.Price) {
			break
		}

		node := level.Head()
		maker := node.Order

		volume := taker.Remaining()
		if makerRemaining := maker.Remaining(); makerRemaining < volume {
			volume = makerRemaining
		}

		taker.Filled += volume
		maker.Filled += volume
		level.ReduceVolume(volume)

		makerCompleted := maker.Remaining() == 0

		trades = append(trades, orderbookv1.TradeEvent{
			MakerOrderID:     maker.ID,
			MakerUID:         maker.UID,
			TradePrice:       maker.Price,
			ReservedBidPrice: bidSideReservation(taker, maker),
			TradeVolume:      volume,
			MakerCompleted:   makerCompleted,
		})

		if makerCompleted {
			b.removeResting(node)
		}
	}

	return trades
}

// priceCrosses reports whether a taker limit price permits trading at the
// given opposite level.
func priceCrosses(action orderbookv1.OrderAction, takerPrice, levelPrice int64) bool {
	if action == orderbookv1.ActionBid {
		return takerPrice >= levelPrice
	}
	return takerPrice <= levelPrice
}

// bidSideReservation picks the reserved bid price carried by a trade event:
// the reservation of whichever participant is the buyer.
func bidSideReservation(taker, maker *orderbookv1.Order) int64 {
	if taker.IsBid() {
		return taker.ReservedBidPrice
	}
	return maker.ReservedBidPrice
}

// budgetSatisfied walks the opposite ladder without mutating it and decides
// whether a FOK order can fully fill within its monetary bound. A book that
// cannot cover the full size at any price fails the check outright.
func (b *OrderBook) budgetSatisfied(action orderbookv1.OrderAction, size, budget int64) bool {
	var cost int64
	remaining := size

	b.ladder(action.Opposite()).Walk(func(level *orderbookv1.PriceLevel) bool {
		volume := remaining
		if level.TotalVolume < volume {
			volume = level.TotalVolume
		}
		cost += volume * level.Price
		remaining -= volume
		return remaining > 0
	})

	if remaining > 0 {
		return false
	}
	if action == orderbookv1.ActionBid {
		return cost <= budget
	}
	return cost >= budget
}
