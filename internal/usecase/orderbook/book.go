// Package orderbook implements the single-instrument matching core: command
// processing, price-time priority matching and the L2 depth view.
//
// A book instance is single-writer. Every command runs synchronously to
// completion and returns a structured response; no partial state is ever
// observable between commands. Callers must serialize access externally, one
// processing goroutine per instrument.
package orderbook

import (
	orderbookv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/orderbook/v1"
)

// OrderBook holds the two price ladders and the order registry of one
// instrument.
type OrderBook struct {
	asks *orderbookv1.Ladder
	bids *orderbookv1.Ladder

	// orders maps order id to its queue node for O(1) cancel/reduce/move.
	// The registry owns the Order records; ladder nodes hold positions.
	orders map[int64]*orderbookv1.OrderNode
}

// NewOrderBook creates an empty book.
func NewOrderBook() *OrderBook {
	return &OrderBook{
		asks:   orderbookv1.NewLadder(false),
		bids:   orderbookv1.NewLadder(true),
		orders: make(map[int64]*orderbookv1.OrderNode),
	}
}

// Place processes a new order command under the policy of its order type.
func (b *OrderBook) Place(cmd orderbookv1.PlaceCommand) *orderbookv1.CommandResponse {
	resp := &orderbookv1.CommandResponse{
		ResultCode:     orderbookv1.ResultSuccess,
		TakerAction:    cmd.Action,
		OrderID:        cmd.OrderID,
		UID:            cmd.UID,
		UserCookie:     cmd.UserCookie,
		OrderCompleted: true,
	}

	if _, exists := b.orders[cmd.OrderID]; exists {
		resp.ResultCode = orderbookv1.ResultDuplicateOrderID
		resp.ReduceEvent = &orderbookv1.ReduceEvent{
			ReducedVolume:    cmd.Size,
			Price:            cmd.Price,
			ReservedBidPrice: reservedOrZero(cmd.Action, cmd.ReservedBidPrice),
		}
		return resp
	}

	taker := &orderbookv1.Order{
		ID:               cmd.OrderID,
		UID:              cmd.UID,
		Action:           cmd.Action,
		Type:             cmd.Type,
		Price:            cmd.Price,
		ReservedBidPrice: reservedOrZero(cmd.Action, cmd.ReservedBidPrice),
		Size:             cmd.Size,
		UserCookie:       cmd.UserCookie,
	}

	switch cmd.Type {
	case orderbookv1.OrderTypeGTC:
		resp.Trades = b.matchInstantly(taker, false, nil)
		if taker.Remaining() > 0 {
			b.insertResting(taker)
			resp.OrderCompleted = false
		}

	case orderbookv1.OrderTypeIOC:
		resp.Trades = b.matchInstantly(taker, false, nil)
		if rem := taker.Remaining(); rem > 0 {
			resp.ReduceEvent = &orderbookv1.ReduceEvent{
				ReducedVolume:    rem,
				Price:            taker.Price,
				ReservedBidPrice: taker.ReservedBidPrice,
			}
		}

	case orderbookv1.OrderTypeFOKBudget:
		// For FOK the price field is a monetary bound: maximum spend for a
		// BID, minimum proceeds for an ASK.
		if !b.budgetSatisfied(cmd.Action, cmd.Size, cmd.Price) {
			resp.ReduceEvent = &orderbookv1.ReduceEvent{
				ReducedVolume:    cmd.Size,
				Price:            taker.Price,
				ReservedBidPrice: taker.ReservedBidPrice,
			}
			return resp
		}
		resp.Trades = b.matchInstantly(taker, true, nil)
		if rem := taker.Remaining(); rem > 0 {
			resp.ReduceEvent = &orderbookv1.ReduceEvent{
				ReducedVolume:    rem,
				Price:            taker.Price,
				ReservedBidPrice: taker.ReservedBidPrice,
			}
		}
	}

	return resp
}

// Cancel removes an order entirely, reporting its full remaining volume.
func (b *OrderBook) Cancel(cmd orderbookv1.CancelCommand) *orderbookv1.CommandResponse {
	resp := &orderbookv1.CommandResponse{
		ResultCode: orderbookv1.ResultSuccess,
		OrderID:    cmd.OrderID,
		UID:        cmd.UID,
	}

	node, ok := b.lookup(cmd.OrderID, cmd.UID)
	if !ok {
		resp.ResultCode = orderbookv1.ResultUnknownOrderID
		return resp
	}

	order := node.Order
	remaining := order.Remaining()
	b.removeResting(node)

	resp.TakerAction = order.Action
	resp.OrderCompleted = true
	resp.ReduceEvent = &orderbookv1.ReduceEvent{
		ReducedVolume:    remaining,
		Price:            order.Price,
		ReservedBidPrice: order.ReservedBidPrice,
	}
	return resp
}

// Reduce shrinks an order's remaining volume by min(size, remaining),
// removing the order entirely when nothing is left.
func (b *OrderBook) Reduce(cmd orderbookv1.ReduceCommand) *orderbookv1.CommandResponse {
	resp := &orderbookv1.CommandResponse{
		ResultCode: orderbookv1.ResultSuccess,
		OrderID:    cmd.OrderID,
		UID:        cmd.UID,
	}

	if cmd.Size <= 0 {
		resp.ResultCode = orderbookv1.ResultIncorrectReduceSize
		return resp
	}

	node, ok := b.lookup(cmd.OrderID, cmd.UID)
	if !ok {
		resp.ResultCode = orderbookv1.ResultUnknownOrderID
		return resp
	}

	order := node.Order
	resp.TakerAction = order.Action

	reduceBy := cmd.Size
	if remaining := order.Remaining(); reduceBy > remaining {
		reduceBy = remaining
	}

	order.Size -= reduceBy
	if order.Remaining() == 0 {
		// Remove subtracts the (now zero) remaining volume; take the
		// reduced amount off the aggregates first.
		node.Level().ReduceVolume(reduceBy)
		b.removeResting(node)
		resp.OrderCompleted = true
	} else {
		node.Level().ReduceVolume(reduceBy)
	}

	resp.ReduceEvent = &orderbookv1.ReduceEvent{
		ReducedVolume:    reduceBy,
		Price:            order.Price,
		ReservedBidPrice: order.ReservedBidPrice,
	}
	return resp
}

// Move reprices an order without changing its remaining size. When the new
// price crosses the spread the order matches immediately with GTC residual
// semantics; otherwise it rests at the new price with no events.
func (b *OrderBook) Move(cmd orderbookv1.MoveCommand) *orderbookv1.CommandResponse {
	resp := &orderbookv1.CommandResponse{
		ResultCode: orderbookv1.ResultSuccess,
		OrderID:    cmd.OrderID,
		UID:        cmd.UID,
	}

	node, ok := b.lookup(cmd.OrderID, cmd.UID)
	if !ok {
		resp.ResultCode = orderbookv1.ResultUnknownOrderID
		return resp
	}

	order := node.Order
	resp.TakerAction = order.Action

	// Unlink from the current level first; the order re-enters the book as
	// a taker at its new price.
	level := node.Level()
	level.Remove(node)
	if level.IsEmpty() {
		b.ladder(order.Action).Delete(level.Price)
	}
	delete(b.orders, order.ID)

	order.Price = cmd.NewPrice

	resp.Trades = b.matchInstantly(order, false, nil)
	if order.Remaining() > 0 {
		b.insertResting(order)
	} else {
		resp.OrderCompleted = true
	}
	return resp
}

// GetOrderByID returns the active order with the given id, nil if absent.
func (b *OrderBook) GetOrderByID(orderID int64) *orderbookv1.Order {
	node, exists := b.orders[orderID]
	if !exists {
		return nil
	}
	return node.Order
}

// L2Snapshot builds the depth view, truncated to depth levels per side.
func (b *OrderBook) L2Snapshot(depth int) *orderbookv1.L2MarketData {
	data := orderbookv1.NewL2MarketData(depth)

	remaining := depth
	b.asks.Walk(func(level *orderbookv1.PriceLevel) bool {
		if remaining == 0 {
			return false
		}
		data.AskPrices = append(data.AskPrices, level.Price)
		data.AskVolumes = append(data.AskVolumes, level.TotalVolume)
		data.AskOrderCounts = append(data.AskOrderCounts, int64(level.Count()))
		remaining--
		return true
	})

	remaining = depth
	b.bids.Walk(func(level *orderbookv1.PriceLevel) bool {
		if remaining == 0 {
			return false
		}
		data.BidPrices = append(data.BidPrices, level.Price)
		data.BidVolumes = append(data.BidVolumes, level.TotalVolume)
		data.BidOrderCounts = append(data.BidOrderCounts, int64(level.Count()))
		remaining--
		return true
	})

	return data
}

// L2SnapshotFull builds the depth view over the whole book.
func (b *OrderBook) L2SnapshotFull() *orderbookv1.L2MarketData {
	depth := b.asks.Size()
	if b.bids.Size() > depth {
		depth = b.bids.Size()
	}
	return b.L2Snapshot(depth)
}

// OrderCount returns the number of active orders in the registry.
func (b *OrderBook) OrderCount() int {
	return len(b.orders)
}

func (b *OrderBook) ladder(action orderbookv1.OrderAction) *orderbookv1.Ladder {
	if action == orderbookv1.ActionBid {
		return b.bids
	}
	return b.asks
}

// lookup resolves (id, uid) to a registry node. An order owned by another
// uid is reported the same way as an absent one.
func (b *OrderBook) lookup(orderID, uid int64) (*orderbookv1.OrderNode, bool) {
	node, exists := b.orders[orderID]
	if !exists || node.Order.UID != uid {
		return nil, false
	}
	return node, true
}

func (b *OrderBook) insertResting(order *orderbookv1.Order) {
	level := b.ladder(order.Action).GetOrCreate(order.Price)
	b.orders[order.ID] = level.Append(order)
}

// removeResting unlinks a node from its level and the registry, dropping the
// level when it empties.
func (b *OrderBook) removeResting(node *orderbookv1.OrderNode) {
	order := node.Order
	level := node.Level()
	level.Remove(node)
	if level.IsEmpty() {
		b.ladder(order.Action).Delete(level.Price)
	}
	delete(b.orders, order.ID)
}

func reservedOrZero(action orderbookv1.OrderAction, reservedBidPrice int64) int64 {
	if action == orderbookv1.ActionBid {
		return reservedBidPrice
	}
	return 0
}
