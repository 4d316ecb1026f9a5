// Package orderbookv1 holds the domain entities of the matching core: orders,
// price levels, the price ladder and the event/response value objects.
//
// Prices, sizes and monetary budgets are int64 in the smallest tradeable
// units; no floating point enters the matching path.
package orderbookv1

// OrderAction is the side of an order.
type OrderAction byte

const (
	// ActionAsk is a sell order.
	ActionAsk OrderAction = 0
	// ActionBid is a buy order.
	ActionBid OrderAction = 1
)

// Opposite returns the other side of the book.
func (a OrderAction) Opposite() OrderAction {
	if a == ActionBid {
		return ActionAsk
	}
	return ActionBid
}

func (a OrderAction) String() string {
	if a == ActionBid {
		return "BID"
	}
	return "ASK"
}

// OrderType selects the matching policy applied to a new order.
type OrderType byte

const (
	// OrderTypeGTC rests on the book if not fully matched.
	OrderTypeGTC OrderType = 0
	// OrderTypeIOC discards any unmatched residual.
	OrderTypeIOC OrderType = 1
	// OrderTypeFOKBudget fills the whole size within a monetary budget or
	// matches nothing at all.
	OrderTypeFOKBudget OrderType = 2
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeGTC:
		return "GTC"
	case OrderTypeIOC:
		return "IOC"
	case OrderTypeFOKBudget:
		return "FOK_BUDGET"
	default:
		return "UNKNOWN"
	}
}

// Order is a resting or in-flight order. The book owns every Order it keeps;
// callers address orders by id only.
type Order struct {
	ID  int64
	UID int64

	Action OrderAction
	Type   OrderType

	Price int64
	// ReservedBidPrice is the price at which budget was reserved for BID
	// orders (always >= Price). Zero for ASK orders.
	ReservedBidPrice int64

	Size   int64
	Filled int64

	// UserCookie is an opaque correlation tag echoed back to the caller.
	UserCookie int32
}

// Remaining returns the unfilled volume of the order.
func (o *Order) Remaining() int64 {
	return o.Size - o.Filled
}

// IsBid reports whether the order is a buy order.
func (o *Order) IsBid() bool {
	return o.Action == ActionBid
}
