package orderbookv1

// ResultCode classifies the outcome of a command. Values are a taxonomy, not
// wire values; pkg/wire owns the byte layout.
type ResultCode int16

const (
	// ResultSuccess indicates the command was accepted.
	ResultSuccess ResultCode = 0
	// ResultDuplicateOrderID rejects a place command whose order id is
	// already active. The response carries a reduce event for the full
	// requested size; the book is left unchanged.
	ResultDuplicateOrderID ResultCode = 1
	// ResultUnknownOrderID rejects cancel/reduce/move of an order that does
	// not exist or belongs to another uid.
	ResultUnknownOrderID ResultCode = 2
	// ResultIncorrectReduceSize rejects a reduce with a non-positive size.
	ResultIncorrectReduceSize ResultCode = 3
)

func (c ResultCode) String() string {
	switch c {
	case ResultSuccess:
		return "SUCCESS"
	case ResultDuplicateOrderID:
		return "DUPLICATE_ORDER_ID"
	case ResultUnknownOrderID:
		return "UNKNOWN_ORDER_ID"
	case ResultIncorrectReduceSize:
		return "INCORRECT_REDUCE_SIZE"
	default:
		return "UNKNOWN"
	}
}

// TradeEvent reports one maker order matched by a taker command. The trade
// executes at the maker's resting price; price improvement goes to the taker.
type TradeEvent struct {
	MakerOrderID int64
	MakerUID     int64
	// TradePrice is the maker's resting price.
	TradePrice int64
	// ReservedBidPrice is the reservation of the bid-side participant of the
	// trade: the taker's when the taker is a BID, the maker's otherwise.
	ReservedBidPrice int64
	TradeVolume      int64
	// MakerCompleted is set when the maker order was fully filled and
	// removed by this trade.
	MakerCompleted bool
}

// ReduceEvent reports volume taken off an order without trading: an explicit
// cancel/reduce, or the rejected/unfilled part of a command.
type ReduceEvent struct {
	ReducedVolume    int64
	Price            int64
	ReservedBidPrice int64
}

// CommandResponse is the synchronous result of one command.
type CommandResponse struct {
	ResultCode  ResultCode
	TakerAction OrderAction
	OrderID     int64
	UID         int64
	UserCookie  int32
	// OrderCompleted is set when the command leaves no active order behind.
	OrderCompleted bool

	Trades      []TradeEvent
	ReduceEvent *ReduceEvent
}
