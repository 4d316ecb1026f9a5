package orderbookv1

// PlaceCommand places a new order against the book.
type PlaceCommand struct {
	Type             OrderType
	OrderID          int64
	UID              int64
	Price            int64
	ReservedBidPrice int64
	Size             int64
	Action           OrderAction
	UserCookie       int32
}

// CancelCommand removes an order entirely.
type CancelCommand struct {
	OrderID int64
	UID     int64
}

// ReduceCommand shrinks an order's remaining volume.
type ReduceCommand struct {
	OrderID int64
	UID     int64
	Size    int64
}

// MoveCommand reprices an order, matching immediately if the new price
// crosses the spread.
type MoveCommand struct {
	OrderID  int64
	UID      int64
	NewPrice int64
}
