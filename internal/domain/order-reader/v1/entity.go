package orderreaderv1

import (
	orderbookv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/orderbook/v1"
)

// CommandKind selects which book operation a payload carries.
type CommandKind string

const (
	KindPlace  CommandKind = "place"
	KindCancel CommandKind = "cancel"
	KindReduce CommandKind = "reduce"
	KindMove   CommandKind = "move"
)

// OrderCommandPayload is the JSON shape of one inbound command message.
// Fields beyond Kind, OrderID and UID are meaningful per kind only.
type OrderCommandPayload struct {
	Kind    CommandKind `json:"kind"`
	OrderID int64       `json:"orderId"`
	UID     int64       `json:"uid"`

	OrderType        orderbookv1.OrderType   `json:"orderType"`
	Action           orderbookv1.OrderAction `json:"action"`
	Price            int64                   `json:"price"`
	ReservedBidPrice int64                   `json:"reservedBidPrice"`
	Size             int64                   `json:"size"`
	UserCookie       int32                   `json:"userCookie"`

	// NewPrice is the move target.
	NewPrice int64 `json:"newPrice"`

	// Offset is the Kafka offset the payload was read at, set by the reader.
	Offset int64 `json:"-"`
}

// ToPlace converts the payload into a place command.
func (p *OrderCommandPayload) ToPlace() orderbookv1.PlaceCommand {
	return orderbookv1.PlaceCommand{
		Type:             p.OrderType,
		OrderID:          p.OrderID,
		UID:              p.UID,
		Price:            p.Price,
		ReservedBidPrice: p.ReservedBidPrice,
		Size:             p.Size,
		Action:           p.Action,
		UserCookie:       p.UserCookie,
	}
}

// ToCancel converts the payload into a cancel command.
func (p *OrderCommandPayload) ToCancel() orderbookv1.CancelCommand {
	return orderbookv1.CancelCommand{OrderID: p.OrderID, UID: p.UID}
}

// ToReduce converts the payload into a reduce command.
func (p *OrderCommandPayload) ToReduce() orderbookv1.ReduceCommand {
	return orderbookv1.ReduceCommand{OrderID: p.OrderID, UID: p.UID, Size: p.Size}
}

// ToMove converts the payload into a move command.
func (p *OrderCommandPayload) ToMove() orderbookv1.MoveCommand {
	return orderbookv1.MoveCommand{OrderID: p.OrderID, UID: p.UID, NewPrice: p.NewPrice}
}
