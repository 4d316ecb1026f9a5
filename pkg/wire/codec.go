package wire

import (
	orderbookv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/orderbook/v1"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/errors"
)

// Command type tags, the first byte of every command frame.
const (
	TagPlace byte = iota + 1
	TagCancel
	TagReduce
	TagMove
)

// EncodePlace writes a place command frame.
func EncodePlace(w *BufferWriter, cmd orderbookv1.PlaceCommand) {
	w.WriteUint8(TagPlace)
	w.WriteUint8(byte(cmd.Type))
	w.WriteUint8(byte(cmd.Action))
	w.WriteInt64(cmd.OrderID)
	w.WriteInt64(cmd.UID)
	w.WriteInt64(cmd.Price)
	w.WriteInt64(cmd.ReservedBidPrice)
	w.WriteInt64(cmd.Size)
	w.WriteInt32(cmd.UserCookie)
}

// EncodeCancel writes a cancel command frame.
func EncodeCancel(w *BufferWriter, cmd orderbookv1.CancelCommand) {
	w.WriteUint8(TagCancel)
	w.WriteInt64(cmd.OrderID)
	w.WriteInt64(cmd.UID)
}

// EncodeReduce writes a reduce command frame.
func EncodeReduce(w *BufferWriter, cmd orderbookv1.ReduceCommand) {
	w.WriteUint8(TagReduce)
	w.WriteInt64(cmd.OrderID)
	w.WriteInt64(cmd.UID)
	w.WriteInt64(cmd.Size)
}

// EncodeMove writes a move command frame.
func EncodeMove(w *BufferWriter, cmd orderbookv1.MoveCommand) {
	w.WriteUint8(TagMove)
	w.WriteInt64(cmd.OrderID)
	w.WriteInt64(cmd.UID)
	w.WriteInt64(cmd.NewPrice)
}

// Command is the decoded form of one command frame; exactly one of the
// pointers is set, matching Tag.
type Command struct {
	Tag    byte
	Place  *orderbookv1.PlaceCommand
	Cancel *orderbookv1.CancelCommand
	Reduce *orderbookv1.ReduceCommand
	Move   *orderbookv1.MoveCommand
}

// DecodeCommand parses one command frame.
func DecodeCommand(frame []byte) (*Command, error) {
	r := NewBufferReader(frame)
	cmd := &Command{Tag: r.ReadUint8()}

	switch cmd.Tag {
	case TagPlace:
		place := &orderbookv1.PlaceCommand{
			Type:   orderbookv1.OrderType(r.ReadUint8()),
			Action: orderbookv1.OrderAction(r.ReadUint8()),
		}
		place.OrderID = r.ReadInt64()
		place.UID = r.ReadInt64()
		place.Price = r.ReadInt64()
		place.ReservedBidPrice = r.ReadInt64()
		place.Size = r.ReadInt64()
		place.UserCookie = r.ReadInt32()
		cmd.Place = place

	case TagCancel:
		cmd.Cancel = &orderbookv1.CancelCommand{
			OrderID: r.ReadInt64(),
			UID:     r.ReadInt64(),
		}

	case TagReduce:
		cmd.Reduce = &orderbookv1.ReduceCommand{
			OrderID: r.ReadInt64(),
			UID:     r.ReadInt64(),
			Size:    r.ReadInt64(),
		}

	case TagMove:
		cmd.Move = &orderbookv1.MoveCommand{
			OrderID:  r.ReadInt64(),
			UID:      r.ReadInt64(),
			NewPrice: r.ReadInt64(),
		}

	default:
		return nil, errors.NewTracer("wire: unknown command tag")
	}

	if r.Failed() {
		return nil, errors.NewTracer("wire: truncated command frame")
	}
	if r.Remaining() != 0 {
		return nil, errors.NewTracer("wire: trailing bytes after command frame")
	}
	return cmd, nil
}

// EncodeResponse writes a command response frame: header, trade events,
// then an optional reduce event marked by a trailing flag.
func EncodeResponse(w *BufferWriter, resp *orderbookv1.CommandResponse) {
	w.WriteInt16(int16(resp.ResultCode))
	w.WriteUint8(byte(resp.TakerAction))
	w.WriteInt64(resp.OrderID)
	w.WriteInt64(resp.UID)
	w.WriteInt32(resp.UserCookie)
	w.WriteUint8(encodeBool(resp.OrderCompleted))

	w.WriteInt32(int32(len(resp.Trades)))
	for i := range resp.Trades {
		trade := &resp.Trades[i]
		w.WriteInt64(trade.MakerOrderID)
		w.WriteInt64(trade.MakerUID)
		w.WriteInt64(trade.TradePrice)
		w.WriteInt64(trade.ReservedBidPrice)
		w.WriteInt64(trade.TradeVolume)
		w.WriteUint8(encodeBool(trade.MakerCompleted))
	}

	if resp.ReduceEvent != nil {
		w.WriteUint8(1)
		w.WriteInt64(resp.ReduceEvent.ReducedVolume)
		w.WriteInt64(resp.ReduceEvent.Price)
		w.WriteInt64(resp.ReduceEvent.ReservedBidPrice)
	} else {
		w.WriteUint8(0)
	}
}

// DecodeResponse parses one response frame.
func DecodeResponse(frame []byte) (*orderbookv1.CommandResponse, error) {
	r := NewBufferReader(frame)

	resp := &orderbookv1.CommandResponse{
		ResultCode:  orderbookv1.ResultCode(r.ReadInt16()),
		TakerAction: orderbookv1.OrderAction(r.ReadUint8()),
	}
	resp.OrderID = r.ReadInt64()
	resp.UID = r.ReadInt64()
	resp.UserCookie = r.ReadInt32()
	resp.OrderCompleted = r.ReadUint8() == 1

	tradeCount := r.ReadInt32()
	if r.Failed() || tradeCount < 0 {
		return nil, errors.NewTracer("wire: truncated response frame")
	}
	for i := int32(0); i < tradeCount; i++ {
		trade := orderbookv1.TradeEvent{
			MakerOrderID:     r.ReadInt64(),
			MakerUID:         r.ReadInt64(),
			TradePrice:       r.ReadInt64(),
			ReservedBidPrice: r.ReadInt64(),
			TradeVolume:      r.ReadInt64(),
		}
		trade.MakerCompleted = r.ReadUint8() == 1
		if r.Failed() {
			return nil, errors.NewTracer("wire: truncated response frame")
		}
		resp.Trades = append(resp.Trades, trade)
	}

	if r.ReadUint8() == 1 {
		resp.ReduceEvent = &orderbookv1.ReduceEvent{
			ReducedVolume:    r.ReadInt64(),
			Price:            r.ReadInt64(),
			ReservedBidPrice: r.ReadInt64(),
		}
	}

	if r.Failed() {
		return nil, errors.NewTracer("wire: truncated response frame")
	}
	if r.Remaining() != 0 {
		return nil, errors.NewTracer("wire: trailing bytes after response frame")
	}
	return resp, nil
}

func encodeBool(v bool) byte {
	if v {
		return 1
	}
	return 0
}
