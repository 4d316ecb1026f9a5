package matchpublisherv1

import (
	"encoding/json"

	orderbookv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/orderbook/v1"
)

// EventType distinguishes executions from volume reductions.
type EventType string

const (
	EventTypeTrade  EventType = "trade"
	EventTypeReduce EventType = "reduce"
)

// MatchEvent is the JSON shape of one published book event. EventID is
// assigned by the publisher at send time.
type MatchEvent struct {
	EventID     string    `json:"eventId"`
	Symbol      string    `json:"symbol"`
	Type        EventType `json:"type"`
	TakerOrder  int64     `json:"takerOrderId"`
	TakerUID    int64     `json:"takerUid"`
	TakerAction string    `json:"takerAction"`

	// Maker fields, trade events only.
	MakerOrder     int64 `json:"makerOrderId,omitempty"`
	MakerUID       int64 `json:"makerUid,omitempty"`
	MakerCompleted bool  `json:"makerCompleted,omitempty"`

	Price  int64 `json:"price"`
	Volume int64 `json:"volume"`

	TakerCompleted bool `json:"takerCompleted"`
}

// FromResponse flattens a command response into its publishable events.
// Responses with no trades and no reduction produce nothing.
func FromResponse(symbol string, resp *orderbookv1.CommandResponse) []*MatchEvent {
	if resp == nil || resp.ResultCode != orderbookv1.ResultSuccess {
		return nil
	}

	events := make([]*MatchEvent, 0, len(resp.Trades)+1)
	for i := range resp.Trades {
		trade := &resp.Trades[i]
		events = append(events, &MatchEvent{
			Symbol:         symbol,
			Type:           EventTypeTrade,
			TakerOrder:     resp.OrderID,
			TakerUID:       resp.UID,
			TakerAction:    resp.TakerAction.String(),
			MakerOrder:     trade.MakerOrderID,
			MakerUID:       trade.MakerUID,
			MakerCompleted: trade.MakerCompleted,
			Price:          trade.TradePrice,
			Volume:         trade.TradeVolume,
			TakerCompleted: resp.OrderCompleted,
		})
	}

	if resp.ReduceEvent != nil {
		events = append(events, &MatchEvent{
			Symbol:         symbol,
			Type:           EventTypeReduce,
			TakerOrder:     resp.OrderID,
			TakerUID:       resp.UID,
			TakerAction:    resp.TakerAction.String(),
			Price:          resp.ReduceEvent.Price,
			Volume:         resp.ReduceEvent.ReducedVolume,
			TakerCompleted: resp.OrderCompleted,
		})
	}

	return events
}

// ToBytes converts the match event to its wire form.
func (e *MatchEvent) ToBytes() []byte {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return raw
}

// FromBytes parses a match event, nil on malformed input.
func FromBytes(data []byte) *MatchEvent {
	var event MatchEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil
	}
	return &event
}
