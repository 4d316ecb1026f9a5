package matchpublisherv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderbookv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/orderbook/v1"
)

func TestFromResponse(t *testing.T) {
	resp := &orderbookv1.CommandResponse{
		ResultCode:     orderbookv1.ResultSuccess,
		TakerAction:    orderbookv1.ActionBid,
		OrderID:        123,
		UID:            77,
		OrderCompleted: true,
		Trades: []orderbookv1.TradeEvent{
			{MakerOrderID: 2, MakerUID: 11, TradePrice: 81599, TradeVolume: 50, MakerCompleted: true},
		},
		ReduceEvent: &orderbookv1.ReduceEvent{ReducedVolume: 25, Price: 82000},
	}

	events := FromResponse("BTC-USD", resp)
	require.Len(t, events, 2)

	trade := events[0]
	assert.Equal(t, EventTypeTrade, trade.Type)
	assert.Equal(t, "BTC-USD", trade.Symbol)
	assert.Equal(t, int64(123), trade.TakerOrder)
	assert.Equal(t, int64(2), trade.MakerOrder)
	assert.Equal(t, int64(11), trade.MakerUID)
	assert.Equal(t, "BID", trade.TakerAction)
	assert.Equal(t, int64(81599), trade.Price)
	assert.Equal(t, int64(50), trade.Volume)
	assert.True(t, trade.MakerCompleted)
	assert.True(t, trade.TakerCompleted)

	reduce := events[1]
	assert.Equal(t, EventTypeReduce, reduce.Type)
	assert.Equal(t, int64(82000), reduce.Price)
	assert.Equal(t, int64(25), reduce.Volume)
	assert.Zero(t, reduce.MakerOrder)
}

func TestFromResponse_NothingToPublish(t *testing.T) {
	assert.Nil(t, FromResponse("BTC-USD", nil))

	rejected := &orderbookv1.CommandResponse{ResultCode: orderbookv1.ResultUnknownOrderID}
	assert.Nil(t, FromResponse("BTC-USD", rejected))

	resting := &orderbookv1.CommandResponse{ResultCode: orderbookv1.ResultSuccess}
	assert.Empty(t, FromResponse("BTC-USD", resting))
}

func TestMatchEvent_Bytes(t *testing.T) {
	event := &MatchEvent{
		EventID: "01J0000000000000000000TEST",
		Symbol:  "BTC-USD",
		Type:    EventTypeTrade,
		Price:   81599,
		Volume:  50,
	}

	raw := event.ToBytes()
	require.NotNil(t, raw)

	decoded := FromBytes(raw)
	require.NotNil(t, decoded)
	assert.Equal(t, event, decoded)

	assert.Nil(t, FromBytes([]byte("{not json")))
}
