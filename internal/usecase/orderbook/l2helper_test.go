package orderbook

import (
	orderbookv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/orderbook/v1"
)

// l2State tracks the expected depth view of the book alongside the tests,
// mutated step by step as commands are applied.
type l2State struct {
	askPrices  []int64
	askVolumes []int64
	askOrders  []int64
	bidPrices  []int64
	bidVolumes []int64
	bidOrders  []int64
}

func (s *l2State) build() *orderbookv1.L2MarketData {
	data := orderbookv1.NewL2MarketData(len(s.askPrices) + len(s.bidPrices))
	data.AskPrices = append(data.AskPrices, s.askPrices...)
	data.AskVolumes = append(data.AskVolumes, s.askVolumes...)
	data.AskOrderCounts = append(data.AskOrderCounts, s.askOrders...)
	data.BidPrices = append(data.BidPrices, s.bidPrices...)
	data.BidVolumes = append(data.BidVolumes, s.bidVolumes...)
	data.BidOrderCounts = append(data.BidOrderCounts, s.bidOrders...)
	return data
}

func insertAt(slice []int64, index int, value int64) []int64 {
	slice = append(slice, 0)
	copy(slice[index+1:], slice[index:])
	slice[index] = value
	return slice
}

func removeAt(slice []int64, index int) []int64 {
	return append(slice[:index], slice[index+1:]...)
}

func (s *l2State) insertAsk(index int, price, volume int64) *l2State {
	s.askPrices = insertAt(s.askPrices, index, price)
	s.askVolumes = insertAt(s.askVolumes, index, volume)
	s.askOrders = insertAt(s.askOrders, index, 1)
	return s
}

func (s *l2State) insertBid(index int, price, volume int64) *l2State {
	s.bidPrices = insertAt(s.bidPrices, index, price)
	s.bidVolumes = insertAt(s.bidVolumes, index, volume)
	s.bidOrders = insertAt(s.bidOrders, index, 1)
	return s
}

func (s *l2State) removeAsk(index int) *l2State {
	s.askPrices = removeAt(s.askPrices, index)
	s.askVolumes = removeAt(s.askVolumes, index)
	s.askOrders = removeAt(s.askOrders, index)
	return s
}

func (s *l2State) removeBid(index int) *l2State {
	s.bidPrices = removeAt(s.bidPrices, index)
	s.bidVolumes = removeAt(s.bidVolumes, index)
	s.bidOrders = removeAt(s.bidOrders, index)
	return s
}

func (s *l2State) removeAllAsks() *l2State {
	s.askPrices = s.askPrices[:0]
	s.askVolumes = s.askVolumes[:0]
	s.askOrders = s.askOrders[:0]
	return s
}

func (s *l2State) setAskVolume(index int, volume int64) *l2State {
	s.askVolumes[index] = volume
	return s
}

func (s *l2State) setBidVolume(index int, volume int64) *l2State {
	s.bidVolumes[index] = volume
	return s
}

func (s *l2State) incrementBidOrders(index int) *l2State {
	s.bidOrders[index]++
	return s
}

func (s *l2State) decrementBidOrders(index int) *l2State {
	s.bidOrders[index]--
	return s
}

func (s *l2State) decrementAskOrders(index int) *l2State {
	s.askOrders[index]--
	return s
}

// aggregateBuyBudget is the cost of buying size units against the tracked
// ask side, best price first.
func (s *l2State) aggregateBuyBudget(size int64) int64 {
	var budget int64
	for i := range s.askPrices {
		if size == 0 {
			break
		}
		volume := s.askVolumes[i]
		if volume > size {
			volume = size
		}
		budget += volume * s.askPrices[i]
		size -= volume
	}
	return budget
}

// aggregateSellExpectation is the proceeds of selling size units against the
// tracked bid side, best price first.
func (s *l2State) aggregateSellExpectation(size int64) int64 {
	var expectation int64
	for i := range s.bidPrices {
		if size == 0 {
			break
		}
		volume := s.bidVolumes[i]
		if volume > size {
			volume = size
		}
		expectation += volume * s.bidPrices[i]
		size -= volume
	}
	return expectation
}
