package orderbookv1

// L2MarketData is a depth-aggregated projection of the book: parallel arrays
// of price, total volume and order count per level, best to worst per side.
type L2MarketData struct {
	AskPrices      []int64
	AskVolumes     []int64
	AskOrderCounts []int64

	BidPrices      []int64
	BidVolumes     []int64
	BidOrderCounts []int64
}

// NewL2MarketData allocates an empty snapshot with capacity for the given
// depth per side.
func NewL2MarketData(depth int) *L2MarketData {
	return &L2MarketData{
		AskPrices:      make([]int64, 0, depth),
		AskVolumes:     make([]int64, 0, depth),
		AskOrderCounts: make([]int64, 0, depth),
		BidPrices:      make([]int64, 0, depth),
		BidVolumes:     make([]int64, 0, depth),
		BidOrderCounts: make([]int64, 0, depth),
	}
}

// AskSize returns the number of ask levels in the snapshot.
func (d *L2MarketData) AskSize() int {
	return len(d.AskPrices)
}

// BidSize returns the number of bid levels in the snapshot.
func (d *L2MarketData) BidSize() int {
	return len(d.BidPrices)
}

// TotalAskVolume sums the visible ask volume.
func (d *L2MarketData) TotalAskVolume() int64 {
	var total int64
	for _, v := range d.AskVolumes {
		total += v
	}
	return total
}

// TotalBidVolume sums the visible bid volume.
func (d *L2MarketData) TotalBidVolume() int64 {
	var total int64
	for _, v := range d.BidVolumes {
		total += v
	}
	return total
}
