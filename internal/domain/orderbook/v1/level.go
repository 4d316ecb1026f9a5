package orderbookv1

// OrderNode is a slot in the FIFO queue of a price level. The registry maps
// order ids to nodes so cancellation is O(1); the node back-references its
// level so the mutating operations can maintain ladder aggregates.
type OrderNode struct {
	Order *Order

	prev  *OrderNode
	next  *OrderNode
	level *PriceLevel
}

// Next returns the next node in arrival order.
func (n *OrderNode) Next() *OrderNode {
	return n.next
}

// Level returns the price level currently holding this node, nil once the
// node has been unlinked.
func (n *OrderNode) Level() *PriceLevel {
	return n.level
}

// PriceLevel is the set of all resting orders at one exact price on one
// side, in strict arrival order.
type PriceLevel struct {
	Price int64

	head  *OrderNode
	tail  *OrderNode
	count int
	// TotalVolume is the sum of remaining sizes of all orders in the level.
	TotalVolume int64
}

// NewPriceLevel creates an empty level at the given price.
func NewPriceLevel(price int64) *PriceLevel {
	return &PriceLevel{Price: price}
}

// Count returns the number of orders at this level.
func (l *PriceLevel) Count() int {
	return l.count
}

// IsEmpty reports whether no orders rest at this level.
func (l *PriceLevel) IsEmpty() bool {
	return l.count == 0
}

// Head returns the oldest order node, the first to be matched.
func (l *PriceLevel) Head() *OrderNode {
	return l.head
}

// Append adds an order at the tail of the queue, preserving time priority,
// and returns the node for later O(1) removal.
func (l *PriceLevel) Append(order *Order) *OrderNode {
	node := &OrderNode{Order: order, level: l}

	if l.tail == nil {
		l.head = node
		l.tail = node
	} else {
		node.prev = l.tail
		l.tail.next = node
		l.tail = node
	}

	l.count++
	l.TotalVolume += order.Remaining()
	return node
}

// Remove unlinks a node from the queue, decrementing the aggregates by the
// order's remaining volume.
func (l *PriceLevel) Remove(node *OrderNode) {
	l.TotalVolume -= node.Order.Remaining()
	l.count--

	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	node.level = nil
}

// ReduceVolume decrements the aggregate volume without removing any order.
// Used when an order is partially filled or explicitly reduced in place.
func (l *PriceLevel) ReduceVolume(delta int64) {
	l.TotalVolume -= delta
}
