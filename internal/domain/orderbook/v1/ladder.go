package orderbookv1

// Ladder is one side of the book: price levels kept in a red-black tree
// keyed by price. The ask ladder orders ascending (best = lowest price), the
// bid ladder descending (best = highest price). Best-level access is O(1)
// through cached extreme nodes; insert and delete are O(log n).

type nodeColor bool

const (
	colorRed   nodeColor = true
	colorBlack nodeColor = false
)

type ladderNode struct {
	price  int64
	level  *PriceLevel
	color  nodeColor
	left   *ladderNode
	right  *ladderNode
	parent *ladderNode
}

// Ladder holds the ordered price levels of one side.
type Ladder struct {
	root *ladderNode
	size int

	minNode *ladderNode
	maxNode *ladderNode

	// descending flips the priority order: true for the bid side, where the
	// best level is the highest price.
	descending bool
}

// NewLadder creates an empty ladder. Pass descending=true for the bid side.
func NewLadder(descending bool) *Ladder {
	return &Ladder{descending: descending}
}

// Size returns the number of price levels.
func (t *Ladder) Size() int {
	return t.size
}

// IsEmpty reports whether the ladder holds no levels.
func (t *Ladder) IsEmpty() bool {
	return t.size == 0
}

// Best returns the best price level of this side, nil when empty.
func (t *Ladder) Best() *PriceLevel {
	n := t.minNode
	if t.descending {
		n = t.maxNode
	}
	if n == nil {
		return nil
	}
	return n.level
}

// Get returns the level at the exact price, nil if absent.
func (t *Ladder) Get(price int64) *PriceLevel {
	n := t.search(price)
	if n == nil {
		return nil
	}
	return n.level
}

// GetOrCreate returns the level at price, inserting an empty one at the
// correct sorted position when absent.
func (t *Ladder) GetOrCreate(price int64) *PriceLevel {
	if n := t.search(price); n != nil {
		return n.level
	}
	level := NewPriceLevel(price)
	t.insert(level)
	return level
}

// Delete removes the level at the given price, if present. Callers remove a
// level the moment its last order goes away; an empty level must never stay
// in the ladder.
func (t *Ladder) Delete(price int64) {
	node := t.search(price)
	if node == nil {
		return
	}

	t.size--

	if node == t.minNode {
		t.minNode = t.successor(node)
	}
	if node == t.maxNode {
		t.maxNode = t.predecessor(node)
	}

	t.deleteNode(node)
}

// Walk visits levels from best to worst until fn returns false.
func (t *Ladder) Walk(fn func(*PriceLevel) bool) {
	if t.descending {
		for n := t.maxNode; n != nil; n = t.predecessor(n) {
			if !fn(n.level) {
				return
			}
		}
		return
	}
	for n := t.minNode; n != nil; n = t.successor(n) {
		if !fn(n.level) {
			return
		}
	}
}

func (t *Ladder) search(price int64) *ladderNode {
	current := t.root
	for current != nil {
		switch {
		case price < current.price:
			current = current.left
		case price > current.price:
			current = current.right
		default:
			return current
		}
	}
	return nil
}

func (t *Ladder) insert(level *PriceLevel) {
	node := &ladderNode{price: level.Price, level: level, color: colorRed}

	if t.root == nil {
		node.color = colorBlack
		t.root = node
		t.minNode = node
		t.maxNode = node
		t.size = 1
		return
	}

	var parent *ladderNode
	current := t.root
	for current != nil {
		parent = current
		if level.Price < current.price {
			current = current.left
		} else {
			current = current.right
		}
	}

	node.parent = parent
	if level.Price < parent.price {
		parent.left = node
	} else {
		parent.right = node
	}

	t.size++

	if level.Price < t.minNode.price {
		t.minNode = node
	}
	if level.Price > t.maxNode.price {
		t.maxNode = node
	}

	t.insertFixup(node)
}

func (t *Ladder) successor(node *ladderNode) *ladderNode {
	if node.right != nil {
		current := node.right
		for current.left != nil {
			current = current.left
		}
		return current
	}
	parent := node.parent
	for parent != nil && node == parent.right {
		node = parent
		parent = parent.parent
	}
	return parent
}

func (t *Ladder) predecessor(node *ladderNode) *ladderNode {
	if node.left != nil {
		current := node.left
		for current.right != nil {
			current = current.right
		}
		return current
	}
	parent := node.parent
	for parent != nil && node == parent.left {
		node = parent
		parent = parent.parent
	}
	return parent
}

func (t *Ladder) rotateLeft(x *ladderNode) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Ladder) rotateRight(x *ladderNode) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

func (t *Ladder) insertFixup(z *ladderNode) {
	for z.parent != nil && z.parent.color == colorRed {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y != nil && y.color == colorRed {
				z.parent.color = colorBlack
				y.color = colorBlack
				z.parent.parent.color = colorRed
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = colorBlack
				z.parent.parent.color = colorRed
				t.rotateRight(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y != nil && y.color == colorRed {
				z.parent.color = colorBlack
				y.color = colorBlack
				z.parent.parent.color = colorRed
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = colorBlack
				z.parent.parent.color = colorRed
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = colorBlack
}

func (t *Ladder) transplant(u, v *ladderNode) {
	if u.parent == nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (t *Ladder) deleteNode(z *ladderNode) {
	var x, xParent *ladderNode
	y := z
	yOriginalColor := y.color

	if z.left == nil {
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	} else if z.right == nil {
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	} else {
		y = z.right
		for y.left != nil {
			y = y.left
		}
		yOriginalColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == colorBlack {
		t.deleteFixup(x, xParent)
	}
}

func (t *Ladder) deleteFixup(x, xParent *ladderNode) {
	for x != t.root && (x == nil || x.color == colorBlack) {
		if x == xParent.left {
			w := xParent.right
			if w != nil && w.color == colorRed {
				w.color = colorBlack
				xParent.color = colorRed
				t.rotateLeft(xParent)
				w = xParent.right
			}
			if w == nil || ((w.left == nil || w.left.color == colorBlack) && (w.right == nil || w.right.color == colorBlack)) {
				if w != nil {
					w.color = colorRed
				}
				x = xParent
				xParent = x.parent
			} else {
				if w.right == nil || w.right.color == colorBlack {
					if w.left != nil {
						w.left.color = colorBlack
					}
					w.color = colorRed
					t.rotateRight(w)
					w = xParent.right
				}
				w.color = xParent.color
				xParent.color = colorBlack
				if w.right != nil {
					w.right.color = colorBlack
				}
				t.rotateLeft(xParent)
				x = t.root
			}
		} else {
			w := xParent.left
			if w != nil && w.color == colorRed {
				w.color = colorBlack
				xParent.color = colorRed
				t.rotateRight(xParent)
				w = xParent.left
			}
			if w == nil || ((w.right == nil || w.right.color == colorBlack) && (w.left == nil || w.left.color == colorBlack)) {
				if w != nil {
					w.color = colorRed
				}
				x = xParent
				xParent = x.parent
			} else {
				if w.left == nil || w.left.color == colorBlack {
					if w.right != nil {
						w.right.color = colorBlack
					}
					w.color = colorRed
					t.rotateLeft(w)
					w = xParent.left
				}
				w.color = xParent.color
				xParent.color = colorBlack
				if w.left != nil {
					w.left.color = colorBlack
				}
				t.rotateRight(xParent)
				x = t.root
			}
		}
	}
	if x != nil {
		x.color = colorBlack
	}
}
