package avl

// Tree is a self-balancing (AVL) map from a single byte key to an owned
// value. The zero value is an empty tree ready for use.
//
// There is no delete: the phenotype trie only ever adds children, so the
// tree grows monotonically and rebalances on insert.
type Tree[V any] struct {
	root *node[V]
	size int
}

type node[V any] struct {
	key    byte
	value  V
	height int
	left   *node[V]
	right  *node[V]
}

// Insert adds value under key, rebalancing as needed. If the key is
// already present the stored value is swapped and the previous one is
// handed back to the caller; what happens to it is the caller's call,
// nothing is dropped silently.
func (t *Tree[V]) Insert(key byte, value V) (prev V, replaced bool) {
	t.root, prev, replaced = insert(t.root, key, value)
	if !replaced {
		t.size++
	}
	return prev, replaced
}

func insert[V any](n *node[V], key byte, value V) (*node[V], V, bool) {
	var prev V
	if n == nil {
		return &node[V]{key: key, value: value, height: 1}, prev, false
	}

	var replaced bool
	switch {
	case key < n.key:
		n.left, prev, replaced = insert(n.left, key, value)
	case key > n.key:
		n.right, prev, replaced = insert(n.right, key, value)
	default:
		prev, n.value = n.value, value
		return n, prev, true
	}

	n.updateHeight()
	bf := n.balanceFactor()

	switch {
	case bf > 1 && key < n.left.key: // left-left
		n = rotateRight(n)
	case bf < -1 && key > n.right.key: // right-right
		n = rotateLeft(n)
	case bf > 1 && key > n.left.key: // left-right
		n.left = rotateLeft(n.left)
		n = rotateRight(n)
	case bf < -1 && key < n.right.key: // right-left
		n.right = rotateRight(n.right)
		n = rotateLeft(n)
	}

	return n, prev, replaced
}

// Find returns the value stored under key, descending by byte comparison.
func (t *Tree[V]) Find(key byte) (V, bool) {
	n := t.root
	for n != nil {
		switch {
		case key == n.key:
			return n.value, true
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	var zero V
	return zero, false
}

// InOrder visits every entry in ascending key order. The visitor returns
// false to stop early.
func (t *Tree[V]) InOrder(visit func(key byte, value V) bool) {
	inOrder(t.root, visit)
}

func inOrder[V any](n *node[V], visit func(byte, V) bool) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.left, visit) {
		return false
	}
	if !visit(n.key, n.value) {
		return false
	}
	return inOrder(n.right, visit)
}

// Len returns the number of entries in the tree.
func (t *Tree[V]) Len() int {
	return t.size
}

// Height returns the height of the tree, 0 when empty.
func (t *Tree[V]) Height() int {
	return height(t.root)
}

// Clear detaches every entry, leaving the tree empty.
func (t *Tree[V]) Clear() {
	t.root = nil
	t.size = 0
}

func height[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[V]) updateHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func (n *node[V]) balanceFactor() int {
	return height(n.left) - height(n.right)
}

func rotateRight[V any](y *node[V]) *node[V] {
	x := y.left
	y.left = x.right
	x.right = y
	y.updateHeight()
	x.updateHeight()
	return x
}

func rotateLeft[V any](x *node[V]) *node[V] {
	y := x.right
	x.right = y.left
	y.left = x
	x.updateHeight()
	y.updateHeight()
	return y
}
