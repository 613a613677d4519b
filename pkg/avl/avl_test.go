package avl

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestZeroValue verifies an unused tree behaves as an empty map.
func TestZeroValue(t *testing.T) {
	var tree Tree[int]

	assert.Equal(t, 0, tree.Len(), "empty tree should have no entries")
	assert.Equal(t, 0, tree.Height(), "height of an empty tree should be 0")

	_, found := tree.Find('a')
	assert.False(t, found, "Find on an empty tree should report absent")
}

// TestInsertAndFind verifies basic insert/find round trips.
func TestInsertAndFind(t *testing.T) {
	var tree Tree[string]

	_, replaced := tree.Insert('p', "phenotype")
	assert.False(t, replaced, "first insert of a key should not replace")
	_, replaced = tree.Insert('h', "happiness")
	assert.False(t, replaced, "first insert of a key should not replace")

	v, found := tree.Find('p')
	assert.True(t, found, "inserted key should be found")
	assert.Equal(t, "phenotype", v, "Find should return the stored value")

	_, found = tree.Find('x')
	assert.False(t, found, "missing key should report absent")
	assert.Equal(t, 2, tree.Len(), "tree should count distinct keys")
}

// TestInsertReplacesAndReturnsPrevious verifies duplicate-key inserts swap
// the stored value and hand the old one back instead of dropping it.
func TestInsertReplacesAndReturnsPrevious(t *testing.T) {
	var tree Tree[string]

	tree.Insert('k', "old")
	prev, replaced := tree.Insert('k', "new")

	assert.True(t, replaced, "second insert of the same key should replace")
	assert.Equal(t, "old", prev, "previous value should be returned on replace")
	assert.Equal(t, 1, tree.Len(), "replace should not grow the tree")

	v, _ := tree.Find('k')
	assert.Equal(t, "new", v, "stored value should be the replacement")
}

// TestInOrderIsSorted verifies traversal yields ascending key order no
// matter the insertion order.
func TestInOrderIsSorted(t *testing.T) {
	keys := []byte("phenovalude")
	var tree Tree[int]
	for i, k := range keys {
		tree.Insert(k, i)
	}

	visited := []byte{}
	tree.InOrder(func(key byte, _ int) bool {
		visited = append(visited, key)
		return true
	})

	want := uniqueSorted(keys)
	assert.Equal(t, want, visited, "in-order traversal should yield ascending unique keys")
}

// TestInOrderEarlyStop verifies the visitor can stop the traversal.
func TestInOrderEarlyStop(t *testing.T) {
	var tree Tree[int]
	for _, k := range []byte("abcdef") {
		tree.Insert(k, 0)
	}

	var count int
	tree.InOrder(func(key byte, _ int) bool {
		count++
		return key != 'c'
	})

	assert.Equal(t, 3, count, "traversal should stop after the visitor returns false")
}

// TestRotationCases drives each of the four rebalancing cases explicitly.
func TestRotationCases(t *testing.T) {
	cases := []struct {
		name string
		keys []byte
	}{
		{"left-left", []byte{'c', 'b', 'a'}},
		{"right-right", []byte{'a', 'b', 'c'}},
		{"left-right", []byte{'c', 'a', 'b'}},
		{"right-left", []byte{'a', 'c', 'b'}},
	}

	for _, tc := range cases {
		var tree Tree[int]
		for _, k := range tc.keys {
			tree.Insert(k, 0)
		}
		assert.Equal(t, 2, tree.Height(), "%s: three keys should settle at height 2", tc.name)
		assert.Equal(t, 'b', rune(tree.root.key), "%s: middle key should end up at the root", tc.name)
		assertBalanced(t, &tree)
	}
}

// TestBalanceInvariantRandomOrders inserts the full byte alphabet in many
// random orders and checks the AVL invariant after every single insert.
func TestBalanceInvariantRandomOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 40; round++ {
		keys := rng.Perm(256)
		var tree Tree[int]
		for i, k := range keys {
			tree.Insert(byte(k), i)
			assertBalanced(t, &tree)
		}
		assert.Equal(t, 256, tree.Len(), "all distinct keys should be present")
		assert.LessOrEqual(t, tree.Height(), 12, "height of 256 balanced keys should stay logarithmic")
	}
}

// TestBalanceInvariantManyInserts hammers the tree with a long random key
// stream (duplicates included) and checks the invariant throughout.
func TestBalanceInvariantManyInserts(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var tree Tree[int]

	for i := 0; i < 10000; i++ {
		tree.Insert(byte(rng.Intn(256)), i)
		if i%97 == 0 {
			assertBalanced(t, &tree)
		}
	}
	assertBalanced(t, &tree)
}

// TestClear verifies Clear leaves the tree indistinguishable from new.
func TestClear(t *testing.T) {
	var tree Tree[int]
	for _, k := range []byte("phoneme") {
		tree.Insert(k, 0)
	}

	tree.Clear()
	assert.Equal(t, 0, tree.Len(), "cleared tree should be empty")
	assert.Equal(t, 0, tree.Height(), "cleared tree should have height 0")
	_, found := tree.Find('p')
	assert.False(t, found, "cleared tree should not find old keys")

	tree.Clear()
	assert.Equal(t, 0, tree.Len(), "clearing twice should be a no-op")
}

// assertBalanced walks the whole tree checking heights and balance factors.
func assertBalanced[V any](t *testing.T, tree *Tree[V]) {
	t.Helper()
	checkNode(t, tree.root)
}

func checkNode[V any](t *testing.T, n *node[V]) int {
	t.Helper()
	if n == nil {
		return 0
	}
	lh := checkNode(t, n.left)
	rh := checkNode(t, n.right)
	assert.Equal(t, 1+max(lh, rh), n.height, "stored height must match subtree heights at key %q", n.key)
	bf := lh - rh
	assert.True(t, bf >= -1 && bf <= 1, "balance factor %d out of range at key %q", bf, n.key)
	return n.height
}

func uniqueSorted(keys []byte) []byte {
	seen := map[byte]bool{}
	out := []byte{}
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func BenchmarkInsert(b *testing.B) {
	keys := make([]byte, b.N)
	for i := range keys {
		keys[i] = byte(rand.Intn(256))
	}
	var tree Tree[int]
	b.ResetTimer()

	for i, k := range keys {
		tree.Insert(k, i)
	}
}

func BenchmarkFind(b *testing.B) {
	var tree Tree[int]
	for k := 0; k < 256; k++ {
		tree.Insert(byte(k), k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Find(byte(i))
	}
}
