package phenotrie

import "github.com/obinexus/plp/pkg/avl"

// Node is a single trie node. Each node owns its child map (an AVL tree
// keyed by the next byte of the token) and, when a stored token ends
// here, its phenotype payload.
type Node struct {
	children avl.Tree[*Node]
	pheno    *Phenotype
	terminal bool
}

// Trie maps byte-string tokens to phenotype records. Keys are compared
// bytewise; children at every node iterate in ascending byte order, so a
// full walk is lexicographic. Not safe for concurrent use.
type Trie struct {
	root *Node
	size int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: &Node{}}
}

// Visitor receives each stored token during enumeration. The token is a
// copy and safe to retain; the payload pointer is live trie state.
type Visitor func(token string, p *Phenotype)

// Insert stores token with the given phenotype fields, creating the path
// as needed. If the token is already present its Score, Qual and Meta are
// overwritten in place and its visit count is kept. The empty token is
// legal and addresses the root.
func (t *Trie) Insert(token string, score float64, qual Qual, meta *string) {
	cur := t.root
	for i := 0; i < len(token); i++ {
		ch := token[i]
		next, ok := cur.children.Find(ch)
		if !ok {
			next = &Node{}
			cur.children.Insert(ch, next)
		}
		cur = next
	}

	cur.terminal = true
	if cur.pheno == nil {
		cur.pheno = newPhenotype(score, qual, meta)
		t.size++
	} else {
		cur.pheno.overwrite(score, qual, meta)
	}
}

// Lookup walks the token's path and returns its payload. A missing path
// or a node that is only a prefix of stored tokens reports absent and
// leaves the trie untouched. A hit counts as a visit: the payload's
// Visits is incremented before it is returned.
func (t *Trie) Lookup(token string) (*Phenotype, bool) {
	cur := t.root
	for i := 0; i < len(token); i++ {
		next, ok := cur.children.Find(token[i])
		if !ok {
			return nil, false
		}
		cur = next
	}
	if !cur.terminal {
		return nil, false
	}
	cur.pheno.Visits++
	return cur.pheno, true
}

// Enumerate calls visit for every stored token in lexicographic order.
// The sequence is produced depth-first against live state; call it again
// for a fresh pass. The path scratch buffer lives only for this call.
func (t *Trie) Enumerate(visit Visitor) {
	path := make([]byte, 0, 64)
	t.root.enumerate(&path, visit)
}

func (n *Node) enumerate(path *[]byte, visit Visitor) {
	if n.terminal {
		// string() copies, so the visitor never sees the scratch buffer
		visit(string(*path), n.pheno)
	}
	n.children.InOrder(func(key byte, child *Node) bool {
		*path = append(*path, key)
		child.enumerate(path, visit)
		*path = (*path)[:len(*path)-1]
		return true
	})
}

// Len returns the number of stored tokens.
func (t *Trie) Len() int {
	return t.size
}

// Destroy releases every node, child map and payload in a strict
// post-order walk and resets the trie to its freshly-created state.
// Calling it on an already-destroyed or empty trie is a no-op.
func (t *Trie) Destroy() {
	if t == nil || t.root == nil {
		return
	}
	t.root.destroy()
	t.root = &Node{}
	t.size = 0
}

func (n *Node) destroy() {
	n.children.InOrder(func(_ byte, child *Node) bool {
		child.destroy()
		return true
	})
	n.children.Clear()
	if n.pheno != nil {
		n.pheno.Meta = nil
		n.pheno = nil
	}
	n.terminal = false
}
