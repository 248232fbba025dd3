package menu

import "fmt"

// Tree is one menu level: an ordered list of items. Order is display order,
// and label lookups resolve ties by first match. Labels are not required to
// be unique.
type Tree struct {
	children []*Item
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Clone returns a copy of this tree. Nested subtree content is shared with
// the original until mutated through one of the copies.
func (t *Tree) Clone() *Tree {
	clone := &Tree{children: make([]*Item, len(t.children))}
	for i, child := range t.children {
		clone.children[i] = child.Clone()
	}
	return clone
}

// Clear removes every child from this tree.
func (t *Tree) Clear() {
	t.children = nil
}

// Insert inserts an item at position i. i must be within [0, Len()];
// anything else is a caller bug and panics before the tree is touched.
func (t *Tree) Insert(i int, item *Item) {
	if i < 0 || i > len(t.children) {
		panic(fmt.Sprintf("menu: insert index %d out of range [0, %d]", i, len(t.children)))
	}
	t.children = append(t.children, nil)
	copy(t.children[i+1:], t.children[i:])
	t.children[i] = item
}

// InsertDelimiter inserts a delimiter at the given position.
func (t *Tree) InsertDelimiter(i int) {
	t.Insert(i, NewDelimiter())
}

// AddDelimiter appends a delimiter to this tree.
func (t *Tree) AddDelimiter() {
	t.InsertDelimiter(len(t.children))
}

// Delimiter appends a delimiter - chainable variant.
func (t *Tree) Delimiter() *Tree {
	t.AddDelimiter()
	return t
}

// InsertLeaf inserts an actionable leaf at the given position.
func (t *Tree) InsertLeaf(i int, label string, cb Callback) {
	t.Insert(i, NewLeaf(label, cb))
}

// AddLeaf appends an actionable leaf to this tree.
func (t *Tree) AddLeaf(label string, cb Callback) {
	t.InsertLeaf(len(t.children), label, cb)
}

// Leaf appends an actionable leaf - chainable variant.
func (t *Tree) Leaf(label string, cb Callback) *Tree {
	t.AddLeaf(label, cb)
	return t
}

// InsertSubtree inserts a submenu at the given position.
func (t *Tree) InsertSubtree(i int, label string, tree *Tree) {
	t.Insert(i, NewSubtree(label, tree))
}

// AddSubtree appends a submenu to this tree.
func (t *Tree) AddSubtree(label string, tree *Tree) {
	t.InsertSubtree(len(t.children), label, tree)
}

// Subtree appends a submenu - chainable variant.
func (t *Tree) Subtree(label string, tree *Tree) *Tree {
	t.AddSubtree(label, tree)
	return t
}

// AddItem appends an item to this tree.
func (t *Tree) AddItem(item *Item) {
	t.Insert(len(t.children), item)
}

// Item appends an item - chainable variant.
func (t *Tree) Item(item *Item) *Tree {
	t.AddItem(item)
	return t
}

// Remove removes the child at position i. i must be within [0, Len());
// anything else is a caller bug and panics before the tree is touched.
func (t *Tree) Remove(i int) {
	if i < 0 || i >= len(t.children) {
		panic(fmt.Sprintf("menu: remove index %d out of range [0, %d)", i, len(t.children)))
	}
	t.children = append(t.children[:i], t.children[i+1:]...)
}

// Get returns the child at position i, or nil if i is out of range.
func (t *Tree) Get(i int) *Item {
	if i < 0 || i >= len(t.children) {
		return nil
	}
	return t.children[i]
}

// GetSubtree returns the nested tree at position i for mutation. Returns
// nil if i is out of range or the child is not a subtree. Shared content is
// forked first, as with Item.AsSubtree.
func (t *Tree) GetSubtree(i int) *Tree {
	item := t.Get(i)
	if item == nil {
		return nil
	}
	sub, ok := item.AsSubtree()
	if !ok {
		return nil
	}
	return sub
}

// FindItem returns the first child whose label equals label, or nil if
// there is no match.
func (t *Tree) FindItem(label string) *Item {
	for _, child := range t.children {
		if child.Label() == label {
			return child
		}
	}
	return nil
}

// FindSubtree returns the nested tree of the first subtree child whose
// label equals label, for mutation. Children that match the label but are
// not subtrees are skipped. Shared content is forked first, as with
// Item.AsSubtree.
func (t *Tree) FindSubtree(label string) *Tree {
	for _, child := range t.children {
		if child.Label() != label {
			continue
		}
		if sub, ok := child.AsSubtree(); ok {
			return sub
		}
	}
	return nil
}

// FindPosition returns the position of the first child whose label equals
// label. The second return value is false if there is no match.
func (t *Tree) FindPosition(label string) (int, bool) {
	for i, child := range t.children {
		if child.Label() == label {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of direct children, including delimiters. Nested
// children are not counted.
func (t *Tree) Len() int {
	return len(t.children)
}

// IsEmpty reports whether this tree has no children.
func (t *Tree) IsEmpty() bool {
	return len(t.children) == 0
}
