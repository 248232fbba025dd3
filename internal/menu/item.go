// Package menu provides hierarchical menu trees: ordered collections of
// actionable leaves, nested submenus, and delimiters, intended to back a
// menu bar or popup menu in a terminal application.
//
// A Tree is one menu level. Its items are leaves (label plus callback),
// subtrees (label plus nested Tree), or delimiters separating groups of
// related entries. Subtree content is shared by reference: attaching a
// cloned item under several parents is cheap, and the first mutation
// through any one parent forks a private copy so the others never observe
// it (copy-on-write).
//
// Trees are plain single-threaded data structures. The reference count
// backing subtree sharing is not atomic; do not share trees across
// goroutines without external synchronization.
package menu

import "fmt"

// DelimiterLabel is the fixed label reported by delimiter items. Renderers
// should display it verbatim.
const DelimiterLabel = "│"

// Callback is the action attached to a leaf entry. The host application
// passes a handle to itself when it triggers the entry. The menu tree only
// stores the callback; it never calls it, and the same callback may be
// invoked any number of times.
type Callback func(host any)

type itemKind int

const (
	kindLeaf itemKind = iota
	kindSubtree
	kindDelimiter
)

// Item is a single node in a menu tree: an actionable leaf, a nested
// subtree, or a delimiter.
type Item struct {
	kind    itemKind
	label   string
	cb      Callback
	enabled bool
	shared  *sharedTree
}

// sharedTree is a reference-counted handle to subtree content. refs counts
// the items known to hold the handle; mutable access through an item forks
// a private copy when the count is above one. Holders that are dropped
// without detaching leave the count high, which at worst causes one
// unnecessary copy later.
type sharedTree struct {
	tree *Tree
	refs int
}

// NewLeaf creates an enabled leaf entry with the given label and callback.
func NewLeaf(label string, cb Callback) *Item {
	return &Item{kind: kindLeaf, label: label, cb: cb, enabled: true}
}

// NewSubtree creates an enabled entry nesting the given tree in a fresh
// shared handle.
func NewSubtree(label string, tree *Tree) *Item {
	return &Item{
		kind:    kindSubtree,
		label:   label,
		enabled: true,
		shared:  &sharedTree{tree: tree, refs: 1},
	}
}

// NewDelimiter creates a delimiter entry.
func NewDelimiter() *Item {
	return &Item{kind: kindDelimiter}
}

// Label returns the text displayed for this item. Delimiters report
// DelimiterLabel.
func (it *Item) Label() string {
	if it.kind == kindDelimiter {
		return DelimiterLabel
	}
	return it.label
}

// Callback returns the stored action handle. It is nil for anything but a
// leaf.
func (it *Item) Callback() Callback {
	return it.cb
}

// IsEnabled reports whether this item can be selected. Delimiters are never
// enabled.
func (it *Item) IsEnabled() bool {
	return it.kind != kindDelimiter && it.enabled
}

// Disable marks this item as not selectable. Does not affect delimiters.
func (it *Item) Disable() {
	if it.kind != kindDelimiter {
		it.enabled = false
	}
}

// Disabled disables this item - chainable variant.
func (it *Item) Disabled() *Item {
	it.Disable()
	return it
}

// IsDelimiter reports whether this item is a delimiter.
func (it *Item) IsDelimiter() bool {
	return it.kind == kindDelimiter
}

// IsLeaf reports whether this item is a leaf.
func (it *Item) IsLeaf() bool {
	return it.kind == kindLeaf
}

// IsSubtree reports whether this item nests a subtree.
func (it *Item) IsSubtree() bool {
	return it.kind == kindSubtree
}

// AsSubtree returns the nested tree for mutation, or false if this item is
// not a subtree. If the content is currently shared with other holders it
// is copied into a private handle first, so mutations through the returned
// tree are never observed by the other holders.
func (it *Item) AsSubtree() (*Tree, bool) {
	if it.kind != kindSubtree {
		return nil, false
	}
	if it.shared.refs > 1 {
		it.shared.refs--
		it.shared = &sharedTree{tree: it.shared.tree.Clone(), refs: 1}
	}
	return it.shared.tree, true
}

// Subtree returns a read-only view of the nested tree, or false if this
// item is not a subtree. Unlike AsSubtree it never forks shared content;
// callers that intend to mutate the tree must use AsSubtree instead.
func (it *Item) Subtree() (*Tree, bool) {
	if it.kind != kindSubtree {
		return nil, false
	}
	return it.shared.tree, true
}

// Clone returns a copy of this item. Leaf callbacks are shared between the
// copies, and subtree content stays shared until either copy mutates it.
func (it *Item) Clone() *Item {
	copied := *it
	if it.kind == kindSubtree {
		it.shared.refs++
	}
	return &copied
}

func (it *Item) String() string {
	switch it.kind {
	case kindDelimiter:
		return "Delimiter"
	case kindSubtree:
		return fmt.Sprintf("Subtree(%q)", it.label)
	default:
		return fmt.Sprintf("Leaf(%q)", it.label)
	}
}
