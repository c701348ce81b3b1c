package flex

// MeasureFunc computes the intrinsic size of a leaf node. It is called
// only on nodes with no children. widthMode/heightMode of
// MeasureModeUndefined mean "no constraint"; MeasureModeExactly means
// the corresponding returned dimension MUST equal width/height;
// MeasureModeAtMost means the returned dimension MUST be <= width/height.
// The returned Size must not contain NaN.
type MeasureFunc func(node *Node, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) Size

// BaselineFunc returns the ascent, from the node's top edge, used for
// AlignBaseline. It must return a finite number.
type BaselineFunc func(node *Node, width, height float64) float64

// DirtiedFunc is invoked at most once per clean-to-dirty transition.
type DirtiedFunc func(node *Node)

// PrintFunc is an external debug-dump collaborator; the engine never
// calls it itself, it is only carried on the Node so hosts that
// implement tree printing can retrieve it.
type PrintFunc func(node *Node)

// Node owns its Style, its Layout, its children (in order) and,
// optionally, a back-reference to its owner. A Node has either children
// or a measure callback, never both (invariant 1).
type Node struct {
	style  Style
	layout Layout
	config *Config

	owner    *Node
	children []*Node

	measure  MeasureFunc
	baseline BaselineFunc
	dirtied  DirtiedFunc
	print    PrintFunc

	nodeType     NodeType
	lineIndex    int
	isDirty      bool
	hasNewLayout bool

	// treeGeneration backs Config.PerTreeGeneration mode: when set, this
	// node is a tree root and owns its own monotonic counter instead of
	// consulting the package-level one.
	treeGeneration uint32
}

// NewNode constructs a node attached to the given Config (nil uses an
// implicit default Config equivalent to NewConfig()). When the Config has
// UseWebDefaults set, the node starts with the web-default style.
func NewNode(config *Config) *Node {
	if config == nil {
		config = NewConfig()
	}
	n := &Node{style: defaultStyle(), layout: newLayout(), config: config, isDirty: true}
	if config.UseWebDefaults {
		applyWebDefaults(&n.style)
	}
	return n
}

// newNodeWithDefaults applies Config.UseWebDefaults at construction time,
// matching YGConfigGetDefaultNode's lazy web-defaults application.
func newNodeWithDefaults(config *Config) *Node {
	n := NewNode(config)
	if config.UseWebDefaults {
		applyWebDefaults(&n.style)
	}
	return n
}

// Config returns the node's Config.
func (n *Node) Config() *Config { return n.config }

// SetConfig replaces the node's Config reference.
func (n *Node) SetConfig(c *Config) { n.config = c }

// Free detaches n from its owner, if any. It does not touch children;
// use FreeRecursive to release a whole owned subtree.
func (n *Node) Free() {
	if n.owner != nil {
		n.owner.removeChildPointer(n)
		n.owner = nil
	}
}

// FreeRecursive walks only owned children, freeing the whole subtree.
func (n *Node) FreeRecursive() {
	for _, c := range n.children {
		if c.owner == n {
			c.FreeRecursive()
		}
	}
	n.children = nil
	n.Free()
}

// Reset restores default style/layout/callbacks. It is a constraint
// violation to reset a node that still has children or a parent.
func (n *Node) Reset() error {
	if len(n.children) > 0 {
		return constraintErr("NodeReset", "node still has children")
	}
	if n.owner != nil {
		return constraintErr("NodeReset", "node still has an owner")
	}
	config := n.config
	*n = Node{style: defaultStyle(), layout: newLayout(), config: config, isDirty: true}
	return nil
}

// Clone returns a new node sharing no mutable state with n and with no
// owner. Children are NOT cloned (matching YGNodeClone, which shares the
// child vector until copy-on-write kicks in on the clone's next mutation).
func (n *Node) Clone() *Node {
	c := &Node{
		style:        n.style,
		layout:       n.layout,
		config:       n.config,
		measure:      n.measure,
		baseline:     n.baseline,
		dirtied:      nil, // dirtied is per-instance, never inherited by a clone
		print:        n.print,
		nodeType:     n.nodeType,
		lineIndex:    n.lineIndex,
		isDirty:      n.isDirty,
		hasNewLayout: n.hasNewLayout,
	}
	c.children = append([]*Node(nil), n.children...)
	return c
}

// cloneViaConfig clones n for the copy-on-write protocol, through the
// Config's CloneNodeFunc when one is set and through Clone otherwise.
func (n *Node) cloneViaConfig(owner *Node, childIndex int) *Node {
	if n.config != nil && n.config.CloneNodeFunc != nil {
		return n.config.CloneNodeFunc(n, owner, childIndex)
	}
	return n.Clone()
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the child at index i, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Parent returns n's owner, or nil if n is a root or detached.
func (n *Node) Parent() *Node { return n.owner }

// ensureChildrenOwned implements the copy-on-write protocol: if the
// first child's owner is not n, every child is cloned and the clones'
// owner is set to n. This guarantees shared subtrees are never mutated
// through one parent and silently affect another.
func (n *Node) ensureChildrenOwned() {
	if len(n.children) == 0 {
		return
	}
	if n.children[0].owner == n {
		return
	}
	cloned := make([]*Node, len(n.children))
	for i, c := range n.children {
		nc := c.cloneViaConfig(n, i)
		nc.owner = n
		cloned[i] = nc
	}
	n.children = cloned
}

// InsertChild inserts child at index, which is clamped into [0, len].
// Inserting fails the has-children-or-measure-callback invariant
// silently if a measure callback is set: callers are expected to clear
// it first via SetMeasureFunc(nil), matching YGNodeInsertChild's
// documented precondition.
func (n *Node) InsertChild(child *Node, index int) {
	n.ensureChildrenOwned()
	if index < 0 {
		index = 0
	}
	if index > len(n.children) {
		index = len(n.children)
	}
	child.Free()
	child.owner = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.MarkDirtyAndPropagateDownward()
	n.markDirty()
}

// RemoveChild removes the first occurrence of child, if present.
func (n *Node) RemoveChild(child *Node) {
	n.ensureChildrenOwned()
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			if child.owner == n {
				child.owner = nil
			}
			n.markDirty()
			return
		}
	}
}

// RemoveAllChildren detaches every owned child.
func (n *Node) RemoveAllChildren() {
	for _, c := range n.children {
		if c.owner == n {
			c.owner = nil
		}
	}
	n.children = nil
	n.markDirty()
}

// ReplaceChild swaps the child at index for newChild.
func (n *Node) ReplaceChild(newChild *Node, index int) {
	n.ensureChildrenOwned()
	if index < 0 || index >= len(n.children) {
		return
	}
	old := n.children[index]
	if old.owner == n {
		old.owner = nil
	}
	newChild.Free()
	newChild.owner = n
	n.children[index] = newChild
	n.markDirty()
}

// removeChildPointer is the non-copy-on-write removal used by Free,
// which must not allocate clones of siblings just to detach itself.
func (n *Node) removeChildPointer(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// MarkDirtyAndPropagateDownward is reserved for future downward
// invalidation (e.g. of descendant caches on structural changes). In
// this implementation structural change is already handled by dirtying
// the mutated node and relying on layoutInternal's generation check, so
// this is a no-op placeholder kept for API symmetry with YGNode.
func (n *Node) MarkDirtyAndPropagateDownward() {}

// IsDirty reports the node's dirty bit.
func (n *Node) IsDirty() bool { return n.isDirty }

// MarkDirty is only legal on a leaf node with a measure callback; it
// propagates to the owner chain and invokes DirtiedFunc exactly once
// per clean-to-dirty transition.
func (n *Node) MarkDirty() {
	if n.measure == nil {
		return
	}
	n.markDirty()
}

// markDirty is the internal setter used by style setters and tree
// mutation, which are allowed to dirty any node (not just measure
// leaves). It walks the owner chain, stopping as soon as it finds an
// already-dirty ancestor (invariant 4: dirty propagates monotonically).
func (n *Node) markDirty() {
	if n.isDirty {
		return
	}
	n.isDirty = true
	if n.dirtied != nil {
		n.dirtied(n)
	}
	if n.owner != nil {
		n.owner.markDirty()
	}
}

// SetMeasureFunc attaches a measure callback. Setting a non-nil function
// on a node with children is a constraint violation. Setting nil
// reverts NodeType to default; setting non-nil sets it to text.
func (n *Node) SetMeasureFunc(f MeasureFunc) error {
	if f != nil && len(n.children) > 0 {
		return constraintErr("SetMeasureFunc", "node has children")
	}
	n.measure = f
	if f == nil {
		n.nodeType = NodeTypeDefault
	} else {
		n.nodeType = NodeTypeText
	}
	n.markDirty()
	return nil
}

// HasMeasureFunc reports whether a measure callback is attached.
func (n *Node) HasMeasureFunc() bool { return n.measure != nil }

// SetBaselineFunc attaches the baseline callback.
func (n *Node) SetBaselineFunc(f BaselineFunc) { n.baseline = f }

// SetDirtiedFunc attaches the dirtied callback.
func (n *Node) SetDirtiedFunc(f DirtiedFunc) { n.dirtied = f }

// SetPrintFunc attaches the debug-print callback.
func (n *Node) SetPrintFunc(f PrintFunc) { n.print = f }

// PrintFunc returns the attached debug-print callback, or nil.
func (n *Node) PrintFunc() PrintFunc { return n.print }

// NodeType returns whether this node is a measure-driven "text" leaf or
// an ordinary container.
func (n *Node) NodeType() NodeType { return n.nodeType }

// SetNodeType overrides NodeType directly (for hosts modeling leaves
// that aren't backed by a MeasureFunc, e.g. an `<img>`-like replaced
// element with an intrinsic size known up front).
func (n *Node) SetNodeType(t NodeType) { n.nodeType = t }

// GetHasNewLayout / SetHasNewLayout expose the consumer-facing
// "layout changed since I last checked" bit.
func (n *Node) GetHasNewLayout() bool     { return n.hasNewLayout }
func (n *Node) SetHasNewLayout(v bool)    { n.hasNewLayout = v }

// Layout returns the node's last computed Layout. Its contents are
// defined only after a successful Calculate.
func (n *Node) Layout() *Layout { return &n.layout }

// Style returns a copy of the node's current style. Mutate via the
// setter methods (SetWidth, SetFlexGrow, ...), not through this copy.
func (n *Node) Style() Style { return n.style }

// CopyStyle byte-compares dst's and src's styles; on any difference it
// copies src's style into dst and marks dst dirty.
func (dst *Node) CopyStyle(src *Node) {
	if dst.style.Equal(src.style) {
		return
	}
	dst.style = src.style
	dst.markDirty()
}
