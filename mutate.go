package weba

import "fmt"

// Append makes each child the last child of n. A child that is already a
// child of n stays where it is. A child attached elsewhere is moved.
//
// Appending n to itself or to one of its descendants panics.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil || c.parent == n {
			continue
		}
		n.mustAccept(c)
		c.detach()
		n.insertAt(len(n.children), c)
	}
	return n
}

// Insert places children at index, in argument order. The index is clamped
// to [0, Len()]; an index at or past the end appends.
func (n *Node) Insert(index int, children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.mustAccept(c)
		if c.parent == n {
			if i := n.indexOf(c); i < index {
				index--
			}
		}
		c.detach()
		index = clamp(index, 0, len(n.children))
		n.insertAt(index, c)
		index++
	}
	return n
}

// InsertBefore places siblings immediately before n in its parent,
// preserving argument order.
func (n *Node) InsertBefore(siblings ...*Node) error {
	if err := n.checkSiblings(siblings); err != nil {
		return err
	}
	p := n.parent
	for _, s := range siblings {
		if s == nil || s == n {
			continue
		}
		s.detach()
		p.insertAt(p.indexOf(n), s)
	}
	return nil
}

// InsertAfter places siblings immediately after n in its parent, preserving
// argument order.
func (n *Node) InsertAfter(siblings ...*Node) error {
	if err := n.checkSiblings(siblings); err != nil {
		return err
	}
	p := n.parent
	after := n
	for _, s := range siblings {
		if s == nil || s == n {
			continue
		}
		s.detach()
		p.insertAt(p.indexOf(after)+1, s)
		after = s
	}
	return nil
}

// ReplaceWith puts replacements where n was and returns n, now detached.
//
// Replacing n with itself alone is a no-op. Passing n together with other
// nodes fails with ErrSelfReplacement; passing the parent of n (or any
// other ancestor) fails with ErrParentReplacement.
func (n *Node) ReplaceWith(replacements ...*Node) (*Node, error) {
	if len(replacements) == 1 && replacements[0] == n {
		return n, nil
	}
	for _, r := range replacements {
		if r == n {
			return nil, ErrSelfReplacement
		}
		if r != nil && r.contains(n) {
			return nil, fmt.Errorf("%w: <%s>", ErrParentReplacement, r.Name())
		}
	}
	if n.parent == nil {
		return nil, ErrNoParent
	}
	if err := n.InsertBefore(replacements...); err != nil {
		return nil, err
	}
	return n.Extract(), nil
}

// Extract detaches n from its parent and returns it.
func (n *Node) Extract() *Node {
	n.detach()
	return n
}

// Clear detaches every child of n. The children themselves are left intact.
func (n *Node) Clear() *Node {
	for _, c := range n.children {
		c.parent = nil
		n.elem.RemoveChild(c.elem)
	}
	n.children = nil
	return n
}

// Pop removes and returns the child at index. Negative indices count from
// the end, so Pop(-1) removes the last child.
func (n *Node) Pop(index int) (*Node, error) {
	if len(n.children) == 0 {
		return nil, ErrEmptyNode
	}
	i := index
	if i < 0 {
		i += len(n.children)
	}
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(n.children))
	}
	return n.children[i].Extract(), nil
}

func (n *Node) checkSiblings(siblings []*Node) error {
	if n.parent == nil {
		return ErrNoParent
	}
	for _, s := range siblings {
		if s != nil && s != n && s.contains(n) {
			return fmt.Errorf("%w: <%s>", ErrParentReplacement, s.Name())
		}
	}
	return nil
}

// mustAccept panics if attaching c under n would create a cycle.
func (n *Node) mustAccept(c *Node) {
	if c.contains(n) {
		panic(fmt.Sprintf("weba: cannot attach <%s> inside itself", c.Name()))
	}
}

// contains reports whether other is n or lies below it.
func (n *Node) contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// root returns the topmost node above n.
func (n *Node) root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

func (n *Node) detach() {
	if p := n.parent; p != nil {
		if i := p.indexOf(n); i >= 0 {
			p.children = append(p.children[:i], p.children[i+1:]...)
		}
		n.parent = nil
	}
	if n.elem.Parent != nil {
		n.elem.Parent.RemoveChild(n.elem)
	}
}

// insertAt links a detached c as the i-th child of n in both trees.
func (n *Node) insertAt(i int, c *Node) {
	var ref *Node
	if i < len(n.children) {
		ref = n.children[i]
	}
	if ref != nil {
		n.elem.InsertBefore(c.elem, ref.elem)
	} else {
		n.elem.AppendChild(c.elem)
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	c.parent = n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
