package weba

import "fmt"

// Position names where InsertAdjacent places nodes relative to a target.
//
// The values match the position argument of the DOM insertAdjacentElement
// API, so markup authors can reuse the names they already know.
type Position string

const (
	// BeforeBegin inserts before the target, as its previous siblings.
	BeforeBegin Position = "beforebegin"

	// AfterBegin prepends to the target's children.
	// Useful for prepending items to lists.
	AfterBegin Position = "afterbegin"

	// BeforeEnd appends to the target's children.
	// Useful for adding items to lists.
	BeforeEnd Position = "beforeend"

	// AfterEnd inserts after the target, as its next siblings.
	AfterEnd Position = "afterend"
)

// InsertAdjacent places nodes at pos relative to n, preserving argument
// order. BeforeBegin and AfterEnd require n to have a parent.
func (n *Node) InsertAdjacent(pos Position, nodes ...*Node) error {
	switch pos {
	case BeforeBegin:
		return n.InsertBefore(nodes...)
	case AfterBegin:
		n.Insert(0, nodes...)
	case BeforeEnd:
		n.Append(nodes...)
	case AfterEnd:
		return n.InsertAfter(nodes...)
	default:
		return fmt.Errorf("weba: unknown position %q", string(pos))
	}
	return nil
}
