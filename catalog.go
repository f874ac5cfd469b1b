package translate

import (
	"strings"
)

// Catalog is a nested mapping of translation keys. Every segment maps either to a leaf holding the
// translation, or to a sub catalog. Segments keep the order they were added in.
type Catalog struct {
	segments []string
	nodes    map[string]*Node
}

// Node is a single value in a Catalog. A node without Children is a leaf.
type Node struct {
	Value    string
	Children *Catalog
}

func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Entry is a leaf of a catalog addressed by its dotted path.
type Entry struct {
	Key   string
	Value string
}

func NewCatalog() *Catalog {
	return &Catalog{
		nodes: make(map[string]*Node),
	}
}

// Len returns the number of direct segments in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.segments)
}

// Segments returns the direct segments of the catalog in order.
func (c *Catalog) Segments() []string {
	if c == nil {
		return nil
	}

	return append([]string(nil), c.segments...)
}

func (c *Catalog) Node(segment string) (*Node, bool) {
	if c == nil {
		return nil, false
	}

	n, ok := c.nodes[segment]
	return n, ok
}

// Set sets the leaf at the dotted path to value, creating sub catalogs for all but the last segment.
// A leaf on the way is replaced by a sub catalog and an existing sub catalog at the end of the path is
// replaced by the leaf.
func (c *Catalog) Set(path string, value string) {
	segments := strings.Split(path, ".")

	cur := c
	for _, segment := range segments[:len(segments)-1] {
		cur = cur.sub(segment)
	}

	cur.put(segments[len(segments)-1], &Node{Value: value})
}

// Lookup returns the value of the leaf at the dotted path.
func (c *Catalog) Lookup(path string) (string, bool) {
	segments := strings.Split(path, ".")

	cur := c
	for _, segment := range segments[:len(segments)-1] {
		n, ok := cur.Node(segment)
		if !ok || n.IsLeaf() {
			return "", false
		}

		cur = n.Children
	}

	n, ok := cur.Node(segments[len(segments)-1])
	if !ok || !n.IsLeaf() {
		return "", false
	}

	return n.Value, true
}

// Flatten returns every leaf of the catalog depth first, in segment order.
func (c *Catalog) Flatten() []Entry {
	entries := make([]Entry, 0)
	c.flatten("", &entries)

	return entries
}

func (c *Catalog) flatten(prefix string, entries *[]Entry) {
	if c == nil {
		return
	}

	for _, segment := range c.segments {
		key := segment
		if prefix != "" {
			key = prefix + "." + segment
		}

		n := c.nodes[segment]
		if n.IsLeaf() {
			*entries = append(*entries, Entry{Key: key, Value: n.Value})
			continue
		}

		n.Children.flatten(key, entries)
	}
}

// Keys returns the dotted paths of all leaves, see Flatten.
func (c *Catalog) Keys() []string {
	entries := c.Flatten()

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}

	return keys
}

// Equal reports whether both catalogs hold the same tree, ignoring segment order.
func (c *Catalog) Equal(other *Catalog) bool {
	if c.Len() != other.Len() {
		return false
	}

	for _, segment := range c.Segments() {
		a := c.nodes[segment]

		b, ok := other.Node(segment)
		if !ok || a.IsLeaf() != b.IsLeaf() {
			return false
		}

		if a.IsLeaf() {
			if a.Value != b.Value {
				return false
			}
			continue
		}

		if !a.Children.Equal(b.Children) {
			return false
		}
	}

	return true
}

// sub returns the sub catalog for segment, creating it if needed.
func (c *Catalog) sub(segment string) *Catalog {
	if n, ok := c.nodes[segment]; ok && !n.IsLeaf() {
		return n.Children
	}

	child := NewCatalog()
	c.put(segment, &Node{Children: child})

	return child
}

// put sets the node for segment. A replaced segment keeps its position.
func (c *Catalog) put(segment string, n *Node) {
	if _, ok := c.nodes[segment]; !ok {
		c.segments = append(c.segments, segment)
	}

	c.nodes[segment] = n
}
