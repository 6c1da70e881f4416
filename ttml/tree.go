package ttml

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Attr is a single attribute of the attributed tree. Key is compressed
// path "element@prefix:local" (or "element@local" for attributes without
// namespace prefix), Space and Local keep its parts.
type Attr struct {
	Key   string
	Space string
	Local string
	Value string
}

// Node is read-only attributed tree produced from TTML XML. Text nodes have
// empty Name and carry Text.
type Node struct {
	Name     string
	Space    string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// ReadTree parses XML into attributed tree rooted at document element.
func ReadTree(r io.Reader) (*Node, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to parse XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no document element", ErrStructure)
	}
	return fromElement(root), nil
}

// ReadTreeString is ReadTree for in-memory documents.
func ReadTreeString(s string) (*Node, error) {
	return ReadTree(strings.NewReader(s))
}

func fromElement(el *etree.Element) *Node {
	n := &Node{
		Name:  el.Tag,
		Space: el.Space,
		Attrs: make([]Attr, 0, len(el.Attr)),
	}
	for _, a := range el.Attr {
		key := el.Tag + "@" + a.Key
		if a.Space != "" {
			key = el.Tag + "@" + a.Space + ":" + a.Key
		}
		n.Attrs = append(n.Attrs, Attr{Key: key, Space: a.Space, Local: a.Key, Value: a.Value})
	}
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			n.Children = append(n.Children, fromElement(t))
		case *etree.CharData:
			n.Children = append(n.Children, &Node{Text: t.Data})
		}
	}
	return n
}

func (n *Node) IsText() bool {
	return n.Name == ""
}

// Attr returns value of the first attribute with given local name
// regardless of its namespace prefix.
func (n *Node) Attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Local == local && a.Space != "xmlns" {
			return a.Value, true
		}
	}
	return "", false
}

// AttrNS returns value of attribute with exact prefix and local name. Empty
// prefix matches attributes without namespace.
func (n *Node) AttrNS(space, local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Space == space && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue is Attr without presence flag.
func (n *Node) AttrValue(local string) string {
	v, _ := n.Attr(local)
	return v
}

// ID returns xml:id or plain id of the element.
func (n *Node) ID() string {
	if v, ok := n.AttrNS("xml", "id"); ok {
		return v
	}
	v, _ := n.AttrNS("", "id")
	return v
}

// Child returns first child element with given name.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all child elements with given name. Documents may
// declare single style, region or div without wrapping list, the result is
// always a sequence.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Elements returns element children skipping text.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if !c.IsText() {
			out = append(out, c)
		}
	}
	return out
}

// TextContent concatenates all descendant text.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// NamespacePrefix returns prefix bound to namespace uri on the node, empty
// string when namespace is not declared or declared more than once.
func (n *Node) NamespacePrefix(uri string) string {
	var found []string
	for _, a := range n.Attrs {
		if a.Space == "xmlns" && a.Value == uri {
			found = append(found, a.Local)
		}
	}
	if len(found) != 1 {
		return ""
	}
	return found[0]
}
