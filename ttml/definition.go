package ttml

// Property is normalized TTML attribute of style or region definition.
type Property struct {
	Name  string
	Value string
}

// Definition is an immutable style or region declared in document head.
type Definition struct {
	ID    string
	Props []Property
}

// Value returns raw value of the first property with given name.
func (d *Definition) Value(name string) string {
	for _, p := range d.Props {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// Table keeps definitions in document order.
type Table []Definition

// Find looks definition up by id, first match wins.
func (t Table) Find(id string) (*Definition, bool) {
	for i := range t {
		if t[i].ID == id {
			return &t[i], true
		}
	}
	return nil, false
}

// NewDefinition builds definition from <style> or <region> element. Nested
// <style> children (allowed for regions) add their attributes after the
// element's own ones.
func NewDefinition(n *Node) Definition {
	def := Definition{ID: n.ID()}
	def.Props = appendProps(def.Props, n)
	for _, nested := range n.ChildrenNamed("style") {
		def.Props = appendProps(def.Props, nested)
	}
	return def
}

func appendProps(props []Property, n *Node) []Property {
	for _, a := range n.Attrs {
		if a.Space == "xmlns" || (a.Space == "" && a.Local == "xmlns") {
			continue
		}
		name := NormalizeKey(a.Key)
		if name == "id" {
			continue
		}
		props = append(props, Property{Name: name, Value: a.Value})
	}
	return props
}

// NewTable collects definitions of elements with given name under parent.
func NewTable(parent *Node, name string) Table {
	nodes := parent.ChildrenNamed(name)
	t := make(Table, 0, len(nodes))
	for _, n := range nodes {
		t = append(t, NewDefinition(n))
	}
	return t
}
