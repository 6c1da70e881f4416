package css

import (
	"io"
	"strings"
)

// Declaration is a single resolved presentation property.
type Declaration struct {
	Property string
	Value    string
	// Origin names the source property a declaration was derived from when
	// it differs from Property (e.g. "multi-row-align" for "text-align").
	Origin string
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}

// Declarations is an ordered property set. Each property is present at most
// once: setting an existing property moves it to the end, so the serialized
// form keeps "last one wins" semantics of CSS while lookups never have to
// match substrings. Zero value is ready to use.
type Declarations struct {
	items []Declaration
}

// NewDeclarations builds a set from property/value pairs.
func NewDeclarations(pairs ...string) Declarations {
	var d Declarations
	for i := 0; i+1 < len(pairs); i += 2 {
		d.Set(pairs[i], pairs[i+1])
	}
	return d
}

func (d *Declarations) index(prop string) int {
	for i := range d.items {
		if d.items[i].Property == prop {
			return i
		}
	}
	return -1
}

// Set stores value for property, replacing and moving to the end any
// previous declaration of the same property.
func (d *Declarations) Set(prop, value string) {
	d.SetFrom(prop, value, "")
}

// SetFrom is Set which remembers what property produced the declaration.
func (d *Declarations) SetFrom(prop, value, origin string) {
	d.Remove(prop)
	d.items = append(d.items, Declaration{Property: prop, Value: value, Origin: origin})
}

// SetIfAbsent stores value only when property is not present yet. Returns
// true if value was stored.
func (d *Declarations) SetIfAbsent(prop, value string) bool {
	if d.index(prop) >= 0 {
		return false
	}
	d.items = append(d.items, Declaration{Property: prop, Value: value})
	return true
}

// Remove deletes property, returning true if it was present.
func (d *Declarations) Remove(prop string) bool {
	i := d.index(prop)
	if i < 0 {
		return false
	}
	d.items = append(d.items[:i], d.items[i+1:]...)
	return true
}

// Get returns value of the property or empty string.
func (d *Declarations) Get(prop string) string {
	v, _ := d.Lookup(prop)
	return v
}

func (d *Declarations) Lookup(prop string) (string, bool) {
	if i := d.index(prop); i >= 0 {
		return d.items[i].Value, true
	}
	return "", false
}

// Declaration returns full declaration for the property.
func (d *Declarations) Declaration(prop string) (Declaration, bool) {
	if i := d.index(prop); i >= 0 {
		return d.items[i], true
	}
	return Declaration{}, false
}

func (d *Declarations) Has(prop string) bool {
	return d.index(prop) >= 0
}

func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// All returns a copy of declarations in order.
func (d *Declarations) All() []Declaration {
	if d == nil || len(d.items) == 0 {
		return nil
	}
	out := make([]Declaration, len(d.items))
	copy(out, d.items)
	return out
}

// Merge sets every declaration of other on top of d, in other's order.
func (d *Declarations) Merge(other Declarations) {
	for _, decl := range other.items {
		d.SetFrom(decl.Property, decl.Value, decl.Origin)
	}
}

// Extract removes listed properties from d and returns them as a new set.
func (d *Declarations) Extract(props ...string) Declarations {
	var out Declarations
	for _, p := range props {
		if decl, ok := d.Declaration(p); ok {
			out.items = append(out.items, decl)
			d.Remove(p)
		}
	}
	return out
}

func (d Declarations) Clone() Declarations {
	return Declarations{items: d.All()}
}

// Equal reports whether both sets hold the same declarations in the same
// order.
func (d *Declarations) Equal(other Declarations) bool {
	if len(d.items) != len(other.items) {
		return false
	}
	for i := range d.items {
		if d.items[i].Property != other.items[i].Property || d.items[i].Value != other.items[i].Value {
			return false
		}
	}
	return true
}

// String serializes declarations to inline style form: "a: 1; b: 2;".
func (d Declarations) String() string {
	var b strings.Builder
	_, _ = d.WriteTo(&b)
	return b.String()
}

// WriteTo writes inline style form to w.
func (d Declarations) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, decl := range d.items {
		s := decl.String()
		if i > 0 {
			s = " " + s
		}
		n, err := io.WriteString(w, s)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
