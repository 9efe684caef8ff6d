package musicxml

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Element is one node of a MusicXML document tree: a name bound to a complex
// type from the schema table, an optional text value, validated attributes,
// and children managed by the type's content-model container. An element
// exclusively owns its children; children keep a non-owning back-reference.
type Element struct {
	name      string
	decl      *ComplexType
	value     string
	hasValue  bool
	attrs     map[string]string
	extra     []string // set order of attributes unknown to the schema (checking off)
	children  []*Element
	parent    *Element
	container *Container
	xsdCheck  bool
}

// NewElement constructs the element registered under name with schema
// checking enabled.
func NewElement(name string) (*Element, error) {
	ct, ok := schemaTable().complexTypeFor(name)
	if !ok {
		return nil, errors.Errorf("musicxml: unknown element name %q", name)
	}
	return newElementOfType(name, ct), nil
}

// NewElementValue constructs the element registered under name and sets its
// value.
func NewElementValue(name string, value any) (*Element, error) {
	e, err := NewElement(name)
	if err != nil {
		return nil, err
	}
	if value != nil {
		if err := e.SetValue(value); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func newElementOfType(name string, ct *ComplexType) *Element {
	return &Element{
		name:      name,
		decl:      ct,
		attrs:     make(map[string]string),
		container: newContainer(name, ct),
		xsdCheck:  true,
	}
}

// newChildNamed constructs a child element in the context of this element,
// honoring local type overrides of the parent's content model (for example
// measure below score-timewise).
func (e *Element) newChildNamed(name string) (*Element, error) {
	if ref := leafTypeRef(e.decl, name); ref != "" {
		return newElementOfType(name, schemaTable().complexType(ref)), nil
	}
	return NewElement(name)
}

// leafTypeRef scans a complex type's content model for a leaf with a local
// type override for name.
func leafTypeRef(ct *ComplexType, name string) string {
	if ct == nil || ct.Content == nil {
		return ""
	}
	var walk func(p *Particle) string
	walk = func(p *Particle) string {
		switch p.Kind {
		case ElementLeaf:
			if p.Name == name {
				return p.TypeRef
			}
		case GroupParticle:
			return walk(schemaTable().group(p.Name))
		default:
			for _, b := range p.Branches {
				if ref := walk(b); ref != "" {
					return ref
				}
			}
		}
		return ""
	}
	return walk(ct.Content)
}

// Name returns the XML element name.
func (e *Element) Name() string { return e.name }

// Parent returns the owning element, nil at the root.
func (e *Element) Parent() *Element { return e.parent }

// XSDCheck reports whether schema checking is enabled for this element.
func (e *Element) XSDCheck() bool { return e.xsdCheck }

// SetXSDCheck toggles schema checking. When off, children attach in call
// order and ToString skips the final checks for this element.
func (e *Element) SetXSDCheck(on bool) { e.xsdCheck = on }

// Value returns the element's text value in normalized lexical form.
func (e *Element) Value() string { return e.value }

// HasValue reports whether a value has been set.
func (e *Element) HasValue() bool { return e.hasValue }

// SetValue validates and sets the element's text value. Passing nil clears
// it.
func (e *Element) SetValue(value any) error {
	if value == nil {
		e.value, e.hasValue = "", false
		return nil
	}
	raw, err := lexicalValue(value)
	if err != nil {
		return badValue(e.name, fmt.Sprint(value), err.Error())
	}
	if !e.xsdCheck {
		e.value, e.hasValue = raw, true
		return nil
	}
	if e.decl.SimpleContent == "" {
		return badValue(e.name, raw, "element does not allow text content")
	}
	normalized, err := validateSimpleType(e.decl.SimpleContent, raw)
	if err != nil {
		return err
	}
	e.value, e.hasValue = normalized, true
	return nil
}

// SetAttribute validates and sets an attribute. Underscores in name are
// accepted as aliases for hyphens (font_family for font-family).
func (e *Element) SetAttribute(name string, value any) error {
	name = strings.ReplaceAll(name, "_", "-")
	raw, err := lexicalValue(value)
	if err != nil {
		return badValue(e.name, fmt.Sprint(value), err.Error())
	}
	if !e.xsdCheck {
		if _, ok := e.attrs[name]; !ok && e.decl.findAttribute(name) == nil {
			e.extra = append(e.extra, name)
		}
		e.attrs[name] = raw
		return nil
	}
	decl := e.decl.findAttribute(name)
	if decl == nil {
		return &UnknownAttributeError{
			ElementName: e.name,
			AttrName:    name,
			Allowed:     e.decl.attributeNames(),
		}
	}
	normalized, err := validateSimpleType(decl.Type, raw)
	if err != nil {
		return err
	}
	e.attrs[name] = normalized
	return nil
}

// Attribute returns the value of a set attribute.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[strings.ReplaceAll(name, "_", "-")]
	return v, ok
}

// ClearAttribute removes an attribute if set.
func (e *Element) ClearAttribute(name string) {
	name = strings.ReplaceAll(name, "_", "-")
	delete(e.attrs, name)
	for i, n := range e.extra {
		if n == name {
			e.extra = append(e.extra[:i], e.extra[i+1:]...)
			break
		}
	}
}

// AddChild attaches a child at the first legal position of the content model
// and returns it. With checking off the child is appended in call order.
func (e *Element) AddChild(child *Element) (*Element, error) {
	if e.xsdCheck {
		if e.container == nil {
			return nil, &ChildNotAllowedError{
				ElementName: e.name,
				ChildName:   child.name,
				Reason:      "element cannot have children",
			}
		}
		if err := e.container.tryAttach(child); err != nil {
			return nil, err
		}
	}
	e.children = append(e.children, child)
	child.parent = e
	return child, nil
}

// AddChildAt attaches a child to the forward-th leaf of the content model
// matching its name, for content models where the same name occurs in more
// than one place.
func (e *Element) AddChildAt(child *Element, forward int) (*Element, error) {
	if !e.xsdCheck {
		return e.AddChild(child)
	}
	if e.container == nil {
		return nil, &ChildNotAllowedError{
			ElementName: e.name,
			ChildName:   child.name,
			Reason:      "element cannot have children",
		}
	}
	if err := e.container.tryAttachAt(child, forward); err != nil {
		return nil, err
	}
	e.children = append(e.children, child)
	child.parent = e
	return child, nil
}

// Remove detaches a child from the tree and de-duplicates the content model.
func (e *Element) Remove(child *Element) error {
	found := false
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return errors.Errorf("musicxml: %s is not a child of %s", child.name, e.name)
	}
	if e.container != nil {
		e.container.detach(child)
	}
	child.parent = nil
	return nil
}

// ReplaceChild substitutes new for old. Same-named elements swap in place,
// keeping the slot; otherwise old is removed, new attached, and old restored
// if the attachment fails.
func (e *Element) ReplaceChild(old, repl *Element) (*Element, error) {
	idx := -1
	for i, c := range e.children {
		if c == old {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.Errorf("musicxml: %s is not a child of %s", old.name, e.name)
	}
	if e.xsdCheck && e.container != nil && old.name == repl.name {
		if e.container.swap(old, repl) {
			e.children[idx] = repl
			repl.parent = e
			old.parent = nil
			return repl, nil
		}
	}
	if err := e.Remove(old); err != nil {
		return nil, err
	}
	if _, err := e.AddChild(repl); err != nil {
		// Roll the removal back; old attached before, so it attaches again.
		if _, rerr := e.AddChild(old); rerr != nil {
			return nil, errors.Wrapf(err, "musicxml: replace of %s failed and %s could not be restored", old.name, old.name)
		}
		return nil, err
	}
	// Keep the authoring position of the replaced child.
	last := len(e.children) - 1
	copy(e.children[idx+1:last+1], e.children[idx:last])
	e.children[idx] = repl
	return repl, nil
}

// SetChild attaches, replaces, updates or removes the first child with the
// given name. Value may be an *Element to attach, a scalar to build or update
// the default element of that name, or nil to remove.
func (e *Element) SetChild(name string, value any) (*Element, error) {
	name = strings.ReplaceAll(name, "_", "-")
	existing := e.Child(name)
	switch v := value.(type) {
	case nil:
		if existing != nil {
			return nil, e.Remove(existing)
		}
		return nil, nil
	case *Element:
		if v == nil {
			if existing != nil {
				return nil, e.Remove(existing)
			}
			return nil, nil
		}
		if v.name != name {
			return nil, errors.Errorf("musicxml: cannot set child %s to element %s", name, v.name)
		}
		if existing != nil {
			return e.ReplaceChild(existing, v)
		}
		return e.AddChild(v)
	default:
		if existing != nil {
			if err := existing.SetValue(v); err != nil {
				return nil, err
			}
			return existing, nil
		}
		child, err := e.newChildNamed(name)
		if err != nil {
			return nil, err
		}
		child.xsdCheck = e.xsdCheck
		if err := child.SetValue(v); err != nil {
			return nil, err
		}
		return e.AddChild(child)
	}
}

// Child returns the first child with the given name in document order, or
// nil.
func (e *Element) Child(name string) *Element {
	name = strings.ReplaceAll(name, "_", "-")
	for _, c := range e.Children(true) {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Children returns the child list: in document order (the order the
// serializer emits, derived from the content model) when ordered is true,
// else the cheaper insertion-order view.
func (e *Element) Children(ordered bool) []*Element {
	if !ordered || e.container == nil || !e.xsdCheck {
		return e.children
	}
	return e.container.orderedElements()
}

// FindChild returns the first child with the given name in insertion order.
func (e *Element) FindChild(name string) *Element {
	name = strings.ReplaceAll(name, "_", "-")
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// FindChildren returns all children with the given name in insertion order.
func (e *Element) FindChildren(name string) []*Element {
	name = strings.ReplaceAll(name, "_", "-")
	var out []*Element
	for _, c := range e.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// PossibleChildren lists the element names the content model can host.
func (e *Element) PossibleChildren() []string {
	if e.container == nil {
		return nil
	}
	return e.container.possibleChildren()
}

// Copy returns a deep copy with an independent container; the copied
// children re-attach through the same placement path.
func (e *Element) Copy() *Element {
	dup := newElementOfType(e.name, e.decl)
	dup.xsdCheck = e.xsdCheck
	dup.value, dup.hasValue = e.value, e.hasValue
	for k, v := range e.attrs {
		dup.attrs[k] = v
	}
	dup.extra = append([]string(nil), e.extra...)
	for _, c := range e.children {
		// The child attached to e, so the same attachment succeeds here.
		if _, err := dup.AddChild(c.Copy()); err != nil {
			panic(fmt.Sprintf("musicxml: deep copy of %s could not re-attach %s: %v", e.name, c.name, err))
		}
	}
	return dup
}

// ShallowCopy clones the node itself; children are shared by reference and
// stay owned by the original.
func (e *Element) ShallowCopy() *Element {
	dup := newElementOfType(e.name, e.decl)
	dup.xsdCheck = e.xsdCheck
	dup.value, dup.hasValue = e.value, e.hasValue
	for k, v := range e.attrs {
		dup.attrs[k] = v
	}
	dup.extra = append([]string(nil), e.extra...)
	dup.children = append([]*Element(nil), e.children...)
	return dup
}

// finalChecks verifies this element and every descendant before
// serialization: a value where the type demands one, content-model
// completion, and required attributes.
func (e *Element) finalChecks() error {
	if !e.xsdCheck {
		// Checking off silences this element and everything below it.
		return nil
	}
	if e.decl.ValueRequired && !e.hasValue {
		return badValue(e.name, "", "value required")
	}
	if e.container != nil {
		if err := e.container.validateCompletion(); err != nil {
			return err
		}
	}
	for _, a := range e.decl.Attributes {
		if a.Use == RequiredUse {
			if _, ok := e.attrs[a.Name]; !ok {
				return &RequiredAttributeMissingError{ElementName: e.name, AttrName: a.Name}
			}
		}
	}
	for _, c := range e.children {
		if err := c.finalChecks(); err != nil {
			return err
		}
	}
	return nil
}

// ToString runs the final checks (when checking is on) and serializes the
// element as an indented XML fragment.
func (e *Element) ToString(opts ...WriteOption) (string, error) {
	cfg := newWriteConfig(false, opts...)
	if err := e.finalChecks(); err != nil {
		return "", err
	}
	var sb strings.Builder
	writeDocument(&sb, e, cfg)
	return sb.String(), nil
}

// Write runs the final checks and writes the document, by default with an
// XML declaration and, for score roots, the matching MusicXML DOCTYPE.
func (e *Element) Write(w io.Writer, opts ...WriteOption) error {
	cfg := newWriteConfig(true, opts...)
	if err := e.finalChecks(); err != nil {
		return err
	}
	var sb strings.Builder
	writeDocument(&sb, e, cfg)
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "musicxml: write failed")
	}
	return nil
}

// WriteFile serializes the document to a file.
func (e *Element) WriteFile(path string, opts ...WriteOption) error {
	cfg := newWriteConfig(true, opts...)
	if err := e.finalChecks(); err != nil {
		return err
	}
	var sb strings.Builder
	writeDocument(&sb, e, cfg)
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return errors.Wrapf(err, "musicxml: writing %s", path)
	}
	return nil
}
